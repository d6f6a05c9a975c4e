package taxonomy

type CreatedEvent struct {
	Item *Item
}

func NewCreatedEvent(item *Item) *CreatedEvent {
	return &CreatedEvent{Item: item}
}

type UpdatedEvent struct {
	Item *Item
}

func NewUpdatedEvent(item *Item) *UpdatedEvent {
	return &UpdatedEvent{Item: item}
}

type DeletedEvent struct {
	Item *Item
}

func NewDeletedEvent(item *Item) *DeletedEvent {
	return &DeletedEvent{Item: item}
}

// ScopeProvisionedEvent is published once per provisioned scope, after the
// copies have been committed.
type ScopeProvisionedEvent struct {
	Scope Scope
	Items []*Item
}

func NewScopeProvisionedEvent(scope Scope, items []*Item) *ScopeProvisionedEvent {
	return &ScopeProvisionedEvent{Scope: scope, Items: items}
}
