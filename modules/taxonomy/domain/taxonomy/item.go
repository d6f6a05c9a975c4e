package taxonomy

import (
	"time"

	"github.com/google/uuid"
)

// Item is one taxonomy row: a status, priority, size, issue type or related
// issue type. System items form the universal default set; they are
// global-scoped, undeletable and cannot be reordered.
type Item struct {
	id          uuid.UUID
	kind        Kind
	name        string
	value       string
	description string
	icon        string
	color       string
	order       int
	isDefault   bool
	isSystem    bool
	isCollapsed bool
	scope       Scope
	fullIconURL string
	createdAt   time.Time
	updatedAt   time.Time
}

type Option func(*Item)

func WithID(id uuid.UUID) Option {
	return func(i *Item) {
		i.id = id
	}
}

func WithDescription(description string) Option {
	return func(i *Item) {
		i.description = description
	}
}

func WithIcon(icon string) Option {
	return func(i *Item) {
		i.icon = icon
	}
}

func WithColor(color string) Option {
	return func(i *Item) {
		i.color = color
	}
}

func WithOrder(order int) Option {
	return func(i *Item) {
		i.order = order
	}
}

func WithDefault(isDefault bool) Option {
	return func(i *Item) {
		i.isDefault = isDefault
	}
}

func WithSystem(isSystem bool) Option {
	return func(i *Item) {
		i.isSystem = isSystem
	}
}

func WithCollapsed(isCollapsed bool) Option {
	return func(i *Item) {
		i.isCollapsed = isCollapsed
	}
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(i *Item) {
		i.createdAt = createdAt
	}
}

func WithUpdatedAt(updatedAt time.Time) Option {
	return func(i *Item) {
		i.updatedAt = updatedAt
	}
}

func New(kind Kind, name, value string, scope Scope, opts ...Option) *Item {
	item := &Item{
		id:        uuid.New(),
		kind:      kind,
		name:      name,
		value:     value,
		scope:     scope,
		createdAt: time.Now(),
		updatedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(item)
	}
	return item
}

func (i *Item) ID() uuid.UUID       { return i.id }
func (i *Item) Kind() Kind          { return i.kind }
func (i *Item) Name() string        { return i.name }
func (i *Item) Value() string       { return i.value }
func (i *Item) Description() string { return i.description }
func (i *Item) Icon() string        { return i.icon }
func (i *Item) Color() string       { return i.color }
func (i *Item) Order() int          { return i.order }
func (i *Item) IsDefault() bool     { return i.isDefault }
func (i *Item) IsSystem() bool      { return i.isSystem }
func (i *Item) IsCollapsed() bool   { return i.isCollapsed }
func (i *Item) Scope() Scope        { return i.scope }
func (i *Item) FullIconURL() string { return i.fullIconURL }
func (i *Item) CreatedAt() time.Time { return i.createdAt }
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }

func (i *Item) SetName(name string)               { i.name = name; i.touch() }
func (i *Item) SetValue(value string)             { i.value = value; i.touch() }
func (i *Item) SetDescription(description string) { i.description = description; i.touch() }
func (i *Item) SetIcon(icon string)               { i.icon = icon; i.touch() }
func (i *Item) SetColor(color string)             { i.color = color; i.touch() }
func (i *Item) SetOrder(order int)                { i.order = order; i.touch() }
func (i *Item) SetDefault(isDefault bool)         { i.isDefault = isDefault; i.touch() }
func (i *Item) SetCollapsed(isCollapsed bool)     { i.isCollapsed = isCollapsed; i.touch() }

// SetFullIconURL attaches the resolved public icon URL. Presentation-only;
// never persisted.
func (i *Item) SetFullIconURL(url string) { i.fullIconURL = url }

func (i *Item) touch() {
	i.updatedAt = time.Now()
}

// CopyTo returns a provisioning copy of the item at the given scope: a fresh
// identity, isSystem forced false, presentation fields carried over.
func (i *Item) CopyTo(scope Scope) *Item {
	return New(
		i.kind,
		i.name,
		i.value,
		scope,
		WithDescription(i.description),
		WithIcon(i.icon),
		WithColor(i.color),
		WithOrder(i.order),
		WithDefault(i.isDefault),
		WithCollapsed(i.isCollapsed),
	)
}
