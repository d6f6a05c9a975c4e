package team

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("team not found")

type Team struct {
	id             uuid.UUID
	tenantID       uuid.UUID
	organizationID uuid.UUID
	name           string
	createdAt      time.Time
	updatedAt      time.Time
}

type Option func(*Team)

func WithID(id uuid.UUID) Option {
	return func(t *Team) {
		t.id = id
	}
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(t *Team) {
		t.createdAt = createdAt
	}
}

func WithUpdatedAt(updatedAt time.Time) Option {
	return func(t *Team) {
		t.updatedAt = updatedAt
	}
}

func New(tenantID, organizationID uuid.UUID, name string, opts ...Option) *Team {
	t := &Team{
		id:             uuid.New(),
		tenantID:       tenantID,
		organizationID: organizationID,
		name:           name,
		createdAt:      time.Now(),
		updatedAt:      time.Now(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Team) ID() uuid.UUID             { return t.id }
func (t *Team) TenantID() uuid.UUID       { return t.tenantID }
func (t *Team) OrganizationID() uuid.UUID { return t.organizationID }
func (t *Team) Name() string              { return t.name }
func (t *Team) CreatedAt() time.Time      { return t.createdAt }
func (t *Team) UpdatedAt() time.Time      { return t.updatedAt }

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Team, error)
	ListByOrganization(ctx context.Context, organizationID uuid.UUID) ([]*Team, error)
	Create(ctx context.Context, t *Team) (*Team, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreatedEvent struct {
	Team *Team
}

func NewCreatedEvent(t *Team) *CreatedEvent {
	return &CreatedEvent{Team: t}
}
