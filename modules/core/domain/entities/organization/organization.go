package organization

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("organization not found")

type Organization struct {
	id        uuid.UUID
	tenantID  uuid.UUID
	name      string
	createdAt time.Time
	updatedAt time.Time
}

type Option func(*Organization)

func WithID(id uuid.UUID) Option {
	return func(o *Organization) {
		o.id = id
	}
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(o *Organization) {
		o.createdAt = createdAt
	}
}

func WithUpdatedAt(updatedAt time.Time) Option {
	return func(o *Organization) {
		o.updatedAt = updatedAt
	}
}

func New(tenantID uuid.UUID, name string, opts ...Option) *Organization {
	o := &Organization{
		id:        uuid.New(),
		tenantID:  tenantID,
		name:      name,
		createdAt: time.Now(),
		updatedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Organization) ID() uuid.UUID        { return o.id }
func (o *Organization) TenantID() uuid.UUID  { return o.tenantID }
func (o *Organization) Name() string         { return o.name }
func (o *Organization) CreatedAt() time.Time { return o.createdAt }
func (o *Organization) UpdatedAt() time.Time { return o.updatedAt }

func (o *Organization) SetName(name string) {
	o.name = name
	o.updatedAt = time.Now()
}

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Organization, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*Organization, error)
	Create(ctx context.Context, o *Organization) (*Organization, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreatedEvent struct {
	Organization *Organization
}

func NewCreatedEvent(o *Organization) *CreatedEvent {
	return &CreatedEvent{Organization: o}
}
