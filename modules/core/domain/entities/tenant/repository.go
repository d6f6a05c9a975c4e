package tenant

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("tenant not found")

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Tenant, error)
	List(ctx context.Context) ([]*Tenant, error)
	Create(ctx context.Context, t *Tenant) (*Tenant, error)
	Update(ctx context.Context, t *Tenant) (*Tenant, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreatedEvent struct {
	Tenant *Tenant
}

func NewCreatedEvent(t *Tenant) *CreatedEvent {
	return &CreatedEvent{Tenant: t}
}
