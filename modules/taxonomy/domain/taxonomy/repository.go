package taxonomy

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

var (
	ErrItemNotFound = errors.New("taxonomy item not found")
	ErrSystemItem   = errors.New("system taxonomy items cannot be modified")
)

type ReorderEntry struct {
	ID    uuid.UUID
	Order int
}

type Repository interface {
	GetByID(ctx context.Context, kind Kind, id uuid.UUID) (*Item, error)
	// FindByScope matches the scope exactly: every identifier the scope does
	// not carry must be NULL on the row.
	FindByScope(ctx context.Context, kind Kind, scope Scope) ([]*Item, error)
	// FindDefaults returns the universal default set: isSystem = true and all
	// scope fields NULL.
	FindDefaults(ctx context.Context, kind Kind) ([]*Item, error)
	CountByScope(ctx context.Context, kind Kind, scope Scope) (int64, error)
	Create(ctx context.Context, item *Item) (*Item, error)
	Update(ctx context.Context, item *Item) (*Item, error)
	// Delete never touches system rows.
	Delete(ctx context.Context, kind Kind, id uuid.UUID) error
	// UpdateOrder is a no-op on system rows.
	UpdateOrder(ctx context.Context, kind Kind, id uuid.UUID, order int) error
	// ClearDefaults unsets isDefault on every row in the scope.
	ClearDefaults(ctx context.Context, kind Kind, scope Scope) error
}
