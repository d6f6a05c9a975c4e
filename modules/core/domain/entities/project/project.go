package project

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("project not found")

type Project struct {
	id             uuid.UUID
	tenantID       uuid.UUID
	organizationID uuid.UUID
	name           string
	createdAt      time.Time
	updatedAt      time.Time
}

type Option func(*Project)

func WithID(id uuid.UUID) Option {
	return func(p *Project) {
		p.id = id
	}
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(p *Project) {
		p.createdAt = createdAt
	}
}

func WithUpdatedAt(updatedAt time.Time) Option {
	return func(p *Project) {
		p.updatedAt = updatedAt
	}
}

func New(tenantID, organizationID uuid.UUID, name string, opts ...Option) *Project {
	p := &Project{
		id:             uuid.New(),
		tenantID:       tenantID,
		organizationID: organizationID,
		name:           name,
		createdAt:      time.Now(),
		updatedAt:      time.Now(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Project) ID() uuid.UUID             { return p.id }
func (p *Project) TenantID() uuid.UUID       { return p.tenantID }
func (p *Project) OrganizationID() uuid.UUID { return p.organizationID }
func (p *Project) Name() string              { return p.name }
func (p *Project) CreatedAt() time.Time      { return p.createdAt }
func (p *Project) UpdatedAt() time.Time      { return p.updatedAt }

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Project, error)
	ListByOrganization(ctx context.Context, organizationID uuid.UUID) ([]*Project, error)
	Create(ctx context.Context, p *Project) (*Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreatedEvent struct {
	Project *Project
}

func NewCreatedEvent(p *Project) *CreatedEvent {
	return &CreatedEvent{Project: p}
}
