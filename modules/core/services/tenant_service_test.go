package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everhub/taskmeta/modules/core/domain/entities/tenant"
	"github.com/everhub/taskmeta/modules/core/services"
	"github.com/everhub/taskmeta/pkg/composables"
	"github.com/everhub/taskmeta/pkg/eventbus"
)

type stubTx struct {
	pgx.Tx
}

type fakeTenantRepo struct {
	tenants map[uuid.UUID]*tenant.Tenant
}

func newFakeTenantRepo() *fakeTenantRepo {
	return &fakeTenantRepo{tenants: make(map[uuid.UUID]*tenant.Tenant)}
}

func (r *fakeTenantRepo) GetByID(_ context.Context, id uuid.UUID) (*tenant.Tenant, error) {
	t, ok := r.tenants[id]
	if !ok {
		return nil, tenant.ErrNotFound
	}
	return t, nil
}

func (r *fakeTenantRepo) List(_ context.Context) ([]*tenant.Tenant, error) {
	out := make([]*tenant.Tenant, 0, len(r.tenants))
	for _, t := range r.tenants {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTenantRepo) Create(_ context.Context, t *tenant.Tenant) (*tenant.Tenant, error) {
	r.tenants[t.ID()] = t
	return t, nil
}

func (r *fakeTenantRepo) Update(_ context.Context, t *tenant.Tenant) (*tenant.Tenant, error) {
	if _, ok := r.tenants[t.ID()]; !ok {
		return nil, tenant.ErrNotFound
	}
	r.tenants[t.ID()] = t
	return t, nil
}

func (r *fakeTenantRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.tenants, id)
	return nil
}

func TestTenantService_Create_PublishesCreatedEvent(t *testing.T) {
	t.Parallel()

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	bus := eventbus.NewEventPublisher(logger)
	repo := newFakeTenantRepo()
	svc := services.NewTenantService(repo, bus)

	var published *tenant.CreatedEvent
	bus.Subscribe(func(event *tenant.CreatedEvent) {
		published = event
	})

	ctx := composables.WithTx(context.Background(), stubTx{})
	created, err := svc.Create(ctx, tenant.New("Acme"))
	require.NoError(t, err)

	require.NotNil(t, published)
	assert.Equal(t, created.ID(), published.Tenant.ID())

	stored, err := repo.GetByID(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, "Acme", stored.Name())
}
