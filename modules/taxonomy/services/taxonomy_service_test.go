package services_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everhub/taskmeta/modules/taxonomy/domain/taxonomy"
	"github.com/everhub/taskmeta/modules/taxonomy/seed"
	"github.com/everhub/taskmeta/modules/taxonomy/services"
	"github.com/everhub/taskmeta/pkg/assets"
	"github.com/everhub/taskmeta/pkg/eventbus"
)

const testIconBase = "http://cdn.local/assets"

func newTestBus() eventbus.EventBus {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return eventbus.NewEventPublisher(logger)
}

func newTaxonomyService(repo taxonomy.Repository, bus eventbus.EventBus) *services.TaxonomyService {
	return services.NewTaxonomyService(repo, bus, assets.NewBaseURLResolver(testIconBase))
}

func seedDefaults(t *testing.T, repo *inMemoryRepository) {
	t.Helper()
	ctx := txContext()
	for _, kind := range taxonomy.Kinds() {
		for _, item := range seed.DefaultItems(kind) {
			_, err := repo.Create(ctx, item)
			require.NoError(t, err)
		}
	}
}

func TestTaxonomyService_List_ExactScopeMatch(t *testing.T) {
	t.Parallel()

	repo := newInMemoryRepository()
	seedDefaults(t, repo)
	svc := newTaxonomyService(repo, newTestBus())
	ctx := txContext()

	tenantID := uuid.New()
	scope := taxonomy.TenantScope(tenantID)
	_, err := repo.Create(ctx, taxonomy.New(taxonomy.KindStatus, "Backlog", "backlog", scope, taxonomy.WithOrder(0)))
	require.NoError(t, err)
	_, err = repo.Create(ctx, taxonomy.New(taxonomy.KindStatus, "Shipped", "shipped", scope, taxonomy.WithOrder(1)))
	require.NoError(t, err)

	items, err := svc.List(ctx, taxonomy.KindStatus, scope)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Backlog", items[0].Name())
	assert.Equal(t, "Shipped", items[1].Name())
	for _, item := range items {
		assert.False(t, item.IsSystem())
		assert.True(t, item.Scope().Equal(scope))
	}
}

func TestTaxonomyService_List_FallsBackToDefaults(t *testing.T) {
	t.Parallel()

	repo := newInMemoryRepository()
	seedDefaults(t, repo)
	svc := newTaxonomyService(repo, newTestBus())
	ctx := txContext()

	items, err := svc.List(ctx, taxonomy.KindStatus, taxonomy.TenantScope(uuid.New()))
	require.NoError(t, err)
	require.Len(t, items, 6)
	assert.Equal(t, "Open", items[0].Name())
	assert.Equal(t, "Done", items[5].Name())
	for _, item := range items {
		assert.True(t, item.IsSystem())
	}
}

func TestTaxonomyService_List_DegradesToDefaultsOnReadError(t *testing.T) {
	t.Parallel()

	repo := newInMemoryRepository()
	seedDefaults(t, repo)
	repo.failFinds = true
	svc := newTaxonomyService(repo, newTestBus())

	items, err := svc.List(txContext(), taxonomy.KindPriority, taxonomy.TenantScope(uuid.New()))
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, "Urgent", items[0].Name())
}

func TestTaxonomyService_List_ResolvesIconURLs(t *testing.T) {
	t.Parallel()

	repo := newInMemoryRepository()
	seedDefaults(t, repo)
	svc := newTaxonomyService(repo, newTestBus())

	items, err := svc.List(txContext(), taxonomy.KindStatus, taxonomy.GlobalScope())
	require.NoError(t, err)
	require.NotEmpty(t, items)
	assert.Equal(t, testIconBase+"/task-statuses/open.svg", items[0].FullIconURL())
}

func TestTaxonomyService_Create_PublishesEvent(t *testing.T) {
	t.Parallel()

	repo := newInMemoryRepository()
	bus := newTestBus()
	svc := newTaxonomyService(repo, bus)

	var published *taxonomy.CreatedEvent
	bus.Subscribe(func(event *taxonomy.CreatedEvent) {
		published = event
	})

	created, err := svc.Create(txContext(), taxonomy.New(
		taxonomy.KindPriority, "Critical", "critical", taxonomy.TenantScope(uuid.New()),
	))
	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, created.ID(), published.Item.ID())
}

func TestTaxonomyService_Update_RejectsSystemItems(t *testing.T) {
	t.Parallel()

	repo := newInMemoryRepository()
	seedDefaults(t, repo)
	svc := newTaxonomyService(repo, newTestBus())
	ctx := txContext()

	defaults, err := repo.FindDefaults(ctx, taxonomy.KindStatus)
	require.NoError(t, err)
	require.NotEmpty(t, defaults)

	_, err = svc.Update(ctx, defaults[0])
	assert.ErrorIs(t, err, taxonomy.ErrSystemItem)
}

func TestTaxonomyService_Delete(t *testing.T) {
	t.Parallel()

	repo := newInMemoryRepository()
	seedDefaults(t, repo)
	svc := newTaxonomyService(repo, newTestBus())
	ctx := txContext()

	t.Run("removes scoped items", func(t *testing.T) {
		item, err := repo.Create(ctx, taxonomy.New(
			taxonomy.KindSize, "Gigantic", "gigantic", taxonomy.TenantScope(uuid.New()),
		))
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, taxonomy.KindSize, item.ID()))
		_, err = repo.GetByID(ctx, taxonomy.KindSize, item.ID())
		assert.ErrorIs(t, err, taxonomy.ErrItemNotFound)
	})

	t.Run("rejects system items", func(t *testing.T) {
		defaults, err := repo.FindDefaults(ctx, taxonomy.KindSize)
		require.NoError(t, err)
		require.NotEmpty(t, defaults)

		err = svc.Delete(ctx, taxonomy.KindSize, defaults[0].ID())
		assert.ErrorIs(t, err, taxonomy.ErrSystemItem)
	})

	t.Run("missing item", func(t *testing.T) {
		err := svc.Delete(ctx, taxonomy.KindSize, uuid.New())
		assert.ErrorIs(t, err, taxonomy.ErrItemNotFound)
	})
}

func TestTaxonomyService_Reorder(t *testing.T) {
	t.Parallel()

	repo := newInMemoryRepository()
	svc := newTaxonomyService(repo, newTestBus())
	ctx := txContext()

	scope := taxonomy.TenantScope(uuid.New())
	first, err := repo.Create(ctx, taxonomy.New(taxonomy.KindStatus, "One", "one", scope, taxonomy.WithOrder(0)))
	require.NoError(t, err)
	second, err := repo.Create(ctx, taxonomy.New(taxonomy.KindStatus, "Two", "two", scope, taxonomy.WithOrder(1)))
	require.NoError(t, err)

	err = svc.Reorder(ctx, taxonomy.KindStatus, []taxonomy.ReorderEntry{
		{ID: first.ID(), Order: 1},
		{ID: uuid.Nil, Order: 7},
		{ID: second.ID(), Order: 0},
	})
	require.NoError(t, err)

	items, err := svc.List(ctx, taxonomy.KindStatus, scope)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Two", items[0].Name())
	assert.Equal(t, "One", items[1].Name())
}

func TestTaxonomyService_Reorder_SkipsSystemItems(t *testing.T) {
	t.Parallel()

	repo := newInMemoryRepository()
	seedDefaults(t, repo)
	svc := newTaxonomyService(repo, newTestBus())
	ctx := txContext()

	defaults, err := repo.FindDefaults(ctx, taxonomy.KindStatus)
	require.NoError(t, err)
	require.NotEmpty(t, defaults)
	target := defaults[0]
	before := target.Order()

	err = svc.Reorder(ctx, taxonomy.KindStatus, []taxonomy.ReorderEntry{
		{ID: target.ID(), Order: before + 42},
	})
	require.NoError(t, err)

	reloaded, err := repo.GetByID(ctx, taxonomy.KindStatus, target.ID())
	require.NoError(t, err)
	assert.Equal(t, before, reloaded.Order())
}

func TestTaxonomyService_Reorder_Idempotent(t *testing.T) {
	t.Parallel()

	repo := newInMemoryRepository()
	svc := newTaxonomyService(repo, newTestBus())
	ctx := txContext()

	scope := taxonomy.TenantScope(uuid.New())
	var ids []uuid.UUID
	for i, name := range []string{"One", "Two", "Three"} {
		item, err := repo.Create(ctx, taxonomy.New(
			taxonomy.KindStatus, name, strings.ToLower(name), scope, taxonomy.WithOrder(i),
		))
		require.NoError(t, err)
		ids = append(ids, item.ID())
	}

	entries := []taxonomy.ReorderEntry{
		{ID: ids[0], Order: 2},
		{ID: ids[1], Order: 0},
		{ID: ids[2], Order: 1},
	}
	orders := func() map[uuid.UUID]int {
		out := make(map[uuid.UUID]int)
		for _, id := range ids {
			item, err := repo.GetByID(ctx, taxonomy.KindStatus, id)
			require.NoError(t, err)
			out[id] = item.Order()
		}
		return out
	}

	require.NoError(t, svc.Reorder(ctx, taxonomy.KindStatus, entries))
	first := orders()

	require.NoError(t, svc.Reorder(ctx, taxonomy.KindStatus, entries))
	assert.Equal(t, first, orders())
	assert.Equal(t, 2, first[ids[0]])
	assert.Equal(t, 0, first[ids[1]])
	assert.Equal(t, 1, first[ids[2]])
}

func TestTaxonomyService_MarkDefault(t *testing.T) {
	t.Parallel()

	repo := newInMemoryRepository()
	seedDefaults(t, repo)
	svc := newTaxonomyService(repo, newTestBus())
	ctx := txContext()

	scope := taxonomy.TenantScope(uuid.New())
	old, err := repo.Create(ctx, taxonomy.New(
		taxonomy.KindPriority, "High", "high", scope,
		taxonomy.WithOrder(0), taxonomy.WithDefault(true),
	))
	require.NoError(t, err)
	next, err := repo.Create(ctx, taxonomy.New(
		taxonomy.KindPriority, "Low", "low", scope, taxonomy.WithOrder(1),
	))
	require.NoError(t, err)

	items, err := svc.MarkDefault(ctx, taxonomy.KindPriority, next.ID())
	require.NoError(t, err)
	require.Len(t, items, 2)

	defaultCount := 0
	for _, item := range items {
		if item.IsDefault() {
			defaultCount++
			assert.Equal(t, next.ID(), item.ID())
		}
	}
	assert.Equal(t, 1, defaultCount)

	reloaded, err := repo.GetByID(ctx, taxonomy.KindPriority, old.ID())
	require.NoError(t, err)
	assert.False(t, reloaded.IsDefault())
}

func TestTaxonomyService_MarkDefault_RejectsSystemItems(t *testing.T) {
	t.Parallel()

	repo := newInMemoryRepository()
	seedDefaults(t, repo)
	svc := newTaxonomyService(repo, newTestBus())
	ctx := txContext()

	defaults, err := repo.FindDefaults(ctx, taxonomy.KindIssueType)
	require.NoError(t, err)
	require.NotEmpty(t, defaults)

	_, err = svc.MarkDefault(ctx, taxonomy.KindIssueType, defaults[0].ID())
	assert.ErrorIs(t, err, taxonomy.ErrSystemItem)
}
