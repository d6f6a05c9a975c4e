package services_test

import (
	"context"
	"sort"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/everhub/taskmeta/modules/taxonomy/domain/taxonomy"
	"github.com/everhub/taskmeta/pkg/composables"
)

// stubTx satisfies pgx.Tx without a live database; the in-memory repository
// never touches it.
type stubTx struct {
	pgx.Tx
}

func txContext() context.Context {
	return composables.WithTx(context.Background(), stubTx{})
}

var errStoreUnavailable = errors.New("store unavailable")

// inMemoryRepository is a map-backed taxonomy.Repository used to test service
// behavior without Postgres. failFinds simulates a broken store on reads.
type inMemoryRepository struct {
	items     map[taxonomy.Kind]map[uuid.UUID]*taxonomy.Item
	failFinds bool
}

func newInMemoryRepository() *inMemoryRepository {
	return &inMemoryRepository{
		items: make(map[taxonomy.Kind]map[uuid.UUID]*taxonomy.Item),
	}
}

func (r *inMemoryRepository) GetByID(_ context.Context, kind taxonomy.Kind, id uuid.UUID) (*taxonomy.Item, error) {
	item, ok := r.items[kind][id]
	if !ok {
		return nil, taxonomy.ErrItemNotFound
	}
	return item, nil
}

func (r *inMemoryRepository) FindByScope(_ context.Context, kind taxonomy.Kind, scope taxonomy.Scope) ([]*taxonomy.Item, error) {
	if r.failFinds {
		return nil, errStoreUnavailable
	}
	var out []*taxonomy.Item
	for _, item := range r.items[kind] {
		if item.Scope().Equal(scope) {
			out = append(out, item)
		}
	}
	sortItems(out)
	return out, nil
}

func (r *inMemoryRepository) FindDefaults(_ context.Context, kind taxonomy.Kind) ([]*taxonomy.Item, error) {
	var out []*taxonomy.Item
	for _, item := range r.items[kind] {
		if item.IsSystem() && item.Scope().IsGlobal() {
			out = append(out, item)
		}
	}
	sortItems(out)
	return out, nil
}

func (r *inMemoryRepository) CountByScope(_ context.Context, kind taxonomy.Kind, scope taxonomy.Scope) (int64, error) {
	var count int64
	for _, item := range r.items[kind] {
		if item.Scope().Equal(scope) {
			count++
		}
	}
	return count, nil
}

func (r *inMemoryRepository) Create(_ context.Context, item *taxonomy.Item) (*taxonomy.Item, error) {
	kind := item.Kind()
	if r.items[kind] == nil {
		r.items[kind] = make(map[uuid.UUID]*taxonomy.Item)
	}
	r.items[kind][item.ID()] = item
	return item, nil
}

func (r *inMemoryRepository) Update(_ context.Context, item *taxonomy.Item) (*taxonomy.Item, error) {
	if _, ok := r.items[item.Kind()][item.ID()]; !ok {
		return nil, taxonomy.ErrItemNotFound
	}
	r.items[item.Kind()][item.ID()] = item
	return item, nil
}

func (r *inMemoryRepository) Delete(_ context.Context, kind taxonomy.Kind, id uuid.UUID) error {
	item, ok := r.items[kind][id]
	if !ok || item.IsSystem() {
		return nil
	}
	delete(r.items[kind], id)
	return nil
}

func (r *inMemoryRepository) UpdateOrder(_ context.Context, kind taxonomy.Kind, id uuid.UUID, order int) error {
	item, ok := r.items[kind][id]
	if !ok || item.IsSystem() {
		return nil
	}
	item.SetOrder(order)
	return nil
}

func (r *inMemoryRepository) ClearDefaults(_ context.Context, kind taxonomy.Kind, scope taxonomy.Scope) error {
	for _, item := range r.items[kind] {
		if item.Scope().Equal(scope) && item.IsDefault() {
			item.SetDefault(false)
		}
	}
	return nil
}

func sortItems(items []*taxonomy.Item) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Order() != items[j].Order() {
			return items[i].Order() < items[j].Order()
		}
		return items[i].CreatedAt().Before(items[j].CreatedAt())
	})
}
