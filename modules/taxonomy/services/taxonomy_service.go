package services

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/everhub/taskmeta/modules/taxonomy/domain/taxonomy"
	"github.com/everhub/taskmeta/pkg/assets"
	"github.com/everhub/taskmeta/pkg/composables"
	"github.com/everhub/taskmeta/pkg/eventbus"
)

// TaxonomyService resolves and mutates taxonomy sets. Reads degrade to the
// universal default set when the store misbehaves; writes fail hard.
type TaxonomyService struct {
	repo      taxonomy.Repository
	publisher eventbus.EventBus
	icons     assets.URLResolver
}

func NewTaxonomyService(repo taxonomy.Repository, publisher eventbus.EventBus, icons assets.URLResolver) *TaxonomyService {
	return &TaxonomyService{
		repo:      repo,
		publisher: publisher,
		icons:     icons,
	}
}

// List returns the taxonomy set for the exact scope, falling back to the
// universal defaults when the scope has no rows of its own. A failed scope
// lookup also falls back, so a broken tenant never loses its board columns.
func (s *TaxonomyService) List(ctx context.Context, kind taxonomy.Kind, scope taxonomy.Scope) ([]*taxonomy.Item, error) {
	items, err := s.repo.FindByScope(ctx, kind, scope)
	if err != nil {
		composables.UseLogger(ctx).
			WithError(err).
			WithField("kind", kind).
			WithField("scope", scope.String()).
			Warn("taxonomy lookup failed, serving defaults")
		return s.listDefaults(ctx, kind)
	}
	if len(items) == 0 {
		return s.listDefaults(ctx, kind)
	}
	s.enrichIcons(items)
	return items, nil
}

func (s *TaxonomyService) listDefaults(ctx context.Context, kind taxonomy.Kind) ([]*taxonomy.Item, error) {
	items, err := s.repo.FindDefaults(ctx, kind)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load default taxonomy set")
	}
	s.enrichIcons(items)
	return items, nil
}

func (s *TaxonomyService) GetByID(ctx context.Context, kind taxonomy.Kind, id uuid.UUID) (*taxonomy.Item, error) {
	item, err := s.repo.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	s.enrichIcons([]*taxonomy.Item{item})
	return item, nil
}

func (s *TaxonomyService) Create(ctx context.Context, item *taxonomy.Item) (*taxonomy.Item, error) {
	var created *taxonomy.Item
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.repo.Create(txCtx, item)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(taxonomy.NewCreatedEvent(created))
	s.enrichIcons([]*taxonomy.Item{created})
	return created, nil
}

func (s *TaxonomyService) Update(ctx context.Context, item *taxonomy.Item) (*taxonomy.Item, error) {
	if item.IsSystem() {
		return nil, taxonomy.ErrSystemItem
	}
	var updated *taxonomy.Item
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.repo.Update(txCtx, item)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(taxonomy.NewUpdatedEvent(updated))
	s.enrichIcons([]*taxonomy.Item{updated})
	return updated, nil
}

func (s *TaxonomyService) Delete(ctx context.Context, kind taxonomy.Kind, id uuid.UUID) error {
	item, err := s.repo.GetByID(ctx, kind, id)
	if err != nil {
		return err
	}
	if item.IsSystem() {
		return taxonomy.ErrSystemItem
	}
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, kind, id)
	})
	if err != nil {
		return err
	}
	s.publisher.Publish(taxonomy.NewDeletedEvent(item))
	return nil
}

// Reorder applies the given display positions in one transaction. Entries
// with a nil id are skipped rather than failing the batch; system rows are
// left untouched by the store.
func (s *TaxonomyService) Reorder(ctx context.Context, kind taxonomy.Kind, entries []taxonomy.ReorderEntry) error {
	return composables.InTx(ctx, func(txCtx context.Context) error {
		for _, entry := range entries {
			if entry.ID == uuid.Nil {
				continue
			}
			if err := s.repo.UpdateOrder(txCtx, kind, entry.ID, entry.Order); err != nil {
				return err
			}
		}
		return nil
	})
}

// MarkDefault makes the item the single default of its scope and returns the
// scope's resolved set afterwards.
func (s *TaxonomyService) MarkDefault(ctx context.Context, kind taxonomy.Kind, id uuid.UUID) ([]*taxonomy.Item, error) {
	var scope taxonomy.Scope
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		item, err := s.repo.GetByID(txCtx, kind, id)
		if err != nil {
			return err
		}
		if item.IsSystem() {
			return taxonomy.ErrSystemItem
		}
		scope = item.Scope()
		if err := s.repo.ClearDefaults(txCtx, kind, scope); err != nil {
			return err
		}
		item.SetDefault(true)
		_, err = s.repo.Update(txCtx, item)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.List(ctx, kind, scope)
}

func (s *TaxonomyService) enrichIcons(items []*taxonomy.Item) {
	if s.icons == nil {
		return
	}
	for _, item := range items {
		if item.Icon() == "" {
			continue
		}
		item.SetFullIconURL(s.icons.URL(item.Icon()))
	}
}
