package seed

import (
	"context"

	"github.com/everhub/taskmeta/modules/taxonomy/domain/taxonomy"
	"github.com/everhub/taskmeta/modules/taxonomy/infrastructure/persistence"
	"github.com/everhub/taskmeta/pkg/application"
	"github.com/everhub/taskmeta/pkg/composables"
)

// SeedDefaultTaxonomies inserts the built-in global system set for every kind
// that has none yet. Safe to run on every startup.
func SeedDefaultTaxonomies(ctx context.Context, app application.Application) error {
	repo := persistence.NewTaxonomyRepository()
	logger := app.Logger()

	return composables.InTx(ctx, func(txCtx context.Context) error {
		for _, kind := range taxonomy.Kinds() {
			existing, err := repo.FindDefaults(txCtx, kind)
			if err != nil {
				return err
			}
			if len(existing) > 0 {
				continue
			}
			items := DefaultItems(kind)
			for _, item := range items {
				if _, err := repo.Create(txCtx, item); err != nil {
					return err
				}
			}
			logger.WithField("kind", kind).WithField("count", len(items)).Info("seeded default taxonomy set")
		}
		return nil
	})
}
