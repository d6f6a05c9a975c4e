package services

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/everhub/taskmeta/modules/taxonomy/domain/taxonomy"
	"github.com/everhub/taskmeta/modules/taxonomy/seed"
	"github.com/everhub/taskmeta/pkg/composables"
	"github.com/everhub/taskmeta/pkg/eventbus"
)

var ErrScopeAlreadyProvisioned = errors.New("scope already has taxonomy items")

// ProvisioningService copies taxonomy sets down the scope hierarchy when a
// tenant, organization, project or team comes into existence. Each copy is a
// fresh set of non-system rows owned by the new scope.
type ProvisioningService struct {
	repo      taxonomy.Repository
	publisher eventbus.EventBus
}

func NewProvisioningService(repo taxonomy.Repository, publisher eventbus.EventBus) *ProvisioningService {
	return &ProvisioningService{
		repo:      repo,
		publisher: publisher,
	}
}

// ProvisionForTenant seeds the tenant scope of every kind from the built-in
// template set. It never reads existing rows, so it works before the global
// defaults are seeded.
func (s *ProvisioningService) ProvisionForTenant(ctx context.Context, tenantID uuid.UUID) ([]*taxonomy.Item, error) {
	target := taxonomy.TenantScope(tenantID)
	return s.provision(ctx, target, taxonomy.Kinds(), func(_ context.Context, kind taxonomy.Kind) ([]*taxonomy.Item, error) {
		return seed.DefaultItems(kind), nil
	})
}

// ProvisionForOrganization copies the tenant's resolved set of every kind
// into the organization scope.
func (s *ProvisioningService) ProvisionForOrganization(ctx context.Context, tenantID, organizationID uuid.UUID) ([]*taxonomy.Item, error) {
	target := taxonomy.OrganizationScope(tenantID, organizationID)
	source := taxonomy.TenantScope(tenantID)
	return s.provision(ctx, target, taxonomy.Kinds(), func(txCtx context.Context, kind taxonomy.Kind) ([]*taxonomy.Item, error) {
		return s.resolve(txCtx, kind, source)
	})
}

// ProvisionForProject copies the organization's resolved set into the project
// scope, skipping kinds that do not reach project level.
func (s *ProvisioningService) ProvisionForProject(ctx context.Context, tenantID, organizationID, projectID uuid.UUID) ([]*taxonomy.Item, error) {
	target := taxonomy.ProjectScope(tenantID, organizationID, projectID)
	source := taxonomy.OrganizationScope(tenantID, organizationID)

	kinds := make([]taxonomy.Kind, 0, len(taxonomy.Kinds()))
	for _, kind := range taxonomy.Kinds() {
		if kind.SupportsProject() {
			kinds = append(kinds, kind)
		}
	}
	return s.provision(ctx, target, kinds, func(txCtx context.Context, kind taxonomy.Kind) ([]*taxonomy.Item, error) {
		return s.resolve(txCtx, kind, source)
	})
}

// ProvisionForTeam copies the organization's resolved set into the team
// scope, skipping kinds that do not reach team level.
func (s *ProvisioningService) ProvisionForTeam(ctx context.Context, tenantID, organizationID, teamID uuid.UUID) ([]*taxonomy.Item, error) {
	target := taxonomy.TeamScope(tenantID, organizationID, teamID)
	source := taxonomy.OrganizationScope(tenantID, organizationID)

	kinds := make([]taxonomy.Kind, 0, len(taxonomy.Kinds()))
	for _, kind := range taxonomy.Kinds() {
		if kind.SupportsTeam() {
			kinds = append(kinds, kind)
		}
	}
	return s.provision(ctx, target, kinds, func(txCtx context.Context, kind taxonomy.Kind) ([]*taxonomy.Item, error) {
		return s.resolve(txCtx, kind, source)
	})
}

// provision copies the source set of each kind into the target scope inside
// one transaction. A target scope that already holds rows of any kind is
// rejected, so retried creation events cannot double the set.
func (s *ProvisioningService) provision(
	ctx context.Context,
	target taxonomy.Scope,
	kinds []taxonomy.Kind,
	source func(ctx context.Context, kind taxonomy.Kind) ([]*taxonomy.Item, error),
) ([]*taxonomy.Item, error) {
	var provisioned []*taxonomy.Item
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		for _, kind := range kinds {
			count, err := s.repo.CountByScope(txCtx, kind, target)
			if err != nil {
				return err
			}
			if count > 0 {
				return errors.Wrapf(ErrScopeAlreadyProvisioned, "scope %s", target)
			}
		}

		for _, kind := range kinds {
			items, err := source(txCtx, kind)
			if err != nil {
				return err
			}
			for _, item := range items {
				created, err := s.repo.Create(txCtx, item.CopyTo(target))
				if err != nil {
					return err
				}
				provisioned = append(provisioned, created)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(taxonomy.NewScopeProvisionedEvent(target, provisioned))
	return provisioned, nil
}

// resolve mirrors read-side resolution inside the provisioning transaction:
// the exact source scope, or the universal defaults when it is empty.
func (s *ProvisioningService) resolve(ctx context.Context, kind taxonomy.Kind, source taxonomy.Scope) ([]*taxonomy.Item, error) {
	items, err := s.repo.FindByScope(ctx, kind, source)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return s.repo.FindDefaults(ctx, kind)
	}
	return items, nil
}
