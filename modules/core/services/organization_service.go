package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/everhub/taskmeta/modules/core/domain/entities/organization"
	"github.com/everhub/taskmeta/pkg/composables"
	"github.com/everhub/taskmeta/pkg/eventbus"
)

type OrganizationService struct {
	repo      organization.Repository
	publisher eventbus.EventBus
}

func NewOrganizationService(repo organization.Repository, publisher eventbus.EventBus) *OrganizationService {
	return &OrganizationService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *OrganizationService) GetByID(ctx context.Context, id uuid.UUID) (*organization.Organization, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *OrganizationService) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*organization.Organization, error) {
	return s.repo.ListByTenant(ctx, tenantID)
}

func (s *OrganizationService) Create(ctx context.Context, o *organization.Organization) (*organization.Organization, error) {
	var created *organization.Organization
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.repo.Create(txCtx, o)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(organization.NewCreatedEvent(created))
	return created, nil
}

func (s *OrganizationService) Delete(ctx context.Context, id uuid.UUID) error {
	return composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, id)
	})
}
