package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/everhub/taskmeta/modules/core/domain/entities/project"
	"github.com/everhub/taskmeta/pkg/composables"
	"github.com/everhub/taskmeta/pkg/eventbus"
)

type ProjectService struct {
	repo      project.Repository
	publisher eventbus.EventBus
}

func NewProjectService(repo project.Repository, publisher eventbus.EventBus) *ProjectService {
	return &ProjectService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *ProjectService) GetByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ProjectService) ListByOrganization(ctx context.Context, organizationID uuid.UUID) ([]*project.Project, error) {
	return s.repo.ListByOrganization(ctx, organizationID)
}

func (s *ProjectService) Create(ctx context.Context, p *project.Project) (*project.Project, error) {
	var created *project.Project
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.repo.Create(txCtx, p)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(project.NewCreatedEvent(created))
	return created, nil
}

func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	return composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, id)
	})
}
