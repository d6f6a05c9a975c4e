package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/everhub/taskmeta/modules/core/domain/entities/team"
	"github.com/everhub/taskmeta/pkg/composables"
	"github.com/everhub/taskmeta/pkg/eventbus"
)

type TeamService struct {
	repo      team.Repository
	publisher eventbus.EventBus
}

func NewTeamService(repo team.Repository, publisher eventbus.EventBus) *TeamService {
	return &TeamService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *TeamService) GetByID(ctx context.Context, id uuid.UUID) (*team.Team, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TeamService) ListByOrganization(ctx context.Context, organizationID uuid.UUID) ([]*team.Team, error) {
	return s.repo.ListByOrganization(ctx, organizationID)
}

func (s *TeamService) Create(ctx context.Context, t *team.Team) (*team.Team, error) {
	var created *team.Team
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.repo.Create(txCtx, t)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(team.NewCreatedEvent(created))
	return created, nil
}

func (s *TeamService) Delete(ctx context.Context, id uuid.UUID) error {
	return composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, id)
	})
}
