package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/everhub/taskmeta/modules/core/domain/entities/team"
	"github.com/everhub/taskmeta/modules/core/infrastructure/persistence/models"
	"github.com/everhub/taskmeta/pkg/composables"
)

const teamFindQuery = `SELECT id, tenant_id, organization_id, name, created_at, updated_at FROM organization_teams`

type TeamRepository struct{}

func NewTeamRepository() team.Repository {
	return &TeamRepository{}
}

func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*team.Team, error) {
	query := teamFindQuery + " WHERE id = $1"
	teams, err := r.queryTeams(ctx, query, id.String())
	if err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return nil, team.ErrNotFound
	}
	return teams[0], nil
}

func (r *TeamRepository) ListByOrganization(ctx context.Context, organizationID uuid.UUID) ([]*team.Team, error) {
	query := teamFindQuery + " WHERE organization_id = $1 ORDER BY created_at ASC"
	return r.queryTeams(ctx, query, organizationID.String())
}

func (r *TeamRepository) Create(ctx context.Context, t *team.Team) (*team.Team, error) {
	query := `
		INSERT INTO organization_teams (id, tenant_id, organization_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	var idStr string
	if err := tx.QueryRow(
		ctx,
		query,
		t.ID().String(),
		t.TenantID().String(),
		t.OrganizationID().String(),
		t.Name(),
		t.CreatedAt(),
		t.UpdatedAt(),
	).Scan(&idStr); err != nil {
		return nil, errors.Wrap(err, "failed to insert team")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *TeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `DELETE FROM organization_teams WHERE id = $1`, id.String())
	return err
}

func (r *TeamRepository) queryTeams(ctx context.Context, query string, args ...any) ([]*team.Team, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var teams []*team.Team
	for rows.Next() {
		var m models.Team
		if err := rows.Scan(&m.ID, &m.TenantID, &m.OrganizationID, &m.Name, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, errors.Wrap(err, "failed to scan team row")
		}
		t, err := toDomainTeam(&m)
		if err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}

	return teams, nil
}
