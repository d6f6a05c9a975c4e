package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/everhub/taskmeta/modules/core/domain/entities/project"
	"github.com/everhub/taskmeta/modules/core/infrastructure/persistence/models"
	"github.com/everhub/taskmeta/pkg/composables"
)

const projectFindQuery = `SELECT id, tenant_id, organization_id, name, created_at, updated_at FROM organization_projects`

type ProjectRepository struct{}

func NewProjectRepository() project.Repository {
	return &ProjectRepository{}
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	query := projectFindQuery + " WHERE id = $1"
	projects, err := r.queryProjects(ctx, query, id.String())
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, project.ErrNotFound
	}
	return projects[0], nil
}

func (r *ProjectRepository) ListByOrganization(ctx context.Context, organizationID uuid.UUID) ([]*project.Project, error) {
	query := projectFindQuery + " WHERE organization_id = $1 ORDER BY created_at ASC"
	return r.queryProjects(ctx, query, organizationID.String())
}

func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) (*project.Project, error) {
	query := `
		INSERT INTO organization_projects (id, tenant_id, organization_id, name, created_at, updated_at)
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
		p.ID().String(),
		p.TenantID().String(),
		p.OrganizationID().String(),
		p.Name(),
		p.CreatedAt(),
		p.UpdatedAt(),
	).Scan(&idStr); err != nil {
		return nil, errors.Wrap(err, "failed to insert project")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `DELETE FROM organization_projects WHERE id = $1`, id.String())
	return err
}

func (r *ProjectRepository) queryProjects(ctx context.Context, query string, args ...any) ([]*project.Project, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var projects []*project.Project
	for rows.Next() {
		var m models.Project
		if err := rows.Scan(&m.ID, &m.TenantID, &m.OrganizationID, &m.Name, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, errors.Wrap(err, "failed to scan project row")
		}
		p, err := toDomainProject(&m)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}

	return projects, nil
}
