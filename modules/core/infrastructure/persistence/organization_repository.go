package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/everhub/taskmeta/modules/core/domain/entities/organization"
	"github.com/everhub/taskmeta/modules/core/infrastructure/persistence/models"
	"github.com/everhub/taskmeta/pkg/composables"
)

const organizationFindQuery = `SELECT id, tenant_id, name, created_at, updated_at FROM organizations`

type OrganizationRepository struct{}

func NewOrganizationRepository() organization.Repository {
	return &OrganizationRepository{}
}

func (r *OrganizationRepository) GetByID(ctx context.Context, id uuid.UUID) (*organization.Organization, error) {
	query := organizationFindQuery + " WHERE id = $1"
	orgs, err := r.queryOrganizations(ctx, query, id.String())
	if err != nil {
		return nil, err
	}
	if len(orgs) == 0 {
		return nil, organization.ErrNotFound
	}
	return orgs[0], nil
}

func (r *OrganizationRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*organization.Organization, error) {
	query := organizationFindQuery + " WHERE tenant_id = $1 ORDER BY created_at ASC"
	return r.queryOrganizations(ctx, query, tenantID.String())
}

func (r *OrganizationRepository) Create(ctx context.Context, o *organization.Organization) (*organization.Organization, error) {
	query := `
		INSERT INTO organizations (id, tenant_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
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
		o.ID().String(),
		o.TenantID().String(),
		o.Name(),
		o.CreatedAt(),
		o.UpdatedAt(),
	).Scan(&idStr); err != nil {
		return nil, errors.Wrap(err, "failed to insert organization")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *OrganizationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `DELETE FROM organizations WHERE id = $1`, id.String())
	return err
}

func (r *OrganizationRepository) queryOrganizations(ctx context.Context, query string, args ...any) ([]*organization.Organization, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var orgs []*organization.Organization
	for rows.Next() {
		var m models.Organization
		if err := rows.Scan(&m.ID, &m.TenantID, &m.Name, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, errors.Wrap(err, "failed to scan organization row")
		}
		o, err := toDomainOrganization(&m)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, o)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}

	return orgs, nil
}
