package persistence

import (
	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/everhub/taskmeta/modules/core/domain/entities/organization"
	"github.com/everhub/taskmeta/modules/core/domain/entities/project"
	"github.com/everhub/taskmeta/modules/core/domain/entities/team"
	"github.com/everhub/taskmeta/modules/core/domain/entities/tenant"
	"github.com/everhub/taskmeta/modules/core/infrastructure/persistence/models"
	"github.com/everhub/taskmeta/pkg/mapping"
)

func toDomainTenant(m *models.Tenant) (*tenant.Tenant, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, errors.Wrap(err, "malformed tenant id")
	}
	return tenant.New(
		m.Name,
		tenant.WithID(id),
		tenant.WithDomain(mapping.SQLNullStringToValue(m.Domain)),
		tenant.WithIsActive(m.IsActive),
		tenant.WithCreatedAt(m.CreatedAt),
		tenant.WithUpdatedAt(m.UpdatedAt),
	), nil
}

func toDomainOrganization(m *models.Organization) (*organization.Organization, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, errors.Wrap(err, "malformed organization id")
	}
	tenantID, err := uuid.Parse(m.TenantID)
	if err != nil {
		return nil, errors.Wrap(err, "malformed organization tenant id")
	}
	return organization.New(
		tenantID,
		m.Name,
		organization.WithID(id),
		organization.WithCreatedAt(m.CreatedAt),
		organization.WithUpdatedAt(m.UpdatedAt),
	), nil
}

func toDomainProject(m *models.Project) (*project.Project, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, errors.Wrap(err, "malformed project id")
	}
	tenantID, err := uuid.Parse(m.TenantID)
	if err != nil {
		return nil, errors.Wrap(err, "malformed project tenant id")
	}
	organizationID, err := uuid.Parse(m.OrganizationID)
	if err != nil {
		return nil, errors.Wrap(err, "malformed project organization id")
	}
	return project.New(
		tenantID,
		organizationID,
		m.Name,
		project.WithID(id),
		project.WithCreatedAt(m.CreatedAt),
		project.WithUpdatedAt(m.UpdatedAt),
	), nil
}

func toDomainTeam(m *models.Team) (*team.Team, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, errors.Wrap(err, "malformed team id")
	}
	tenantID, err := uuid.Parse(m.TenantID)
	if err != nil {
		return nil, errors.Wrap(err, "malformed team tenant id")
	}
	organizationID, err := uuid.Parse(m.OrganizationID)
	if err != nil {
		return nil, errors.Wrap(err, "malformed team organization id")
	}
	return team.New(
		tenantID,
		organizationID,
		m.Name,
		team.WithID(id),
		team.WithCreatedAt(m.CreatedAt),
		team.WithUpdatedAt(m.UpdatedAt),
	), nil
}
