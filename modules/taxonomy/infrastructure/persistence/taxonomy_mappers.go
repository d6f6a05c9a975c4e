package persistence

import (
	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/everhub/taskmeta/modules/taxonomy/domain/taxonomy"
	"github.com/everhub/taskmeta/modules/taxonomy/infrastructure/persistence/models"
	"github.com/everhub/taskmeta/pkg/mapping"
)

func toDomainItem(kind taxonomy.Kind, m *models.TaxonomyItem) (*taxonomy.Item, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, errors.Wrap(err, "malformed taxonomy item id")
	}

	scope, err := taxonomy.NewScope(
		mapping.SQLNullStringToUUID(m.TenantID),
		mapping.SQLNullStringToUUID(m.OrganizationID),
		mapping.SQLNullStringToUUID(m.ProjectID),
		mapping.SQLNullStringToUUID(m.OrganizationTeamID),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "inconsistent scope columns on item %s", m.ID)
	}

	return taxonomy.New(
		kind,
		m.Name,
		m.Value,
		scope,
		taxonomy.WithID(id),
		taxonomy.WithDescription(mapping.SQLNullStringToValue(m.Description)),
		taxonomy.WithIcon(mapping.SQLNullStringToValue(m.Icon)),
		taxonomy.WithColor(mapping.SQLNullStringToValue(m.Color)),
		taxonomy.WithOrder(m.SortOrder),
		taxonomy.WithDefault(m.IsDefault),
		taxonomy.WithSystem(m.IsSystem),
		taxonomy.WithCollapsed(m.IsCollapsed),
		taxonomy.WithCreatedAt(m.CreatedAt),
		taxonomy.WithUpdatedAt(m.UpdatedAt),
	), nil
}

func toDBItem(item *taxonomy.Item) *models.TaxonomyItem {
	scope := item.Scope()
	return &models.TaxonomyItem{
		ID:                 item.ID().String(),
		Name:               item.Name(),
		Value:              item.Value(),
		Description:        mapping.ValueToSQLNullString(item.Description()),
		Icon:               mapping.ValueToSQLNullString(item.Icon()),
		Color:              mapping.ValueToSQLNullString(item.Color()),
		SortOrder:          item.Order(),
		IsDefault:          item.IsDefault(),
		IsSystem:           item.IsSystem(),
		IsCollapsed:        item.IsCollapsed(),
		TenantID:           mapping.UUIDToSQLNullString(scope.TenantID()),
		OrganizationID:     mapping.UUIDToSQLNullString(scope.OrganizationID()),
		ProjectID:          mapping.UUIDToSQLNullString(scope.ProjectID()),
		OrganizationTeamID: mapping.UUIDToSQLNullString(scope.TeamID()),
		CreatedAt:          item.CreatedAt(),
		UpdatedAt:          item.UpdatedAt(),
	}
}
