package mappers

import (
	"github.com/google/uuid"

	"github.com/everhub/taskmeta/modules/taxonomy/domain/taxonomy"
	"github.com/everhub/taskmeta/modules/taxonomy/presentation/controllers/dtos"
)

func ItemToResponse(item *taxonomy.Item) dtos.TaxonomyItemResponse {
	scope := item.Scope()
	return dtos.TaxonomyItemResponse{
		ID:                 item.ID().String(),
		Name:               item.Name(),
		Value:              item.Value(),
		Description:        item.Description(),
		Icon:               item.Icon(),
		FullIconURL:        item.FullIconURL(),
		Color:              item.Color(),
		Order:              item.Order(),
		IsDefault:          item.IsDefault(),
		IsSystem:           item.IsSystem(),
		IsCollapsed:        item.IsCollapsed(),
		TenantID:           uuidString(scope.TenantID()),
		OrganizationID:     uuidString(scope.OrganizationID()),
		ProjectID:          uuidString(scope.ProjectID()),
		OrganizationTeamID: uuidString(scope.TeamID()),
		CreatedAt:          item.CreatedAt(),
		UpdatedAt:          item.UpdatedAt(),
	}
}

func ItemsToResponse(items []*taxonomy.Item) []dtos.TaxonomyItemResponse {
	out := make([]dtos.TaxonomyItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ItemToResponse(item))
	}
	return out
}

func uuidString(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}
