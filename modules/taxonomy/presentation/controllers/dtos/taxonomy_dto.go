package dtos

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/everhub/taskmeta/modules/taxonomy/domain/taxonomy"
	"github.com/everhub/taskmeta/pkg/constants"
)

type APIError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Meta    map[string]string `json:"meta,omitempty"`
}

type ScopeFields struct {
	TenantID           string `json:"tenantId" validate:"omitempty,uuid"`
	OrganizationID     string `json:"organizationId" validate:"omitempty,uuid"`
	ProjectID          string `json:"projectId" validate:"omitempty,uuid"`
	OrganizationTeamID string `json:"organizationTeamId" validate:"omitempty,uuid"`
}

func (s ScopeFields) Scope() (taxonomy.Scope, error) {
	return taxonomy.ParseScope(s.TenantID, s.OrganizationID, s.ProjectID, s.OrganizationTeamID)
}

func (s ScopeFields) Empty() bool {
	return s.TenantID == "" && s.OrganizationID == "" && s.ProjectID == "" && s.OrganizationTeamID == ""
}

type CreateTaxonomyItemDTO struct {
	ScopeFields
	Name        string `json:"name" validate:"required"`
	Value       string `json:"value"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Order       int    `json:"order" validate:"gte=0"`
	IsDefault   bool   `json:"isDefault"`
	IsCollapsed bool   `json:"isCollapsed"`
}

func (d *CreateTaxonomyItemDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Value = strings.TrimSpace(d.Value)
	if d.Value == "" {
		d.Value = Slug(d.Name)
	}
}

func (d *CreateTaxonomyItemDTO) Ok() (map[string]string, bool) {
	d.Normalize()
	return validateStruct(d)
}

func (d *CreateTaxonomyItemDTO) ToEntity(kind taxonomy.Kind) (*taxonomy.Item, error) {
	scope, err := d.Scope()
	if err != nil {
		return nil, err
	}
	return taxonomy.New(
		kind,
		d.Name,
		d.Value,
		scope,
		taxonomy.WithDescription(d.Description),
		taxonomy.WithIcon(d.Icon),
		taxonomy.WithColor(d.Color),
		taxonomy.WithOrder(d.Order),
		taxonomy.WithDefault(d.IsDefault),
		taxonomy.WithCollapsed(d.IsCollapsed),
	), nil
}

type UpdateTaxonomyItemDTO struct {
	Name        string `json:"name" validate:"required"`
	Value       string `json:"value"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Order       int    `json:"order" validate:"gte=0"`
	IsDefault   bool   `json:"isDefault"`
	IsCollapsed bool   `json:"isCollapsed"`
}

func (d *UpdateTaxonomyItemDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Value = strings.TrimSpace(d.Value)
	if d.Value == "" {
		d.Value = Slug(d.Name)
	}
}

func (d *UpdateTaxonomyItemDTO) Ok() (map[string]string, bool) {
	d.Normalize()
	return validateStruct(d)
}

func (d *UpdateTaxonomyItemDTO) Apply(item *taxonomy.Item) {
	item.SetName(d.Name)
	item.SetValue(d.Value)
	item.SetDescription(d.Description)
	item.SetIcon(d.Icon)
	item.SetColor(d.Color)
	item.SetOrder(d.Order)
	item.SetDefault(d.IsDefault)
	item.SetCollapsed(d.IsCollapsed)
}

type ReorderEntryDTO struct {
	ID    string `json:"id"`
	Order int    `json:"order" validate:"gte=0"`
}

type ReorderDTO struct {
	Reorder []ReorderEntryDTO `json:"reorder" validate:"required,min=1,dive"`
}

func (d *ReorderDTO) Ok() (map[string]string, bool) {
	return validateStruct(d)
}

type TaxonomyItemResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Value              string    `json:"value"`
	Description        string    `json:"description,omitempty"`
	Icon               string    `json:"icon,omitempty"`
	FullIconURL        string    `json:"fullIconUrl,omitempty"`
	Color              string    `json:"color,omitempty"`
	Order              int       `json:"order"`
	IsDefault          bool      `json:"isDefault"`
	IsSystem           bool      `json:"isSystem"`
	IsCollapsed        bool      `json:"isCollapsed"`
	TenantID           string    `json:"tenantId,omitempty"`
	OrganizationID     string    `json:"organizationId,omitempty"`
	ProjectID          string    `json:"projectId,omitempty"`
	OrganizationTeamID string    `json:"organizationTeamId,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type TaxonomyListResponse struct {
	Items []TaxonomyItemResponse `json:"items"`
	Total int                    `json:"total"`
}

// Slug derives a machine value from a display name: "Ready for Review"
// becomes "ready-for-review".
func Slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

func validateStruct(s any) (map[string]string, bool) {
	errs := constants.Validate.Struct(s)
	if errs == nil {
		return map[string]string{}, true
	}
	out := make(map[string]string)
	for _, err := range errs.(validator.ValidationErrors) {
		out[err.Field()] = err.Error()
	}
	return out, false
}
