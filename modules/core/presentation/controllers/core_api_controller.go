package controllers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/everhub/taskmeta/modules/core/domain/entities/organization"
	"github.com/everhub/taskmeta/modules/core/domain/entities/project"
	"github.com/everhub/taskmeta/modules/core/domain/entities/team"
	"github.com/everhub/taskmeta/modules/core/domain/entities/tenant"
	"github.com/everhub/taskmeta/modules/core/services"
	"github.com/everhub/taskmeta/pkg/application"
)

// CoreAPIController manages the scope hierarchy itself: tenants,
// organizations, projects and teams. Creating any of them triggers taxonomy
// provisioning through the event bus.
type CoreAPIController struct {
	app           application.Application
	tenants       *services.TenantService
	organizations *services.OrganizationService
	projects      *services.ProjectService
	teams         *services.TeamService
	basePath      string
}

func NewCoreAPIController(app application.Application) application.Controller {
	return &CoreAPIController{
		app:           app,
		tenants:       app.Service(services.TenantService{}).(*services.TenantService),
		organizations: app.Service(services.OrganizationService{}).(*services.OrganizationService),
		projects:      app.Service(services.ProjectService{}).(*services.ProjectService),
		teams:         app.Service(services.TeamService{}).(*services.TeamService),
		basePath:      "/core",
	}
}

func (c *CoreAPIController) Key() string {
	return c.basePath
}

func (c *CoreAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("/tenants", c.ListTenants).Methods(http.MethodGet)
	router.HandleFunc("/tenants", c.CreateTenant).Methods(http.MethodPost)
	router.HandleFunc("/organizations", c.ListOrganizations).Methods(http.MethodGet)
	router.HandleFunc("/organizations", c.CreateOrganization).Methods(http.MethodPost)
	router.HandleFunc("/projects", c.ListProjects).Methods(http.MethodGet)
	router.HandleFunc("/projects", c.CreateProject).Methods(http.MethodPost)
	router.HandleFunc("/teams", c.ListTeams).Methods(http.MethodGet)
	router.HandleFunc("/teams", c.CreateTeam).Methods(http.MethodPost)
}

type createTenantDTO struct {
	Name string `json:"name"`
}

type createScopedDTO struct {
	Name           string `json:"name"`
	TenantID       string `json:"tenantId"`
	OrganizationID string `json:"organizationId"`
}

type scopeResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	TenantID       string    `json:"tenantId,omitempty"`
	OrganizationID string    `json:"organizationId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (c *CoreAPIController) ListTenants(w http.ResponseWriter, r *http.Request) {
	tenants, err := c.tenants.List(r.Context())
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "CORE_INTERNAL", "internal error")
		return
	}
	out := make([]scopeResponse, 0, len(tenants))
	for _, t := range tenants {
		out = append(out, scopeResponse{
			ID:        t.ID().String(),
			Name:      t.Name(),
			CreatedAt: t.CreatedAt(),
			UpdatedAt: t.UpdatedAt(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out, "total": len(out)})
}

func (c *CoreAPIController) CreateTenant(w http.ResponseWriter, r *http.Request) {
	var dto createTenantDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CORE_INVALID_JSON", "invalid json")
		return
	}
	dto.Name = strings.TrimSpace(dto.Name)
	if dto.Name == "" {
		writeAPIError(w, r, http.StatusUnprocessableEntity, "CORE_VALIDATION_FAILED", "name is required")
		return
	}

	created, err := c.tenants.Create(r.Context(), tenant.New(dto.Name))
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "CORE_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, scopeResponse{
		ID:        created.ID().String(),
		Name:      created.Name(),
		CreatedAt: created.CreatedAt(),
		UpdatedAt: created.UpdatedAt(),
	})
}

func (c *CoreAPIController) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := c.queryID(w, r, "tenantId")
	if !ok {
		return
	}
	orgs, err := c.organizations.ListByTenant(r.Context(), tenantID)
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "CORE_INTERNAL", "internal error")
		return
	}
	out := make([]scopeResponse, 0, len(orgs))
	for _, o := range orgs {
		out = append(out, scopeResponse{
			ID:        o.ID().String(),
			Name:      o.Name(),
			TenantID:  o.TenantID().String(),
			CreatedAt: o.CreatedAt(),
			UpdatedAt: o.UpdatedAt(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out, "total": len(out)})
}

func (c *CoreAPIController) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	dto, ok := c.decodeScoped(w, r, false)
	if !ok {
		return
	}
	tenantID, err := uuid.Parse(dto.TenantID)
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CORE_INVALID_ID", "malformed tenant id")
		return
	}

	if _, err := c.tenants.GetByID(r.Context(), tenantID); err != nil {
		c.writeLookupError(w, r, err, tenant.ErrNotFound, "tenant not found")
		return
	}

	created, err := c.organizations.Create(r.Context(), organization.New(tenantID, dto.Name))
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "CORE_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, scopeResponse{
		ID:        created.ID().String(),
		Name:      created.Name(),
		TenantID:  created.TenantID().String(),
		CreatedAt: created.CreatedAt(),
		UpdatedAt: created.UpdatedAt(),
	})
}

func (c *CoreAPIController) ListProjects(w http.ResponseWriter, r *http.Request) {
	organizationID, ok := c.queryID(w, r, "organizationId")
	if !ok {
		return
	}
	projects, err := c.projects.ListByOrganization(r.Context(), organizationID)
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "CORE_INTERNAL", "internal error")
		return
	}
	out := make([]scopeResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, scopeResponse{
			ID:             p.ID().String(),
			Name:           p.Name(),
			TenantID:       p.TenantID().String(),
			OrganizationID: p.OrganizationID().String(),
			CreatedAt:      p.CreatedAt(),
			UpdatedAt:      p.UpdatedAt(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out, "total": len(out)})
}

func (c *CoreAPIController) CreateProject(w http.ResponseWriter, r *http.Request) {
	dto, ok := c.decodeScoped(w, r, true)
	if !ok {
		return
	}
	organizationID, err := uuid.Parse(dto.OrganizationID)
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CORE_INVALID_ID", "malformed organization id")
		return
	}

	org, err := c.organizations.GetByID(r.Context(), organizationID)
	if err != nil {
		c.writeLookupError(w, r, err, organization.ErrNotFound, "organization not found")
		return
	}

	created, err := c.projects.Create(r.Context(), project.New(org.TenantID(), org.ID(), dto.Name))
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "CORE_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, scopeResponse{
		ID:             created.ID().String(),
		Name:           created.Name(),
		TenantID:       created.TenantID().String(),
		OrganizationID: created.OrganizationID().String(),
		CreatedAt:      created.CreatedAt(),
		UpdatedAt:      created.UpdatedAt(),
	})
}

func (c *CoreAPIController) ListTeams(w http.ResponseWriter, r *http.Request) {
	organizationID, ok := c.queryID(w, r, "organizationId")
	if !ok {
		return
	}
	teams, err := c.teams.ListByOrganization(r.Context(), organizationID)
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "CORE_INTERNAL", "internal error")
		return
	}
	out := make([]scopeResponse, 0, len(teams))
	for _, t := range teams {
		out = append(out, scopeResponse{
			ID:             t.ID().String(),
			Name:           t.Name(),
			TenantID:       t.TenantID().String(),
			OrganizationID: t.OrganizationID().String(),
			CreatedAt:      t.CreatedAt(),
			UpdatedAt:      t.UpdatedAt(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out, "total": len(out)})
}

func (c *CoreAPIController) CreateTeam(w http.ResponseWriter, r *http.Request) {
	dto, ok := c.decodeScoped(w, r, true)
	if !ok {
		return
	}
	organizationID, err := uuid.Parse(dto.OrganizationID)
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CORE_INVALID_ID", "malformed organization id")
		return
	}

	org, err := c.organizations.GetByID(r.Context(), organizationID)
	if err != nil {
		c.writeLookupError(w, r, err, organization.ErrNotFound, "organization not found")
		return
	}

	created, err := c.teams.Create(r.Context(), team.New(org.TenantID(), org.ID(), dto.Name))
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "CORE_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, scopeResponse{
		ID:             created.ID().String(),
		Name:           created.Name(),
		TenantID:       created.TenantID().String(),
		OrganizationID: created.OrganizationID().String(),
		CreatedAt:      created.CreatedAt(),
		UpdatedAt:      created.UpdatedAt(),
	})
}

func (c *CoreAPIController) decodeScoped(w http.ResponseWriter, r *http.Request, wantOrganization bool) (createScopedDTO, bool) {
	var dto createScopedDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CORE_INVALID_JSON", "invalid json")
		return dto, false
	}
	dto.Name = strings.TrimSpace(dto.Name)
	if dto.Name == "" {
		writeAPIError(w, r, http.StatusUnprocessableEntity, "CORE_VALIDATION_FAILED", "name is required")
		return dto, false
	}
	if wantOrganization && strings.TrimSpace(dto.OrganizationID) == "" {
		writeAPIError(w, r, http.StatusUnprocessableEntity, "CORE_VALIDATION_FAILED", "organizationId is required")
		return dto, false
	}
	if !wantOrganization && strings.TrimSpace(dto.TenantID) == "" {
		writeAPIError(w, r, http.StatusUnprocessableEntity, "CORE_VALIDATION_FAILED", "tenantId is required")
		return dto, false
	}
	return dto, true
}

func (c *CoreAPIController) queryID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.URL.Query().Get(param))
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "CORE_INVALID_ID", "malformed "+param)
		return uuid.Nil, false
	}
	return id, true
}

func (c *CoreAPIController) writeLookupError(w http.ResponseWriter, r *http.Request, err, notFound error, message string) {
	if errors.Is(err, notFound) {
		writeAPIError(w, r, http.StatusNotFound, "CORE_NOT_FOUND", message)
		return
	}
	writeAPIError(w, r, http.StatusInternalServerError, "CORE_INTERNAL", "internal error")
}
