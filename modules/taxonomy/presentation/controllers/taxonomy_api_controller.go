package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/everhub/taskmeta/modules/taxonomy/domain/taxonomy"
	"github.com/everhub/taskmeta/modules/taxonomy/presentation/controllers/dtos"
	"github.com/everhub/taskmeta/modules/taxonomy/presentation/mappers"
	"github.com/everhub/taskmeta/modules/taxonomy/services"
	"github.com/everhub/taskmeta/pkg/application"
)

// TaxonomyAPIController serves one taxonomy kind under its own base path.
// All five kinds share the same route shape and behavior.
type TaxonomyAPIController struct {
	app      application.Application
	service  *services.TaxonomyService
	kind     taxonomy.Kind
	basePath string
}

func newTaxonomyAPIController(app application.Application, kind taxonomy.Kind, basePath string) application.Controller {
	return &TaxonomyAPIController{
		app:      app,
		service:  app.Service(services.TaxonomyService{}).(*services.TaxonomyService),
		kind:     kind,
		basePath: basePath,
	}
}

func NewTaskStatusController(app application.Application) application.Controller {
	return newTaxonomyAPIController(app, taxonomy.KindStatus, "/task-statuses")
}

func NewTaskPriorityController(app application.Application) application.Controller {
	return newTaxonomyAPIController(app, taxonomy.KindPriority, "/task-priorities")
}

func NewTaskSizeController(app application.Application) application.Controller {
	return newTaxonomyAPIController(app, taxonomy.KindSize, "/task-sizes")
}

func NewIssueTypeController(app application.Application) application.Controller {
	return newTaxonomyAPIController(app, taxonomy.KindIssueType, "/issue-types")
}

func NewRelatedIssueTypeController(app application.Application) application.Controller {
	return newTaxonomyAPIController(app, taxonomy.KindRelatedIssueType, "/task-related-issue-types")
}

func (c *TaxonomyAPIController) Key() string {
	return c.basePath
}

func (c *TaxonomyAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/reorder", c.Reorder).Methods(http.MethodPatch)
	router.HandleFunc("/{id}", c.Get).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.Update).Methods(http.MethodPut)
	router.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
	router.HandleFunc("/{id}/default", c.MarkDefault).Methods(http.MethodPut)
}

func (c *TaxonomyAPIController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	scope, err := taxonomy.ParseScope(
		q.Get("tenantId"),
		q.Get("organizationId"),
		q.Get("projectId"),
		q.Get("organizationTeamId"),
	)
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "TAXONOMY_INVALID_SCOPE", err.Error())
		return
	}
	if !c.scopeSupported(scope) {
		writeAPIError(w, r, http.StatusBadRequest, "TAXONOMY_SCOPE_UNSUPPORTED", "scope level not supported for this kind")
		return
	}

	items, err := c.service.List(r.Context(), c.kind, scope)
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "TAXONOMY_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, dtos.TaxonomyListResponse{
		Items: mappers.ItemsToResponse(items),
		Total: len(items),
	})
}

func (c *TaxonomyAPIController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := c.pathID(w, r)
	if !ok {
		return
	}
	item, err := c.service.GetByID(r.Context(), c.kind, id)
	if err != nil {
		if errors.Is(err, taxonomy.ErrItemNotFound) {
			writeAPIError(w, r, http.StatusNotFound, "TAXONOMY_NOT_FOUND", "taxonomy item not found")
			return
		}
		writeAPIError(w, r, http.StatusInternalServerError, "TAXONOMY_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, mappers.ItemToResponse(item))
}

func (c *TaxonomyAPIController) Create(w http.ResponseWriter, r *http.Request) {
	var dto dtos.CreateTaxonomyItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "TAXONOMY_INVALID_JSON", "invalid json")
		return
	}
	if errs, ok := dto.Ok(); !ok {
		writeAPIError(w, r, http.StatusUnprocessableEntity, "TAXONOMY_VALIDATION_FAILED", firstError(errs))
		return
	}

	item, err := dto.ToEntity(c.kind)
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "TAXONOMY_INVALID_SCOPE", err.Error())
		return
	}
	if !c.scopeSupported(item.Scope()) {
		writeAPIError(w, r, http.StatusBadRequest, "TAXONOMY_SCOPE_UNSUPPORTED", "scope level not supported for this kind")
		return
	}

	created, err := c.service.Create(r.Context(), item)
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "TAXONOMY_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, mappers.ItemToResponse(created))
}

func (c *TaxonomyAPIController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := c.pathID(w, r)
	if !ok {
		return
	}

	var dto dtos.UpdateTaxonomyItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "TAXONOMY_INVALID_JSON", "invalid json")
		return
	}
	if errs, ok := dto.Ok(); !ok {
		writeAPIError(w, r, http.StatusUnprocessableEntity, "TAXONOMY_VALIDATION_FAILED", firstError(errs))
		return
	}

	item, err := c.service.GetByID(r.Context(), c.kind, id)
	if err != nil {
		if errors.Is(err, taxonomy.ErrItemNotFound) {
			writeAPIError(w, r, http.StatusNotFound, "TAXONOMY_NOT_FOUND", "taxonomy item not found")
			return
		}
		writeAPIError(w, r, http.StatusInternalServerError, "TAXONOMY_INTERNAL", "internal error")
		return
	}

	dto.Apply(item)
	updated, err := c.service.Update(r.Context(), item)
	if err != nil {
		if errors.Is(err, taxonomy.ErrSystemItem) {
			writeAPIError(w, r, http.StatusBadRequest, "TAXONOMY_SYSTEM_ITEM", "system taxonomy items cannot be modified")
			return
		}
		writeAPIError(w, r, http.StatusInternalServerError, "TAXONOMY_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, mappers.ItemToResponse(updated))
}

func (c *TaxonomyAPIController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := c.pathID(w, r)
	if !ok {
		return
	}
	if err := c.service.Delete(r.Context(), c.kind, id); err != nil {
		switch {
		case errors.Is(err, taxonomy.ErrItemNotFound):
			writeAPIError(w, r, http.StatusNotFound, "TAXONOMY_NOT_FOUND", "taxonomy item not found")
		case errors.Is(err, taxonomy.ErrSystemItem):
			writeAPIError(w, r, http.StatusBadRequest, "TAXONOMY_SYSTEM_ITEM", "system taxonomy items cannot be deleted")
		default:
			writeAPIError(w, r, http.StatusInternalServerError, "TAXONOMY_INTERNAL", "internal error")
		}
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (c *TaxonomyAPIController) Reorder(w http.ResponseWriter, r *http.Request) {
	var dto dtos.ReorderDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "TAXONOMY_INVALID_JSON", "invalid json")
		return
	}
	if errs, ok := dto.Ok(); !ok {
		writeAPIError(w, r, http.StatusUnprocessableEntity, "TAXONOMY_VALIDATION_FAILED", firstError(errs))
		return
	}

	entries := make([]taxonomy.ReorderEntry, 0, len(dto.Reorder))
	for _, entry := range dto.Reorder {
		if entry.ID == "" {
			continue
		}
		id, err := uuid.Parse(entry.ID)
		if err != nil {
			writeAPIError(w, r, http.StatusBadRequest, "TAXONOMY_INVALID_ID", "malformed item id")
			return
		}
		entries = append(entries, taxonomy.ReorderEntry{ID: id, Order: entry.Order})
	}

	if err := c.service.Reorder(r.Context(), c.kind, entries); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "TAXONOMY_REORDER_FAILED", "reorder failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (c *TaxonomyAPIController) MarkDefault(w http.ResponseWriter, r *http.Request) {
	id, ok := c.pathID(w, r)
	if !ok {
		return
	}

	// The body is optional; scope fields, when sent, must agree with the
	// stored row so callers cannot silently flip a default in another scope.
	var dto dtos.ScopeFields
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		writeAPIError(w, r, http.StatusBadRequest, "TAXONOMY_INVALID_JSON", "invalid json")
		return
	}
	if !dto.Empty() {
		scope, err := dto.Scope()
		if err != nil {
			writeAPIError(w, r, http.StatusBadRequest, "TAXONOMY_INVALID_SCOPE", err.Error())
			return
		}
		item, err := c.service.GetByID(r.Context(), c.kind, id)
		if err != nil {
			if errors.Is(err, taxonomy.ErrItemNotFound) {
				writeAPIError(w, r, http.StatusNotFound, "TAXONOMY_NOT_FOUND", "taxonomy item not found")
				return
			}
			writeAPIError(w, r, http.StatusInternalServerError, "TAXONOMY_INTERNAL", "internal error")
			return
		}
		if !item.Scope().Equal(scope) {
			writeAPIError(w, r, http.StatusBadRequest, "TAXONOMY_SCOPE_MISMATCH", "scope fields do not match the item")
			return
		}
	}

	items, err := c.service.MarkDefault(r.Context(), c.kind, id)
	if err != nil {
		switch {
		case errors.Is(err, taxonomy.ErrItemNotFound):
			writeAPIError(w, r, http.StatusNotFound, "TAXONOMY_NOT_FOUND", "taxonomy item not found")
		case errors.Is(err, taxonomy.ErrSystemItem):
			writeAPIError(w, r, http.StatusBadRequest, "TAXONOMY_SYSTEM_ITEM", "system taxonomy items cannot be made default")
		default:
			writeAPIError(w, r, http.StatusInternalServerError, "TAXONOMY_INTERNAL", "internal error")
		}
		return
	}
	writeJSON(w, http.StatusOK, dtos.TaxonomyListResponse{
		Items: mappers.ItemsToResponse(items),
		Total: len(items),
	})
}

func (c *TaxonomyAPIController) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "TAXONOMY_INVALID_ID", "malformed item id")
		return uuid.Nil, false
	}
	return id, true
}

func (c *TaxonomyAPIController) scopeSupported(scope taxonomy.Scope) bool {
	switch scope.Level() {
	case taxonomy.ScopeProject:
		return c.kind.SupportsProject()
	case taxonomy.ScopeTeam:
		return c.kind.SupportsTeam()
	default:
		return true
	}
}

func firstError(errs map[string]string) string {
	for _, message := range errs {
		return message
	}
	return "validation failed"
}
