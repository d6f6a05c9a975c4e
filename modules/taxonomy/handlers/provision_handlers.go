package handlers

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/everhub/taskmeta/modules/core/domain/entities/organization"
	"github.com/everhub/taskmeta/modules/core/domain/entities/project"
	"github.com/everhub/taskmeta/modules/core/domain/entities/team"
	"github.com/everhub/taskmeta/modules/core/domain/entities/tenant"
	"github.com/everhub/taskmeta/modules/taxonomy/services"
	"github.com/everhub/taskmeta/pkg/composables"
	"github.com/everhub/taskmeta/pkg/eventbus"
)

// ProvisionHandler listens for scope-creation events and copies taxonomy sets
// into the new scope. Provisioning runs outside the request that created the
// scope; failures are logged, never surfaced to the creator.
type ProvisionHandler struct {
	pool         *pgxpool.Pool
	provisioning *services.ProvisioningService
	logger       *logrus.Logger
}

func RegisterProvisionHandler(
	pool *pgxpool.Pool,
	provisioning *services.ProvisioningService,
	publisher eventbus.EventBus,
	logger *logrus.Logger,
) *ProvisionHandler {
	handler := &ProvisionHandler{
		pool:         pool,
		provisioning: provisioning,
		logger:       logger,
	}
	publisher.Subscribe(handler.onTenantCreated)
	publisher.Subscribe(handler.onOrganizationCreated)
	publisher.Subscribe(handler.onProjectCreated)
	publisher.Subscribe(handler.onTeamCreated)
	return handler
}

func (h *ProvisionHandler) onTenantCreated(event *tenant.CreatedEvent) {
	ctx := composables.WithPool(context.Background(), h.pool)
	_, err := h.provisioning.ProvisionForTenant(ctx, event.Tenant.ID())
	h.report(err, "tenant", event.Tenant.ID().String())
}

func (h *ProvisionHandler) onOrganizationCreated(event *organization.CreatedEvent) {
	ctx := composables.WithPool(context.Background(), h.pool)
	o := event.Organization
	_, err := h.provisioning.ProvisionForOrganization(ctx, o.TenantID(), o.ID())
	h.report(err, "organization", o.ID().String())
}

func (h *ProvisionHandler) onProjectCreated(event *project.CreatedEvent) {
	ctx := composables.WithPool(context.Background(), h.pool)
	p := event.Project
	_, err := h.provisioning.ProvisionForProject(ctx, p.TenantID(), p.OrganizationID(), p.ID())
	h.report(err, "project", p.ID().String())
}

func (h *ProvisionHandler) onTeamCreated(event *team.CreatedEvent) {
	ctx := composables.WithPool(context.Background(), h.pool)
	t := event.Team
	_, err := h.provisioning.ProvisionForTeam(ctx, t.TenantID(), t.OrganizationID(), t.ID())
	h.report(err, "team", t.ID().String())
}

func (h *ProvisionHandler) report(err error, scopeKind, scopeID string) {
	entry := h.logger.WithField("scope", scopeKind).WithField("id", scopeID)
	switch {
	case err == nil:
		entry.Info("taxonomy provisioned")
	case errors.Is(err, services.ErrScopeAlreadyProvisioned):
		entry.Info("scope already provisioned, skipping")
	default:
		entry.WithError(err).Error("taxonomy provisioning failed")
	}
}
