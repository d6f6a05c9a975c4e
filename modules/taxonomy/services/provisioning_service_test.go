package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everhub/taskmeta/modules/taxonomy/domain/taxonomy"
	"github.com/everhub/taskmeta/modules/taxonomy/services"
)

func TestProvisioningService_ProvisionForTenant(t *testing.T) {
	t.Parallel()

	repo := newInMemoryRepository()
	seedDefaults(t, repo)
	svc := services.NewProvisioningService(repo, newTestBus())
	ctx := txContext()

	tenantID := uuid.New()
	scope := taxonomy.TenantScope(tenantID)
	items, err := svc.ProvisionForTenant(ctx, tenantID)
	require.NoError(t, err)
	require.NotEmpty(t, items)

	for _, item := range items {
		assert.False(t, item.IsSystem())
		assert.True(t, item.Scope().Equal(scope))
	}

	statuses, err := repo.FindByScope(ctx, taxonomy.KindStatus, scope)
	require.NoError(t, err)
	require.Len(t, statuses, 6)
	assert.Equal(t, "Open", statuses[0].Name())

	defaults, err := repo.FindDefaults(ctx, taxonomy.KindStatus)
	require.NoError(t, err)
	for _, d := range defaults {
		for _, s := range statuses {
			assert.NotEqual(t, d.ID(), s.ID())
		}
	}
}

func TestProvisioningService_ProvisionForTenant_SeedsFromTemplates(t *testing.T) {
	t.Parallel()

	// No global system rows persisted: tenant provisioning reads the built-in
	// templates, not the store.
	repo := newInMemoryRepository()
	svc := services.NewProvisioningService(repo, newTestBus())
	ctx := txContext()

	tenantID := uuid.New()
	items, err := svc.ProvisionForTenant(ctx, tenantID)
	require.NoError(t, err)
	require.NotEmpty(t, items)

	statuses, err := repo.FindByScope(ctx, taxonomy.KindStatus, taxonomy.TenantScope(tenantID))
	require.NoError(t, err)
	require.Len(t, statuses, 6)
	assert.Equal(t, "Open", statuses[0].Name())

	defaults, err := repo.FindDefaults(ctx, taxonomy.KindStatus)
	require.NoError(t, err)
	assert.Empty(t, defaults)
}

func TestProvisioningService_ProvisionForTenant_Twice(t *testing.T) {
	t.Parallel()

	repo := newInMemoryRepository()
	seedDefaults(t, repo)
	svc := services.NewProvisioningService(repo, newTestBus())
	ctx := txContext()

	tenantID := uuid.New()
	_, err := svc.ProvisionForTenant(ctx, tenantID)
	require.NoError(t, err)

	_, err = svc.ProvisionForTenant(ctx, tenantID)
	assert.ErrorIs(t, err, services.ErrScopeAlreadyProvisioned)

	count, err := repo.CountByScope(ctx, taxonomy.KindStatus, taxonomy.TenantScope(tenantID))
	require.NoError(t, err)
	assert.EqualValues(t, 6, count)
}

func TestProvisioningService_ProvisionForOrganization_CopiesTenantSet(t *testing.T) {
	t.Parallel()

	repo := newInMemoryRepository()
	seedDefaults(t, repo)
	svc := services.NewProvisioningService(repo, newTestBus())
	ctx := txContext()

	tenantID := uuid.New()
	tenantScope := taxonomy.TenantScope(tenantID)
	_, err := repo.Create(ctx, taxonomy.New(taxonomy.KindStatus, "Custom", "custom", tenantScope))
	require.NoError(t, err)

	organizationID := uuid.New()
	_, err = svc.ProvisionForOrganization(ctx, tenantID, organizationID)
	require.NoError(t, err)

	orgStatuses, err := repo.FindByScope(ctx, taxonomy.KindStatus, taxonomy.OrganizationScope(tenantID, organizationID))
	require.NoError(t, err)
	require.Len(t, orgStatuses, 1)
	assert.Equal(t, "Custom", orgStatuses[0].Name())
}

func TestProvisioningService_ProvisionForOrganization_FallsBackToDefaults(t *testing.T) {
	t.Parallel()

	repo := newInMemoryRepository()
	seedDefaults(t, repo)
	svc := services.NewProvisioningService(repo, newTestBus())
	ctx := txContext()

	tenantID := uuid.New()
	organizationID := uuid.New()
	_, err := svc.ProvisionForOrganization(ctx, tenantID, organizationID)
	require.NoError(t, err)

	orgPriorities, err := repo.FindByScope(ctx, taxonomy.KindPriority, taxonomy.OrganizationScope(tenantID, organizationID))
	require.NoError(t, err)
	require.Len(t, orgPriorities, 4)
	assert.Equal(t, "Urgent", orgPriorities[0].Name())
}

func TestProvisioningService_ProvisionForProject_SkipsIssueTypes(t *testing.T) {
	t.Parallel()

	repo := newInMemoryRepository()
	seedDefaults(t, repo)
	svc := services.NewProvisioningService(repo, newTestBus())
	ctx := txContext()

	tenantID := uuid.New()
	organizationID := uuid.New()
	projectID := uuid.New()
	items, err := svc.ProvisionForProject(ctx, tenantID, organizationID, projectID)
	require.NoError(t, err)
	require.NotEmpty(t, items)

	scope := taxonomy.ProjectScope(tenantID, organizationID, projectID)
	for _, item := range items {
		assert.NotEqual(t, taxonomy.KindIssueType, item.Kind())
		assert.True(t, item.Scope().Equal(scope))
	}

	issueTypes, err := repo.FindByScope(ctx, taxonomy.KindIssueType, scope)
	require.NoError(t, err)
	assert.Empty(t, issueTypes)

	statuses, err := repo.FindByScope(ctx, taxonomy.KindStatus, scope)
	require.NoError(t, err)
	assert.Len(t, statuses, 6)
}

func TestProvisioningService_ProvisionForTeam_SkipsIssueTypes(t *testing.T) {
	t.Parallel()

	repo := newInMemoryRepository()
	seedDefaults(t, repo)
	svc := services.NewProvisioningService(repo, newTestBus())
	ctx := txContext()

	tenantID := uuid.New()
	organizationID := uuid.New()
	teamID := uuid.New()
	items, err := svc.ProvisionForTeam(ctx, tenantID, organizationID, teamID)
	require.NoError(t, err)

	scope := taxonomy.TeamScope(tenantID, organizationID, teamID)
	for _, item := range items {
		assert.NotEqual(t, taxonomy.KindIssueType, item.Kind())
	}

	sizes, err := repo.FindByScope(ctx, taxonomy.KindSize, scope)
	require.NoError(t, err)
	assert.Len(t, sizes, 5)
}

func TestProvisioningService_PublishesScopeProvisionedEvent(t *testing.T) {
	t.Parallel()

	repo := newInMemoryRepository()
	seedDefaults(t, repo)
	bus := newTestBus()
	svc := services.NewProvisioningService(repo, bus)

	var published *taxonomy.ScopeProvisionedEvent
	bus.Subscribe(func(event *taxonomy.ScopeProvisionedEvent) {
		published = event
	})

	tenantID := uuid.New()
	items, err := svc.ProvisionForTenant(txContext(), tenantID)
	require.NoError(t, err)

	require.NotNil(t, published)
	assert.True(t, published.Scope.Equal(taxonomy.TenantScope(tenantID)))
	assert.Len(t, published.Items, len(items))
}
