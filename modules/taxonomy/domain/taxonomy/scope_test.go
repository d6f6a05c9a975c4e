package taxonomy_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everhub/taskmeta/modules/taxonomy/domain/taxonomy"
)

func TestParseScope_Normalization(t *testing.T) {
	t.Parallel()

	tenantID := uuid.New()
	orgID := uuid.New()
	projectID := uuid.New()
	teamID := uuid.New()

	t.Run("empty strings resolve to global", func(t *testing.T) {
		scope, err := taxonomy.ParseScope("", "", "", "")
		require.NoError(t, err)
		assert.Equal(t, taxonomy.ScopeGlobal, scope.Level())
		assert.True(t, scope.IsGlobal())
	})

	t.Run("tenant only", func(t *testing.T) {
		scope, err := taxonomy.ParseScope(tenantID.String(), "", "", "")
		require.NoError(t, err)
		assert.Equal(t, taxonomy.ScopeTenant, scope.Level())
		assert.Equal(t, tenantID, scope.TenantID())
		assert.Equal(t, uuid.Nil, scope.OrganizationID())
	})

	t.Run("tenant and organization", func(t *testing.T) {
		scope, err := taxonomy.ParseScope(tenantID.String(), orgID.String(), "", "")
		require.NoError(t, err)
		assert.Equal(t, taxonomy.ScopeOrganization, scope.Level())
		assert.Equal(t, orgID, scope.OrganizationID())
	})

	t.Run("project scope", func(t *testing.T) {
		scope, err := taxonomy.ParseScope(tenantID.String(), orgID.String(), projectID.String(), "")
		require.NoError(t, err)
		assert.Equal(t, taxonomy.ScopeProject, scope.Level())
		assert.Equal(t, projectID, scope.ProjectID())
		assert.Equal(t, uuid.Nil, scope.TeamID())
	})

	t.Run("team scope", func(t *testing.T) {
		scope, err := taxonomy.ParseScope(tenantID.String(), orgID.String(), "", teamID.String())
		require.NoError(t, err)
		assert.Equal(t, taxonomy.ScopeTeam, scope.Level())
		assert.Equal(t, teamID, scope.TeamID())
	})

	t.Run("project and team are mutually exclusive", func(t *testing.T) {
		_, err := taxonomy.ParseScope(tenantID.String(), orgID.String(), projectID.String(), teamID.String())
		require.ErrorIs(t, err, taxonomy.ErrInvalidScope)
	})

	t.Run("organization requires tenant", func(t *testing.T) {
		_, err := taxonomy.ParseScope("", orgID.String(), "", "")
		require.ErrorIs(t, err, taxonomy.ErrInvalidScope)
	})

	t.Run("project requires organization", func(t *testing.T) {
		_, err := taxonomy.ParseScope(tenantID.String(), "", projectID.String(), "")
		require.ErrorIs(t, err, taxonomy.ErrInvalidScope)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := taxonomy.ParseScope("not-a-uuid", "", "", "")
		require.ErrorIs(t, err, taxonomy.ErrInvalidScope)
	})
}

func TestScope_Parent(t *testing.T) {
	t.Parallel()

	tenantID := uuid.New()
	orgID := uuid.New()

	team := taxonomy.TeamScope(tenantID, orgID, uuid.New())
	parent, ok := team.Parent()
	require.True(t, ok)
	assert.Equal(t, taxonomy.OrganizationScope(tenantID, orgID), parent)

	project := taxonomy.ProjectScope(tenantID, orgID, uuid.New())
	parent, ok = project.Parent()
	require.True(t, ok)
	assert.Equal(t, taxonomy.OrganizationScope(tenantID, orgID), parent)

	parent, ok = parent.Parent()
	require.True(t, ok)
	assert.Equal(t, taxonomy.TenantScope(tenantID), parent)

	parent, ok = parent.Parent()
	require.True(t, ok)
	assert.True(t, parent.IsGlobal())

	_, ok = parent.Parent()
	assert.False(t, ok)
}

func TestItem_CopyTo(t *testing.T) {
	t.Parallel()

	tenantID := uuid.New()
	source := taxonomy.New(
		taxonomy.KindStatus,
		"In Progress",
		"in-progress",
		taxonomy.GlobalScope(),
		taxonomy.WithDescription("Work has started"),
		taxonomy.WithIcon("ever-icons/task-statuses/in-progress.svg"),
		taxonomy.WithColor("#ECE8FC"),
		taxonomy.WithOrder(2),
		taxonomy.WithSystem(true),
	)

	target := taxonomy.TenantScope(tenantID)
	copied := source.CopyTo(target)

	assert.NotEqual(t, source.ID(), copied.ID())
	assert.False(t, copied.IsSystem())
	assert.Equal(t, target, copied.Scope())
	assert.Equal(t, source.Name(), copied.Name())
	assert.Equal(t, source.Value(), copied.Value())
	assert.Equal(t, source.Description(), copied.Description())
	assert.Equal(t, source.Icon(), copied.Icon())
	assert.Equal(t, source.Color(), copied.Color())
	assert.Equal(t, source.Order(), copied.Order())
}
