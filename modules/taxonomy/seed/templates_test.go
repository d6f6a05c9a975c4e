package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everhub/taskmeta/modules/taxonomy/domain/taxonomy"
	"github.com/everhub/taskmeta/modules/taxonomy/seed"
)

func TestDefaultItems(t *testing.T) {
	t.Parallel()

	counts := map[taxonomy.Kind]int{
		taxonomy.KindStatus:           6,
		taxonomy.KindPriority:         4,
		taxonomy.KindSize:             5,
		taxonomy.KindIssueType:        4,
		taxonomy.KindRelatedIssueType: 7,
	}

	for _, kind := range taxonomy.Kinds() {
		items := seed.DefaultItems(kind)
		require.Len(t, items, counts[kind], "kind %s", kind)
		for _, item := range items {
			assert.True(t, item.IsSystem())
			assert.True(t, item.Scope().IsGlobal())
			assert.NotEmpty(t, item.Name())
			assert.NotEmpty(t, item.Value())
		}
	}
}

func TestDefaultItems_FreshIdentities(t *testing.T) {
	t.Parallel()

	first := seed.DefaultItems(taxonomy.KindStatus)
	second := seed.DefaultItems(taxonomy.KindStatus)
	for i := range first {
		assert.NotEqual(t, first[i].ID(), second[i].ID())
	}
}

func TestDefaultItems_IssueTypeDefault(t *testing.T) {
	t.Parallel()

	var defaultName string
	for _, item := range seed.DefaultItems(taxonomy.KindIssueType) {
		if item.IsDefault() {
			require.Empty(t, defaultName, "more than one default issue type")
			defaultName = item.Name()
		}
	}
	assert.Equal(t, "Task", defaultName)
}
