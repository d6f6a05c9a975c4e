package seed

import (
	"github.com/everhub/taskmeta/modules/taxonomy/domain/taxonomy"
)

type template struct {
	name        string
	value       string
	icon        string
	color       string
	order       int
	isDefault   bool
	isCollapsed bool
}

var statusTemplates = []template{
	{name: "Open", value: "open", icon: "task-statuses/open.svg", color: "#D6D8DB", order: 0, isCollapsed: true},
	{name: "In Progress", value: "in-progress", icon: "task-statuses/in-progress.svg", color: "#ECFAFE", order: 1},
	{name: "Ready for Review", value: "ready-for-review", icon: "task-statuses/ready.svg", color: "#F5F1FE", order: 2},
	{name: "In Review", value: "in-review", icon: "task-statuses/in-review.svg", color: "#F3D8FD", order: 3},
	{name: "Blocked", value: "blocked", icon: "task-statuses/blocked.svg", color: "#FEE8E8", order: 4},
	{name: "Done", value: "done", icon: "task-statuses/completed.svg", color: "#D4EFDF", order: 5, isCollapsed: true},
}

var priorityTemplates = []template{
	{name: "Urgent", value: "urgent", icon: "task-priorities/urgent.svg", color: "#F5B8B8", order: 0},
	{name: "High", value: "high", icon: "task-priorities/high.svg", color: "#B8D1F5", order: 1},
	{name: "Medium", value: "medium", icon: "task-priorities/medium.svg", color: "#ECE8FC", order: 2},
	{name: "Low", value: "low", icon: "task-priorities/low.svg", color: "#D4EFDF", order: 3},
}

var sizeTemplates = []template{
	{name: "X-Large", value: "x-large", icon: "task-sizes/x-large.svg", color: "#F5B8B8", order: 0},
	{name: "Large", value: "large", icon: "task-sizes/large.svg", color: "#F3D8FD", order: 1},
	{name: "Medium", value: "medium", icon: "task-sizes/medium.svg", color: "#F5F1FE", order: 2},
	{name: "Small", value: "small", icon: "task-sizes/small.svg", color: "#B8D1F5", order: 3},
	{name: "Tiny", value: "tiny", icon: "task-sizes/tiny.svg", color: "#D4EFDF", order: 4},
}

var issueTypeTemplates = []template{
	{name: "Bug", value: "bug", icon: "issue-types/bug.svg", color: "#C24A4A", order: 0},
	{name: "Task", value: "task", icon: "issue-types/task.svg", color: "#5483EA", order: 1, isDefault: true},
	{name: "Story", value: "story", icon: "issue-types/story.svg", color: "#54BA95", order: 2},
	{name: "Epic", value: "epic", icon: "issue-types/epic.svg", color: "#8154BA", order: 3},
}

var relatedIssueTypeTemplates = []template{
	{name: "Blocks", value: "blocks", order: 0},
	{name: "Clones", value: "clones", order: 1},
	{name: "Duplicates", value: "duplicates", order: 2},
	{name: "Is Blocked By", value: "is-blocked-by", order: 3},
	{name: "Is Cloned By", value: "is-cloned-by", order: 4},
	{name: "Is Duplicated By", value: "is-duplicated-by", order: 5},
	{name: "Relates To", value: "relates-to", order: 6},
}

func templatesFor(kind taxonomy.Kind) []template {
	switch kind {
	case taxonomy.KindStatus:
		return statusTemplates
	case taxonomy.KindPriority:
		return priorityTemplates
	case taxonomy.KindSize:
		return sizeTemplates
	case taxonomy.KindIssueType:
		return issueTypeTemplates
	case taxonomy.KindRelatedIssueType:
		return relatedIssueTypeTemplates
	}
	return nil
}

// DefaultItems materializes the built-in global set for a kind as system
// items. Each call mints fresh identities.
func DefaultItems(kind taxonomy.Kind) []*taxonomy.Item {
	templates := templatesFor(kind)
	items := make([]*taxonomy.Item, 0, len(templates))
	for _, t := range templates {
		items = append(items, taxonomy.New(
			kind,
			t.name,
			t.value,
			taxonomy.GlobalScope(),
			taxonomy.WithIcon(t.icon),
			taxonomy.WithColor(t.color),
			taxonomy.WithOrder(t.order),
			taxonomy.WithDefault(t.isDefault),
			taxonomy.WithCollapsed(t.isCollapsed),
			taxonomy.WithSystem(true),
		))
	}
	return items
}
