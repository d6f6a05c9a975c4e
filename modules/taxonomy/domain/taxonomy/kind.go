package taxonomy

// Kind identifies one taxonomy family. Each kind is persisted in its own
// table but shares scoping and lifecycle behavior with the others.
type Kind string

const (
	KindStatus           Kind = "status"
	KindPriority         Kind = "priority"
	KindSize             Kind = "size"
	KindIssueType        Kind = "issue-type"
	KindRelatedIssueType Kind = "related-issue-type"
)

func Kinds() []Kind {
	return []Kind{KindStatus, KindPriority, KindSize, KindIssueType, KindRelatedIssueType}
}

func (k Kind) Valid() bool {
	switch k {
	case KindStatus, KindPriority, KindSize, KindIssueType, KindRelatedIssueType:
		return true
	}
	return false
}

// SupportsProject reports whether items of this kind may be scoped to a
// project. Issue types stop at the organization level.
func (k Kind) SupportsProject() bool {
	return k != KindIssueType
}

// SupportsTeam reports whether items of this kind may be scoped to a team.
func (k Kind) SupportsTeam() bool {
	return k != KindIssueType
}

func (k Kind) String() string {
	return string(k)
}
