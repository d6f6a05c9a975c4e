package taxonomy

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

var ErrInvalidScope = errors.New("invalid taxonomy scope")

// ScopeLevel discriminates the Scope variant. The level is explicit rather
// than inferred from which identifiers happen to be set, so an empty string
// and a missing identifier can never mean different things.
type ScopeLevel int

const (
	ScopeGlobal ScopeLevel = iota
	ScopeTenant
	ScopeOrganization
	ScopeProject
	ScopeTeam
)

func (l ScopeLevel) String() string {
	switch l {
	case ScopeGlobal:
		return "global"
	case ScopeTenant:
		return "tenant"
	case ScopeOrganization:
		return "organization"
	case ScopeProject:
		return "project"
	case ScopeTeam:
		return "team"
	}
	return "unknown"
}

// Scope is a tagged variant:
//
//	Global | Tenant(t) | Organization(t, o) | Project(t, o, p) | Team(t, o, tm)
//
// Identifier accessors return uuid.Nil for fields the variant does not carry.
type Scope struct {
	level          ScopeLevel
	tenantID       uuid.UUID
	organizationID uuid.UUID
	projectID      uuid.UUID
	teamID         uuid.UUID
}

func GlobalScope() Scope {
	return Scope{level: ScopeGlobal}
}

func TenantScope(tenantID uuid.UUID) Scope {
	return Scope{level: ScopeTenant, tenantID: tenantID}
}

func OrganizationScope(tenantID, organizationID uuid.UUID) Scope {
	return Scope{
		level:          ScopeOrganization,
		tenantID:       tenantID,
		organizationID: organizationID,
	}
}

func ProjectScope(tenantID, organizationID, projectID uuid.UUID) Scope {
	return Scope{
		level:          ScopeProject,
		tenantID:       tenantID,
		organizationID: organizationID,
		projectID:      projectID,
	}
}

func TeamScope(tenantID, organizationID, teamID uuid.UUID) Scope {
	return Scope{
		level:          ScopeTeam,
		tenantID:       tenantID,
		organizationID: organizationID,
		teamID:         teamID,
	}
}

// NewScope builds the narrowest variant the given identifiers support.
// A set project or team identifier requires tenant and organization; project
// and team are mutually exclusive.
func NewScope(tenantID, organizationID, projectID, teamID uuid.UUID) (Scope, error) {
	if projectID != uuid.Nil && teamID != uuid.Nil {
		return Scope{}, errors.Wrap(ErrInvalidScope, "project and team scopes are mutually exclusive")
	}
	switch {
	case teamID != uuid.Nil:
		if tenantID == uuid.Nil || organizationID == uuid.Nil {
			return Scope{}, errors.Wrap(ErrInvalidScope, "team scope requires tenant and organization")
		}
		return TeamScope(tenantID, organizationID, teamID), nil
	case projectID != uuid.Nil:
		if tenantID == uuid.Nil || organizationID == uuid.Nil {
			return Scope{}, errors.Wrap(ErrInvalidScope, "project scope requires tenant and organization")
		}
		return ProjectScope(tenantID, organizationID, projectID), nil
	case organizationID != uuid.Nil:
		if tenantID == uuid.Nil {
			return Scope{}, errors.Wrap(ErrInvalidScope, "organization scope requires tenant")
		}
		return OrganizationScope(tenantID, organizationID), nil
	case tenantID != uuid.Nil:
		return TenantScope(tenantID), nil
	default:
		return GlobalScope(), nil
	}
}

// ParseScope normalizes raw request identifiers into a Scope. Empty strings
// are treated as absent, never as a wildcard.
func ParseScope(tenantID, organizationID, projectID, teamID string) (Scope, error) {
	parse := func(field, raw string) (uuid.UUID, error) {
		if raw == "" {
			return uuid.Nil, nil
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, errors.Wrapf(ErrInvalidScope, "malformed %s id %q", field, raw)
		}
		return id, nil
	}

	tenant, err := parse("tenant", tenantID)
	if err != nil {
		return Scope{}, err
	}
	organization, err := parse("organization", organizationID)
	if err != nil {
		return Scope{}, err
	}
	project, err := parse("project", projectID)
	if err != nil {
		return Scope{}, err
	}
	team, err := parse("team", teamID)
	if err != nil {
		return Scope{}, err
	}
	return NewScope(tenant, organization, project, team)
}

func (s Scope) Level() ScopeLevel {
	return s.level
}

func (s Scope) IsGlobal() bool {
	return s.level == ScopeGlobal
}

func (s Scope) TenantID() uuid.UUID {
	return s.tenantID
}

func (s Scope) OrganizationID() uuid.UUID {
	return s.organizationID
}

func (s Scope) ProjectID() uuid.UUID {
	return s.projectID
}

func (s Scope) TeamID() uuid.UUID {
	return s.teamID
}

// Parent returns the next broader scope: Team and Project fall back to
// Organization, Organization to Tenant, Tenant to Global. Global has no
// parent.
func (s Scope) Parent() (Scope, bool) {
	switch s.level {
	case ScopeTeam, ScopeProject:
		return OrganizationScope(s.tenantID, s.organizationID), true
	case ScopeOrganization:
		return TenantScope(s.tenantID), true
	case ScopeTenant:
		return GlobalScope(), true
	default:
		return Scope{}, false
	}
}

func (s Scope) Equal(other Scope) bool {
	return s == other
}

func (s Scope) String() string {
	switch s.level {
	case ScopeGlobal:
		return "global"
	case ScopeTenant:
		return fmt.Sprintf("tenant(%s)", s.tenantID)
	case ScopeOrganization:
		return fmt.Sprintf("organization(%s, %s)", s.tenantID, s.organizationID)
	case ScopeProject:
		return fmt.Sprintf("project(%s, %s, %s)", s.tenantID, s.organizationID, s.projectID)
	case ScopeTeam:
		return fmt.Sprintf("team(%s, %s, %s)", s.tenantID, s.organizationID, s.teamID)
	}
	return "unknown"
}
