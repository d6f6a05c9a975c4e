package models

import (
	"database/sql"
	"time"
)

type TaxonomyItem struct {
	ID                 string
	Name               string
	Value              string
	Description        sql.NullString
	Icon               sql.NullString
	Color              sql.NullString
	SortOrder          int
	IsDefault          bool
	IsSystem           bool
	IsCollapsed        bool
	TenantID           sql.NullString
	OrganizationID     sql.NullString
	ProjectID          sql.NullString
	OrganizationTeamID sql.NullString
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
