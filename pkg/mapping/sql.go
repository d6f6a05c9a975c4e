package mapping

import (
	"database/sql"

	"github.com/google/uuid"
)

func ValueToSQLNullString(value string) sql.NullString {
	if value == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}

func SQLNullStringToValue(value sql.NullString) string {
	if !value.Valid {
		return ""
	}
	return value.String
}

// UUIDToSQLNullString maps uuid.Nil to SQL NULL; scope columns rely on this.
func UUIDToSQLNullString(id uuid.UUID) sql.NullString {
	if id == uuid.Nil {
		return sql.NullString{}
	}
	return sql.NullString{String: id.String(), Valid: true}
}

func SQLNullStringToUUID(value sql.NullString) uuid.UUID {
	if !value.Valid {
		return uuid.Nil
	}
	id, err := uuid.Parse(value.String)
	if err != nil {
		return uuid.Nil
	}
	return id
}
