package postgres

import (
	"database/sql"
	"strings"
)

func isNotFound(err error) bool {
	return err == sql.ErrNoRows
}

// Poolers in transaction mode can desync extended-protocol binds; these
// detectors drive the plain-text fallback queries in the repositories.
func isBindParameterMismatch(err error) bool {
	if err == nil {
		return false
	}
	text := err.Error()
	return strings.Contains(text, "bind message") && strings.Contains(text, "08P01")
}

func isUnnamedPreparedStatementMissing(err error) bool {
	if err == nil {
		return false
	}
	text := err.Error()
	if strings.Contains(text, "unnamed prepared statement does not exist") {
		return true
	}
	return strings.Contains(text, "prepared statement") && strings.Contains(text, "26000")
}
