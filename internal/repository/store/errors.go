package store

import "strings"

// isUniqueViolation reports whether err is the store rejecting an insert on a
// unique index. Matched by message because sqlite and postgres drivers expose
// no shared sentinel.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key")
}
