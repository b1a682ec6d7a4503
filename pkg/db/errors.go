package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// IsUniqueViolation reports whether the provided error is a unique constraint
// violation. When constraintName is provided, the helper additionally requires
// the constraint text in the error message.
func IsUniqueViolation(err error, constraintName ...string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	unique := errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
	if !unique {
		return false
	}
	for _, name := range constraintName {
		if !strings.Contains(msg, name) {
			return false
		}
	}
	return true
}
