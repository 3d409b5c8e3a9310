package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Repository errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("email already exists")
	ErrListingNotFound = errors.New("listing not found")
)

// isUniqueViolation reports whether err came from a UNIQUE constraint.
// TranslateError maps it to gorm.ErrDuplicatedKey; the message check covers
// handles opened without that option.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
