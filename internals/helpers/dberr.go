// file: internals/helpers/dberr.go
package helper

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// IsUniqueViolation detects a Postgres unique violation (code "23505").
// String matching keeps this compatible with lib/pq and wrapped pgx errors.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "23505")
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
