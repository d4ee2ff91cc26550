// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"errors"

	"gorm.io/gorm"
)

// isDuplicateKey reports a unique index violation. It relies on TranslateError being enabled.
func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
