package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrDuplicateSlug is returned when a post insert or update violates the
// unique slug index. Two different titles can normalize to the same slug;
// the storage layer is the only place that detects it.
var ErrDuplicateSlug = errors.New("post slug already exists")

// isDuplicateKey reports whether err is a unique-constraint violation.
// Requires gorm's TranslateError to be enabled on the session.
func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
