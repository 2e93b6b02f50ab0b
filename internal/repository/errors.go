package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// translateError maps gorm sentinel errors onto repository errors so
// services never import gorm to inspect a failure.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}

// affectedOrNotFound turns a scoped write that matched no row into ErrNotFound.
func affectedOrNotFound(res *gorm.DB) error {
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// validIDs reports whether every id can be compared against a uuid column.
// Postgres rejects a malformed literal with an error instead of matching no
// row, so callers answer ErrNotFound without querying.
func validIDs(ids ...string) bool {
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return false
		}
	}
	return true
}
