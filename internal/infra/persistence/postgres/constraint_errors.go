package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes for integrity constraint violations (class 23).
const (
	sqlStateNotNull    = "23502"
	sqlStateForeignKey = "23503"
	sqlStateUnique     = "23505"
	sqlStateCheck      = "23514"
)

type constraintKind int

const (
	constraintNone constraintKind = iota
	constraintUnique
	constraintInput
)

// classifyConstraint reports which kind of constraint err violated.
// GORM only translates driver errors when TranslateError is enabled, so the
// SQLSTATE embedded in the driver message is matched too.
func classifyConstraint(err error) constraintKind {
	if err == nil {
		return constraintNone
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return constraintUnique
	case errors.Is(err, gorm.ErrForeignKeyViolated), errors.Is(err, gorm.ErrCheckConstraintViolated):
		return constraintInput
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, sqlStateUnique):
		return constraintUnique
	case strings.Contains(msg, sqlStateForeignKey),
		strings.Contains(msg, sqlStateNotNull),
		strings.Contains(msg, sqlStateCheck):
		return constraintInput
	}

	return constraintNone
}
