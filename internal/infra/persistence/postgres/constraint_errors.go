package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// The gorm sentinels only appear when the dialector translates driver errors,
// so the raw PostgreSQL and SQLite messages are matched as a fallback.

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") || // PostgreSQL 23505
		strings.Contains(errMsg, "unique constraint failed") // SQLite
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "violates foreign key") || // PostgreSQL 23503
		strings.Contains(errMsg, "foreign key constraint failed") // SQLite
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null constraint failed") ||
		strings.Contains(errMsg, "23502")
}
