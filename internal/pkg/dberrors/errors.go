package dberrors

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes, see class 23 (integrity constraint violation).
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	classIntegrityViolation = "23"
)

// IsUniqueViolation checks if the error is a PostgreSQL unique violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}

// IsIntegrityViolation checks if the error belongs to the integrity constraint
// violation class. Unique violations are part of the class, so callers that
// distinguish the two must test IsUniqueViolation first.
func IsIntegrityViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, classIntegrityViolation)
}
