package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func pgError(code string) error {
	return &pgconn.PgError{Code: code, Message: "constraint violated"}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(pgError("23505")))
	assert.False(t, IsUniqueViolation(pgError("23503")))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(pgError("23503")))
	assert.False(t, IsForeignKeyViolation(pgError("23505")))
	assert.False(t, IsForeignKeyViolation(errors.New("boom")))
}

func TestIsIntegrityViolation(t *testing.T) {
	assert.True(t, IsIntegrityViolation(pgError("23505")))
	assert.True(t, IsIntegrityViolation(pgError("23503")))
	assert.True(t, IsIntegrityViolation(pgError("23514")))
	assert.False(t, IsIntegrityViolation(pgError("42P01")))
	assert.False(t, IsIntegrityViolation(errors.New("boom")))
}

func TestWrappedErrorsAreDetected(t *testing.T) {
	wrapped := fmt.Errorf("creating aluno: %w", pgError("23505"))
	assert.True(t, IsUniqueViolation(wrapped))
	assert.True(t, IsIntegrityViolation(wrapped))
}
