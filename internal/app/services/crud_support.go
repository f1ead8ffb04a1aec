package services

import (
	"registroacademico/internal/pkg/apperrors"
	"registroacademico/internal/pkg/dberrors"
)

// upsertErrorDescriptor holds the entity-specific messages for the two
// storage failure categories services know how to translate. Declared once
// per entity type as static configuration.
type upsertErrorDescriptor struct {
	duplicateMessage string
	integrityMessage string
}

// translateUpsertError classifies create/update storage failures: a unique
// violation becomes a conflict, any other integrity violation becomes bad
// input. Everything else propagates unchanged.
func translateUpsertError(err error, descriptor upsertErrorDescriptor) error {
	if dberrors.IsUniqueViolation(err) {
		return apperrors.NewConflictError(descriptor.duplicateMessage)
	}
	if dberrors.IsIntegrityViolation(err) {
		return apperrors.NewBadRequestError(descriptor.integrityMessage)
	}
	return err
}

// translateDeleteError turns a referential-integrity failure on delete into
// a conflict with the entity-specific message.
func translateDeleteError(err error, message string) error {
	if dberrors.IsForeignKeyViolation(err) {
		return apperrors.NewConflictError(message)
	}
	return err
}
