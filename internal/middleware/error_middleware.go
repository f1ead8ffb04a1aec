package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"registroacademico/internal/app/models/dto"
	"registroacademico/internal/pkg/apperrors"
	"registroacademico/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses. The body carries
// the user-facing message attached by the service layer, falling back to a
// generic one per status.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			apperrors.Message(err, "Recurso não encontrado.")))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			apperrors.Message(err, "Conflito com registros existentes.")))
	case errors.Is(err, apperrors.ErrBadRequest), errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			apperrors.Message(err, "Dados inválidos.")))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.AuthErrorResponse{Error: "invalid_credentials"})
	case errors.Is(err, apperrors.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.AuthErrorResponse{Error: "unauthenticated"})
	default:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error on request")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Erro interno do servidor."))
	}
}
