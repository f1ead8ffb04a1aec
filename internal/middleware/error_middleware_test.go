package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"registroacademico/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.GET("/boom", func(c *gin.Context) {
		HandleAPIError(c, err)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHandleAPIErrorNotFound(t *testing.T) {
	w := serve(t, apperrors.NewNotFoundError("Prova não encontrada."))

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Prova não encontrada."}`, w.Body.String())
}

func TestHandleAPIErrorConflict(t *testing.T) {
	w := serve(t, apperrors.NewConflictError("RA ou e-mail já cadastrado."))

	require.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"message":"RA ou e-mail já cadastrado."}`, w.Body.String())
}

func TestHandleAPIErrorBadRequest(t *testing.T) {
	w := serve(t, apperrors.NewBadRequestError("Dados inválidos para a nota. Verifique aluno, prova e valor informado."))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleAPIErrorAuthBodies(t *testing.T) {
	w := serve(t, apperrors.ErrInvalidCredentials)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"invalid_credentials"}`, w.Body.String())

	w = serve(t, apperrors.ErrUnauthenticated)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"unauthenticated"}`, w.Body.String())
}

func TestHandleAPIErrorUnknownBecomesInternal(t *testing.T) {
	w := serve(t, errors.New("pool exhausted"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Erro interno do servidor."}`, w.Body.String())
}
