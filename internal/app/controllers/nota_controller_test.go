package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"registroacademico/internal/app/models"
)

func newNotaRouter(service *fakeNotaService) *gin.Engine {
	router := gin.New()
	controller := NewNotaController(service)
	notas := router.Group("/api/notas")
	{
		notas.POST("", controller.CreateNota)
		notas.GET("", controller.GetAllNotas)
		notas.GET("/:alunoId/:provaId", controller.GetNotaByID)
		notas.PUT("/:alunoId/:provaId", controller.UpdateNota)
		notas.DELETE("/:alunoId/:provaId", controller.DeleteNota)
	}
	return router
}

func TestCreateNota(t *testing.T) {
	service := &fakeNotaService{
		createFn: func(ctx context.Context, nota models.Nota) (*models.Nota, error) {
			return &nota, nil
		},
	}
	router := newNotaRouter(service)

	body := `{"alunoId":1,"provaId":2,"valor":0,"observacao":""}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notas", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	// A literal zero grade is valid and must pass the required rule.
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/notas/1/2", w.Header().Get("Location"))
}

func TestCreateNotaRejectsValorAboveTen(t *testing.T) {
	service := &fakeNotaService{
		createFn: func(ctx context.Context, nota models.Nota) (*models.Nota, error) {
			t.Fatal("service must not be reached on invalid payloads")
			return nil, nil
		},
	}
	router := newNotaRouter(service)

	body := `{"alunoId":1,"provaId":2,"valor":10.5}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notas", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateNotaRejectsNegativeValor(t *testing.T) {
	service := &fakeNotaService{
		createFn: func(ctx context.Context, nota models.Nota) (*models.Nota, error) {
			t.Fatal("service must not be reached on invalid payloads")
			return nil, nil
		},
	}
	router := newNotaRouter(service)

	body := `{"alunoId":1,"provaId":2,"valor":-0.5}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notas", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAllNotasForwardsQueryFilters(t *testing.T) {
	var gotAluno, gotProva *int64
	service := &fakeNotaService{
		listAllFn: func(ctx context.Context, alunoID, provaID *int64) ([]*models.Nota, error) {
			gotAluno, gotProva = alunoID, provaID
			return nil, nil
		},
	}
	router := newNotaRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notas?alunoId=5&provaId=9", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, gotAluno)
	require.NotNil(t, gotProva)
	assert.Equal(t, int64(5), *gotAluno)
	assert.Equal(t, int64(9), *gotProva)
}

func TestGetAllNotasRejectsBadFilter(t *testing.T) {
	router := newNotaRouter(&fakeNotaService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notas?alunoId=abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetNotaByCompositeKeyNotFound(t *testing.T) {
	service := &fakeNotaService{
		findByIDFn: func(ctx context.Context, alunoID, provaID int64) (*models.Nota, error) {
			return nil, nil
		},
	}
	router := newNotaRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notas/1/999", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Nota não encontrada."}`, w.Body.String())
}

func TestUpdateNotaUsesPathKey(t *testing.T) {
	var gotAluno, gotProva int64
	service := &fakeNotaService{
		updateFn: func(ctx context.Context, alunoID, provaID int64, nota models.Nota) (*models.Nota, error) {
			gotAluno, gotProva = alunoID, provaID
			updated := nota
			updated.AlunoID = alunoID
			updated.ProvaID = provaID
			return &updated, nil
		},
	}
	router := newNotaRouter(service)

	body := `{"valor":7.5,"observacao":"segunda chamada"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/notas/1/2", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), gotAluno)
	assert.Equal(t, int64(2), gotProva)
}

func TestUpdateNotaZeroKeyAnswersNotFound(t *testing.T) {
	service := &fakeNotaService{
		updateFn: func(ctx context.Context, alunoID, provaID int64, nota models.Nota) (*models.Nota, error) {
			t.Fatal("service must not be reached for non-positive keys")
			return nil, nil
		},
	}
	router := newNotaRouter(service)

	// Either half of the composite key being zero misses.
	for _, path := range []string{"/api/notas/0/2", "/api/notas/1/0"} {
		body := `{"valor":7.5}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Nota não encontrada."}`, w.Body.String())
	}
}

func TestDeleteNota(t *testing.T) {
	service := &fakeNotaService{
		deleteFn: func(ctx context.Context, alunoID, provaID int64) (bool, error) {
			return alunoID == 1 && provaID == 2, nil
		},
	}
	router := newNotaRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/notas/1/2", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/notas/3/4", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
