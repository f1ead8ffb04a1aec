package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"registroacademico/internal/app/models"
)

func newAlunoRouter(service *fakeAlunoService) *gin.Engine {
	router := gin.New()
	controller := NewAlunoController(service)
	alunos := router.Group("/api/alunos")
	{
		alunos.POST("", controller.CreateAluno)
		alunos.GET("", controller.GetAllAlunos)
		alunos.GET("/:id", controller.GetAlunoByID)
		alunos.PUT("/:id", controller.UpdateAluno)
		alunos.DELETE("/:id", controller.DeleteAluno)
	}
	return router
}

func TestCreateAluno(t *testing.T) {
	var received models.Aluno
	service := &fakeAlunoService{
		createFn: func(ctx context.Context, aluno models.Aluno) (*models.Aluno, error) {
			received = aluno
			created := aluno
			created.ID = 15
			return &created, nil
		},
	}
	router := newAlunoRouter(service)

	body := `{"ra":"  2023001 ","nome":"Ana Souza","email":"ana@uni.br","departamentoId":3,"dataNascimento":"2000-05-10"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/alunos", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/alunos/15", w.Header().Get("Location"))
	assert.Equal(t, "2023001", received.RA)
	require.NotNil(t, received.DataNascimento)
	assert.Equal(t, "2000-05-10", received.DataNascimento.String())

	var resp models.Aluno
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(15), resp.ID)
}

func TestCreateAlunoRejectsMissingFields(t *testing.T) {
	service := &fakeAlunoService{
		createFn: func(ctx context.Context, aluno models.Aluno) (*models.Aluno, error) {
			t.Fatal("service must not be reached on invalid payloads")
			return nil, nil
		},
	}
	router := newAlunoRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/alunos", strings.NewReader(`{"nome":"Ana"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Dados inválidos.")
}

func TestCreateAlunoRejectsFutureBirthDate(t *testing.T) {
	service := &fakeAlunoService{
		createFn: func(ctx context.Context, aluno models.Aluno) (*models.Aluno, error) {
			t.Fatal("service must not be reached on invalid payloads")
			return nil, nil
		},
	}
	router := newAlunoRouter(service)

	body := `{"ra":"2023001","nome":"Ana","departamentoId":3,"dataNascimento":"2999-01-01"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/alunos", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAlunoByIDNotFound(t *testing.T) {
	service := &fakeAlunoService{
		findByIDFn: func(ctx context.Context, id int64) (*models.Aluno, error) {
			return nil, nil
		},
	}
	router := newAlunoRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/alunos/999999", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Aluno não encontrado."}`, w.Body.String())
}

func TestGetAlunoByIDRejectsNonNumericID(t *testing.T) {
	router := newAlunoRouter(&fakeAlunoService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/alunos/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAllAlunosEmptyList(t *testing.T) {
	service := &fakeAlunoService{
		listAllFn: func(ctx context.Context) ([]*models.Aluno, error) {
			return nil, nil
		},
	}
	router := newAlunoRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/alunos", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestUpdateAlunoNotFound(t *testing.T) {
	service := &fakeAlunoService{
		updateFn: func(ctx context.Context, id int64, aluno models.Aluno) (*models.Aluno, error) {
			return nil, nil
		},
	}
	router := newAlunoRouter(service)

	body := `{"ra":"2023001","nome":"Ana","departamentoId":3}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/alunos/42", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Aluno não encontrado."}`, w.Body.String())
}

func TestUpdateAlunoNonPositiveIDAnswersNotFound(t *testing.T) {
	service := &fakeAlunoService{
		updateFn: func(ctx context.Context, id int64, aluno models.Aluno) (*models.Aluno, error) {
			t.Fatal("service must not be reached for non-positive keys")
			return nil, nil
		},
	}
	router := newAlunoRouter(service)

	for _, id := range []string{"0", "-3"} {
		body := `{"ra":"2023001","nome":"Ana","departamentoId":3}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/alunos/"+id, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Aluno não encontrado."}`, w.Body.String())
	}
}

func TestDeleteAluno(t *testing.T) {
	existing := true
	service := &fakeAlunoService{
		deleteFn: func(ctx context.Context, id int64) (bool, error) {
			was := existing
			existing = false
			return was, nil
		},
	}
	router := newAlunoRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/alunos/7", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Second delete of the same key answers 404.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/alunos/7", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
