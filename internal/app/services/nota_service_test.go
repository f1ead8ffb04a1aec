package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"registroacademico/internal/app/models"
	"registroacademico/internal/pkg/apperrors"
)

type fakeNotaRepository struct {
	createFn   func(ctx context.Context, nota models.Nota) (*models.Nota, error)
	findByIDFn func(ctx context.Context, alunoID, provaID int64) (*models.Nota, error)
	findAllFn  func(ctx context.Context, alunoID, provaID *int64) ([]*models.Nota, error)
	updateFn   func(ctx context.Context, nota models.Nota) (*models.Nota, error)
	deleteFn   func(ctx context.Context, alunoID, provaID int64) (bool, error)
}

func (f *fakeNotaRepository) Create(ctx context.Context, nota models.Nota) (*models.Nota, error) {
	return f.createFn(ctx, nota)
}

func (f *fakeNotaRepository) FindByID(ctx context.Context, alunoID, provaID int64) (*models.Nota, error) {
	return f.findByIDFn(ctx, alunoID, provaID)
}

func (f *fakeNotaRepository) FindAll(ctx context.Context, alunoID, provaID *int64) ([]*models.Nota, error) {
	return f.findAllFn(ctx, alunoID, provaID)
}

func (f *fakeNotaRepository) Update(ctx context.Context, nota models.Nota) (*models.Nota, error) {
	return f.updateFn(ctx, nota)
}

func (f *fakeNotaRepository) Delete(ctx context.Context, alunoID, provaID int64) (bool, error) {
	return f.deleteFn(ctx, alunoID, provaID)
}

func TestNotaServiceCreateTranslatesDuplicatePair(t *testing.T) {
	repo := &fakeNotaRepository{
		createFn: func(ctx context.Context, nota models.Nota) (*models.Nota, error) {
			return nil, pgError("23505")
		},
	}
	service := NewNotaService(repo)

	_, err := service.Create(context.Background(), models.Nota{AlunoID: 1, ProvaID: 2, Valor: 8})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.Equal(t, "Nota para esta combinação de aluno e prova já cadastrada.", apperrors.Message(err, ""))
}

func TestNotaServiceCreateTranslatesCheckViolation(t *testing.T) {
	repo := &fakeNotaRepository{
		createFn: func(ctx context.Context, nota models.Nota) (*models.Nota, error) {
			return nil, pgError("23514")
		},
	}
	service := NewNotaService(repo)

	_, err := service.Create(context.Background(), models.Nota{AlunoID: 1, ProvaID: 2, Valor: 11})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrBadRequest))
	assert.Equal(t, "Dados inválidos para a nota. Verifique aluno, prova e valor informado.", apperrors.Message(err, ""))
}

func TestNotaServiceUpdateUsesCompositePathKey(t *testing.T) {
	var received models.Nota
	repo := &fakeNotaRepository{
		updateFn: func(ctx context.Context, nota models.Nota) (*models.Nota, error) {
			received = nota
			return &nota, nil
		},
	}
	service := NewNotaService(repo)

	obs := "recuperação"
	payload := models.Nota{AlunoID: 999, ProvaID: 888, Valor: 7.5, Observacao: &obs}
	updated, err := service.Update(context.Background(), 1, 2, payload)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, int64(1), received.AlunoID)
	assert.Equal(t, int64(2), received.ProvaID)
	assert.Equal(t, 7.5, received.Valor)
	assert.Equal(t, &obs, received.Observacao)
}

func TestNotaServiceDeletePropagatesErrorsUntranslated(t *testing.T) {
	// Nothing references a grade, so delete failures are not conflicts.
	repo := &fakeNotaRepository{
		deleteFn: func(ctx context.Context, alunoID, provaID int64) (bool, error) {
			return false, pgError("23503")
		},
	}
	service := NewNotaService(repo)

	_, err := service.Delete(context.Background(), 1, 2)

	require.Error(t, err)
	assert.False(t, errors.Is(err, apperrors.ErrConflict))
}

func TestNotaServiceListAllForwardsFilters(t *testing.T) {
	var gotAluno, gotProva *int64
	repo := &fakeNotaRepository{
		findAllFn: func(ctx context.Context, alunoID, provaID *int64) ([]*models.Nota, error) {
			gotAluno, gotProva = alunoID, provaID
			return nil, nil
		},
	}
	service := NewNotaService(repo)

	alunoID := int64(5)
	_, err := service.ListAll(context.Background(), &alunoID, nil)

	require.NoError(t, err)
	require.NotNil(t, gotAluno)
	assert.Equal(t, int64(5), *gotAluno)
	assert.Nil(t, gotProva)
}
