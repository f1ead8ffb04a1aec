package services

import (
	"context"

	"registroacademico/internal/app/models"
	"registroacademico/internal/app/repositories"
)

var notaUpsertErrors = upsertErrorDescriptor{
	duplicateMessage: "Nota para esta combinação de aluno e prova já cadastrada.",
	integrityMessage: "Dados inválidos para a nota. Verifique aluno, prova e valor informado.",
}

// NotaService defines the interface for grade operations
type NotaService interface {
	Create(ctx context.Context, nota models.Nota) (*models.Nota, error)
	ListAll(ctx context.Context, alunoID, provaID *int64) ([]*models.Nota, error)
	FindByID(ctx context.Context, alunoID, provaID int64) (*models.Nota, error)
	Update(ctx context.Context, alunoID, provaID int64, nota models.Nota) (*models.Nota, error)
	Delete(ctx context.Context, alunoID, provaID int64) (bool, error)
}

type notaServiceImpl struct {
	repo repositories.NotaRepository
}

// NewNotaService creates a new grade service
func NewNotaService(repo repositories.NotaRepository) NotaService {
	return &notaServiceImpl{repo: repo}
}

func (s *notaServiceImpl) Create(ctx context.Context, nota models.Nota) (*models.Nota, error) {
	created, err := s.repo.Create(ctx, nota)
	if err != nil {
		return nil, translateUpsertError(err, notaUpsertErrors)
	}
	return created, nil
}

func (s *notaServiceImpl) ListAll(ctx context.Context, alunoID, provaID *int64) ([]*models.Nota, error) {
	return s.repo.FindAll(ctx, alunoID, provaID)
}

func (s *notaServiceImpl) FindByID(ctx context.Context, alunoID, provaID int64) (*models.Nota, error) {
	return s.repo.FindByID(ctx, alunoID, provaID)
}

func (s *notaServiceImpl) Update(ctx context.Context, alunoID, provaID int64, nota models.Nota) (*models.Nota, error) {
	toUpdate := models.Nota{
		AlunoID:    alunoID,
		ProvaID:    provaID,
		Valor:      nota.Valor,
		Observacao: nota.Observacao,
	}

	updated, err := s.repo.Update(ctx, toUpdate)
	if err != nil {
		return nil, translateUpsertError(err, notaUpsertErrors)
	}
	return updated, nil
}

// Delete needs no referential translation: nothing references a grade.
func (s *notaServiceImpl) Delete(ctx context.Context, alunoID, provaID int64) (bool, error) {
	return s.repo.Delete(ctx, alunoID, provaID)
}
