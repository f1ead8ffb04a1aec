package services

import (
	"context"

	"registroacademico/internal/app/models"
	"registroacademico/internal/app/repositories"
)

var alunoUpsertErrors = upsertErrorDescriptor{
	duplicateMessage: "RA ou e-mail já cadastrado.",
	integrityMessage: "Dados inválidos para o aluno.",
}

const alunoDeleteConflict = "Não é possível remover o aluno porque existem registros relacionados."

// AlunoService defines the interface for student operations
type AlunoService interface {
	Create(ctx context.Context, aluno models.Aluno) (*models.Aluno, error)
	ListAll(ctx context.Context) ([]*models.Aluno, error)
	FindByID(ctx context.Context, id int64) (*models.Aluno, error)
	Update(ctx context.Context, id int64, aluno models.Aluno) (*models.Aluno, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type alunoServiceImpl struct {
	repo repositories.AlunoRepository
}

// NewAlunoService creates a new student service
func NewAlunoService(repo repositories.AlunoRepository) AlunoService {
	return &alunoServiceImpl{repo: repo}
}

func (s *alunoServiceImpl) Create(ctx context.Context, aluno models.Aluno) (*models.Aluno, error) {
	created, err := s.repo.Create(ctx, aluno)
	if err != nil {
		return nil, translateUpsertError(err, alunoUpsertErrors)
	}
	return created, nil
}

func (s *alunoServiceImpl) ListAll(ctx context.Context) ([]*models.Aluno, error) {
	return s.repo.FindAll(ctx)
}

func (s *alunoServiceImpl) FindByID(ctx context.Context, id int64) (*models.Aluno, error) {
	return s.repo.FindByID(ctx, id)
}

// Update builds the full replacement entity from the path-supplied key and
// the mutable fields of the payload. Returns nil when no row matched.
func (s *alunoServiceImpl) Update(ctx context.Context, id int64, aluno models.Aluno) (*models.Aluno, error) {
	toUpdate := models.Aluno{
		ID:             id,
		RA:             aluno.RA,
		Nome:           aluno.Nome,
		Email:          aluno.Email,
		DepartamentoID: aluno.DepartamentoID,
		DataNascimento: aluno.DataNascimento,
	}

	updated, err := s.repo.Update(ctx, toUpdate)
	if err != nil {
		return nil, translateUpsertError(err, alunoUpsertErrors)
	}
	return updated, nil
}

func (s *alunoServiceImpl) Delete(ctx context.Context, id int64) (bool, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, translateDeleteError(err, alunoDeleteConflict)
	}
	return removed, nil
}
