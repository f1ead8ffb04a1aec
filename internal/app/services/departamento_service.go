package services

import (
	"context"

	"registroacademico/internal/app/models"
	"registroacademico/internal/app/repositories"
)

var departamentoUpsertErrors = upsertErrorDescriptor{
	duplicateMessage: "Departamento com este nome já cadastrado.",
	integrityMessage: "Dados inválidos para o departamento.",
}

const departamentoDeleteConflict = "Não é possível remover o departamento porque existem registros relacionados."

// DepartamentoService defines the interface for department operations
type DepartamentoService interface {
	Create(ctx context.Context, departamento models.Departamento) (*models.Departamento, error)
	ListAll(ctx context.Context) ([]*models.Departamento, error)
	FindByID(ctx context.Context, id int64) (*models.Departamento, error)
	Update(ctx context.Context, id int64, departamento models.Departamento) (*models.Departamento, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type departamentoServiceImpl struct {
	repo repositories.DepartamentoRepository
}

// NewDepartamentoService creates a new department service
func NewDepartamentoService(repo repositories.DepartamentoRepository) DepartamentoService {
	return &departamentoServiceImpl{repo: repo}
}

func (s *departamentoServiceImpl) Create(ctx context.Context, departamento models.Departamento) (*models.Departamento, error) {
	created, err := s.repo.Create(ctx, departamento)
	if err != nil {
		return nil, translateUpsertError(err, departamentoUpsertErrors)
	}
	return created, nil
}

func (s *departamentoServiceImpl) ListAll(ctx context.Context) ([]*models.Departamento, error) {
	return s.repo.FindAll(ctx)
}

func (s *departamentoServiceImpl) FindByID(ctx context.Context, id int64) (*models.Departamento, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *departamentoServiceImpl) Update(ctx context.Context, id int64, departamento models.Departamento) (*models.Departamento, error) {
	toUpdate := models.Departamento{
		ID:    id,
		Nome:  departamento.Nome,
		Sigla: departamento.Sigla,
	}

	updated, err := s.repo.Update(ctx, toUpdate)
	if err != nil {
		return nil, translateUpsertError(err, departamentoUpsertErrors)
	}
	return updated, nil
}

func (s *departamentoServiceImpl) Delete(ctx context.Context, id int64) (bool, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, translateDeleteError(err, departamentoDeleteConflict)
	}
	return removed, nil
}
