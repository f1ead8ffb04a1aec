package services

import (
	"context"

	"registroacademico/internal/app/models"
	"registroacademico/internal/app/repositories"
)

var provaUpsertErrors = upsertErrorDescriptor{
	duplicateMessage: "Já existe uma prova com este título na mesma data para o departamento.",
	integrityMessage: "Dados inválidos para a prova.",
}

const provaDeleteConflict = "Não é possível remover a prova porque existem registros relacionados."

// ProvaService defines the interface for exam operations
type ProvaService interface {
	Create(ctx context.Context, prova models.Prova) (*models.Prova, error)
	ListAll(ctx context.Context) ([]*models.Prova, error)
	FindByID(ctx context.Context, id int64) (*models.Prova, error)
	Update(ctx context.Context, id int64, prova models.Prova) (*models.Prova, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type provaServiceImpl struct {
	repo repositories.ProvaRepository
}

// NewProvaService creates a new exam service
func NewProvaService(repo repositories.ProvaRepository) ProvaService {
	return &provaServiceImpl{repo: repo}
}

func (s *provaServiceImpl) Create(ctx context.Context, prova models.Prova) (*models.Prova, error) {
	created, err := s.repo.Create(ctx, prova)
	if err != nil {
		return nil, translateUpsertError(err, provaUpsertErrors)
	}
	return created, nil
}

func (s *provaServiceImpl) ListAll(ctx context.Context) ([]*models.Prova, error) {
	return s.repo.FindAll(ctx)
}

func (s *provaServiceImpl) FindByID(ctx context.Context, id int64) (*models.Prova, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *provaServiceImpl) Update(ctx context.Context, id int64, prova models.Prova) (*models.Prova, error) {
	toUpdate := models.Prova{
		ID:             id,
		DepartamentoID: prova.DepartamentoID,
		Titulo:         prova.Titulo,
		Data:           prova.Data,
		Descricao:      prova.Descricao,
	}

	updated, err := s.repo.Update(ctx, toUpdate)
	if err != nil {
		return nil, translateUpsertError(err, provaUpsertErrors)
	}
	return updated, nil
}

func (s *provaServiceImpl) Delete(ctx context.Context, id int64) (bool, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, translateDeleteError(err, provaDeleteConflict)
	}
	return removed, nil
}
