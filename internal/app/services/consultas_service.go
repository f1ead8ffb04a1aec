package services

import (
	"context"

	"registroacademico/internal/app/models"
	"registroacademico/internal/app/repositories"
)

// ConsultasService defines the interface for the advanced report queries
type ConsultasService interface {
	RankingDepartamentos(ctx context.Context) ([]models.DepartamentoDesempenho, error)
	AlunosModalidades(ctx context.Context) ([]models.AlunoModalidadeEquilibrada, error)
	CoberturaNotas(ctx context.Context) ([]models.AlunoCoberturaNotas, error)
	ObterResumo(ctx context.Context) (*models.ConsultasAvancadasResumo, error)
}

type consultasServiceImpl struct {
	repo repositories.ConsultasRepository
}

// NewConsultasService creates a new report query service
func NewConsultasService(repo repositories.ConsultasRepository) ConsultasService {
	return &consultasServiceImpl{repo: repo}
}

func (s *consultasServiceImpl) RankingDepartamentos(ctx context.Context) ([]models.DepartamentoDesempenho, error) {
	return s.repo.RankingDepartamentos(ctx)
}

func (s *consultasServiceImpl) AlunosModalidades(ctx context.Context) ([]models.AlunoModalidadeEquilibrada, error) {
	return s.repo.AlunosModalidades(ctx)
}

func (s *consultasServiceImpl) CoberturaNotas(ctx context.Context) ([]models.AlunoCoberturaNotas, error) {
	return s.repo.CoberturaNotas(ctx)
}

// ObterResumo runs the three reports and returns them as a single payload.
// Empty reports come back as empty slices so the JSON body always carries
// the three arrays.
func (s *consultasServiceImpl) ObterResumo(ctx context.Context) (*models.ConsultasAvancadasResumo, error) {
	ranking, err := s.repo.RankingDepartamentos(ctx)
	if err != nil {
		return nil, err
	}
	modalidades, err := s.repo.AlunosModalidades(ctx)
	if err != nil {
		return nil, err
	}
	cobertura, err := s.repo.CoberturaNotas(ctx)
	if err != nil {
		return nil, err
	}

	resumo := &models.ConsultasAvancadasResumo{
		RankingDepartamentos: ranking,
		AlunosModalidades:    modalidades,
		CoberturaNotas:       cobertura,
	}
	if resumo.RankingDepartamentos == nil {
		resumo.RankingDepartamentos = []models.DepartamentoDesempenho{}
	}
	if resumo.AlunosModalidades == nil {
		resumo.AlunosModalidades = []models.AlunoModalidadeEquilibrada{}
	}
	if resumo.CoberturaNotas == nil {
		resumo.CoberturaNotas = []models.AlunoCoberturaNotas{}
	}
	return resumo, nil
}
