package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"registroacademico/internal/app/models"
)

type fakeConsultasRepository struct {
	ranking     []models.DepartamentoDesempenho
	modalidades []models.AlunoModalidadeEquilibrada
	cobertura   []models.AlunoCoberturaNotas
	err         error
}

func (f *fakeConsultasRepository) RankingDepartamentos(ctx context.Context) ([]models.DepartamentoDesempenho, error) {
	return f.ranking, f.err
}

func (f *fakeConsultasRepository) AlunosModalidades(ctx context.Context) ([]models.AlunoModalidadeEquilibrada, error) {
	return f.modalidades, f.err
}

func (f *fakeConsultasRepository) CoberturaNotas(ctx context.Context) ([]models.AlunoCoberturaNotas, error) {
	return f.cobertura, f.err
}

func TestConsultasServiceObterResumo(t *testing.T) {
	repo := &fakeConsultasRepository{
		ranking: []models.DepartamentoDesempenho{
			{DepartamentoID: 1, DepartamentoNome: "Computação", MediaNotas: 8.25, NotasLancadas: 12},
		},
		cobertura: []models.AlunoCoberturaNotas{
			{AlunoID: 3, RA: "2023001", Nome: "Ana", SemNotas: true},
		},
	}
	service := NewConsultasService(repo)

	resumo, err := service.ObterResumo(context.Background())

	require.NoError(t, err)
	require.NotNil(t, resumo)
	assert.Len(t, resumo.RankingDepartamentos, 1)
	assert.Len(t, resumo.CoberturaNotas, 1)
	// Empty reports serialize as [] rather than null.
	assert.NotNil(t, resumo.AlunosModalidades)
	assert.Empty(t, resumo.AlunosModalidades)
}

func TestConsultasServiceObterResumoPropagatesErrors(t *testing.T) {
	boom := errors.New("query timeout")
	service := NewConsultasService(&fakeConsultasRepository{err: boom})

	resumo, err := service.ObterResumo(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, resumo)
}
