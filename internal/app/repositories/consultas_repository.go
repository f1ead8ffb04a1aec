package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"registroacademico/internal/app/models"
)

// ConsultasRepository executes the fixed read-only aggregate reports.
type ConsultasRepository interface {
	RankingDepartamentos(ctx context.Context) ([]models.DepartamentoDesempenho, error)
	AlunosModalidades(ctx context.Context) ([]models.AlunoModalidadeEquilibrada, error)
	CoberturaNotas(ctx context.Context) ([]models.AlunoCoberturaNotas, error)
}

const sqlRankingDepartamentos = `
	SELECT
	  d.id AS departamento_id,
	  d.nome AS departamento_nome,
	  ROUND(AVG(n.valor)::numeric, 2) AS media_notas,
	  MIN(n.valor) AS menor_nota,
	  MAX(n.valor) AS maior_nota,
	  COUNT(DISTINCT n.aluno_id) AS alunos_avaliados,
	  COUNT(*) AS notas_lancadas
	FROM departamento d
	JOIN aluno a ON a.departamento_id = d.id
	JOIN nota n ON n.aluno_id = a.id
	GROUP BY d.id, d.nome
	ORDER BY media_notas DESC, notas_lancadas DESC`

// Exams are classified as exam-type or project-type by a case-insensitive
// substring match on the title. A heuristic inherited from the product, kept
// as-is on purpose.
const sqlAlunosModalidades = `
	WITH alunos_prova AS (
	  SELECT n.aluno_id, COUNT(DISTINCT n.prova_id) AS avaliacoes_prova
	  FROM nota n
	  JOIN prova p ON p.id = n.prova_id
	  WHERE p.titulo ILIKE '%prova%'
	  GROUP BY n.aluno_id
	),
	alunos_projeto AS (
	  SELECT n.aluno_id, COUNT(DISTINCT n.prova_id) AS projetos_entregues
	  FROM nota n
	  JOIN prova p ON p.id = n.prova_id
	  WHERE p.titulo ILIKE '%projeto%'
	  GROUP BY n.aluno_id
	),
	intersecao AS (
	  SELECT aluno_id FROM alunos_prova
	  INTERSECT
	  SELECT aluno_id FROM alunos_projeto
	)
	SELECT
	  a.id AS aluno_id,
	  a.ra,
	  a.nome,
	  d.nome AS departamento_nome,
	  ap.avaliacoes_prova,
	  apr.projetos_entregues
	FROM intersecao i
	JOIN aluno a ON a.id = i.aluno_id
	JOIN departamento d ON d.id = a.departamento_id
	JOIN alunos_prova ap ON ap.aluno_id = i.aluno_id
	JOIN alunos_projeto apr ON apr.aluno_id = i.aluno_id
	ORDER BY a.nome`

const sqlCoberturaNotas = `
	SELECT
	  a.id AS aluno_id,
	  a.ra,
	  a.nome,
	  d.nome AS departamento_nome,
	  COUNT(n.prova_id) AS provas_avaliadas,
	  ROUND(COALESCE(AVG(n.valor), 0)::numeric, 2) AS media_notas,
	  CASE WHEN COUNT(n.prova_id) = 0 THEN TRUE ELSE FALSE END AS sem_notas
	FROM aluno a
	LEFT JOIN nota n ON n.aluno_id = a.id
	JOIN departamento d ON d.id = a.departamento_id
	GROUP BY a.id, a.ra, a.nome, d.nome
	ORDER BY sem_notas DESC, a.nome`

type consultasRepository struct {
	db *pgxpool.Pool
}

// NewConsultasRepository creates a new aggregates repository
func NewConsultasRepository(db *pgxpool.Pool) ConsultasRepository {
	return &consultasRepository{db: db}
}

func (r *consultasRepository) RankingDepartamentos(ctx context.Context) ([]models.DepartamentoDesempenho, error) {
	rows, err := r.db.Query(ctx, sqlRankingDepartamentos)
	if err != nil {
		return nil, fmt.Errorf("ranking departamentos: %w", err)
	}
	defer rows.Close()

	var ranking []models.DepartamentoDesempenho
	for rows.Next() {
		var item models.DepartamentoDesempenho
		if err := rows.Scan(
			&item.DepartamentoID,
			&item.DepartamentoNome,
			&item.MediaNotas,
			&item.MenorNota,
			&item.MaiorNota,
			&item.AlunosAvaliados,
			&item.NotasLancadas,
		); err != nil {
			return nil, err
		}
		ranking = append(ranking, item)
	}
	return ranking, rows.Err()
}

func (r *consultasRepository) AlunosModalidades(ctx context.Context) ([]models.AlunoModalidadeEquilibrada, error) {
	rows, err := r.db.Query(ctx, sqlAlunosModalidades)
	if err != nil {
		return nil, fmt.Errorf("alunos modalidades: %w", err)
	}
	defer rows.Close()

	var alunos []models.AlunoModalidadeEquilibrada
	for rows.Next() {
		var item models.AlunoModalidadeEquilibrada
		if err := rows.Scan(
			&item.AlunoID,
			&item.RA,
			&item.Nome,
			&item.DepartamentoNome,
			&item.AvaliacoesProva,
			&item.ProjetosEntregues,
		); err != nil {
			return nil, err
		}
		alunos = append(alunos, item)
	}
	return alunos, rows.Err()
}

func (r *consultasRepository) CoberturaNotas(ctx context.Context) ([]models.AlunoCoberturaNotas, error) {
	rows, err := r.db.Query(ctx, sqlCoberturaNotas)
	if err != nil {
		return nil, fmt.Errorf("cobertura notas: %w", err)
	}
	defer rows.Close()

	var cobertura []models.AlunoCoberturaNotas
	for rows.Next() {
		var item models.AlunoCoberturaNotas
		if err := rows.Scan(
			&item.AlunoID,
			&item.RA,
			&item.Nome,
			&item.DepartamentoNome,
			&item.ProvasAvaliadas,
			&item.MediaNotas,
			&item.SemNotas,
		); err != nil {
			return nil, err
		}
		cobertura = append(cobertura, item)
	}
	return cobertura, rows.Err()
}
