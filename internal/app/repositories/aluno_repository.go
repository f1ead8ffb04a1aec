package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"registroacademico/internal/app/models"
	"registroacademico/internal/pkg/sqlmeta"
)

// AlunoRepository handles database operations for students
type AlunoRepository interface {
	Create(ctx context.Context, aluno models.Aluno) (*models.Aluno, error)
	FindByID(ctx context.Context, id int64) (*models.Aluno, error)
	FindAll(ctx context.Context) ([]*models.Aluno, error)
	Update(ctx context.Context, aluno models.Aluno) (*models.Aluno, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

var alunoTable = sqlmeta.New("aluno", "id, ra, nome, email, departamento_id, data_nascimento").
	WithAudit().
	WithOrderBy("nome")

const alunoWriteColumns = "ra, nome, email, departamento_id, data_nascimento"

type alunoRepository struct {
	db *pgxpool.Pool
}

// NewAlunoRepository creates a new student repository
func NewAlunoRepository(db *pgxpool.Pool) AlunoRepository {
	return &alunoRepository{db: db}
}

func (r *alunoRepository) Create(ctx context.Context, aluno models.Aluno) (*models.Aluno, error) {
	row := r.db.QueryRow(ctx, alunoTable.InsertReturning(alunoWriteColumns),
		aluno.RA,
		aluno.Nome,
		aluno.Email,
		aluno.DepartamentoID,
		dateValue(aluno.DataNascimento),
	)
	return scanAluno(row)
}

func (r *alunoRepository) FindByID(ctx context.Context, id int64) (*models.Aluno, error) {
	row := r.db.QueryRow(ctx, alunoTable.SelectWhere("id"), id)
	aluno, err := scanAluno(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return aluno, err
}

func (r *alunoRepository) FindAll(ctx context.Context) ([]*models.Aluno, error) {
	rows, err := r.db.Query(ctx, alunoTable.SelectAll())
	if err != nil {
		return nil, fmt.Errorf("listing alunos: %w", err)
	}
	defer rows.Close()

	var alunos []*models.Aluno
	for rows.Next() {
		aluno, err := scanAluno(rows)
		if err != nil {
			return nil, err
		}
		alunos = append(alunos, aluno)
	}
	return alunos, rows.Err()
}

func (r *alunoRepository) Update(ctx context.Context, aluno models.Aluno) (*models.Aluno, error) {
	if aluno.ID == 0 {
		panic("aluno id must be set for update")
	}
	row := r.db.QueryRow(ctx, alunoTable.UpdateReturning(alunoWriteColumns, "id"),
		aluno.RA,
		aluno.Nome,
		aluno.Email,
		aluno.DepartamentoID,
		dateValue(aluno.DataNascimento),
		aluno.ID,
	)
	updated, err := scanAluno(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return updated, err
}

func (r *alunoRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, alunoTable.DeleteWhere("id"), id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanAluno(row pgx.Row) (*models.Aluno, error) {
	var aluno models.Aluno
	var nascimento, created, updated *time.Time
	err := row.Scan(
		&aluno.ID,
		&aluno.RA,
		&aluno.Nome,
		&aluno.Email,
		&aluno.DepartamentoID,
		&nascimento,
		&created,
		&updated,
	)
	if err != nil {
		return nil, err
	}
	aluno.DataNascimento = toDate(nascimento)
	aluno.CreatedAt = created
	aluno.UpdatedAt = updated
	return &aluno, nil
}
