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

// DepartamentoRepository handles database operations for departments
type DepartamentoRepository interface {
	Create(ctx context.Context, departamento models.Departamento) (*models.Departamento, error)
	FindByID(ctx context.Context, id int64) (*models.Departamento, error)
	FindAll(ctx context.Context) ([]*models.Departamento, error)
	Update(ctx context.Context, departamento models.Departamento) (*models.Departamento, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

var departamentoTable = sqlmeta.New("departamento", "id, nome, sigla").
	WithAudit().
	WithOrderBy("nome")

const departamentoWriteColumns = "nome, sigla"

type departamentoRepository struct {
	db *pgxpool.Pool
}

// NewDepartamentoRepository creates a new department repository
func NewDepartamentoRepository(db *pgxpool.Pool) DepartamentoRepository {
	return &departamentoRepository{db: db}
}

func (r *departamentoRepository) Create(ctx context.Context, departamento models.Departamento) (*models.Departamento, error) {
	row := r.db.QueryRow(ctx, departamentoTable.InsertReturning(departamentoWriteColumns),
		departamento.Nome,
		departamento.Sigla,
	)
	return scanDepartamento(row)
}

func (r *departamentoRepository) FindByID(ctx context.Context, id int64) (*models.Departamento, error) {
	row := r.db.QueryRow(ctx, departamentoTable.SelectWhere("id"), id)
	departamento, err := scanDepartamento(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return departamento, err
}

func (r *departamentoRepository) FindAll(ctx context.Context) ([]*models.Departamento, error) {
	rows, err := r.db.Query(ctx, departamentoTable.SelectAll())
	if err != nil {
		return nil, fmt.Errorf("listing departamentos: %w", err)
	}
	defer rows.Close()

	var departamentos []*models.Departamento
	for rows.Next() {
		departamento, err := scanDepartamento(rows)
		if err != nil {
			return nil, err
		}
		departamentos = append(departamentos, departamento)
	}
	return departamentos, rows.Err()
}

func (r *departamentoRepository) Update(ctx context.Context, departamento models.Departamento) (*models.Departamento, error) {
	if departamento.ID == 0 {
		panic("departamento id must be set for update")
	}
	row := r.db.QueryRow(ctx, departamentoTable.UpdateReturning(departamentoWriteColumns, "id"),
		departamento.Nome,
		departamento.Sigla,
		departamento.ID,
	)
	updated, err := scanDepartamento(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return updated, err
}

func (r *departamentoRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, departamentoTable.DeleteWhere("id"), id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanDepartamento(row pgx.Row) (*models.Departamento, error) {
	var departamento models.Departamento
	var created, updated *time.Time
	err := row.Scan(
		&departamento.ID,
		&departamento.Nome,
		&departamento.Sigla,
		&created,
		&updated,
	)
	if err != nil {
		return nil, err
	}
	departamento.CreatedAt = created
	departamento.UpdatedAt = updated
	return &departamento, nil
}
