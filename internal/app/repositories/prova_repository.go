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

// ProvaRepository handles database operations for exams
type ProvaRepository interface {
	Create(ctx context.Context, prova models.Prova) (*models.Prova, error)
	FindByID(ctx context.Context, id int64) (*models.Prova, error)
	FindAll(ctx context.Context) ([]*models.Prova, error)
	Update(ctx context.Context, prova models.Prova) (*models.Prova, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

var provaTable = sqlmeta.New("prova", "id, departamento_id, titulo, data, descricao").
	WithAudit().
	WithOrderBy("data DESC, titulo")

const provaWriteColumns = "departamento_id, titulo, data, descricao"

type provaRepository struct {
	db *pgxpool.Pool
}

// NewProvaRepository creates a new exam repository
func NewProvaRepository(db *pgxpool.Pool) ProvaRepository {
	return &provaRepository{db: db}
}

func (r *provaRepository) Create(ctx context.Context, prova models.Prova) (*models.Prova, error) {
	row := r.db.QueryRow(ctx, provaTable.InsertReturning(provaWriteColumns),
		prova.DepartamentoID,
		prova.Titulo,
		prova.Data.Time,
		prova.Descricao,
	)
	return scanProva(row)
}

func (r *provaRepository) FindByID(ctx context.Context, id int64) (*models.Prova, error) {
	row := r.db.QueryRow(ctx, provaTable.SelectWhere("id"), id)
	prova, err := scanProva(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return prova, err
}

func (r *provaRepository) FindAll(ctx context.Context) ([]*models.Prova, error) {
	rows, err := r.db.Query(ctx, provaTable.SelectAll())
	if err != nil {
		return nil, fmt.Errorf("listing provas: %w", err)
	}
	defer rows.Close()

	var provas []*models.Prova
	for rows.Next() {
		prova, err := scanProva(rows)
		if err != nil {
			return nil, err
		}
		provas = append(provas, prova)
	}
	return provas, rows.Err()
}

func (r *provaRepository) Update(ctx context.Context, prova models.Prova) (*models.Prova, error) {
	if prova.ID == 0 {
		panic("prova id must be set for update")
	}
	row := r.db.QueryRow(ctx, provaTable.UpdateReturning(provaWriteColumns, "id"),
		prova.DepartamentoID,
		prova.Titulo,
		prova.Data.Time,
		prova.Descricao,
		prova.ID,
	)
	updated, err := scanProva(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return updated, err
}

func (r *provaRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, provaTable.DeleteWhere("id"), id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanProva(row pgx.Row) (*models.Prova, error) {
	var prova models.Prova
	var data time.Time
	var created, updated *time.Time
	err := row.Scan(
		&prova.ID,
		&prova.DepartamentoID,
		&prova.Titulo,
		&data,
		&prova.Descricao,
		&created,
		&updated,
	)
	if err != nil {
		return nil, err
	}
	prova.Data = models.NewDate(data)
	prova.CreatedAt = created
	prova.UpdatedAt = updated
	return &prova, nil
}
