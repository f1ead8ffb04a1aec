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

// NotaRepository handles database operations for grades. The key is the
// (aluno, prova) pair.
type NotaRepository interface {
	Create(ctx context.Context, nota models.Nota) (*models.Nota, error)
	FindByID(ctx context.Context, alunoID, provaID int64) (*models.Nota, error)
	FindAll(ctx context.Context, alunoID, provaID *int64) ([]*models.Nota, error)
	Update(ctx context.Context, nota models.Nota) (*models.Nota, error)
	Delete(ctx context.Context, alunoID, provaID int64) (bool, error)
}

var notaTable = sqlmeta.New("nota", "aluno_id, prova_id, valor, observacao").
	WithAudit().
	WithOrderBy("prova_id, aluno_id")

const (
	notaKeyColumns   = "aluno_id, prova_id"
	notaWriteColumns = "valor, observacao"
)

type notaRepository struct {
	db *pgxpool.Pool
}

// NewNotaRepository creates a new grade repository
func NewNotaRepository(db *pgxpool.Pool) NotaRepository {
	return &notaRepository{db: db}
}

func (r *notaRepository) Create(ctx context.Context, nota models.Nota) (*models.Nota, error) {
	row := r.db.QueryRow(ctx, notaTable.InsertReturning("aluno_id, prova_id, valor, observacao"),
		nota.AlunoID,
		nota.ProvaID,
		nota.Valor,
		nota.Observacao,
	)
	return scanNota(row)
}

func (r *notaRepository) FindByID(ctx context.Context, alunoID, provaID int64) (*models.Nota, error) {
	row := r.db.QueryRow(ctx, notaTable.SelectWhere(notaKeyColumns), alunoID, provaID)
	nota, err := scanNota(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return nota, err
}

// notaFilterSQL builds the filtered select, appending predicates only for
// the filters actually supplied, with the table's declared ordering.
func notaFilterSQL(alunoID, provaID *int64) (string, []any) {
	sql := notaTable.BaseSelect()
	var args []any

	if alunoID != nil {
		args = append(args, *alunoID)
		sql += fmt.Sprintf(" WHERE aluno_id = $%d", len(args))
	}
	if provaID != nil {
		args = append(args, *provaID)
		clause := " WHERE"
		if alunoID != nil {
			clause = " AND"
		}
		sql += fmt.Sprintf("%s prova_id = $%d", clause, len(args))
	}
	return sql + " ORDER BY " + notaTable.OrderBy(), args
}

func (r *notaRepository) FindAll(ctx context.Context, alunoID, provaID *int64) ([]*models.Nota, error) {
	sql, args := notaFilterSQL(alunoID, provaID)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("listing notas: %w", err)
	}
	defer rows.Close()

	var notas []*models.Nota
	for rows.Next() {
		nota, err := scanNota(rows)
		if err != nil {
			return nil, err
		}
		notas = append(notas, nota)
	}
	return notas, rows.Err()
}

func (r *notaRepository) Update(ctx context.Context, nota models.Nota) (*models.Nota, error) {
	if nota.AlunoID == 0 || nota.ProvaID == 0 {
		panic("nota key must be set for update")
	}
	row := r.db.QueryRow(ctx, notaTable.UpdateReturning(notaWriteColumns, notaKeyColumns),
		nota.Valor,
		nota.Observacao,
		nota.AlunoID,
		nota.ProvaID,
	)
	updated, err := scanNota(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return updated, err
}

func (r *notaRepository) Delete(ctx context.Context, alunoID, provaID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, notaTable.DeleteWhere(notaKeyColumns), alunoID, provaID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanNota(row pgx.Row) (*models.Nota, error) {
	var nota models.Nota
	var created, updated *time.Time
	err := row.Scan(
		&nota.AlunoID,
		&nota.ProvaID,
		&nota.Valor,
		&nota.Observacao,
		&created,
		&updated,
	)
	if err != nil {
		return nil, err
	}
	nota.CreatedAt = created
	nota.UpdatedAt = updated
	return &nota, nil
}
