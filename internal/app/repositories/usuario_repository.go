package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"registroacademico/internal/app/models"
	"registroacademico/internal/pkg/sqlmeta"
)

// UsuarioRepository handles database operations for login accounts
type UsuarioRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.Usuario, error)
	FindByID(ctx context.Context, id int64) (*models.Usuario, error)
	Create(ctx context.Context, usuario models.Usuario) (*models.Usuario, error)
}

var usuarioTable = sqlmeta.New("usuario", "id, username, nome, password_hash")

type usuarioRepository struct {
	db *pgxpool.Pool
}

// NewUsuarioRepository creates a new login account repository
func NewUsuarioRepository(db *pgxpool.Pool) UsuarioRepository {
	return &usuarioRepository{db: db}
}

func (r *usuarioRepository) FindByUsername(ctx context.Context, username string) (*models.Usuario, error) {
	row := r.db.QueryRow(ctx, usuarioTable.SelectWhere("username"), username)
	return scanUsuario(row)
}

func (r *usuarioRepository) FindByID(ctx context.Context, id int64) (*models.Usuario, error) {
	row := r.db.QueryRow(ctx, usuarioTable.SelectWhere("id"), id)
	return scanUsuario(row)
}

func (r *usuarioRepository) Create(ctx context.Context, usuario models.Usuario) (*models.Usuario, error) {
	row := r.db.QueryRow(ctx, usuarioTable.InsertReturning("username, nome, password_hash"),
		usuario.Username,
		usuario.Nome,
		usuario.PasswordHash,
	)
	var created models.Usuario
	err := row.Scan(&created.ID, &created.Username, &created.Nome, &created.PasswordHash)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func scanUsuario(row pgx.Row) (*models.Usuario, error) {
	var usuario models.Usuario
	err := row.Scan(&usuario.ID, &usuario.Username, &usuario.Nome, &usuario.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}
