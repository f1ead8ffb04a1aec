package repositories

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"registroacademico/internal/app/models"
)

// Repositories holds all the repository instances
type Repositories struct {
	AlunoRepository        AlunoRepository
	DepartamentoRepository DepartamentoRepository
	ProvaRepository        ProvaRepository
	NotaRepository         NotaRepository
	UsuarioRepository      UsuarioRepository
	ConsultasRepository    ConsultasRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AlunoRepository:        NewAlunoRepository(db),
		DepartamentoRepository: NewDepartamentoRepository(db),
		ProvaRepository:        NewProvaRepository(db),
		NotaRepository:         NewNotaRepository(db),
		UsuarioRepository:      NewUsuarioRepository(db),
		ConsultasRepository:    NewConsultasRepository(db),
	}
}

// dateValue converts an optional Date into a query argument, NULL when unset.
func dateValue(d *models.Date) any {
	if d == nil {
		return nil
	}
	return d.Time
}

// toDate converts a nullable date column into an optional Date.
func toDate(t *time.Time) *models.Date {
	if t == nil {
		return nil
	}
	date := models.NewDate(*t)
	return &date
}
