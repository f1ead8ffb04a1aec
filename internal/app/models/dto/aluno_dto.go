package dto

import "registroacademico/internal/app/models"

// AlunoRequest carries the mutable student fields for create and update.
type AlunoRequest struct {
	RA             string `json:"ra" binding:"required"`
	Nome           string `json:"nome" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
	DepartamentoID int64  `json:"departamentoId" binding:"required"`
	DataNascimento string `json:"dataNascimento" binding:"omitempty,datetime=2006-01-02,pastorpresent"`
}

// ToModel normalizes the payload into an Aluno without a key.
func (r AlunoRequest) ToModel() models.Aluno {
	aluno := models.Aluno{
		RA:             trim(r.RA),
		Nome:           trim(r.Nome),
		Email:          trimToNil(r.Email),
		DepartamentoID: r.DepartamentoID,
	}
	if r.DataNascimento != "" {
		// format already checked by the binding rules
		if date, err := models.ParseDate(r.DataNascimento); err == nil {
			aluno.DataNascimento = &date
		}
	}
	return aluno
}
