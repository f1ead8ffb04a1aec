package dto

import "registroacademico/internal/app/models"

// DepartamentoRequest carries the mutable department fields for create and update.
type DepartamentoRequest struct {
	Nome  string `json:"nome" binding:"required"`
	Sigla string `json:"sigla" binding:"required,min=1,max=10"`
}

// ToModel normalizes the payload into a Departamento without a key. The
// acronym is stored upper-cased.
func (r DepartamentoRequest) ToModel() models.Departamento {
	return models.Departamento{
		Nome:  trim(r.Nome),
		Sigla: upperSigla(r.Sigla),
	}
}
