package dto

import "registroacademico/internal/app/models"

// ProvaRequest carries the mutable exam fields for create and update.
type ProvaRequest struct {
	DepartamentoID int64  `json:"departamentoId" binding:"required"`
	Titulo         string `json:"titulo" binding:"required"`
	Data           string `json:"data" binding:"required,datetime=2006-01-02"`
	Descricao      string `json:"descricao"`
}

// ToModel normalizes the payload into a Prova without a key.
func (r ProvaRequest) ToModel() models.Prova {
	prova := models.Prova{
		DepartamentoID: r.DepartamentoID,
		Titulo:         trim(r.Titulo),
		Descricao:      trimToNil(r.Descricao),
	}
	if date, err := models.ParseDate(r.Data); err == nil {
		prova.Data = date
	}
	return prova
}
