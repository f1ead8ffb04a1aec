package dto

import "registroacademico/internal/app/models"

// NotaCreateRequest carries a new grade. Valor is a pointer so a literal 0.0
// still satisfies the required rule.
type NotaCreateRequest struct {
	AlunoID    *int64   `json:"alunoId" binding:"required"`
	ProvaID    *int64   `json:"provaId" binding:"required"`
	Valor      *float64 `json:"valor" binding:"required,gte=0,lte=10"`
	Observacao string   `json:"observacao"`
}

// ToModel normalizes the payload into a Nota.
func (r NotaCreateRequest) ToModel() models.Nota {
	return models.Nota{
		AlunoID:    *r.AlunoID,
		ProvaID:    *r.ProvaID,
		Valor:      *r.Valor,
		Observacao: trimToNil(r.Observacao),
	}
}

// NotaUpdateRequest carries the mutable grade fields; the (aluno, prova) key
// comes from the path.
type NotaUpdateRequest struct {
	Valor      *float64 `json:"valor" binding:"required,gte=0,lte=10"`
	Observacao string   `json:"observacao"`
}

// ToModel normalizes the payload into a Nota without its key.
func (r NotaUpdateRequest) ToModel() models.Nota {
	return models.Nota{
		Valor:      *r.Valor,
		Observacao: trimToNil(r.Observacao),
	}
}
