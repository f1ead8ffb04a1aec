package models

import "time"

// Prova represents an exam or project assessment owned by a department
type Prova struct {
	ID             int64      `json:"id"`
	DepartamentoID int64      `json:"departamentoId"`
	Titulo         string     `json:"titulo"`
	Data           Date       `json:"data"`
	Descricao      *string    `json:"descricao"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}
