package models

import "time"

// Nota represents a grade for a (student, exam) pair. The pair is the key;
// there is at most one grade per combination.
type Nota struct {
	AlunoID    int64      `json:"alunoId"`
	ProvaID    int64      `json:"provaId"`
	Valor      float64    `json:"valor"`
	Observacao *string    `json:"observacao"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}
