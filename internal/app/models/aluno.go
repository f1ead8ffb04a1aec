package models

import "time"

// Aluno represents a student enrolled in a department
type Aluno struct {
	ID             int64      `json:"id"`
	RA             string     `json:"ra"`
	Nome           string     `json:"nome"`
	Email          *string    `json:"email"`
	DepartamentoID int64      `json:"departamentoId"`
	DataNascimento *Date      `json:"dataNascimento"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}
