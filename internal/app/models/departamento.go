package models

import "time"

// Departamento represents an academic department
type Departamento struct {
	ID        int64      `json:"id"`
	Nome      string     `json:"nome"`
	Sigla     string     `json:"sigla"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
