package models

// Usuario represents a login account. The stored credential is a one-way
// hash and never leaves the backend.
type Usuario struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Nome         string `json:"nome"`
	PasswordHash string `json:"-"`
}
