package dto

// LoginRequest carries the login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the identity returned on a successful login.
type LoginResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Nome     string `json:"nome"`
}

// MeResponse is the identity stored in the session.
type MeResponse struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// AuthErrorResponse is the fixed-shape error body of the auth endpoints.
type AuthErrorResponse struct {
	Error string `json:"error"`
}
