package services

import (
	"context"

	"registroacademico/internal/app/models"
	"registroacademico/internal/app/repositories"
	"registroacademico/internal/pkg/apperrors"
	"registroacademico/internal/pkg/auth"
	"registroacademico/internal/pkg/session"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	// Login verifies credentials and opens a session, returning the
	// opaque token handed to the client.
	Login(ctx context.Context, username, password string) (string, *models.Usuario, error)
	// Me resolves the user attached to a session token.
	Me(ctx context.Context, token string) (*models.Usuario, error)
	// Logout invalidates the session token, if any.
	Logout(ctx context.Context, token string)
}

type authServiceImpl struct {
	usuarioRepo repositories.UsuarioRepository
	sessions    *session.Store
}

// NewAuthService creates a new authentication service
func NewAuthService(usuarioRepo repositories.UsuarioRepository, sessions *session.Store) AuthService {
	return &authServiceImpl{
		usuarioRepo: usuarioRepo,
		sessions:    sessions,
	}
}

func (s *authServiceImpl) Login(ctx context.Context, username, password string) (string, *models.Usuario, error) {
	usuario, err := s.usuarioRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	// Unknown user and wrong password are indistinguishable to the caller.
	if usuario == nil || !auth.CheckPassword(usuario.PasswordHash, password) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token := s.sessions.Create(usuario.ID, usuario.Nome)
	return token, usuario, nil
}

func (s *authServiceImpl) Me(ctx context.Context, token string) (*models.Usuario, error) {
	sess, ok := s.sessions.Get(token)
	if !ok {
		return nil, apperrors.ErrUnauthenticated
	}

	usuario, err := s.usuarioRepo.FindByID(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		s.sessions.Invalidate(token)
		return nil, apperrors.ErrUnauthenticated
	}
	return usuario, nil
}

func (s *authServiceImpl) Logout(ctx context.Context, token string) {
	if token != "" {
		s.sessions.Invalidate(token)
	}
}
