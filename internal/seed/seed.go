package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"registroacademico/internal/app/models"
	"registroacademico/internal/app/repositories"
	"registroacademico/internal/config"
	"registroacademico/internal/pkg/auth"
)

// CreateDefaultData creates the default login account when it is missing,
// so a fresh database is immediately usable.
func CreateDefaultData(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	usuarioRepo := repositories.NewUsuarioRepository(dbPool)

	existing, err := usuarioRepo.FindByUsername(ctx, cfg.Seed.AdminUsername)
	if err != nil {
		return fmt.Errorf("checking default user: %w", err)
	}
	if existing != nil {
		lgr.Debug().Str("username", cfg.Seed.AdminUsername).Msg("Default user already present")
		return nil
	}

	hash, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("hashing default user password: %w", err)
	}

	_, err = usuarioRepo.Create(ctx, models.Usuario{
		Username:     cfg.Seed.AdminUsername,
		Nome:         cfg.Seed.AdminNome,
		PasswordHash: hash,
	})
	if err != nil {
		return fmt.Errorf("creating default user: %w", err)
	}

	lgr.Info().Str("username", cfg.Seed.AdminUsername).Msg("Default user created")
	return nil
}
