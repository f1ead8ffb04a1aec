package main

import (
	"os"

	"registroacademico/internal/pkg/logger"
	"registroacademico/internal/server"
)

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Errors are already logged in detail by the setup functions.
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
