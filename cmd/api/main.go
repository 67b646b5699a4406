package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/oralabs/ora/internal/pkg/logger"
	"github.com/oralabs/ora/internal/server"
)

// @title ORA API
// @version 1.0
// @description Backend for the ORA social-coordination app: curated activities, participation, group chat, friends and notifications.

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	// Load .env before config; missing file is fine.
	_ = godotenv.Load()

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
