package main

import (
	"os"

	"github.com/okan/enrollment/internal/pkg/logger"
	"github.com/okan/enrollment/internal/server"
)

// @title Enrollment API
// @version 1.0
// @description CRUD HTTP API for student enrollment records

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT bearer token obtained from POST /login

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
