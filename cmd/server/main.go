package main

import (
	"log/slog"
	"os"

	"github.com/nfrund/hireboard/internal/config"
	"github.com/nfrund/hireboard/internal/logging"
	"github.com/nfrund/hireboard/internal/server"
)

func main() {
	cfg, err := config.Load()
	logging.New()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	s := server.New(cfg, slog.Default())
	s.RegisterRoutes()

	if err := s.Start(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
