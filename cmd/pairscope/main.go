package main

import (
	"github.com/tuncanbit/pairscope/internal/app"
	"github.com/tuncanbit/pairscope/pkg/config"
	"github.com/tuncanbit/pairscope/pkg/logger"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log = logger.NewWithConfig(cfg.Logger)

	srv, err := app.Bootstrap(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to bootstrap application")
	}

	srv.Start()
}
