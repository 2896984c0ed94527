package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tuncanbit/pairscope/internal/application/analysis"
	authservice "github.com/tuncanbit/pairscope/internal/application/auth"
	"github.com/tuncanbit/pairscope/internal/application/metrics"
	"github.com/tuncanbit/pairscope/internal/application/narrative"
	"github.com/tuncanbit/pairscope/internal/application/presenter"
	"github.com/tuncanbit/pairscope/internal/infrastructure/http/clients"
	"github.com/tuncanbit/pairscope/internal/server"
	"github.com/tuncanbit/pairscope/pkg/config"
)

// Bootstrap wires clients, services and the HTTP server from configuration.
func Bootstrap(cfg *config.Config, logger zerolog.Logger) (*server.Server, error) {
	if cfg.Gateway.APIKey == "" {
		logger.Warn().Msg("Gateway API key not configured")
	}
	if cfg.Narrative.APIKey == "" {
		logger.Warn().Msg("Narrative API key not configured")
	}

	marketDataClient := clients.NewMarketDataClient(cfg.Gateway, logger)
	narrativeClient := clients.NewNarrativeClient(cfg.Narrative, logger)

	reportPresenter, err := presenter.New()
	if err != nil {
		return nil, fmt.Errorf("failed to load report templates: %w", err)
	}

	analysisService := analysis.NewAnalysisService(
		marketDataClient,
		metrics.NewDeriver(metrics.ThresholdsFromConfig(cfg.RatioThresholds)),
		narrative.NewGenerator(narrativeClient, logger),
		reportPresenter,
		logger,
	)

	authService, err := authservice.NewAuthService(cfg.Auth, logger)
	if err != nil {
		return nil, err
	}

	srv, err := server.New(cfg, analysisService, authService, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build server: %w", err)
	}

	return srv, nil
}
