package analysis

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tuncanbit/pairscope/internal/application/metrics"
	"github.com/tuncanbit/pairscope/internal/domain"
	"github.com/tuncanbit/pairscope/internal/domain/interfaces"
	"github.com/tuncanbit/pairscope/internal/domain/models"
)

// Narrator produces HTML-safe commentary for a derived report.
type Narrator interface {
	Generate(ctx context.Context, report *models.Report) (string, error)
}

type Renderer interface {
	Render(report *models.Report) (string, error)
}

type analysisService struct {
	marketData interfaces.MarketDataClient
	deriver    *metrics.Deriver
	narrator   Narrator
	renderer   Renderer
	logger     zerolog.Logger
}

func NewAnalysisService(
	marketData interfaces.MarketDataClient,
	deriver *metrics.Deriver,
	narrator Narrator,
	renderer Renderer,
	logger zerolog.Logger,
) IAnalysisService {
	return &analysisService{
		marketData: marketData,
		deriver:    deriver,
		narrator:   narrator,
		renderer:   renderer,
		logger:     logger,
	}
}

// Analyze runs fetch, derive, narrate and render in sequence. The first failing
// step ends the run.
func (s *analysisService) Analyze(ctx context.Context, req *models.AnalysisRequest) (*models.AnalysisResponse, error) {
	if !req.Authenticated {
		return nil, domain.ErrUnauthenticated
	}

	pairAddress := strings.TrimSpace(req.PairAddress)
	if pairAddress == "" {
		return nil, domain.ErrMissingAddress
	}

	startTime := time.Now()
	requestID := uuid.New().String()
	logger := s.logger.With().Str("request_id", requestID).Str("pair_address", pairAddress).Logger()

	logger.Info().Msg("Starting pair analysis")

	snapshot, err := s.fetchSnapshot(ctx, pairAddress)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to fetch pair snapshot")
		return nil, err
	}

	report := s.deriver.Derive(snapshot)

	analysis, err := s.narrator.Generate(ctx, report)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate narrative")
		return nil, err
	}
	report.Analysis = analysis

	html, err := s.renderer.Render(report)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to render report")
		return nil, err
	}

	response := &models.AnalysisResponse{
		RequestID:      requestID,
		HTML:           html,
		Report:         report,
		ProcessingTime: time.Since(startTime),
	}

	logger.Info().
		Str("token", report.TokenName).
		Dur("processing_time", response.ProcessingTime).
		Msg("Pair analysis completed")

	return response, nil
}

// fetchSnapshot loads pair stats, then token metadata if the stats name a token.
// Metadata is never requested when stats fail.
func (s *analysisService) fetchSnapshot(ctx context.Context, pairAddress string) (*models.PairSnapshot, error) {
	stats, err := s.marketData.GetPairStats(ctx, pairAddress)
	if err != nil {
		return nil, err
	}

	snapshot := &models.PairSnapshot{
		PairAddress: pairAddress,
		Stats:       stats,
		Metadata:    &models.TokenMetadata{},
	}

	if stats.TokenAddress == "" {
		return snapshot, nil
	}

	metadata, err := s.marketData.GetTokenMetadata(ctx, stats.TokenAddress)
	if err != nil {
		return nil, err
	}
	snapshot.Metadata = metadata

	return snapshot, nil
}
