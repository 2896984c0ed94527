package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tuncanbit/pairscope/internal/domain"
	"github.com/tuncanbit/pairscope/internal/domain/interfaces"
	"github.com/tuncanbit/pairscope/internal/domain/models"
	"github.com/tuncanbit/pairscope/pkg/config"
)

// maxErrorBody caps how much of an upstream error body is carried into errors.
const maxErrorBody = 512

type marketDataClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewMarketDataClient(cfg config.GatewayConfig, logger zerolog.Logger) interfaces.MarketDataClient {
	return &marketDataClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// GetPairStats retrieves pair statistics
func (c *marketDataClient) GetPairStats(ctx context.Context, pairAddress string) (*models.PairStats, error) {
	endpoint := fmt.Sprintf("/pairs/%s/stats", url.PathEscape(pairAddress))

	var stats models.PairStats
	if err := c.makeRequest(ctx, endpoint, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

// GetTokenMetadata retrieves token metadata
func (c *marketDataClient) GetTokenMetadata(ctx context.Context, tokenAddress string) (*models.TokenMetadata, error) {
	endpoint := fmt.Sprintf("/%s/metadata", url.PathEscape(tokenAddress))

	var metadata models.TokenMetadata
	if err := c.makeRequest(ctx, endpoint, &metadata); err != nil {
		return nil, err
	}

	return &metadata, nil
}

// makeRequest issues a single GET. Every failure is reported as *domain.RequestError.
func (c *marketDataClient) makeRequest(ctx context.Context, endpoint string, response interface{}) error {
	fullURL := c.baseURL + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return &domain.RequestError{URL: fullURL, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("url", fullURL).Msg("Gateway request failed")
		return &domain.RequestError{URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.RequestError{URL: fullURL, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error().Int("status", resp.StatusCode).Str("url", fullURL).Msg("Gateway returned error status")
		return &domain.RequestError{
			URL:        fullURL,
			StatusCode: resp.StatusCode,
			Body:       truncate(strings.TrimSpace(string(body)), maxErrorBody),
			Err:        fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	if err := json.Unmarshal(body, response); err != nil {
		return &domain.RequestError{URL: fullURL, Err: fmt.Errorf("failed to unmarshal response: %w", err)}
	}

	c.logger.Debug().Str("url", fullURL).Int("bytes", len(body)).Msg("Gateway response received")
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
