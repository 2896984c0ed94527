package interfaces

import (
	"context"

	"github.com/tuncanbit/pairscope/internal/domain/models"
)

// MarketDataClient talks to the on-chain market data gateway.
type MarketDataClient interface {
	// GetPairStats retrieves trading statistics for a pair address
	GetPairStats(ctx context.Context, pairAddress string) (*models.PairStats, error)

	// GetTokenMetadata retrieves supply and valuation data for a token address
	GetTokenMetadata(ctx context.Context, tokenAddress string) (*models.TokenMetadata, error)
}

// NarrativeClient sends a single system/user exchange to a chat-completion service.
type NarrativeClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
