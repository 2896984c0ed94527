package clients

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"github.com/tuncanbit/pairscope/internal/domain/interfaces"
	"github.com/tuncanbit/pairscope/pkg/config"
)

var errEmptyCompletion = errors.New("completion returned no choices")

type narrativeClient struct {
	client *openai.Client
	model  string
	logger zerolog.Logger
}

func NewNarrativeClient(cfg config.NarrativeConfig, logger zerolog.Logger) interfaces.NarrativeClient {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{
		Timeout: cfg.Timeout,
	}

	return &narrativeClient{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		logger: logger,
	}
}

// Complete sends one system and one user message and returns the first choice.
func (c *narrativeClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		c.logger.Error().Err(err).Str("model", c.model).Msg("Chat completion failed")
		return "", fmt.Errorf("chat completion with model %s: %w", c.model, err)
	}

	if len(resp.Choices) == 0 {
		return "", errEmptyCompletion
	}

	c.logger.Debug().
		Str("model", c.model).
		Int("prompt_tokens", resp.Usage.PromptTokens).
		Int("completion_tokens", resp.Usage.CompletionTokens).
		Msg("Chat completion received")

	return resp.Choices[0].Message.Content, nil
}
