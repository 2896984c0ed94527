package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuncanbit/pairscope/pkg/config"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func TestNarrativeClient_Complete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req chatRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			return
		}
		assert.Equal(t, "gpt-4", req.Model)
		if !assert.Len(t, req.Messages, 2) {
			return
		}
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "rubric", req.Messages[0].Content)
		assert.Equal(t, "user", req.Messages[1].Role)
		assert.Equal(t, "metrics", req.Messages[1].Content)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-4",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Looks fine.\nOverall Score: 70/100"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
		}`))
	}))
	defer server.Close()

	client := NewNarrativeClient(config.NarrativeConfig{
		BaseURL: server.URL + "/v1",
		APIKey:  "sk-test",
		Model:   "gpt-4",
		Timeout: 5 * time.Second,
	}, zerolog.Nop())

	text, err := client.Complete(context.Background(), "rubric", "metrics")
	require.NoError(t, err)
	assert.Equal(t, "Looks fine.\nOverall Score: 70/100", text)
}

func TestNarrativeClient_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "chatcmpl-2", "object": "chat.completion", "choices": []}`))
	}))
	defer server.Close()

	client := NewNarrativeClient(config.NarrativeConfig{BaseURL: server.URL + "/v1", Model: "gpt-4"}, zerolog.Nop())

	_, err := client.Complete(context.Background(), "rubric", "metrics")
	assert.ErrorIs(t, err, errEmptyCompletion)
}

func TestNarrativeClient_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error"}}`))
	}))
	defer server.Close()

	client := NewNarrativeClient(config.NarrativeConfig{BaseURL: server.URL + "/v1", APIKey: "bad", Model: "gpt-4"}, zerolog.Nop())

	_, err := client.Complete(context.Background(), "rubric", "metrics")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Incorrect API key provided")
}
