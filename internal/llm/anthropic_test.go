package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoos-helper/advisor-api/pkg/config"
)

func TestAnthropicClientGenerate(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"Take CS 1110 "},{"type":"text","text":"first."}]}`))
	}))
	defer server.Close()

	client := NewAnthropicClient(config.ChatConfig{
		APIKey:         "test-key",
		BaseURL:        server.URL,
		Model:          "claude-sonnet-4-20250514",
		MaxTokens:      512,
		RequestTimeout: 5 * time.Second,
	})

	text, err := client.Generate(context.Background(), GenerateRequest{
		System:   "You are an advisor.",
		Messages: []Message{{Role: "user", Content: "What should I take first?"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Take CS 1110 first.", text)
	assert.Equal(t, "claude-sonnet-4-20250514", captured["model"])
	assert.Equal(t, float64(512), captured["max_tokens"])
	assert.Equal(t, "You are an advisor.", captured["system"])
}

func TestAnthropicClientGenerateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"type":"rate_limit_error","message":"rate limited"}}`))
	}))
	defer server.Close()

	client := NewAnthropicClient(config.ChatConfig{BaseURL: server.URL, RequestTimeout: 5 * time.Second})

	_, err := client.Generate(context.Background(), GenerateRequest{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}
