package insight

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *GeminiClient {
	return NewGeminiClient(GeminiConfig{
		APIKey:  "test-key",
		Model:   "gemini-3-pro-preview",
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
	})
}

func TestGenerateInsight(t *testing.T) {
	var gotPath, gotKey string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		gotBody, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"## Analysis\nSell more coffee."}]}}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	snap := Snapshot{
		Products: json.RawMessage(`[{"name":"Premium Coffee Beans","price":29.99}]`),
		Sales:    json.RawMessage(`[{"revenue":59.98}]`),
		Ads:      json.RawMessage(`[]`),
	}

	text, err := client.GenerateInsight(context.Background(), snap)
	require.NoError(t, err)

	assert.Equal(t, "## Analysis\nSell more coffee.", text)
	assert.Equal(t, "/v1beta/models/gemini-3-pro-preview:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)

	// The prompt embeds all three serialized collections
	var req generateRequest
	require.NoError(t, json.Unmarshal(gotBody, &req))
	require.Len(t, req.Contents, 1)
	require.Len(t, req.Contents[0].Parts, 1)
	prompt := req.Contents[0].Parts[0].Text
	assert.Contains(t, prompt, "Premium Coffee Beans")
	assert.Contains(t, prompt, `"revenue":59.98`)
	assert.Contains(t, prompt, "30-Day Growth Plan")
}

func TestGenerateInsightNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GenerateInsight(context.Background(), Snapshot{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGenerateInsightAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"error":{"code":403,"message":"API key invalid"}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GenerateInsight(context.Background(), Snapshot{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key invalid")
}

func TestGenerateInsightEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GenerateInsight(context.Background(), Snapshot{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}

func TestGenerateInsightUnreachableProvider(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	_, err := newTestClient(server.URL).GenerateInsight(context.Background(), Snapshot{})
	assert.Error(t, err)
}
