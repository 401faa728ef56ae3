package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiTestClient(t *testing.T, handler http.HandlerFunc) *GeminiClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewGeminiClient(GeminiConfig{
		APIKey:   "test-key",
		Model:    "gemini-pro",
		Endpoint: srv.URL,
	})
}

func TestGenerateContentSuccess(t *testing.T) {
	var gotPath string
	var gotBody generateContentRequest

	client := geminiTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"analysis goes here"}]}}]}`))
	})

	text, err := client.GenerateContent(context.Background(), "analyze this")
	require.NoError(t, err)
	assert.Equal(t, "analysis goes here", text)

	assert.Equal(t, "/models/gemini-pro:generateContent", gotPath)
	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.Equal(t, "analyze this", gotBody.Contents[0].Parts[0].Text)
	assert.Equal(t, 0.7, gotBody.GenerationConfig.Temperature)
	assert.Equal(t, 800, gotBody.GenerationConfig.MaxOutputTokens)
}

func TestGenerateContentNoAPIKey(t *testing.T) {
	client := NewGeminiClient(GeminiConfig{Endpoint: "http://unused"})

	_, err := client.GenerateContent(context.Background(), "prompt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrServiceUnavailable))
}

func TestGenerateContentNonSuccessStatus(t *testing.T) {
	client := geminiTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := client.GenerateContent(context.Background(), "prompt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrServiceUnavailable))
}

func TestGenerateContentAPIErrorField(t *testing.T) {
	client := geminiTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"invalid model"}}`))
	})

	_, err := client.GenerateContent(context.Background(), "prompt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrServiceUnavailable))
	assert.Contains(t, err.Error(), "invalid model")
}

func TestGenerateContentUnparseableBodyIsNotAnError(t *testing.T) {
	client := geminiTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>definitely not json</html>"))
	})

	text, err := client.GenerateContent(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestGenerateContentNoCandidates(t *testing.T) {
	client := geminiTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	})

	text, err := client.GenerateContent(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestGenerateContentUnreachableHost(t *testing.T) {
	client := NewGeminiClient(GeminiConfig{
		APIKey:   "test-key",
		Endpoint: "http://127.0.0.1:1",
	})

	_, err := client.GenerateContent(context.Background(), "prompt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrServiceUnavailable))
}
