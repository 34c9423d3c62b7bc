package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaProviderComplete(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":"  Hello back  "},"done":true}`))
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL+"/", "mistral", srv.Client())
	text, err := p.Complete(context.Background(), CompletionRequest{
		System:    "be kind",
		Messages:  userPrompt("hello"),
		MaxTokens: 42,
	})

	require.NoError(t, err)
	assert.Equal(t, "Hello back", text)
	assert.Equal(t, "mistral", got["model"])
	assert.Equal(t, false, got["stream"])

	msgs := got["messages"].([]interface{})
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].(map[string]interface{})["role"])
	assert.Equal(t, "hello", msgs[1].(map[string]interface{})["content"])
	assert.EqualValues(t, 42, got["options"].(map[string]interface{})["num_predict"])
}

func TestOllamaProviderErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "", srv.Client())
	_, err := p.Complete(context.Background(), CompletionRequest{Messages: userPrompt("hi")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ollama API error (404)")

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":""},"done":true}`))
	}))
	defer empty.Close()

	_, err = NewOllamaProvider(empty.URL, "", empty.Client()).Complete(context.Background(), CompletionRequest{Messages: userPrompt("hi")})
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestOllamaProviderDefaults(t *testing.T) {
	p := NewOllamaProvider("", "", nil)
	assert.Equal(t, "http://localhost:11434", p.baseURL)
	assert.Equal(t, "llama3", p.model)
	assert.Equal(t, "ollama", p.Name())
}
