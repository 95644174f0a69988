package embedding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NoneProviderReturnsNil(t *testing.T) {
	for _, name := range []string{"", "none", " NONE "} {
		e, err := New(Options{Provider: name})
		require.NoError(t, err)
		assert.Nil(t, e, "provider %q", name)
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New(Options{Provider: "bert"})
	assert.Error(t, err)
}

func TestNew_OpenAIRequiresKey(t *testing.T) {
	_, err := New(Options{Provider: ProviderOpenAI})
	assert.Error(t, err)

	e, err := New(Options{Provider: ProviderOpenAI, APIKey: "sk-test"})
	require.NoError(t, err)
	assert.NotNil(t, e)
}

func TestOllamaEmbed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/embed", r.URL.Path)

		var req ollamaEmbedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)

		out := ollamaEmbedResponse{}
		for i := range req.Input {
			out.Embeddings = append(out.Embeddings, []float32{float32(i), 1})
		}
		_ = json.NewEncoder(w).Encode(out)
	}))
	defer srv.Close()

	e := NewOllama(srv.URL+"/", "test-model")
	vectors, err := e.Embed(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{0, 1}, {1, 1}}, vectors)

	v, err := EmbedOne(context.Background(), e, "single")
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1}, v)
}

func TestOllamaEmbed_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewOllama(srv.URL, "missing").Embed(context.Background(), []string{"a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestOllamaEmbed_EmptyInput(t *testing.T) {
	vectors, err := NewOllama("http://unused", "m").Embed(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, vectors)
}
