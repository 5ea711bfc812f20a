package generator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_ExpandQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "help me write", req["query"])

		json.NewEncoder(w).Encode(Expansion{
			Intent:   "find writing tools",
			Keywords: []string{"copywriting", "writing"},
		})
	}))
	defer server.Close()

	client := NewHTTPClient(DefaultClientConfig(server.URL), nil)

	keywords, err := client.ExpandQuery(context.Background(), "help me write")
	require.NoError(t, err)
	assert.Equal(t, []string{"copywriting", "writing"}, keywords)
}

func TestHTTPClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewHTTPClient(DefaultClientConfig(server.URL), nil)

	_, err := client.ExpandQuery(context.Background(), "anything")
	assert.Error(t, err)
}

func TestHTTPClient_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	config := DefaultClientConfig(server.URL)
	config.FailureThreshold = 3
	client := NewHTTPClient(config, nil)

	for i := 0; i < 3; i++ {
		_, err := client.ExpandQuery(context.Background(), "q")
		require.Error(t, err)
	}

	// Breaker is now open: no further requests reach the server.
	_, err := client.ExpandQuery(context.Background(), "q")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, int32(3), hits.Load())
}

func TestStaticExpander(t *testing.T) {
	keywords, err := StaticExpander{}.ExpandQuery(context.Background(), "Video Voice")
	require.NoError(t, err)
	assert.Equal(t, []string{"video", "editing", "animation", "voice", "audio", "speech"}, keywords)
}

type failingExpander struct{}

func (failingExpander) ExpandQuery(ctx context.Context, query string) ([]string, error) {
	return nil, errors.New("down")
}

func TestFallback(t *testing.T) {
	fallback := NewFallback(failingExpander{}, nil)

	keywords, err := fallback.ExpandQuery(context.Background(), "code")
	require.NoError(t, err)
	assert.Equal(t, []string{"code", "coding", "programming"}, keywords)
}
