package simulation

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/emergency-response-dashboard/internal/config"
	"github.com/emergency-response-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFetchJSON(t *testing.T) {
	t.Run("decodes body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			w.Write([]byte(`{"message":"Hello, world!"}`))
		}))
		defer server.Close()

		var out map[string]string
		require.NoError(t, FetchJSON(context.Background(), server.Client(), server.URL, &out))
		assert.Equal(t, "Hello, world!", out["message"])
	})

	t.Run("non-2xx status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		var out map[string]string
		err := FetchJSON(context.Background(), server.Client(), server.URL, &out)
		require.Error(t, err)
		assert.False(t, errors.Is(err, domain.ErrFetchAborted))
		assert.Contains(t, err.Error(), "status: 503")
	})

	t.Run("aborted by caller", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer server.Close()
		defer close(release)

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(50 * time.Millisecond)
			cancel()
		}()

		var out map[string]string
		err := FetchJSON(ctx, server.Client(), server.URL, &out)
		assert.ErrorIs(t, err, domain.ErrFetchAborted)
	})
}

func TestStatusClient_Status(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/", r.URL.Path)
		w.Write([]byte(`{"message":"Hello, world!"}`))
	}))
	defer server.Close()

	client := NewStatusClient(&config.SimulationConfig{
		BaseURL:       server.URL + "/",
		StatusTimeout: time.Second,
	}, zap.NewNop())

	doc, err := client.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!", doc["message"])
}
