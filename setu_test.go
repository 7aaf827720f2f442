package setu

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhartisetu/setu/pkg/errors"
	"github.com/dhartisetu/setu/pkg/logging"
)

// newTestClient starts a server with handler and returns a client pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) (*Client, *logging.TestLogger) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	tl := logging.NewTestLogger(t)
	opts = append([]Option{WithBaseURL(server.URL), WithLogger(tl.Logger)}, opts...)
	client, err := New(opts...)
	require.NoError(t, err)
	return client, tl
}

// unsetAPIURL clears the setu variables and points the config file at
// nothing, so only options can configure the client.
func unsetAPIURL(t *testing.T) Option {
	t.Helper()
	t.Setenv("SETU_API_URL", "")
	t.Setenv("VITE_API_URL", "")
	t.Setenv("SETU_TIMEOUT", "")
	return WithConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
}

func TestBaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://backend.example", "https://backend.example/api/v1"},
		{"https://backend.example/", "https://backend.example/api/v1"},
		{"https://backend.example/api/v1", "https://backend.example/api/v1"},
		{" http://localhost:8000 ", "http://localhost:8000/api/v1"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BaseURL(tt.in), "BaseURL(%q)", tt.in)
	}
}

func TestNew(t *testing.T) {
	t.Run("explicit base URL", func(t *testing.T) {
		client, err := New(unsetAPIURL(t), WithBaseURL("https://backend.example"))
		require.NoError(t, err)
		assert.Equal(t, "https://backend.example/api/v1", client.BaseURL())
		assert.Equal(t, 120*time.Second, client.gateway.Timeout())
	})

	t.Run("explicit base URL ignores the environment", func(t *testing.T) {
		cfgFile := unsetAPIURL(t)
		t.Setenv("SETU_API_URL", "http://env.example")
		t.Setenv("SETU_TIMEOUT", "30s")

		client, err := New(cfgFile, WithBaseURL("https://backend.example"))
		require.NoError(t, err)
		assert.Equal(t, "https://backend.example/api/v1", client.BaseURL())
		assert.Equal(t, 120*time.Second, client.gateway.Timeout())
	})

	t.Run("from environment", func(t *testing.T) {
		cfgFile := unsetAPIURL(t)
		t.Setenv("SETU_API_URL", "http://localhost:8000")
		t.Setenv("SETU_TIMEOUT", "30s")

		client, err := New(cfgFile)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8000/api/v1", client.BaseURL())
		assert.Equal(t, 30*time.Second, client.gateway.Timeout())
	})

	t.Run("legacy variable", func(t *testing.T) {
		cfgFile := unsetAPIURL(t)
		t.Setenv("VITE_API_URL", "https://legacy.example")

		client, err := New(cfgFile)
		require.NoError(t, err)
		assert.Equal(t, "https://legacy.example/api/v1", client.BaseURL())
	})

	t.Run("missing base URL fails fast", func(t *testing.T) {
		_, err := New(unsetAPIURL(t))
		require.Error(t, err)
		assert.True(t, errors.IsConfigError(err))
		assert.Contains(t, err.Error(), "SETU_API_URL")
	})

	t.Run("malformed base URL", func(t *testing.T) {
		_, err := New(unsetAPIURL(t), WithBaseURL("undefined"))
		require.Error(t, err)
		assert.True(t, errors.IsConfigError(err))
	})

	t.Run("invalid timeout", func(t *testing.T) {
		_, err := New(WithBaseURL("https://backend.example"), WithTimeout(0))
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("groups share one gateway", func(t *testing.T) {
		client, err := New(WithBaseURL("https://backend.example"), WithTimeout(time.Second))
		require.NoError(t, err)
		for _, g := range []any{
			client.Location(), client.PlantDisease(), client.Soil(), client.Crop(),
			client.Weather(), client.Market(), client.Water(),
		} {
			assert.NotNil(t, g)
		}
		assert.Same(t, client, client.Market().c)
	})
}

func TestWithHeader(t *testing.T) {
	got := make(chan string, 1)
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got <- r.Header.Get("X-Client")
		_, _ = w.Write([]byte(`{"states":["Kerala"]}`))
	}, WithHeader("X-Client", "setu-test"))

	resp := client.Location().GetStates(context.Background())
	assert.Equal(t, []any{"Kerala"}, resp["states"])
	assert.Equal(t, "setu-test", <-got)
}
