package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhartisetu/setu/pkg/errors"
)

func TestAPIURL(t *testing.T) {
	t.Run("primary variable", func(t *testing.T) {
		t.Setenv("SETU_API_URL", "https://backend.example")
		t.Setenv("VITE_API_URL", "https://legacy.example")

		url, err := APIURL(New(filepath.Join(t.TempDir(), "none.yaml")))
		require.NoError(t, err)
		assert.Equal(t, "https://backend.example", url)
	})

	t.Run("legacy variable", func(t *testing.T) {
		t.Setenv("SETU_API_URL", "")
		t.Setenv("VITE_API_URL", "https://legacy.example")

		url, err := APIURL(New(filepath.Join(t.TempDir(), "none.yaml")))
		require.NoError(t, err)
		assert.Equal(t, "https://legacy.example", url)
	})

	t.Run("missing", func(t *testing.T) {
		t.Setenv("SETU_API_URL", "")
		t.Setenv("VITE_API_URL", "")

		_, err := APIURL(New(filepath.Join(t.TempDir(), "none.yaml")))
		require.Error(t, err)
		assert.True(t, errors.IsConfigError(err))
		assert.Contains(t, err.Error(), "SETU_API_URL")
	})
}

func TestConfigFile(t *testing.T) {
	t.Setenv("SETU_API_URL", "")
	t.Setenv("VITE_API_URL", "")
	t.Setenv("SETU_TIMEOUT", "")

	path := filepath.Join(t.TempDir(), "setu.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: http://localhost:8000\ntimeout: 30s\n"), 0o600))

	v := New(path)
	url, err := APIURL(v)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", url)
	assert.Equal(t, 30*time.Second, Timeout(v))
}

func TestTimeout(t *testing.T) {
	t.Setenv("SETU_TIMEOUT", "")
	assert.Equal(t, 120*time.Second, Timeout(New(filepath.Join(t.TempDir(), "none.yaml"))))

	t.Setenv("SETU_TIMEOUT", "45s")
	assert.Equal(t, 45*time.Second, Timeout(New(filepath.Join(t.TempDir(), "none.yaml"))))
}
