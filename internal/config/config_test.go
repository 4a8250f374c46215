package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, 1, cfg.Version)
	require.Equal(t, "http://localhost:8000", cfg.Endpoint)
	require.Equal(t, "/api/v1/search", cfg.SearchPath)
	require.Len(t, cfg.QuickQueries, 3)
	require.Equal(t, 100, cfg.UISettings.SnippetLength)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := DefaultConfig()
	cfg.Endpoint = "https://matcher.example.com"
	cfg.TimeoutSeconds = 30
	cfg.QuickQueries = []string{"fintech founder in London"}

	svc := NewConfigService()
	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, "https://matcher.example.com", loaded.Endpoint)
	require.Equal(t, 30, loaded.TimeoutSeconds)
	require.Equal(t, []string{"fintech founder in London"}, loaded.QuickQueries)
}

func TestLoadFromPathMissingFile(t *testing.T) {
	svc := NewConfigService()
	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestPartialConfigGetsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("endpoint = \"https://matcher.example.com\"\n"), 0644))

	svc := NewConfigService()
	cfg, err := svc.LoadFromPath(path)
	require.NoError(t, err)

	require.Equal(t, "https://matcher.example.com", cfg.Endpoint)
	require.Equal(t, "/api/v1/search", cfg.SearchPath)
	require.Equal(t, 15, cfg.TimeoutSeconds)
	require.NotEmpty(t, cfg.QuickQueries)
	require.Equal(t, 100, cfg.UISettings.SnippetLength)
}

func TestTimeoutFallsBackWhenUnset(t *testing.T) {
	cfg := &Config{}
	require.Equal(t, float64(15), cfg.Timeout().Seconds())

	cfg.TimeoutSeconds = 3
	require.Equal(t, float64(3), cfg.Timeout().Seconds())
}
