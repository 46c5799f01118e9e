package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
tmdb:
  api_key: file-key
  language: pt-BR
  timeout: 5s
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.TMDB.APIKey)
	assert.Equal(t, "pt-BR", cfg.TMDB.Language)
	assert.Equal(t, 5*time.Second, cfg.TMDB.Timeout)
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDB.BaseURL)
	assert.Equal(t, "https://image.tmdb.org/t/p", cfg.TMDB.ImageBaseURL)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_APIKeyFromEnv(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "env-key")
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.TMDB.APIKey)
	assert.Equal(t, "en-US", cfg.TMDB.Language)
	assert.Equal(t, 30*time.Second, cfg.TMDB.Timeout)
}

func TestLoad_PrefixedEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "tmdb:\n  api_key: file-key\n")
	t.Setenv("MOVIE_EXPLORER_TMDB_API_KEY", "prefixed-key")
	t.Setenv("MOVIE_EXPLORER_LOGGING_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "prefixed-key", cfg.TMDB.APIKey)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"missing key", "tmdb:\n  language: en-US\n", "tmdb.api_key must be set"},
		{"placeholder key", "tmdb:\n  api_key: your-api-key-here\n", "tmdb.api_key must be set"},
		{"bad language", "tmdb:\n  api_key: k\n  language: \"not a tag!\"\n", "invalid tmdb.language"},
		{"bad level", "tmdb:\n  api_key: k\nlogging:\n  level: loud\n", "invalid logging level"},
		{"bad format", "tmdb:\n  api_key: k\nlogging:\n  format: xml\n", "invalid logging format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TMDB_API_KEY", "")
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config")
}
