package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigFromDir_Defaults(t *testing.T) {
	cfg, err := NewConfigFromDir(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, int32(DefaultPort), cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Global.ShutdownTimeoutInSeconds)
	assert.Empty(t, cfg.Dataset.Path)
	assert.Empty(t, cfg.Dataset.URL)
	assert.Equal(t, DefaultCacheDir, cfg.Dataset.CacheDir)
	assert.Equal(t, 2*time.Minute, cfg.Dataset.FetchTimeout)
	assert.Equal(t, int64(512<<20), cfg.Dataset.MaxBytes)
	assert.Equal(t, 4, cfg.Dataset.MaxConns)
	assert.Equal(t, DefaultSuggestLimit, cfg.Suggest.DefaultLimit)
	assert.True(t, cfg.Suggest.IndexEnabled)
	assert.True(t, cfg.Dictionary.Enabled)
	assert.Equal(t, DefaultDictionaryAPI, cfg.Dictionary.URL)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "silent", cfg.Logging.DatabaseLevel)
}

func TestNewConfigFromDir_Environment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATASET_PATH", "/data/english_etymology.db")
	t.Setenv("DATASET_FETCH_TIMEOUT", "30s")
	t.Setenv("SUGGEST_INDEX_ENABLED", "false")
	t.Setenv("DICTIONARY_API_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := NewConfigFromDir(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, int32(9000), cfg.HTTP.Port)
	assert.Equal(t, "/data/english_etymology.db", cfg.Dataset.Path)
	assert.Equal(t, 30*time.Second, cfg.Dataset.FetchTimeout)
	assert.False(t, cfg.Suggest.IndexEnabled)
	assert.False(t, cfg.Dictionary.Enabled)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestNewConfigFromDir_File(t *testing.T) {
	dir := t.TempDir()
	content := `
port = 7000
dataset_url = "https://example.test/english_etymology.db"
suggest_default_limit = 5
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName+".toml"), []byte(content), 0644))
	t.Setenv("PORT", "7100")

	cfg, err := NewConfigFromDir(dir)

	require.NoError(t, err)
	assert.Equal(t, int32(7100), cfg.HTTP.Port, "environment wins over file")
	assert.Equal(t, "https://example.test/english_etymology.db", cfg.Dataset.URL)
	assert.Equal(t, 5, cfg.Suggest.DefaultLimit)
}

func TestNewConfigFromDir_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName+".toml"), []byte("port = = ="), 0644))

	cfg, err := NewConfigFromDir(dir)

	assert.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, int32(DefaultPort), cfg.HTTP.Port)
}
