package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Dataset
		Suggest
		Dictionary
		Logging
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Dataset struct {
		Path         string // Local snapshot; wins over URL
		URL          string // Remote snapshot, cached in CacheDir
		CacheDir     string
		FetchTimeout time.Duration
		MaxBytes     int64
		MaxConns     int
	}
	Suggest struct {
		DefaultLimit int
		IndexEnabled bool // Serve autocomplete from the in-memory trie
	}
	Dictionary struct {
		Enabled bool
		URL     string
	}
	Logging struct {
		Level         string
		DatabaseLevel string
	}
)

// NewConfig reads the environment and an optional etymology.toml in the
// working directory. Environment variables win over the file. A malformed
// file is reported and skipped.
func NewConfig() *Config {
	cfg, err := NewConfigFromDir(".")
	if err != nil {
		log.Warn("ignoring config file", "err", err)
	}
	return cfg
}

// NewConfigFromDir is NewConfig looking for the config file in dir. The
// returned Config is always usable; err only reports a file that exists
// but could not be read.
func NewConfigFromDir(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	v.AutomaticEnv()

	v.SetDefault("port", DefaultPort)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", DefaultShutdownTimeout)

	v.SetDefault("dataset_path", "")
	v.SetDefault("dataset_url", "")
	v.SetDefault("dataset_cache_dir", DefaultCacheDir)
	v.SetDefault("dataset_fetch_timeout", "2m")
	v.SetDefault("dataset_max_bytes", 512<<20)
	v.SetDefault("dataset_max_conns", 4)

	v.SetDefault("suggest_default_limit", DefaultSuggestLimit)
	v.SetDefault("suggest_index_enabled", true)

	v.SetDefault("dictionary_api_enabled", true)
	v.SetDefault("dictionary_api_url", DefaultDictionaryAPI)

	v.SetDefault("log_level", "info")
	v.SetDefault("database_log_level", "silent")

	var fileErr error
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fileErr = fmt.Errorf("read %s.toml: %w", ConfigFileName, err)
		}
	}

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Dataset: Dataset{
			Path:         v.GetString("DATASET_PATH"),
			URL:          v.GetString("DATASET_URL"),
			CacheDir:     v.GetString("DATASET_CACHE_DIR"),
			FetchTimeout: v.GetDuration("DATASET_FETCH_TIMEOUT"),
			MaxBytes:     v.GetInt64("DATASET_MAX_BYTES"),
			MaxConns:     v.GetInt("DATASET_MAX_CONNS"),
		},
		Suggest: Suggest{
			DefaultLimit: v.GetInt("SUGGEST_DEFAULT_LIMIT"),
			IndexEnabled: v.GetBool("SUGGEST_INDEX_ENABLED"),
		},
		Dictionary: Dictionary{
			Enabled: v.GetBool("DICTIONARY_API_ENABLED"),
			URL:     v.GetString("DICTIONARY_API_URL"),
		},
		Logging: Logging{
			Level:         v.GetString("LOG_LEVEL"),
			DatabaseLevel: v.GetString("DATABASE_LOG_LEVEL"),
		},
	}, fileErr
}
