package config

const (
	// ConfigFileName is read from the working directory when present.
	ConfigFileName = "etymology"

	DefaultPort            = 8190
	DefaultCacheDir        = "./cache"
	DefaultSuggestLimit    = 10
	DefaultDictionaryAPI   = "https://api.dictionaryapi.dev/api/v2/entries/en"
	DefaultShutdownTimeout = 2
)
