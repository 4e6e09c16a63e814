package http

import (
	"github.com/charmbracelet/log"

	"github.com/mrlokans/etymology/internal/dictionary"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core lookups
	Words       WordDetailLooker
	Suggestions SuggestionSource
	Roots       RootLookup
	Dataset     DatasetChecker

	// Online dictionary (optional)
	DictionaryClient dictionary.Client

	// Autocomplete size when the request does not give one
	DefaultSuggestLimit int

	// Application info
	Version string

	Logger *log.Logger
}
