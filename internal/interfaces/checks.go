package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/etymology/internal/database/lexicon"
	"github.com/mrlokans/etymology/internal/dataset"
	"github.com/mrlokans/etymology/internal/dictionary"
	"github.com/mrlokans/etymology/internal/http"
	"github.com/mrlokans/etymology/internal/services"
	"github.com/mrlokans/etymology/internal/suggest"
)

// =============================================================================
// Dataset
// =============================================================================

var _ lexicon.Querier = (*dataset.Store)(nil)
var _ http.DatasetChecker = (*dataset.Store)(nil)

var _ dataset.Source = dataset.FileSource{}
var _ dataset.Source = (*dataset.HTTPSource)(nil)
var _ dataset.Source = dataset.EmbeddedSource{}

// =============================================================================
// Query Engine
// =============================================================================

var _ services.WordStore = (*lexicon.Repository)(nil)
var _ http.RootLookup = (*lexicon.Repository)(nil)

// SuggestionSource implementations
var _ http.SuggestionSource = (*lexicon.Repository)(nil)
var _ http.SuggestionSource = (*suggest.Index)(nil)

// =============================================================================
// Aggregation
// =============================================================================

var _ http.WordDetailLooker = (*services.LookupService)(nil)

// =============================================================================
// External Services
// =============================================================================

var _ dictionary.Client = (*dictionary.FreeDictionaryClient)(nil)
