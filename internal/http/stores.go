package http

import (
	"context"

	"github.com/mrlokans/etymology/internal/entities"
)

// This file consolidates the read interfaces used by HTTP controllers.
// Each controller depends only on the one it needs.

// WordDetailLooker resolves a headword to its composite detail.
// A nil detail with a nil error means the word does not exist.
type WordDetailLooker interface {
	LookupWordDetail(term string) (*entities.WordDetail, error)
}

// SuggestionSource answers autocomplete queries. Both the repository and
// the in-memory index implement it.
type SuggestionSource interface {
	PrefixSearch(prefix string, limit int) ([]entities.Suggestion, error)
}

// RootLookup returns the words sharing a root.
type RootLookup interface {
	WordsByRoot(root string) ([]entities.Word, error)
}

// DatasetChecker reports on the opened dataset.
type DatasetChecker interface {
	Ping(ctx context.Context) error
	Source() string
	Size() int
}
