// Package lexicon runs the dictionary lookups against an opened dataset.
//
// # Usage
//
//	repo := lexicon.NewRepository(store)
//	word, err := repo.ExactWord("Photograph")
//	suggestions, err := repo.PrefixSearch("photo", 0)
//	words, err := repo.WordsByRoot("PHOTO-")
//
// Text keys match case-insensitively (ASCII folding, as SQLite NOCASE and
// LIKE do). Not-found is reported as a nil word or an empty slice; only
// execution failures return errors, and those wrap ErrQueryFailed.
package lexicon

import (
	"github.com/Masterminds/squirrel"

	"github.com/mrlokans/etymology/internal/entities"
)

const (
	// DefaultPrefixLimit is used when PrefixSearch gets a non-positive limit.
	DefaultPrefixLimit = 10
	// MaxPrefixLimit caps the number of suggestions per call.
	MaxPrefixLimit = 100
)

// Querier runs a parameterised read. *dataset.Store implements it.
type Querier interface {
	QueryRows(query string, args ...any) ([]map[string]any, error)
}

// Repository handles all dictionary reads.
type Repository struct {
	q Querier
}

// NewRepository creates a new lexicon repository. A nil Querier behaves as
// an empty dataset.
func NewRepository(q Querier) *Repository {
	return &Repository{q: q}
}

// ExactWord returns the word whose headword equals term ignoring case, or
// nil when there is none.
func (r *Repository) ExactWord(term string) (*entities.Word, error) {
	rows, err := r.run("exact word", exactWordQuery(term))
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	word := RowToWord(rows[0])
	if word.ID == 0 {
		return nil, nil
	}
	return &word, nil
}

// PrefixSearch returns up to limit headwords starting with prefix, most
// frequent first, then shortest, then alphabetical.
func (r *Repository) PrefixSearch(prefix string, limit int) ([]entities.Suggestion, error) {
	if prefix == "" {
		return []entities.Suggestion{}, nil
	}
	rows, err := r.run("prefix search", prefixSearchQuery(prefix, ClampLimit(limit)))
	if err != nil {
		return nil, err
	}
	out := make([]entities.Suggestion, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowToSuggestion(row))
	}
	return out, nil
}

// WordsByRoot returns every word linked to root, matched ignoring case,
// in id order.
func (r *Repository) WordsByRoot(root string) ([]entities.Word, error) {
	rows, err := r.run("words by root", wordsByRootQuery(root))
	if err != nil {
		return nil, err
	}
	return mapRows(rows, RowToWord), nil
}

// CollocationsByWord returns the word's collocations in storage order.
func (r *Repository) CollocationsByWord(wordID int64) ([]entities.Collocation, error) {
	rows, err := r.run("collocations by word", collocationsQuery(wordID))
	if err != nil {
		return nil, err
	}
	return mapRows(rows, RowToCollocation), nil
}

// OtherLanguagesByWord returns the word's cross-language glosses in storage order.
func (r *Repository) OtherLanguagesByWord(wordID int64) ([]entities.OtherLanguage, error) {
	rows, err := r.run("other languages by word", otherLanguagesQuery(wordID))
	if err != nil {
		return nil, err
	}
	return mapRows(rows, RowToOtherLanguage), nil
}

// RootsByWord returns the roots linked to the word in association order.
func (r *Repository) RootsByWord(wordID int64) ([]entities.Root, error) {
	rows, err := r.run("roots by word", rootsByWordQuery(wordID))
	if err != nil {
		return nil, err
	}
	return mapRows(rows, RowToRoot), nil
}

// Headwords returns id, headword and frequency of every word in id order.
func (r *Repository) Headwords() ([]entities.Word, error) {
	rows, err := r.run("headwords", headwordsQuery())
	if err != nil {
		return nil, err
	}
	return mapRows(rows, RowToWord), nil
}

// ClampLimit applies the default and the cap to a requested suggestion count.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultPrefixLimit
	case limit > MaxPrefixLimit:
		return MaxPrefixLimit
	default:
		return limit
	}
}

func (r *Repository) run(op string, query squirrel.SelectBuilder) ([]map[string]any, error) {
	if r == nil || r.q == nil {
		return nil, nil
	}
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, queryFailed(op, err)
	}
	rows, err := r.q.QueryRows(sql, args...)
	if err != nil {
		return nil, queryFailed(op, err)
	}
	return rows, nil
}

func mapRows[T any](rows []map[string]any, fn func(map[string]any) T) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		out = append(out, fn(row))
	}
	return out
}
