// Package suggest keeps every headword in a radix trie so autocomplete
// can be answered without touching the dataset.
//
// Index.PrefixSearch returns the same suggestions, in the same order, as
// lexicon.Repository.PrefixSearch over the dataset it was built from.
package suggest

import (
	"sort"
	"unicode/utf8"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/mrlokans/etymology/internal/database/lexicon"
	"github.com/mrlokans/etymology/internal/entities"
)

type entry struct {
	id        int64
	word      string
	frequency entities.FrequencyClass
	rank      int
	length    int
}

// Index is immutable after Build and safe for concurrent readers.
type Index struct {
	trie  *patricia.Trie
	words int
}

// Build indexes the given words. Only ID, Word and Frequency are used.
func Build(words []entities.Word) *Index {
	trie := patricia.NewTrie()
	indexed := 0
	for _, w := range words {
		if w.Word == "" {
			continue
		}
		e := entry{
			id:        w.ID,
			word:      w.Word,
			frequency: w.Frequency,
			rank:      w.Frequency.Rank(),
			length:    utf8.RuneCountInString(w.Word),
		}
		indexed++
		key := patricia.Prefix(foldASCII(w.Word))
		// Headwords differing only in case share a key.
		if existing, ok := trie.Get(key).([]entry); ok {
			trie.Set(key, append(existing, e))
			continue
		}
		trie.Insert(key, []entry{e})
	}
	return &Index{trie: trie, words: indexed}
}

// Len is the number of indexed headwords.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return ix.words
}

// PrefixSearch never fails; the error is there to match the repository.
func (ix *Index) PrefixSearch(prefix string, limit int) ([]entities.Suggestion, error) {
	if ix == nil || prefix == "" {
		return []entities.Suggestion{}, nil
	}

	var matches []entry
	_ = ix.trie.VisitSubtree(patricia.Prefix(foldASCII(prefix)), func(_ patricia.Prefix, item patricia.Item) error {
		matches = append(matches, item.([]entry)...)
		return nil
	})

	sort.Slice(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.rank != b.rank {
			return a.rank < b.rank
		}
		if a.length != b.length {
			return a.length < b.length
		}
		if a.word != b.word {
			return a.word < b.word
		}
		return a.id < b.id
	})

	limit = lexicon.ClampLimit(limit)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]entities.Suggestion, len(matches))
	for i, m := range matches {
		out[i] = entities.Suggestion{Word: m.word, Frequency: m.frequency}
	}
	return out, nil
}

// foldASCII lowercases A-Z only, which is what SQLite's LIKE does.
func foldASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
