package services

import (
	"github.com/mrlokans/etymology/internal/entities"
)

// LookupService composes a word with its collocations, glosses and roots.
type LookupService struct {
	store WordStore
}

func NewLookupService(store WordStore) *LookupService {
	return &LookupService{store: store}
}

// LookupWordDetail returns nil, nil when term is not a headword; no
// dependent reads are issued in that case. Any failing dependent read
// fails the whole lookup.
func (s *LookupService) LookupWordDetail(term string) (*entities.WordDetail, error) {
	word, err := s.store.ExactWord(term)
	if err != nil {
		return nil, err
	}
	if word == nil {
		return nil, nil
	}

	collocations, err := s.store.CollocationsByWord(word.ID)
	if err != nil {
		return nil, err
	}
	otherLanguages, err := s.store.OtherLanguagesByWord(word.ID)
	if err != nil {
		return nil, err
	}
	roots, err := s.store.RootsByWord(word.ID)
	if err != nil {
		return nil, err
	}

	return &entities.WordDetail{
		Word:           *word,
		Collocations:   nonNil(collocations),
		OtherLanguages: nonNil(otherLanguages),
		Roots:          nonNil(roots),
	}, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
