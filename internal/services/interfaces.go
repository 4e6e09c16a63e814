package services

import "github.com/mrlokans/etymology/internal/entities"

// WordReader resolves a headword to its row.
type WordReader interface {
	ExactWord(term string) (*entities.Word, error)
}

// WordFacetReader loads the rows linked to a word by id.
type WordFacetReader interface {
	CollocationsByWord(wordID int64) ([]entities.Collocation, error)
	OtherLanguagesByWord(wordID int64) ([]entities.OtherLanguage, error)
	RootsByWord(wordID int64) ([]entities.Root, error)
}

// WordStore is everything LookupService needs.
type WordStore interface {
	WordReader
	WordFacetReader
}
