package dictionary

import (
	"context"
	"errors"
	"net/url"
	"strings"
)

// ErrNotFound is returned when the provider has no entry for the word.
var ErrNotFound = errors.New("word not found")

// Phonetic is one pronunciation with an optional audio recording.
type Phonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio,omitempty"`
}

// Definition is one sense of a word.
type Definition struct {
	PartOfSpeech string `json:"part_of_speech"`
	Definition   string `json:"definition"`
	Example      string `json:"example,omitempty"`
}

// LookupResult contains the result of a dictionary lookup.
type LookupResult struct {
	Word          string       `json:"word"`
	Phonetics     []Phonetic   `json:"phonetics"`
	Definitions   []Definition `json:"definitions"`
	Pronunciation string       `json:"pronunciation,omitempty"`
	AudioURL      string       `json:"audio_url,omitempty"`
	Source        string       `json:"source"`
}

// Client defines the interface for dictionary API providers.
type Client interface {
	Lookup(ctx context.Context, word string) (*LookupResult, error)
	Name() string
}

const referenceBaseURL = "https://www.merriam-webster.com/dictionary/"

// ReferenceURL is the Merriam-Webster page for word.
func ReferenceURL(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}
	return referenceBaseURL + url.PathEscape(word)
}
