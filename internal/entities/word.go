package entities

import "strings"

type FrequencyClass string

const (
	FrequencyVeryCommon FrequencyClass = "very_common"
	FrequencyCommon     FrequencyClass = "common"
	FrequencyUncommon   FrequencyClass = "uncommon"
	FrequencyRare       FrequencyClass = "rare"
	FrequencyArchaic    FrequencyClass = "archaic"
)

// UnknownFrequencyRank is the rank of any value outside the five classes.
// It sorts after every recognised class.
const UnknownFrequencyRank = 6

var frequencyRanks = map[FrequencyClass]int{
	FrequencyVeryCommon: 1,
	FrequencyCommon:     2,
	FrequencyUncommon:   3,
	FrequencyRare:       4,
	FrequencyArchaic:    5,
}

var frequencyLabels = map[FrequencyClass]string{
	FrequencyVeryCommon: "极常用",
	FrequencyCommon:     "常用",
	FrequencyUncommon:   "不常用",
	FrequencyRare:       "罕用",
	FrequencyArchaic:    "古语",
}

// Rank returns the ordinal used for suggestion ordering (very_common=1 .. archaic=5).
func (f FrequencyClass) Rank() int {
	if r, ok := frequencyRanks[f]; ok {
		return r
	}
	return UnknownFrequencyRank
}

// Known reports whether f is one of the five frequency classes.
func (f FrequencyClass) Known() bool {
	_, ok := frequencyRanks[f]
	return ok
}

// Label returns the display badge text. Unknown values are returned as-is.
func (f FrequencyClass) Label() string {
	if l, ok := frequencyLabels[f]; ok {
		return l
	}
	return string(f)
}

// FrequencyClasses lists the recognised classes in rank order.
func FrequencyClasses() []FrequencyClass {
	return []FrequencyClass{
		FrequencyVeryCommon,
		FrequencyCommon,
		FrequencyUncommon,
		FrequencyRare,
		FrequencyArchaic,
	}
}

// Word is a read-only projection of a row in the words table.
// A zero ID means the row did not exist.
type Word struct {
	ID           int64          `json:"id"`
	Word         string         `json:"word"`
	Frequency    FrequencyClass `json:"frequency"`
	Etymology    string         `json:"etymology"`
	Context      string         `json:"context"`
	RelatedWords string         `json:"related_words"`
	SimilarWords string         `json:"similar_words"`
	Antonyms     string         `json:"antonyms"`
	Synonyms     string         `json:"synonyms"`
	Derivatives  string         `json:"derivatives"`
}

func (w Word) RelatedList() []string    { return SplitWordList(w.RelatedWords) }
func (w Word) SimilarList() []string    { return SplitWordList(w.SimilarWords) }
func (w Word) AntonymList() []string    { return SplitWordList(w.Antonyms) }
func (w Word) SynonymList() []string    { return SplitWordList(w.Synonyms) }
func (w Word) DerivativeList() []string { return SplitWordList(w.Derivatives) }

// SynonymsWithRelated is the synonym line as the word page shows it:
// synonyms followed by related words, repeats removed.
func (w Word) SynonymsWithRelated() []string {
	return SplitWordList(w.Synonyms + "," + w.RelatedWords)
}

// Root is a root morpheme such as "photo-" or "-graph".
type Root struct {
	Root string `json:"root"`
}

type Collocation struct {
	Item      string `json:"item"`
	Translate string `json:"translate"`
}

type OtherLanguage struct {
	Lang    string `json:"lang"`
	Meaning string `json:"meaning"`
	Words   string `json:"words"`
}

// Suggestion is one autocomplete entry.
type Suggestion struct {
	Word      string         `json:"word"`
	Frequency FrequencyClass `json:"frequency"`
}

// WordDetail bundles a word with everything linked to it by id.
type WordDetail struct {
	Word           Word            `json:"word"`
	Collocations   []Collocation   `json:"collocations"`
	OtherLanguages []OtherLanguage `json:"other_languages"`
	Roots          []Root          `json:"roots"`
}

// SplitWordList splits a comma-delimited list, trimming entries and
// dropping empty ones and repeats (first occurrence wins).
func SplitWordList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	seen := make(map[string]bool, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
