package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrlokans/etymology/internal/entities"
)

func TestRowToWord(t *testing.T) {
	word := RowToWord(map[string]any{
		"id":            int64(7),
		"word":          "telephone",
		"frequency":     "very_common",
		"etymology":     []byte("From tele- and -phone."),
		"context":       nil,
		"related_words": "telephony",
		"similar_words": "phone",
		"antonyms":      "",
		"synonyms":      "phone",
		"derivatives":   "telephonic",
	})

	assert.Equal(t, entities.Word{
		ID:           7,
		Word:         "telephone",
		Frequency:    entities.FrequencyVeryCommon,
		Etymology:    "From tele- and -phone.",
		RelatedWords: "telephony",
		SimilarWords: "phone",
		Synonyms:     "phone",
		Derivatives:  "telephonic",
	}, word)
}

func TestRowToWord_MissingColumnsAreZero(t *testing.T) {
	assert.Equal(t, entities.Word{}, RowToWord(map[string]any{}))
	assert.Equal(t, entities.Word{}, RowToWord(nil))

	partial := RowToWord(map[string]any{"word": "thee"})
	assert.Equal(t, "thee", partial.Word)
	assert.Zero(t, partial.ID)
	assert.Empty(t, partial.Frequency)
}

func TestRowToWord_CoercesScalars(t *testing.T) {
	tests := []struct {
		name   string
		id     any
		wantID int64
	}{
		{"int64", int64(3), 3},
		{"int", 3, 3},
		{"float", float64(3), 3},
		{"text", "3", 3},
		{"bytes", []byte("3"), 3},
		{"garbage text", "three", 0},
		{"bool", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantID, RowToWord(map[string]any{"id": tt.id}).ID)
		})
	}

	assert.Equal(t, "42", RowToWord(map[string]any{"word": int64(42)}).Word)
	assert.Equal(t, "1.5", RowToWord(map[string]any{"word": 1.5}).Word)
}

func TestRowToRelatedEntities(t *testing.T) {
	assert.Equal(t, entities.Root{Root: "-graph"}, RowToRoot(map[string]any{"root": "-graph"}))
	assert.Equal(t, entities.Root{}, RowToRoot(map[string]any{}))

	assert.Equal(t,
		entities.Collocation{Item: "take a photograph", Translate: "拍照"},
		RowToCollocation(map[string]any{"item": "take a photograph", "translate": []byte("拍照")}))
	assert.Equal(t, entities.Collocation{Item: "orphan"}, RowToCollocation(map[string]any{"item": "orphan"}))

	assert.Equal(t,
		entities.OtherLanguage{Lang: "fr", Meaning: "photograph", Words: "photographie"},
		RowToOtherLanguage(map[string]any{"lang": "fr", "meaning": "photograph", "words": "photographie"}))
	assert.Equal(t, entities.OtherLanguage{Lang: "de"}, RowToOtherLanguage(map[string]any{"lang": "de", "words": nil}))
}
