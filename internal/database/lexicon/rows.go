package lexicon

import (
	"strconv"

	"github.com/mrlokans/etymology/internal/entities"
)

// RowToWord maps a words row. Like every row mapper here it is lenient: a
// missing or NULL column becomes the zero value of the field it feeds, and
// unexpected scalar types are coerced, never rejected.
func RowToWord(row map[string]any) entities.Word {
	return entities.Word{
		ID:           asInt64(row["id"]),
		Word:         asString(row["word"]),
		Frequency:    entities.FrequencyClass(asString(row["frequency"])),
		Etymology:    asString(row["etymology"]),
		Context:      asString(row["context"]),
		RelatedWords: asString(row["related_words"]),
		SimilarWords: asString(row["similar_words"]),
		Antonyms:     asString(row["antonyms"]),
		Synonyms:     asString(row["synonyms"]),
		Derivatives:  asString(row["derivatives"]),
	}
}

// RowToRoot maps a root_dictionary row.
func RowToRoot(row map[string]any) entities.Root {
	return entities.Root{Root: asString(row["root"])}
}

// RowToCollocation maps a collocations row.
func RowToCollocation(row map[string]any) entities.Collocation {
	return entities.Collocation{
		Item:      asString(row["item"]),
		Translate: asString(row["translate"]),
	}
}

// RowToOtherLanguage maps an other_languages row.
func RowToOtherLanguage(row map[string]any) entities.OtherLanguage {
	return entities.OtherLanguage{
		Lang:    asString(row["lang"]),
		Meaning: asString(row["meaning"]),
		Words:   asString(row["words"]),
	}
}

func rowToSuggestion(row map[string]any) entities.Suggestion {
	return entities.Suggestion{
		Word:      asString(row["word"]),
		Frequency: entities.FrequencyClass(asString(row["frequency"])),
	}
}

func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func asInt64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case int32:
		return int64(t)
	case float64:
		return int64(t)
	case string:
		n, _ := strconv.ParseInt(t, 10, 64)
		return n
	case []byte:
		n, _ := strconv.ParseInt(string(t), 10, 64)
		return n
	default:
		return 0
	}
}
