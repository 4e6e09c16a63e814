package lexicon

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/mrlokans/etymology/internal/entities"
)

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

var wordColumns = []string{
	"id", "word", "frequency", "etymology", "context",
	"related_words", "similar_words", "antonyms", "synonyms", "derivatives",
}

// frequencyRank orders the five classes 1..5 and everything else after them.
var frequencyRank = func() string {
	var b strings.Builder
	b.WriteString("CASE frequency")
	for _, class := range entities.FrequencyClasses() {
		fmt.Fprintf(&b, " WHEN '%s' THEN %d", class, class.Rank())
	}
	fmt.Fprintf(&b, " ELSE %d END", entities.UnknownFrequencyRank)
	return b.String()
}()

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern using '\' as
// the escape character.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func exactWordQuery(term string) squirrel.SelectBuilder {
	return builder.Select(wordColumns...).
		From("words").
		Where("word = ? COLLATE NOCASE", term).
		OrderBy("id").
		Limit(1)
}

func prefixSearchQuery(prefix string, limit int) squirrel.SelectBuilder {
	return builder.Select("id", "word", "frequency").
		From("words").
		Where(`word LIKE ? ESCAPE '\'`, escapeLike(prefix)+"%").
		OrderBy(frequencyRank, "length(word)", "word", "id").
		Limit(uint64(limit))
}

func wordsByRootQuery(root string) squirrel.SelectBuilder {
	return builder.Select(wordColumns...).
		From("words").
		Where(`id IN (
			SELECT wr.word_id FROM word_roots wr
			JOIN root_dictionary rd ON rd.id = wr.root_id
			WHERE rd.root = ? COLLATE NOCASE)`, root).
		OrderBy("id")
}

func collocationsQuery(wordID int64) squirrel.SelectBuilder {
	return builder.Select("item", "translate").
		From("collocations").
		Where(squirrel.Eq{"word_id": wordID}).
		OrderBy("rowid")
}

func otherLanguagesQuery(wordID int64) squirrel.SelectBuilder {
	return builder.Select("lang", "meaning", "words").
		From("other_languages").
		Where(squirrel.Eq{"word_id": wordID}).
		OrderBy("rowid")
}

func rootsByWordQuery(wordID int64) squirrel.SelectBuilder {
	return builder.Select("rd.root AS root").
		From("root_dictionary rd").
		Join("word_roots wr ON wr.root_id = rd.id").
		Where(squirrel.Eq{"wr.word_id": wordID}).
		OrderBy("wr.rowid")
}

func headwordsQuery() squirrel.SelectBuilder {
	return builder.Select("id", "word", "frequency").
		From("words").
		OrderBy("id")
}
