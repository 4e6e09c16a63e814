// Package datasettest builds snapshot files in the dataset format for tests.
package datasettest

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/etymology/internal/dataset"
	"github.com/mrlokans/etymology/internal/entities"
)

type RootRow struct {
	ID   int64
	Root string
}

type WordRootRow struct {
	WordID int64
	RootID int64
}

type CollocationRow struct {
	WordID    int64
	Item      string
	Translate string
}

type OtherLanguageRow struct {
	WordID  int64
	Lang    string
	Meaning string
	Words   string
}

// Fixture is the content of one snapshot.
type Fixture struct {
	Words          []entities.Word
	Roots          []RootRow
	WordRoots      []WordRootRow
	Collocations   []CollocationRow
	OtherLanguages []OtherLanguageRow
}

// Build writes the fixture to a SQLite file and returns its bytes.
func Build(t *testing.T, f Fixture) []byte {
	t.Helper()

	path := filepath.Join(t.TempDir(), dataset.SnapshotFileName)
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(dataset.SchemaSQL)
	require.NoError(t, err)

	tx, err := db.Begin()
	require.NoError(t, err)

	for _, w := range f.Words {
		_, err = tx.Exec(`INSERT INTO words (id, word, frequency, etymology, context, related_words, similar_words, antonyms, synonyms, derivatives)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			w.ID, w.Word, string(w.Frequency), w.Etymology, w.Context,
			w.RelatedWords, w.SimilarWords, w.Antonyms, w.Synonyms, w.Derivatives)
		require.NoError(t, err)
	}
	for _, r := range f.Roots {
		_, err = tx.Exec(`INSERT INTO root_dictionary (id, root) VALUES (?, ?)`, r.ID, r.Root)
		require.NoError(t, err)
	}
	for _, wr := range f.WordRoots {
		_, err = tx.Exec(`INSERT INTO word_roots (word_id, root_id) VALUES (?, ?)`, wr.WordID, wr.RootID)
		require.NoError(t, err)
	}
	for _, c := range f.Collocations {
		_, err = tx.Exec(`INSERT INTO collocations (word_id, item, translate) VALUES (?, ?, ?)`, c.WordID, c.Item, c.Translate)
		require.NoError(t, err)
	}
	for _, o := range f.OtherLanguages {
		_, err = tx.Exec(`INSERT INTO other_languages (word_id, lang, meaning, words) VALUES (?, ?, ?, ?)`, o.WordID, o.Lang, o.Meaning, o.Words)
		require.NoError(t, err)
	}
	require.NoError(t, tx.Commit())
	require.NoError(t, db.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

// Open builds the fixture and opens it through the real loader.
func Open(t *testing.T, f Fixture) *dataset.Store {
	t.Helper()

	store, err := dataset.OpenBytes(Build(t, f), t.Name(), dataset.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// Sample is a small dictionary with every relationship populated.
func Sample() Fixture {
	return Fixture{
		Words: []entities.Word{
			{ID: 1, Word: "photograph", Frequency: entities.FrequencyCommon, Etymology: "From photo- and -graph.", Context: "Camera pictures.", RelatedWords: "photography, photographer", Synonyms: "picture, snapshot, picture", Derivatives: "photographic"},
			{ID: 2, Word: "photography", Frequency: entities.FrequencyCommon, Etymology: "From photograph + -y."},
			{ID: 3, Word: "photographer", Frequency: entities.FrequencyUncommon},
			{ID: 4, Word: "photon", Frequency: entities.FrequencyUncommon},
			{ID: 5, Word: "photo", Frequency: entities.FrequencyVeryCommon},
			{ID: 6, Word: "phot", Frequency: entities.FrequencyRare},
			{ID: 7, Word: "photoshop", Frequency: "slang"},
			{ID: 8, Word: "Photius", Frequency: entities.FrequencyArchaic},
			{ID: 9, Word: "telegraph", Frequency: entities.FrequencyRare},
			{ID: 10, Word: "biology", Frequency: entities.FrequencyCommon},
			{ID: 11, Word: "photic", Frequency: entities.FrequencyUncommon},
		},
		Roots: []RootRow{
			{ID: 5, Root: "photo-"},
			{ID: 6, Root: "-graph"},
			{ID: 7, Root: "tele-"},
			{ID: 8, Root: "bio-"},
			{ID: 9, Root: "-y"},
			{ID: 10, Root: "unused-"},
		},
		WordRoots: []WordRootRow{
			{WordID: 1, RootID: 6},
			{WordID: 1, RootID: 5},
			{WordID: 2, RootID: 5},
			{WordID: 2, RootID: 6},
			{WordID: 2, RootID: 9},
			{WordID: 4, RootID: 5},
			{WordID: 9, RootID: 7},
			{WordID: 9, RootID: 6},
			{WordID: 10, RootID: 8},
		},
		Collocations: []CollocationRow{
			{WordID: 1, Item: "take a photograph", Translate: "拍照"},
			{WordID: 1, Item: "aerial photograph", Translate: "航拍照片"},
			{WordID: 9, Item: "telegraph pole", Translate: "电线杆"},
			{WordID: 1, Item: "black-and-white photograph", Translate: "黑白照片"},
		},
		OtherLanguages: []OtherLanguageRow{
			{WordID: 1, Lang: "fr", Meaning: "photograph", Words: "photographie"},
			{WordID: 1, Lang: "zh-yue", Meaning: "photograph", Words: "相片"},
			{WordID: 10, Lang: "la", Meaning: "study of life", Words: "biologia"},
		},
	}
}
