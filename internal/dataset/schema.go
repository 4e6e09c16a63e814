package dataset

// SnapshotFileName is the well-known name of the bundled dataset.
const SnapshotFileName = "english_etymology.db"

// SchemaSQL is the layout the dataset build pipeline produces. The loader
// never executes it against a snapshot; fixtures use it to build files in
// the same format.
const SchemaSQL = `
CREATE TABLE words (
	id INTEGER PRIMARY KEY,
	word TEXT NOT NULL,
	frequency TEXT,
	etymology TEXT,
	context TEXT,
	related_words TEXT,
	similar_words TEXT,
	antonyms TEXT,
	synonyms TEXT,
	derivatives TEXT
);
CREATE TABLE root_dictionary (
	id INTEGER PRIMARY KEY,
	root TEXT NOT NULL UNIQUE
);
CREATE TABLE word_roots (
	word_id INTEGER NOT NULL REFERENCES words(id),
	root_id INTEGER NOT NULL REFERENCES root_dictionary(id)
);
CREATE TABLE collocations (
	id INTEGER PRIMARY KEY,
	word_id INTEGER NOT NULL REFERENCES words(id),
	item TEXT,
	translate TEXT
);
CREATE TABLE other_languages (
	id INTEGER PRIMARY KEY,
	word_id INTEGER NOT NULL REFERENCES words(id),
	lang TEXT,
	meaning TEXT,
	words TEXT
);
CREATE INDEX idx_words_word ON words(word COLLATE NOCASE);
CREATE INDEX idx_word_roots_word ON word_roots(word_id);
CREATE INDEX idx_word_roots_root ON word_roots(root_id);
CREATE INDEX idx_collocations_word ON collocations(word_id);
CREATE INDEX idx_other_languages_word ON other_languages(word_id);
`

// RequiredTables must all be present for a snapshot to be accepted.
var RequiredTables = []string{
	"words",
	"root_dictionary",
	"word_roots",
	"collocations",
	"other_languages",
}
