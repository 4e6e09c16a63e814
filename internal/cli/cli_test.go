package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/etymology/internal/config"
	"github.com/mrlokans/etymology/internal/dataset"
	"github.com/mrlokans/etymology/internal/dataset/datasettest"
	"github.com/mrlokans/etymology/internal/entities"
)

func writeSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.db")
	require.NoError(t, os.WriteFile(path, datasettest.Build(t, datasettest.Sample()), 0o644))
	return path
}

func testFlags(t *testing.T) (datasetFlags, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return datasetFlags{
		Config: &config.Config{Dataset: config.Dataset{Path: writeSnapshot(t)}},
		Out:    out,
	}, out
}

func TestLookupCommand_ParseFlags(t *testing.T) {
	cmd := NewLookupCommand()
	require.NoError(t, cmd.ParseFlags([]string{"-word", " photograph ", "-json"}))
	assert.Equal(t, "photograph", cmd.Word)
	assert.True(t, cmd.JSON)

	cmd = NewLookupCommand()
	require.NoError(t, cmd.ParseFlags([]string{"telegraph"}))
	assert.Equal(t, "telegraph", cmd.Word)

	assert.Error(t, NewLookupCommand().ParseFlags(nil))
}

func TestLookupCommand_Run(t *testing.T) {
	flags, out := testFlags(t)
	cmd := &LookupCommand{datasetFlags: flags, Word: "PHOTOGRAPH"}

	require.NoError(t, cmd.Run())

	text := out.String()
	assert.Contains(t, text, "photograph [常用]")
	assert.Contains(t, text, "From photo- and -graph.")
	assert.Contains(t, text, "Synonyms: picture, snapshot, photography, photographer")
	assert.Contains(t, text, "take a photograph (拍照)")
	assert.Contains(t, text, "French: photographie")
	assert.Contains(t, text, "zh-yue: 相片")
	assert.Contains(t, text, "Roots:\n  photo-       prefix\n  -graph       suffix\n")
}

func TestLookupCommand_RunJSON(t *testing.T) {
	flags, out := testFlags(t)
	flags.JSON = true
	cmd := &LookupCommand{datasetFlags: flags, Word: "photo"}

	require.NoError(t, cmd.Run())

	var detail entities.WordDetail
	require.NoError(t, json.Unmarshal(out.Bytes(), &detail))
	assert.Equal(t, int64(5), detail.Word.ID)
	assert.Empty(t, detail.Collocations)
	assert.Contains(t, out.String(), `"collocations": []`)
}

func TestLookupCommand_NotFound(t *testing.T) {
	flags, _ := testFlags(t)
	cmd := &LookupCommand{datasetFlags: flags, Word: "photographs"}

	assert.ErrorIs(t, cmd.Run(), ErrWordNotFound)
}

func TestLookupCommand_DatasetUnavailable(t *testing.T) {
	cmd := &LookupCommand{
		datasetFlags: datasetFlags{
			Config:      &config.Config{},
			DatasetPath: filepath.Join(t.TempDir(), "missing.db"),
			Out:         &bytes.Buffer{},
		},
		Word: "photo",
	}

	assert.ErrorIs(t, cmd.Run(), dataset.ErrDatasetUnavailable)
}

func TestSuggestCommand_Run(t *testing.T) {
	flags, out := testFlags(t)
	cmd := &SuggestCommand{datasetFlags: flags, Prefix: "photog", Limit: 2}

	require.NoError(t, cmd.Run())

	assert.Equal(t,
		"photograph               常用\nphotography              常用\n",
		out.String())
}

func TestSuggestCommand_RunJSON(t *testing.T) {
	flags, out := testFlags(t)
	flags.JSON = true
	cmd := &SuggestCommand{datasetFlags: flags, Prefix: "tele", Limit: 10}

	require.NoError(t, cmd.Run())

	var got []entities.Suggestion
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, []entities.Suggestion{{Word: "telegraph", Frequency: entities.FrequencyRare}}, got)
}

func TestSuggestCommand_NoMatch(t *testing.T) {
	flags, out := testFlags(t)
	cmd := &SuggestCommand{datasetFlags: flags, Prefix: "zzz", Limit: 10}

	require.NoError(t, cmd.Run())
	assert.Contains(t, out.String(), `No words start with "zzz"`)
}

func TestSuggestCommand_ParseFlags(t *testing.T) {
	cmd := NewSuggestCommand()
	require.NoError(t, cmd.ParseFlags([]string{"-prefix", "ph"}))
	assert.Equal(t, "ph", cmd.Prefix)
	assert.Equal(t, config.DefaultSuggestLimit, cmd.Limit)
}

func TestRootsCommand_Run(t *testing.T) {
	flags, out := testFlags(t)
	cmd := &RootsCommand{datasetFlags: flags, Root: "-GRAPH"}

	require.NoError(t, cmd.Run())

	assert.Equal(t, "3 words with suffix -GRAPH:\n  photograph\n  photography\n  telegraph\n", out.String())
}

func TestRootsCommand_Unknown(t *testing.T) {
	flags, out := testFlags(t)
	cmd := &RootsCommand{datasetFlags: flags, Root: "xyz-"}

	require.NoError(t, cmd.Run())
	assert.Contains(t, out.String(), `No words found for prefix "xyz-"`)
}

func TestRootsCommand_ParseFlags(t *testing.T) {
	assert.Error(t, NewRootsCommand().ParseFlags([]string{"-root", "  "}))

	cmd := NewRootsCommand()
	require.NoError(t, cmd.ParseFlags([]string{"-root", "bio-", "-dataset", "/tmp/x.db"}))
	assert.Equal(t, "bio-", cmd.Root)
	assert.Equal(t, "/tmp/x.db", cmd.config().Dataset.Path)
}
