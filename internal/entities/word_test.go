package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrequencyClass_Rank(t *testing.T) {
	tests := []struct {
		class FrequencyClass
		want  int
	}{
		{FrequencyVeryCommon, 1},
		{FrequencyCommon, 2},
		{FrequencyUncommon, 3},
		{FrequencyRare, 4},
		{FrequencyArchaic, 5},
		{"", UnknownFrequencyRank},
		{"obsolete", UnknownFrequencyRank},
		{"COMMON", UnknownFrequencyRank},
	}

	for _, tt := range tests {
		t.Run(string(tt.class), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.class.Rank())
		})
	}
}

func TestFrequencyClass_Label(t *testing.T) {
	assert.Equal(t, "常用", FrequencyCommon.Label())
	assert.Equal(t, "古语", FrequencyArchaic.Label())
	assert.Equal(t, "slang", FrequencyClass("slang").Label())
	assert.True(t, FrequencyRare.Known())
	assert.False(t, FrequencyClass("slang").Known())
}

func TestFrequencyClasses_InRankOrder(t *testing.T) {
	classes := FrequencyClasses()
	assert.Len(t, classes, 5)
	for i, c := range classes {
		assert.Equal(t, i+1, c.Rank())
	}
}

func TestSplitWordList(t *testing.T) {
	t.Run("empty string gives empty list", func(t *testing.T) {
		assert.Equal(t, []string{}, SplitWordList(""))
		assert.Equal(t, []string{}, SplitWordList("   "))
	})

	t.Run("trims and drops blanks", func(t *testing.T) {
		assert.Equal(t, []string{"photo", "graphic"}, SplitWordList(" photo , ,graphic,"))
	})

	t.Run("removes repeats keeping first position", func(t *testing.T) {
		assert.Equal(t, []string{"snap", "picture"}, SplitWordList("snap, picture, snap"))
	})
}

func TestWord_ListHelpers(t *testing.T) {
	w := Word{
		RelatedWords: "photography, photographer",
		SimilarWords: "picture",
		Antonyms:     "",
		Synonyms:     "image,snapshot",
		Derivatives:  "photographic",
	}

	assert.Equal(t, []string{"photography", "photographer"}, w.RelatedList())
	assert.Equal(t, []string{"picture"}, w.SimilarList())
	assert.Empty(t, w.AntonymList())
	assert.Equal(t, []string{"image", "snapshot"}, w.SynonymList())
	assert.Equal(t, []string{"photographic"}, w.DerivativeList())
	assert.Equal(t, []string{"image", "snapshot", "photography", "photographer"}, w.SynonymsWithRelated())

	w.Synonyms = "photography"
	assert.Equal(t, []string{"photography", "photographer"}, w.SynonymsWithRelated())
	assert.Empty(t, Word{}.SynonymsWithRelated())
}

func TestRoot_Kind(t *testing.T) {
	assert.Equal(t, RootKindPrefix, Root{Root: "photo-"}.Kind())
	assert.Equal(t, RootKindSuffix, Root{Root: "-graph"}.Kind())
	assert.Equal(t, RootKindStem, Root{Root: "graph"}.Kind())
	assert.Equal(t, RootKindSuffix, Root{Root: "-o-"}.Kind())
	assert.Equal(t, "prefix", RootKindPrefix.String())
	assert.Equal(t, "stem", RootKindStem.String())
	assert.Equal(t, "suffix", RootKindSuffix.String())
}

func TestSortRootsForDisplay(t *testing.T) {
	roots := []Root{
		{Root: "-graph"},
		{Root: "lumen"},
		{Root: "photo-"},
		{Root: "-y"},
		{Root: "tele-"},
	}

	sorted := SortRootsForDisplay(roots)

	assert.Equal(t, []Root{
		{Root: "photo-"},
		{Root: "tele-"},
		{Root: "lumen"},
		{Root: "-graph"},
		{Root: "-y"},
	}, sorted)
	assert.Equal(t, "-graph", roots[0].Root, "input must not be reordered")
}

func TestLanguageName(t *testing.T) {
	name, ok := LanguageName("fr")
	assert.True(t, ok)
	assert.Equal(t, "French", name)

	name, ok = OtherLanguage{Lang: " LA "}.Name()
	assert.True(t, ok)
	assert.Equal(t, "Latin", name)

	_, ok = LanguageName("xx-unmapped")
	assert.False(t, ok)
}
