package entities

import (
	"sort"
	"strings"
)

type RootKind int

const (
	// RootKindPrefix is a bound morpheme written with a trailing hyphen, e.g. "bio-".
	RootKindPrefix RootKind = iota
	// RootKindStem has no hyphen on either side.
	RootKindStem
	// RootKindSuffix is written with a leading hyphen, e.g. "-graph".
	RootKindSuffix
)

func (k RootKind) String() string {
	switch k {
	case RootKindPrefix:
		return "prefix"
	case RootKindSuffix:
		return "suffix"
	default:
		return "stem"
	}
}

// Kind classifies the root by its hyphen placement. A root hyphenated on
// both sides ("-o-") counts as a suffix.
func (r Root) Kind() RootKind {
	text := strings.TrimSpace(r.Root)
	switch {
	case strings.HasPrefix(text, "-"):
		return RootKindSuffix
	case strings.HasSuffix(text, "-"):
		return RootKindPrefix
	default:
		return RootKindStem
	}
}

// SortRootsForDisplay returns a copy of roots with prefixes first, stems
// next and suffixes last. Order inside each group is preserved.
func SortRootsForDisplay(roots []Root) []Root {
	out := make([]Root, len(roots))
	copy(out, roots)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Kind() < out[j].Kind()
	})
	return out
}
