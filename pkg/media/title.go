package media

import (
	"strings"

	"golang.org/x/text/cases"
)

// FoldTitle returns the comparison key for a title. Titles are stored with their
// original casing and compared by this key everywhere.
func FoldTitle(title string) string {
	return cases.Fold().String(strings.TrimSpace(title))
}

// SameTitle reports whether two titles refer to the same item
func SameTitle(a, b string) bool {
	return FoldTitle(a) == FoldTitle(b)
}

// TitleSet is a case-insensitive set of titles
type TitleSet map[string]struct{}

// NewTitleSet builds a set seeded with the given titles
func NewTitleSet(titles ...string) TitleSet {
	s := make(TitleSet, len(titles))
	for _, t := range titles {
		s.Add(t)
	}
	return s
}

func (s TitleSet) Add(title string) {
	s[FoldTitle(title)] = struct{}{}
}

func (s TitleSet) Has(title string) bool {
	_, ok := s[FoldTitle(title)]
	return ok
}
