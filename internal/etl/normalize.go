package etl

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Fold strips diacritics and lowercases; it is the join key between the
// national and regional tables and the header-matching key.
func Fold(s string) string {
	// Normalize to NFD and drop combining marks (Mn)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return strings.TrimSpace(b.String())
}

var titleES = cases.Title(language.EuropeanSpanish)

// TitleES renders a place name with Spanish title casing, for display
// fields built from all-caps source cells.
func TitleES(s string) string {
	return titleES.String(strings.ToLower(strings.TrimSpace(s)))
}
