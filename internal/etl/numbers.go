package etl

import (
	"regexp"
	"strconv"
	"strings"
)

// Numeric cells arrive in European format ("12.345,67") in both source
// tables; a few series use plain dot decimals.
var (
	euroNumRe = regexp.MustCompile(`^\s*-?\d{1,3}(\.\d{3})*(,\d+)?\s*$`)
	dotNumRe  = regexp.MustCompile(`^\s*-?\d+(\.\d+)?\s*$`)
)

// ParseNumber converts "12.345,67" or "12345.67" to a float64. Empty cells,
// dashes and anything unparsable return ok=false; callers drop those rows
// instead of propagating NaN into derived metrics.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	switch {
	case s == "" || s == "-" || s == "..":
		return 0, false
	case euroNumRe.MatchString(s):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case dotNumRe.MatchString(s):
		// already machine-readable
	default:
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// FormatEuro renders a float64 as "12.345,67" for display fields.
func FormatEuro(f float64) string {
	s := strconv.FormatFloat(f, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	parts := strings.SplitN(s, ".", 2)
	intp, decp := parts[0], "00"
	if len(parts) > 1 {
		decp = parts[1]
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intp {
		if i > 0 && (len(intp)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return b.String() + "," + decp
}
