package match

import (
	"strings"
	"unicode"
)

// Normalize lowercases s and drops separators, so that "DateTime",
// "date_time" and "date-time" compare equal.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		switch {
		case r == '_' || r == '-' || r == '.' || unicode.IsSpace(r):
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return b.String()
}
