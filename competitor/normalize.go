package competitor

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// normalizeUpper trims surrounding whitespace and upper-cases the value.
// Used for family names, club names and team names.
func normalizeUpper(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

// normalizeTitle trims surrounding whitespace and title-cases the value with
// Unicode-aware casing, so "jean-luc" becomes "Jean-Luc". Used for given
// names. A fresh Caser is built per call; cases.Caser is stateful.
func normalizeTitle(value string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(value))
}
