package strutils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToTitleCase returns the string with the first letter of each word capitalized,
// using the casing rules of the given locale ("fr", "en", ...).
// e.g. "saint-étienne" → "Saint-Étienne"
func ToTitleCase(s, locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	caser := cases.Title(tag)

	return caser.String(strings.ToLower(strings.TrimSpace(s)))
}

// Truncate shortens s to at most n runes, appending an ellipsis when cut.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if n <= 0 || len(runes) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(runes[:n-1]) + "…"
}
