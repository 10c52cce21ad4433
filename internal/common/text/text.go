package text

import (
	"regexp"
	"strings"
)

var (
	slugStripRe    = regexp.MustCompile(`[^\w\s-]`)
	slugSeparateRe = regexp.MustCompile(`[\s_-]+`)
)

// Slugify converts free text to a lowercase URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugStripRe.ReplaceAllString(s, "")
	s = slugSeparateRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Truncate shortens s to at most maxLength runes, appending suffix when
// something was cut off. The suffix counts against the limit.
func Truncate(s string, maxLength int, suffix string) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}

	cut := maxLength - len([]rune(suffix))
	if cut < 0 {
		cut = 0
	}
	return string(runes[:cut]) + suffix
}
