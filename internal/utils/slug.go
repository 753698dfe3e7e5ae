package utils

import (
	"regexp"
	"strings"
)

var (
	slugStrip   = regexp.MustCompile(`[^\w\s-]`)
	slugSpaces  = regexp.MustCompile(`[\s_]+`)
	slugHyphens = regexp.MustCompile(`-+`)
)

// Slugify turns a title into a URL slug: "Visa & Travel Help" -> "visa-travel-help".
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
