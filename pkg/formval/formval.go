// Package formval holds small normalization helpers for values arriving on
// the content API boundary: comma-separated list fields, slug derivation and
// the loose date/bool formats the admin forms submit.
package formval

import (
	"regexp"
	"strings"
	"time"
)

// SplitList turns a comma-separated string into a trimmed, ordered slice.
// Empty input and all-whitespace segments yield an empty slice, never nil
// surprises downstream JSON ("[]" rather than "null" is handled by callers
// initializing with make).
func SplitList(raw string) []string {
	out := make([]string, 0)
	if strings.TrimSpace(raw) == "" {
		return out
	}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

var nonWord = regexp.MustCompile(`[^\w\s-]`)
var spaces = regexp.MustCompile(`\s+`)

// Slugify derives a URL slug from a title: lowercase, strip non-word
// characters, collapse whitespace runs to single hyphens.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = nonWord.ReplaceAllString(s, "")
	s = spaces.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// dateLayouts covers what the admin SPA submits (date inputs) and what API
// clients send (RFC 3339).
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02T15:04:05.000Z",
}

// ParseDate parses a form date, returning the zero time for empty input.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseBool treats the literal string "true" (any case) as true and
// everything else, including absence, as false.
func ParseBool(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), "true")
}
