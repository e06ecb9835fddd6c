package slug

import (
	"math/rand"
	"regexp"
	"strings"
)

var (
	invalidChars    = regexp.MustCompile(`[^a-z0-9 -]`)
	collapseHyphens = regexp.MustCompile(`-+`)
)

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// FromName builds a URL-safe slug candidate from an athlete's name:
// lowercase, non-alphanumerics stripped, spaces to hyphens, trimmed.
// Returns "" when nothing usable remains.
func FromName(firstName, lastName string) string {
	name := strings.TrimSpace(firstName + " " + lastName)
	name = strings.ToLower(name)
	name = invalidChars.ReplaceAllString(name, "")
	name = strings.ReplaceAll(name, " ", "-")
	name = collapseHyphens.ReplaceAllString(name, "-")
	return strings.Trim(name, "-")
}

// WithRandomSuffix appends a random 6-character lowercase-alphanumeric
// suffix, used when a name-derived candidate is already taken.
func WithRandomSuffix(candidate string) string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return candidate + "-" + string(b)
}
