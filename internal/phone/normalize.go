package phone

import (
	"regexp"
	"strings"
)

var (
	labelRe      = regexp.MustCompile(`(?i)(?:tel:|telefon:|phone:|tel\.|telefon\.|phone\.)`)
	trunkRe      = regexp.MustCompile(`\+49\s*\(0\)`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize strips label prefixes and collapses format variants.
// It is deterministic, total and idempotent:
//
//  1. label tokens ("tel:", "Telefon.", ...) are removed wherever they occur
//  2. the bracketed trunk marker "+49(0)" collapses to "+49 "
//  3. whitespace runs collapse to a single space
//  4. leading/trailing whitespace is trimmed
//
// Empty input stays empty; callers treat "" as absent.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	s := labelRe.ReplaceAllString(raw, "")
	// Replacing can expose a new "+49 (0)" prefix, so run to a fixed
	// point to keep Normalize idempotent.
	for trunkRe.MatchString(s) {
		s = trunkRe.ReplaceAllString(s, "+49 ")
	}
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Clean normalizes a raw candidate and re-validates it against the
// pattern library. It is the only way a candidate becomes a
// NormalizedNumber: a labeled-context hit is not trusted merely for
// having had a label.
func Clean(raw string) (string, bool) {
	s := Normalize(raw)
	if s == "" || !Valid(s) {
		return "", false
	}
	return s, true
}
