// Package textutils provides the text normalization helpers shared by
// the parsers and the categorization engine.
package textutils

import (
	"regexp"
	"strings"
	"unicode"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeDescription lowercases and trims a transaction description.
// This is the canonical key for override lookups, so every override
// read and write path must go through it.
func NormalizeDescription(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeMerchant strips punctuation and whitespace after lowercasing,
// so that "Trader Joe's #123" contains the rule key "trader joe".
func NormalizeMerchant(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsSpace(r) {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// CollapseSpaces trims a line and folds runs of whitespace into single
// spaces.
func CollapseSpaces(s string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

// SplitLines splits extracted text into trimmed, non-empty lines.
func SplitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// StripBOM removes a UTF-8 byte order mark from the start of text.
func StripBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}

// ContainsAny reports whether s contains any of the given substrings,
// case-insensitively.
func ContainsAny(s string, subs []string) bool {
	lower := strings.ToLower(s)
	for _, sub := range subs {
		if strings.Contains(lower, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}
