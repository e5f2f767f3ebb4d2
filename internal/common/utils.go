package common

import "strings"

// Paragraphs splits doc text into blank-line-separated paragraphs, dropping
// empty ones. Leading and trailing whitespace on each paragraph is trimmed;
// internal newlines are preserved for the wrapper to reflow.
func Paragraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(strings.TrimSpace(text), "\n\n") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// TrimDashes strips any leading dashes from a token, so "--help", "-help"
// and "help" all compare equal against a help alias.
func TrimDashes(s string) string {
	return strings.TrimLeft(s, "-")
}

// InsertAt inserts v into s at index i, shifting the tail right.
func InsertAt(s []any, i int, v any) []any {
	s = append(s, nil)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}
