package metrics

import (
	"strings"
	"unicode/utf8"
)

// Features holds basic local text features derived from model output.
// The brace counts exist for extraction diagnostics: the extractor spans the
// first '{' to the last '}', so mismatched counts usually explain a failed
// or over-wide extraction.
type Features struct {
	Bytes       int
	Runes       int
	Words       int
	Lines       int
	OpenBraces  int
	CloseBraces int
}

// CountFeatures computes byte, rune, word, line and brace counts for the input string.
func CountFeatures(s string) Features {
	return Features{
		Bytes:       len(s),
		Runes:       utf8.RuneCountInString(s),
		Words:       countWords(s),
		Lines:       countLines(s),
		OpenBraces:  strings.Count(s, "{"),
		CloseBraces: strings.Count(s, "}"),
	}
}

// countWords counts words split on Unicode whitespace.
func countWords(s string) int {
	return len(strings.Fields(s))
}

// countLines returns 0 for empty strings; otherwise 1 plus the number of '\n' runes.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	return 1 + strings.Count(s, "\n")
}
