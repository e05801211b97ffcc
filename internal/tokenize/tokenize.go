// ABOUTME: Tokenizer turning raw text into lowercase candidate words.
// ABOUTME: Strips punctuation and symbols, then applies length and number filters.

package tokenize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Options controls which tokens survive filtering.
type Options struct {
	// MinWordLength is measured in runes. Values below 1 are treated as 1.
	MinWordLength  int
	ExcludeNumbers bool
}

// Tokenize lowercases text, removes everything that is not a word rune or
// whitespace, splits on whitespace and filters the result. The returned slice
// is never nil.
func Tokenize(text string, opts Options) []string {
	minLen := opts.MinWordLength
	if minLen < 1 {
		minLen = 1
	}

	cleaned := Clean(text)
	fields := strings.Fields(cleaned)

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) < minLen {
			continue
		}
		if opts.ExcludeNumbers && IsNumeric(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// Clean normalizes and lowercases text and drops punctuation, symbols and
// emoji. Whitespace is kept so the caller can split on it.
func Clean(text string) string {
	// Casers carry state, so each call gets its own.
	text = cases.Lower(language.Und).String(norm.NFC.String(text))

	return strings.Map(func(r rune) rune {
		if isWordRune(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, text)
}

// IsNumeric reports whether s consists only of decimal digits.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}
