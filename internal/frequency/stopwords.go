// ABOUTME: Embedded English stopword set.
// ABOUTME: Matching is case-insensitive against the tokenizer's output form.

package frequency

import (
	_ "embed"
	"sort"
	"strings"
)

//go:embed stopwords.txt
var stopwordData string

var stopwords = parseStopwords(stopwordData)

func parseStopwords(data string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, line := range strings.Split(data, "\n") {
		line = strings.ToLower(strings.TrimSpace(line))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[line] = struct{}{}
	}
	return set
}

// IsStopword reports whether word is in the stopword set.
func IsStopword(word string) bool {
	_, ok := stopwords[strings.ToLower(word)]
	return ok
}

// Stopwords returns the stopword set in alphabetical order.
func Stopwords() []string {
	words := make([]string, 0, len(stopwords))
	for w := range stopwords {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
