// ABOUTME: Word models produced by one generation cycle.
// ABOUTME: Frequency entries gain size and style fields as they move through the pipeline.

package models

import "fmt"

// Rotations a word can be drawn with.
const (
	RotationNone     = 0
	RotationVertical = 90
)

// FrequencyEntry is one distinct word and how often it survived filtering.
type FrequencyEntry struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// SizedWord is a FrequencyEntry with its display font size.
type SizedWord struct {
	FrequencyEntry
	FontSize float64 `json:"font_size" yaml:"font_size"`
}

// StyledWord is a SizedWord ready for presentation.
type StyledWord struct {
	SizedWord
	Color    string `json:"color" yaml:"color"`
	Rotation int    `json:"rotation" yaml:"rotation"`
	Emphasis bool   `json:"emphasis,omitempty" yaml:"emphasis,omitempty"`
	Tooltip  string `json:"tooltip,omitempty" yaml:"tooltip,omitempty"`
}

// MostFrequent summarizes the top word of a frequency list.
type MostFrequent struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
	IsTie bool   `json:"is_tie" yaml:"is_tie"`
}

// Tooltip is the hover text shown for a word.
func Tooltip(word string, count int) string {
	return fmt.Sprintf("%q — %d %s", word, count, Plural(count, "time", "times"))
}

// Plural picks the singular form for exactly one.
func Plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
