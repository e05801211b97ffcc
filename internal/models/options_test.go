// ABOUTME: Tests for generation options.
// ABOUTME: Validates defaults and font size correction.

package models

import "testing"

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.MinFontSize > opts.MaxFontSize {
		t.Errorf("expected min <= max, got %v > %v", opts.MinFontSize, opts.MaxFontSize)
	}
	if opts.MinWordLength != 1 {
		t.Errorf("expected min word length 1, got %d", opts.MinWordLength)
	}
	if opts.Width <= 0 {
		t.Error("expected a positive surface width")
	}
}

func TestNormalizeClampsMinFontSize(t *testing.T) {
	opts := DefaultOptions()
	opts.MinFontSize = 80
	opts.MaxFontSize = 40

	got, notices := opts.Normalize()

	if got.MinFontSize != 40 {
		t.Errorf("expected min clamped to 40, got %v", got.MinFontSize)
	}
	if got.MaxFontSize != 40 {
		t.Errorf("expected max unchanged, got %v", got.MaxFontSize)
	}
	if len(notices) != 1 || notices[0] != FontSizeNotice {
		t.Errorf("expected font size notice, got %v", notices)
	}
	if opts.MinFontSize != 80 {
		t.Error("expected original options to be left alone")
	}
}

func TestNormalizeFillsBlanks(t *testing.T) {
	got, notices := Options{MinFontSize: 10, MaxFontSize: 20}.Normalize()

	if len(notices) != 0 {
		t.Errorf("expected no notices, got %v", notices)
	}
	if got.MinWordLength != 1 {
		t.Errorf("expected min word length 1, got %d", got.MinWordLength)
	}
	if got.FontFamily == "" || got.Background == "" || got.Width == 0 {
		t.Errorf("expected defaults to be filled, got %+v", got)
	}
}
