// ABOUTME: Options for a single word cloud generation.
// ABOUTME: Provides defaults and the min/max font size correction.

package models

// FontSizeNotice is reported when the minimum font size had to be lowered.
const FontSizeNotice = "Minimum font size cannot be greater than maximum font size. Adjusting min size to max size."

// Options configures one generation call. It is passed by value and never
// mutated by the pipeline.
type Options struct {
	MinFontSize          float64 `json:"min_font_size" yaml:"min_font_size" validate:"gte=1,lte=500"`
	MaxFontSize          float64 `json:"max_font_size" yaml:"max_font_size" validate:"gte=1,lte=500"`
	ColorScheme          string  `json:"color_scheme" yaml:"color_scheme"`
	ExcludeStopwords     bool    `json:"exclude_stopwords" yaml:"exclude_stopwords"`
	WordRotation         bool    `json:"word_rotation" yaml:"word_rotation"`
	MinWordLength        int     `json:"min_word_length" yaml:"min_word_length" validate:"gte=0,lte=100"`
	ExcludeNumbers       bool    `json:"exclude_numbers" yaml:"exclude_numbers"`
	ShowFrequencyOnHover bool    `json:"show_frequency_on_hover" yaml:"show_frequency_on_hover"`
	FontFamily           string  `json:"font_family" yaml:"font_family"`

	// Width is the pixel width of the rendering surface; height follows the content.
	Width      int    `json:"width" yaml:"width" validate:"gte=100,lte=10000"`
	Background string `json:"background" yaml:"background"`
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		MinFontSize:          12,
		MaxFontSize:          72,
		ColorScheme:          "default",
		ExcludeStopwords:     true,
		WordRotation:         false,
		MinWordLength:        1,
		ExcludeNumbers:       false,
		ShowFrequencyOnHover: true,
		FontFamily:           "Arial, sans-serif",
		Width:                800,
		Background:           "#ffffff",
	}
}

// Normalize returns a corrected copy of the options along with any notices
// that should be shown to the user.
func (o Options) Normalize() (Options, []string) {
	var notices []string

	if o.MinFontSize > o.MaxFontSize {
		o.MinFontSize = o.MaxFontSize
		notices = append(notices, FontSizeNotice)
	}
	if o.MinWordLength < 1 {
		o.MinWordLength = 1
	}
	if o.FontFamily == "" {
		o.FontFamily = DefaultOptions().FontFamily
	}
	if o.Width <= 0 {
		o.Width = DefaultOptions().Width
	}
	if o.Background == "" {
		o.Background = DefaultOptions().Background
	}

	return o, notices
}
