// ABOUTME: Generator running one word cloud cycle from text and options.
// ABOUTME: Owns the boundary errors, notices and the random source.

package wordcloud

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/harper/wordcloud/internal/export"
	"github.com/harper/wordcloud/internal/frequency"
	"github.com/harper/wordcloud/internal/layout"
	"github.com/harper/wordcloud/internal/models"
	"github.com/harper/wordcloud/internal/palette"
	"github.com/harper/wordcloud/internal/sizing"
	"github.com/harper/wordcloud/internal/summary"
	"github.com/harper/wordcloud/internal/tokenize"
)

// Version is stamped into exported reports.
var Version = "dev"

var (
	// ErrEmptyText is returned for blank input.
	ErrEmptyText = errors.New("please enter some text to generate a word cloud")
	// ErrNoWords is returned when filtering leaves nothing to count.
	ErrNoWords = errors.New("no valid words found after filtering; try adjusting your settings")
)

// Cloud is the immutable result of one generation.
type Cloud struct {
	ID           uuid.UUID
	GeneratedAt  time.Time
	Options      models.Options
	Notices      []string
	TokenCount   int
	Frequencies  []models.FrequencyEntry
	Sized        []models.SizedWord
	MostFrequent *models.MostFrequent
	Result       layout.Result
	Surface      models.Surface
}

// Summary returns the most frequent word line, or "" when there is none.
func (c *Cloud) Summary() string {
	return summary.Describe(c.MostFrequent)
}

// Top returns the n most frequent words.
func (c *Cloud) Top(n int) []models.FrequencyEntry {
	return summary.Top(c.Frequencies, n)
}

// Report builds the exportable report for the cloud.
func (c *Cloud) Report() export.Report {
	surface := c.Surface
	return export.Report{
		ID:           c.ID.String(),
		GeneratedAt:  c.GeneratedAt,
		Version:      Version,
		Options:      c.Options,
		TotalWords:   frequency.Total(c.Frequencies),
		UniqueWords:  len(c.Frequencies),
		MostFrequent: c.MostFrequent,
		Frequencies:  c.Frequencies,
		Words:        c.Result.Words,
		Surface:      &surface,
	}
}

// Generator runs the pipeline. It is not safe for concurrent use because it
// owns a single random source.
type Generator struct {
	rng      palette.Random
	measurer layout.Measurer
	logger   *log.Logger
	now      func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// NewGenerator returns a generator drawing colors and rotations from rng and
// measuring words with m.
func NewGenerator(rng palette.Random, m layout.Measurer, opts ...Option) *Generator {
	g := &Generator{
		rng:      rng,
		measurer: m,
		logger:   log.New(io.Discard),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate tokenizes text, counts, sizes, styles and places the words.
func (g *Generator) Generate(text string, opts models.Options) (*Cloud, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	opts, notices := opts.Normalize()

	tokens := tokenize.Tokenize(text, tokenize.Options{
		MinWordLength:  opts.MinWordLength,
		ExcludeNumbers: opts.ExcludeNumbers,
	})
	entries := frequency.Count(tokens, opts.ExcludeStopwords)
	if len(entries) == 0 {
		return nil, ErrNoWords
	}

	sized := sizing.Normalize(entries, opts.MinFontSize, opts.MaxFontSize)
	mostFrequent := summary.MostFrequent(entries)
	result := layout.Build(sized, opts, mostFrequent, g.rng)
	surface := layout.Flow(result.Words, g.measurer, layout.DefaultFlowOptions(opts))

	cloud := &Cloud{
		ID:           uuid.New(),
		GeneratedAt:  g.now().UTC(),
		Options:      opts,
		Notices:      notices,
		TokenCount:   len(tokens),
		Frequencies:  entries,
		Sized:        sized,
		MostFrequent: mostFrequent,
		Result:       result,
		Surface:      surface,
	}

	g.logger.Debug("generated word cloud",
		"id", cloud.ID,
		"tokens", cloud.TokenCount,
		"unique", len(entries),
		"height", surface.Height,
	)
	for _, n := range notices {
		g.logger.Debug("options adjusted", "notice", n)
	}

	return cloud, nil
}
