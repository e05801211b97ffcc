// ABOUTME: JSON and markdown reports of a generated word cloud.
// ABOUTME: Markdown carries a YAML frontmatter summary followed by a frequency table.

package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harper/wordcloud/internal/frequency"
	"github.com/harper/wordcloud/internal/models"
	"gopkg.in/yaml.v3"
)

// Report is the full result of one generation, as exported.
type Report struct {
	ID           string                  `json:"id" yaml:"id"`
	GeneratedAt  time.Time               `json:"generated_at" yaml:"generated"`
	Version      string                  `json:"version" yaml:"version"`
	Options      models.Options          `json:"options" yaml:"-"`
	TotalWords   int                     `json:"total_words" yaml:"total_words"`
	UniqueWords  int                     `json:"unique_words" yaml:"unique_words"`
	MostFrequent *models.MostFrequent    `json:"most_frequent,omitempty" yaml:"most_frequent,omitempty"`
	Frequencies  []models.FrequencyEntry `json:"frequencies" yaml:"-"`
	Words        []models.StyledWord     `json:"words" yaml:"-"`
	Surface      *models.Surface         `json:"surface,omitempty" yaml:"-"`
}

// JSON encodes the report with indentation.
func JSON(r Report) ([]byte, error) {
	if len(r.Frequencies) == 0 {
		return nil, ErrNoData
	}
	return json.MarshalIndent(r, "", "  ")
}

// JSONFile wraps the JSON report as a downloadable file.
func JSONFile(r Report) (File, error) {
	data, err := JSON(r)
	if err != nil {
		return File{}, err
	}
	return File{Name: JSONFilename, MIMEType: JSONMIMEType, Data: data}, nil
}

// Markdown renders the report as a markdown document with frontmatter, words
// listed most frequent first. At most limit rows are listed; limit <= 0 lists
// every word.
func Markdown(r Report, limit int) (string, error) {
	if len(r.Frequencies) == 0 {
		return "", ErrNoData
	}

	frontmatter, err := yaml.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed to encode frontmatter: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("---\n")
	sb.Write(frontmatter)
	sb.WriteString("---\n\n")
	sb.WriteString("# Word frequencies\n\n")

	if mf := r.MostFrequent; mf != nil {
		fmt.Fprintf(&sb, "Most frequent word: **%s** (%d %s)", mf.Word, mf.Count, models.Plural(mf.Count, "time", "times"))
		if mf.IsTie {
			sb.WriteString(" *(tie)*")
		}
		sb.WriteString("\n\n")
	}

	sb.WriteString("| # | Word | Count |\n")
	sb.WriteString("|---|------|------:|\n")
	rows := frequency.SortByCount(r.Frequencies)
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	for i, e := range rows {
		fmt.Fprintf(&sb, "| %d | %s | %d |\n", i+1, strings.ReplaceAll(e.Word, "|", `\|`), e.Count)
	}
	if len(rows) < len(r.Frequencies) {
		fmt.Fprintf(&sb, "\n_%d more words not shown._\n", len(r.Frequencies)-len(rows))
	}

	return sb.String(), nil
}

// MarkdownFile wraps the markdown report as a downloadable file.
func MarkdownFile(r Report) (File, error) {
	data, err := Markdown(r, 0)
	if err != nil {
		return File{}, err
	}
	return File{Name: MarkdownFilename, MIMEType: MarkdownMIMEType, Data: []byte(data)}, nil
}
