// ABOUTME: Export files and their names and MIME types.
// ABOUTME: Every exporter refuses to produce a file without generated data.

package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoData is returned when an export is attempted before anything was generated.
var ErrNoData = errors.New("no data to export: generate a word cloud first")

// File names and MIME types of the supported exports.
const (
	CSVFilename      = "word_frequencies.csv"
	SVGFilename      = "wordcloud.svg"
	PNGFilename      = "wordcloud.png"
	JSONFilename     = "wordcloud.json"
	MarkdownFilename = "wordcloud.md"

	CSVMIMEType      = "text/csv"
	SVGMIMEType      = "image/svg+xml"
	PNGMIMEType      = "image/png"
	JSONMIMEType     = "application/json"
	MarkdownMIMEType = "text/markdown"
)

// File is an export ready to be written or sent.
type File struct {
	Name     string
	MIMEType string
	Data     []byte
}

// Write stores the file in dir and returns its path. An empty dir means the
// current directory.
func (f File) Write(dir string) (string, error) {
	if len(f.Data) == 0 {
		return "", ErrNoData
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, f.Name)
	if err := os.WriteFile(path, f.Data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", f.Name, err)
	}
	return path, nil
}
