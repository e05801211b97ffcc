// ABOUTME: Structured logger construction for the CLI and MCP server.
// ABOUTME: Wraps charmbracelet/log with level and format from config.

package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Formats accepted by New.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatLogfmt = "logfmt"
)

// New returns a logger writing to w. verbose forces debug level.
func New(w io.Writer, level, format string, verbose bool) (*log.Logger, error) {
	lvl := log.WarnLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}
	if verbose {
		lvl = log.DebugLevel
	}

	var formatter log.Formatter
	switch format {
	case "", FormatText:
		formatter = log.TextFormatter
	case FormatJSON:
		formatter = log.JSONFormatter
	case FormatLogfmt:
		formatter = log.LogfmtFormatter
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}

	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "wordcloud",
		ReportTimestamp: verbose,
		Formatter:       formatter,
	}), nil
}
