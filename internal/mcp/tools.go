// ABOUTME: MCP tools for word cloud generation and export.
// ABOUTME: Maps CLI functionality to MCP tool interface.

package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/harper/wordcloud/internal/export"
	"github.com/harper/wordcloud/internal/models"
	"github.com/harper/wordcloud/internal/render"
	"github.com/harper/wordcloud/internal/summary"
	"github.com/harper/wordcloud/internal/wordcloud"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// optionProperties is shared by every tool that generates a cloud.
const optionProperties = `
				"text": {"type": "string", "description": "Text to analyze"},
				"min_font_size": {"type": "number", "description": "Smallest font size in px", "default": 12},
				"max_font_size": {"type": "number", "description": "Largest font size in px", "default": 72},
				"color_scheme": {"type": "string", "description": "default, warm, cool, grayscale or random", "default": "default"},
				"exclude_stopwords": {"type": "boolean", "description": "Drop common English words", "default": true},
				"word_rotation": {"type": "boolean", "description": "Randomly turn words vertical", "default": false},
				"min_word_length": {"type": "integer", "description": "Minimum characters per word", "default": 1},
				"exclude_numbers": {"type": "boolean", "description": "Drop purely numeric words", "default": false},
				"width": {"type": "integer", "description": "Surface width in px", "default": 800}`

func toolSchema(extra string) json.RawMessage {
	return json.RawMessage(`{
			"type": "object",
			"properties": {` + optionProperties + extra + `
			},
			"required": ["text"]
		}`)
}

var validate = validator.New()

// generateParams carries the text and per-call option overrides.
type generateParams struct {
	Text             string   `json:"text"`
	MinFontSize      *float64 `json:"min_font_size" validate:"omitempty,gte=1,lte=500"`
	MaxFontSize      *float64 `json:"max_font_size" validate:"omitempty,gte=1,lte=500"`
	ColorScheme      *string  `json:"color_scheme"`
	ExcludeStopwords *bool    `json:"exclude_stopwords"`
	WordRotation     *bool    `json:"word_rotation"`
	MinWordLength    *int     `json:"min_word_length" validate:"omitempty,gte=0,lte=100"`
	ExcludeNumbers   *bool    `json:"exclude_numbers"`
	Width            *int     `json:"width" validate:"omitempty,gte=100,lte=10000"`
	Limit            int      `json:"limit" validate:"gte=0"`
}

func (p generateParams) options(base models.Options) models.Options {
	if p.MinFontSize != nil {
		base.MinFontSize = *p.MinFontSize
	}
	if p.MaxFontSize != nil {
		base.MaxFontSize = *p.MaxFontSize
	}
	if p.ColorScheme != nil {
		base.ColorScheme = *p.ColorScheme
	}
	if p.ExcludeStopwords != nil {
		base.ExcludeStopwords = *p.ExcludeStopwords
	}
	if p.WordRotation != nil {
		base.WordRotation = *p.WordRotation
	}
	if p.MinWordLength != nil {
		base.MinWordLength = *p.MinWordLength
	}
	if p.ExcludeNumbers != nil {
		base.ExcludeNumbers = *p.ExcludeNumbers
	}
	if p.Width != nil {
		base.Width = *p.Width
	}
	return base
}

func (s *Server) registerTools() {
	// generate_word_cloud
	s.server.AddTool(&mcp.Tool{
		Name:        "generate_word_cloud",
		Description: "Generate a word cloud from text and return the styled words, summary and layout as JSON",
		InputSchema: toolSchema(""),
	}, s.handleGenerate)

	// word_frequencies
	s.server.AddTool(&mcp.Tool{
		Name:        "word_frequencies",
		Description: "Count word frequencies in text, most frequent first",
		InputSchema: toolSchema(`,
				"limit": {"type": "integer", "description": "Max words returned (0 for all)", "default": 0}`),
	}, s.handleFrequencies)

	// export_svg
	s.server.AddTool(&mcp.Tool{
		Name:        "export_svg",
		Description: "Generate a word cloud and return it as an SVG document",
		InputSchema: toolSchema(""),
	}, s.handleExportSVG)

	// export_csv
	s.server.AddTool(&mcp.Tool{
		Name:        "export_csv",
		Description: "Generate word frequencies and return them as CSV",
		InputSchema: toolSchema(""),
	}, s.handleExportCSV)

	// export_png
	s.server.AddTool(&mcp.Tool{
		Name:        "export_png",
		Description: "Generate a word cloud and return it as a PNG image at 2x scale",
		InputSchema: toolSchema(""),
	}, s.handleExportPNG)
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: msg},
		},
		IsError: true,
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// cloudFor parses arguments and generates. A non-nil result is a user error
// to hand back to the client.
func (s *Server) cloudFor(req *mcp.CallToolRequest) (*wordcloud.Cloud, generateParams, *mcp.CallToolResult, error) {
	var params generateParams
	if len(req.Params.Arguments) > 0 {
		if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
			return nil, params, nil, err
		}
	}

	if err := validate.Struct(params); err != nil {
		return nil, params, errorResult(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	cloud, err := s.generate(params.Text, params.options(s.defaults))
	if errors.Is(err, wordcloud.ErrEmptyText) || errors.Is(err, wordcloud.ErrNoWords) {
		return nil, params, errorResult(err.Error()), nil
	}
	if err != nil {
		return nil, params, nil, err
	}
	return cloud, params, nil, nil
}

// Tool handlers.
func (s *Server) handleGenerate(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cloud, _, userErr, err := s.cloudFor(req)
	if userErr != nil || err != nil {
		return userErr, err
	}

	data, err := export.JSON(cloud.Report())
	if err != nil {
		return errorResult(fmt.Sprintf("failed to encode word cloud: %v", err)), nil
	}

	var sb strings.Builder
	for _, n := range cloud.Notices {
		sb.WriteString(n + "\n")
	}
	sb.WriteString(cloud.Summary())

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: sb.String()},
			&mcp.TextContent{Text: string(data)},
		},
	}, nil
}

func (s *Server) handleFrequencies(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cloud, params, userErr, err := s.cloudFor(req)
	if userErr != nil || err != nil {
		return userErr, err
	}

	limit := params.Limit
	if limit == 0 {
		limit = len(cloud.Frequencies)
	}

	data, _ := json.MarshalIndent(summary.Top(cloud.Frequencies, limit), "", "  ")
	return textResult(string(data)), nil
}

func (s *Server) handleExportSVG(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cloud, _, userErr, err := s.cloudFor(req)
	if userErr != nil || err != nil {
		return userErr, err
	}

	svg, err := export.SVG(cloud.Surface)
	if err != nil {
		return errorResult(fmt.Sprintf("failed to export SVG: %v", err)), nil
	}
	return textResult(svg), nil
}

func (s *Server) handleExportCSV(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cloud, _, userErr, err := s.cloudFor(req)
	if userErr != nil || err != nil {
		return userErr, err
	}

	csv, err := export.CSV(cloud.Frequencies)
	if err != nil {
		return errorResult(fmt.Sprintf("failed to export CSV: %v", err)), nil
	}
	return textResult(csv), nil
}

func (s *Server) handleExportPNG(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cloud, _, userErr, err := s.cloudFor(req)
	if userErr != nil || err != nil {
		return userErr, err
	}

	f, err := render.PNGFile(ctx, s.raster, cloud.Surface)
	if err != nil {
		s.logger.Error("png export failed", "id", cloud.ID, "err", err)
		return errorResult(render.ErrRenderFailed.Error()), nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.ImageContent{Data: f.Data, MIMEType: f.MIMEType},
		},
	}, nil
}
