// ABOUTME: MCP resources exposing the stopword list and color palettes.
// ABOUTME: Lets agents see which words are filtered and which schemes exist.

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/harper/wordcloud/internal/frequency"
	"github.com/harper/wordcloud/internal/palette"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	stopwordsURI = "wordcloud://stopwords"
	schemesURI   = "wordcloud://schemes"
)

func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         stopwordsURI,
		Name:        "Stopwords",
		Description: "Common English words excluded when exclude_stopwords is set",
		MIMEType:    "text/plain",
	}, s.handleReadResource)

	s.server.AddResource(&mcp.Resource{
		URI:         schemesURI,
		Name:        "Color schemes",
		Description: "Named color schemes and their palettes",
		MIMEType:    "application/json",
	}, s.handleReadResource)
}

func (s *Server) handleReadResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	var mimeType, content string

	switch req.Params.URI {
	case stopwordsURI:
		mimeType = "text/plain"
		content = strings.Join(frequency.Stopwords(), "\n")
	case schemesURI:
		schemes := make(map[string][]string)
		for _, name := range palette.Schemes() {
			schemes[name] = palette.Palette(name)
		}
		data, err := json.MarshalIndent(schemes, "", "  ")
		if err != nil {
			return nil, err
		}
		mimeType = "application/json"
		content = string(data)
	default:
		return nil, fmt.Errorf("invalid resource URI: %s", req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: mimeType,
				Text:     content,
			},
		},
	}, nil
}
