// ABOUTME: MCP server exposing word cloud generation to AI agents.
// ABOUTME: Provides tools, resources, and prompts over stdio.

package mcp

import (
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/harper/wordcloud/internal/models"
	"github.com/harper/wordcloud/internal/render"
	"github.com/harper/wordcloud/internal/wordcloud"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type Server struct {
	server *mcp.Server

	// mu guards gen, which owns a single random source.
	mu  sync.Mutex
	gen *wordcloud.Generator

	raster   render.Rasterizer
	defaults models.Options
	logger   *log.Logger
}

func NewServer(gen *wordcloud.Generator, raster render.Rasterizer, defaults models.Options, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{gen: gen, raster: raster, defaults: defaults, logger: logger}

	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    "wordcloud",
			Version: wordcloud.Version,
		},
		&mcp.ServerOptions{
			HasTools:     true,
			HasResources: true,
			HasPrompts:   true,
		},
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

func (s *Server) Serve(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// generate runs one generation under the server lock.
func (s *Server) generate(text string, opts models.Options) (*wordcloud.Cloud, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen.Generate(text, opts)
}
