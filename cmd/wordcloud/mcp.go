// ABOUTME: MCP command to start the MCP server.
// ABOUTME: Runs on stdio for integration with AI agents.

package main

import (
	"github.com/harper/wordcloud/internal/mcp"
	"github.com/harper/wordcloud/internal/palette"
	"github.com/harper/wordcloud/internal/render"
	"github.com/harper/wordcloud/internal/wordcloud"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long:  `Start the Model Context Protocol server for AI agent integration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fonts, err := render.LoadFonts()
		if err != nil {
			return err
		}

		raster, err := newRasterizer(cmd, fonts)
		if err != nil {
			return err
		}

		gen := wordcloud.NewGenerator(palette.NewRandom(cfg.Seed), fonts, wordcloud.WithLogger(logger))
		server := mcp.NewServer(gen, raster, cfg.Options, logger)
		logger.Info("mcp server listening on stdio")
		return server.Serve(cmd.Context())
	},
}

func init() {
	mcpCmd.Flags().String("renderer", render.RendererGG, "png renderer (gg|browser)")
	mcpCmd.Flags().Duration("timeout", render.DefaultBrowserTimeout, "browser render timeout")
	rootCmd.AddCommand(mcpCmd)
}
