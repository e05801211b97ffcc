// ABOUTME: Export command writing a word cloud to files.
// ABOUTME: Supports CSV, SVG, PNG, JSON and markdown, or all of them at once.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/harper/wordcloud/internal/export"
	"github.com/harper/wordcloud/internal/render"
	"github.com/harper/wordcloud/internal/ui"
	"github.com/harper/wordcloud/internal/wordcloud"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var exportFormats = []string{"csv", "svg", "png", "json", "md"}

var exportCmd = &cobra.Command{
	Use:   "export [text...]",
	Short: "Export a word cloud",
	Long: `Export a word cloud as csv, svg, png, json or md.
Use --format all to write every format into the output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		outputPath, _ := cmd.Flags().GetString("output")

		fonts, err := render.LoadFonts()
		if err != nil {
			return err
		}

		raster, err := newRasterizer(cmd, fonts)
		if err != nil {
			return err
		}

		cloud, err := generateCloud(cmd, args, fonts)
		if err != nil {
			return err
		}

		if format == "all" {
			dir := outputPath
			if dir == "" {
				dir = cfg.OutputDir
			}
			if dir == "" {
				dir = "."
			}
			return exportAll(cmd.Context(), cloud, raster, dir)
		}

		f, err := exportFile(cmd.Context(), cloud, raster, format)
		if err != nil {
			return err
		}

		if outputPath == "-" {
			_, err := cmd.OutOrStdout().Write(f.Data)
			return err
		}

		var path string
		switch {
		case outputPath == "":
			path, err = f.Write(defaultDir())
		default:
			err = os.WriteFile(outputPath, f.Data, 0644)
			path = outputPath
		}
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", format, err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Exported %s to %s", format, path)))
		return nil
	},
}

func defaultDir() string {
	if cfg.OutputDir != "" {
		return cfg.OutputDir
	}
	return "."
}

func exportFile(ctx context.Context, cloud *wordcloud.Cloud, raster render.Rasterizer, format string) (export.File, error) {
	switch format {
	case "csv":
		return export.CSVFile(cloud.Frequencies)
	case "svg":
		return export.SVGFile(cloud.Surface)
	case "png":
		return render.PNGFile(ctx, raster, cloud.Surface)
	case "json":
		return export.JSONFile(cloud.Report())
	case "md":
		return export.MarkdownFile(cloud.Report())
	default:
		return export.File{}, fmt.Errorf("unknown format: %s", format)
	}
}

// exportAll writes every format concurrently. Each writer only reads cloud.
func exportAll(ctx context.Context, cloud *wordcloud.Cloud, raster render.Rasterizer, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	start := time.Now()
	paths := make([]string, len(exportFormats))

	g, ctx := errgroup.WithContext(ctx)
	for i, format := range exportFormats {
		g.Go(func() error {
			f, err := exportFile(ctx, cloud, raster, format)
			if err != nil {
				return fmt.Errorf("%s: %w", format, err)
			}
			path, err := f.Write(dir)
			if err != nil {
				return fmt.Errorf("failed to write %s: %w", format, err)
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if errors.Is(err, render.ErrRenderFailed) {
			return err
		}
		return fmt.Errorf("export failed: %w", err)
	}

	logger.Debug("exported all formats", "dir", dir, "elapsed", time.Since(start))
	for _, p := range paths {
		fmt.Println(ui.Success("Wrote " + filepath.Base(p)))
	}
	fmt.Println(ui.Success(fmt.Sprintf("Exported %d files to %s", len(paths), dir)))
	return nil
}

func init() {
	addGenerateFlags(exportCmd)
	exportCmd.Flags().StringP("format", "f", "svg", "export format (csv|svg|png|json|md|all)")
	exportCmd.Flags().StringP("output", "o", "", "output path, - for stdout, or a directory with --format all")
	exportCmd.Flags().String("renderer", render.RendererGG, "png renderer (gg|browser)")
	exportCmd.Flags().Duration("timeout", render.DefaultBrowserTimeout, "browser render timeout")
	rootCmd.AddCommand(exportCmd)
}
