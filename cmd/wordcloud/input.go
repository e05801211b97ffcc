// ABOUTME: Shared flags and helpers for commands that generate a cloud.
// ABOUTME: Reads text from an argument, a file or stdin and merges option flags over config.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/harper/wordcloud/internal/config"
	"github.com/harper/wordcloud/internal/models"
	"github.com/harper/wordcloud/internal/palette"
	"github.com/harper/wordcloud/internal/render"
	"github.com/harper/wordcloud/internal/ui"
	"github.com/harper/wordcloud/internal/wordcloud"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func addGenerateFlags(cmd *cobra.Command) {
	d := models.DefaultOptions()

	cmd.Flags().String("file", "", "read text from file")
	cmd.Flags().Float64("min-font-size", d.MinFontSize, "smallest font size in px")
	cmd.Flags().Float64("max-font-size", d.MaxFontSize, "largest font size in px")
	cmd.Flags().StringP("scheme", "s", d.ColorScheme, "color scheme ("+strings.Join(palette.Schemes(), "|")+")")
	cmd.Flags().Bool("stopwords", d.ExcludeStopwords, "exclude common English words")
	cmd.Flags().Bool("rotate", d.WordRotation, "randomly turn words vertical")
	cmd.Flags().Int("min-length", d.MinWordLength, "minimum characters per word")
	cmd.Flags().Bool("no-numbers", d.ExcludeNumbers, "exclude purely numeric words")
	cmd.Flags().Bool("hover", d.ShowFrequencyOnHover, "add frequency tooltips to SVG output")
	cmd.Flags().String("font", d.FontFamily, "CSS font family")
	cmd.Flags().Int("width", d.Width, "surface width in px")
	cmd.Flags().String("background", d.Background, "background color")
	cmd.Flags().Uint64("seed", 0, "random seed for colors and rotation (0: random)")
}

// resolveOptions starts from config and applies only the flags the user set.
func resolveOptions(cmd *cobra.Command) models.Options {
	opts := cfg.Options
	f := cmd.Flags()

	if f.Changed("min-font-size") {
		opts.MinFontSize, _ = f.GetFloat64("min-font-size")
	}
	if f.Changed("max-font-size") {
		opts.MaxFontSize, _ = f.GetFloat64("max-font-size")
	}
	if f.Changed("scheme") {
		opts.ColorScheme, _ = f.GetString("scheme")
	}
	if f.Changed("stopwords") {
		opts.ExcludeStopwords, _ = f.GetBool("stopwords")
	}
	if f.Changed("rotate") {
		opts.WordRotation, _ = f.GetBool("rotate")
	}
	if f.Changed("min-length") {
		opts.MinWordLength, _ = f.GetInt("min-length")
	}
	if f.Changed("no-numbers") {
		opts.ExcludeNumbers, _ = f.GetBool("no-numbers")
	}
	if f.Changed("hover") {
		opts.ShowFrequencyOnHover, _ = f.GetBool("hover")
	}
	if f.Changed("font") {
		opts.FontFamily, _ = f.GetString("font")
	}
	if f.Changed("width") {
		opts.Width, _ = f.GetInt("width")
	}
	if f.Changed("background") {
		opts.Background, _ = f.GetString("background")
	}

	return opts
}

// readInput returns the text to analyze.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	fileFlag, _ := cmd.Flags().GetString("file")

	switch {
	case len(args) > 0:
		return strings.Join(args, " "), nil
	case fileFlag == "-":
		return readStdin(cmd.InOrStdin())
	case fileFlag != "":
		data, err := os.ReadFile(fileFlag) //nolint:gosec // User-specified file path is expected CLI behavior
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		return string(data), nil
	case !isatty.IsTerminal(os.Stdin.Fd()):
		return readStdin(cmd.InOrStdin())
	default:
		return "", wordcloud.ErrEmptyText
	}
}

func readStdin(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// generateCloud reads input and runs one generation, printing notices.
func generateCloud(cmd *cobra.Command, args []string, fonts *render.Fonts) (*wordcloud.Cloud, error) {
	text, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if cmd.Flags().Changed("seed") {
		seed, _ = cmd.Flags().GetUint64("seed")
	}

	opts := resolveOptions(cmd)
	if err := config.ValidateOptions(opts); err != nil {
		return nil, err
	}

	gen := wordcloud.NewGenerator(palette.NewRandom(seed), fonts, wordcloud.WithLogger(logger))
	cloud, err := gen.Generate(text, opts)
	if err != nil {
		if errors.Is(err, wordcloud.ErrEmptyText) || errors.Is(err, wordcloud.ErrNoWords) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to generate word cloud: %w", err)
	}

	for _, n := range cloud.Notices {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Warning(n))
	}
	return cloud, nil
}

// newRasterizer builds the PNG renderer from config and flags.
func newRasterizer(cmd *cobra.Command, fonts *render.Fonts) (render.Rasterizer, error) {
	opts := render.Options{
		Renderer:    cfg.Renderer,
		BrowserPath: cfg.BrowserPath,
	}
	if cmd.Flags().Changed("renderer") {
		opts.Renderer, _ = cmd.Flags().GetString("renderer")
	}
	opts.Timeout, _ = cmd.Flags().GetDuration("timeout")
	return render.New(opts, fonts)
}
