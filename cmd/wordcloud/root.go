// ABOUTME: Root command wiring config, logging and terminal color.
// ABOUTME: Prints command errors as a single styled line on stderr.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/harper/wordcloud/internal/config"
	"github.com/harper/wordcloud/internal/logging"
	"github.com/harper/wordcloud/internal/render"
	"github.com/harper/wordcloud/internal/ui"
	"github.com/harper/wordcloud/internal/wordcloud"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "wordcloud",
	Short: "Turn text into a word cloud",
	Long: `wordcloud counts the words in a text, sizes them by frequency and
renders the result to the terminal, SVG, PNG, CSV, JSON or markdown.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")
		configPath, _ := cmd.Flags().GetString("config")
		verbose, _ := cmd.Flags().GetBool("verbose")
		forceColor, _ := cmd.Flags().GetBool("color")

		if err := config.LoadEnvFile(envFile); err != nil {
			return err
		}

		var err error
		if configPath != "" {
			cfg, err = config.LoadConfigFrom(configPath)
		} else {
			cfg, err = config.LoadConfig()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger, err = logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format, verbose)
		if err != nil {
			return err
		}

		ui.ConfigureColor(os.Stdout.Fd(), forceColor)
		return nil
	},
}

func init() {
	wordcloud.Version = version

	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
	rootCmd.PersistentFlags().String("config", "", "config file (default: $XDG_CONFIG_HOME/wordcloud/config.yaml)")
	rootCmd.PersistentFlags().String("env-file", ".env", "load environment overrides from this file if present")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().Bool("color", false, "force colored output")
}

// Execute runs the root command and reports any error.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	msg := err.Error()
	if errors.Is(err, render.ErrRenderFailed) {
		if logger != nil {
			logger.Debug("render failed", "err", err)
		}
		msg = render.ErrRenderFailed.Error()
	}
	fmt.Fprintln(os.Stderr, ui.Error(msg))
	return err
}
