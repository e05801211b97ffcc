// ABOUTME: Generate command printing a word cloud to the terminal.
// ABOUTME: Shows the summary, a colored preview, a top-N chart and optional tables.

package main

import (
	"fmt"

	"github.com/harper/wordcloud/internal/export"
	"github.com/harper/wordcloud/internal/frequency"
	"github.com/harper/wordcloud/internal/render"
	"github.com/harper/wordcloud/internal/summary"
	"github.com/harper/wordcloud/internal/ui"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:     "generate [text...]",
	Aliases: []string{"gen"},
	Short:   "Generate a word cloud",
	Long: `Generate a word cloud from text given as arguments, --file, or stdin.
Prints the most frequent word, a colored preview and a chart of the top words.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		topFlag, _ := cmd.Flags().GetInt("top")
		tableFlag, _ := cmd.Flags().GetBool("table")
		reportFlag, _ := cmd.Flags().GetBool("report")
		columnsFlag, _ := cmd.Flags().GetInt("columns")

		fonts, err := render.LoadFonts()
		if err != nil {
			return err
		}

		cloud, err := generateCloud(cmd, args, fonts)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if reportFlag {
			md, err := export.Markdown(cloud.Report(), topFlag)
			if err != nil {
				return err
			}
			rendered, _ := ui.FormatReport(md)
			fmt.Fprint(out, rendered)
			return nil
		}

		fmt.Fprint(out, ui.FormatSummary(cloud.MostFrequent, frequency.Total(cloud.Frequencies), len(cloud.Frequencies)))
		fmt.Fprint(out, ui.Separator())
		fmt.Fprint(out, ui.FormatPreview(cloud.Result, columnsFlag))
		fmt.Fprint(out, ui.Separator())

		if tableFlag {
			fmt.Fprintln(out, ui.FormatFrequencyTable(summary.Top(cloud.Frequencies, topFlag)))
			return nil
		}
		fmt.Fprintln(out, ui.FormatBarChart(cloud.Top(topFlag), 40))
		return nil
	},
}

func init() {
	addGenerateFlags(generateCmd)
	generateCmd.Flags().IntP("top", "n", summary.DefaultTopN, "number of words in the chart or table")
	generateCmd.Flags().Bool("table", false, "show a frequency table instead of the chart")
	generateCmd.Flags().Bool("report", false, "render a markdown report")
	generateCmd.Flags().Int("columns", 80, "preview wrap width")
	rootCmd.AddCommand(generateCmd)
}
