// ABOUTME: Stopwords command listing or checking the built-in stopword set.
// ABOUTME: Useful to see why a word is missing from a cloud.

package main

import (
	"fmt"
	"strings"

	"github.com/harper/wordcloud/internal/frequency"
	"github.com/harper/wordcloud/internal/tokenize"
	"github.com/harper/wordcloud/internal/ui"
	"github.com/spf13/cobra"
)

var stopwordsCmd = &cobra.Command{
	Use:   "stopwords [word...]",
	Short: "List or check stopwords",
	Long:  `List the built-in stopwords, or check whether the given words are filtered.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		columns, _ := cmd.Flags().GetInt("columns")
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			words := frequency.Stopwords()
			fmt.Fprint(out, ui.FormatStopwords(words, columns))
			fmt.Fprintf(out, "\n%d stopwords\n", len(words))
			return nil
		}

		for _, arg := range args {
			word := strings.TrimSpace(tokenize.Clean(arg))
			if frequency.IsStopword(word) {
				fmt.Fprintln(out, ui.Warning(fmt.Sprintf("%s is a stopword", word)))
			} else {
				fmt.Fprintln(out, ui.Success(fmt.Sprintf("%s is kept", word)))
			}
		}
		return nil
	},
}

func init() {
	stopwordsCmd.Flags().Int("columns", 6, "words per line")
	rootCmd.AddCommand(stopwordsCmd)
}
