package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <business name>",
	Short: "Lists the businesses whose name starts with the given query.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results := scraper.Search(cmd.Context(), args[0])
		if jsonOutput {
			return printJson(cmd.OutOrStdout(), results)
		}
		if len(results) == 0 {
			slog.Info("no results", "query", args[0])
			return nil
		}
		printSummaries(cmd.OutOrStdout(), results)
		return nil
	},
}
