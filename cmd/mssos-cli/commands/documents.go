package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(documentsCmd)
}

var documentsCmd = &cobra.Command{
	Use:   "documents <registration number>",
	Short: "Lists the reference filings of a business.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		documents := scraper.Documents(cmd.Context(), args[0])
		if jsonOutput {
			return printJson(cmd.OutOrStdout(), documents)
		}
		printDocuments(cmd.OutOrStdout(), documents)
		return nil
	},
}
