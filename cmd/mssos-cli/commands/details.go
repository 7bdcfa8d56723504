package commands

import (
	"fmt"
	"mssos-scraper/internal/scrapers/mssos"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(detailsCmd)
	rootCmd.AddCommand(lookupCmd)
}

func renderDetail(cmd *cobra.Command, detail mssos.BusinessDetail, ok bool) error {
	if !ok {
		return fmt.Errorf("failed to fetch business details, rerun with -v for more information")
	}
	if jsonOutput {
		return printJson(cmd.OutOrStdout(), detail)
	}
	printDetail(cmd.OutOrStdout(), detail)
	return nil
}

var detailsCmd = &cobra.Command{
	Use:   "details <detail page url>",
	Short: "Fetches a business detail page (as listed by search) and its filed documents.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		detail, ok := scraper.Details(cmd.Context(), args[0])
		return renderDetail(cmd, detail, ok)
	},
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <business name>",
	Short: "Searches for a business and fetches the details of the closest match.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		detail, ok := scraper.Lookup(cmd.Context(), args[0])
		return renderDetail(cmd, detail, ok)
	},
}
