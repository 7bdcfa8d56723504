package commands

import (
	"context"
	"fmt"
	"mssos-scraper/internal/components/telemetry"
	"mssos-scraper/internal/config"
	"mssos-scraper/internal/scrapers/mssos"
	"mssos-scraper/lib/restyutil"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose    bool
	jsonOutput bool
	dumpHttp   string
	configPath string
)

var scraper mssos.Scraper

var rootCmd = &cobra.Command{
	Use:   "mssos-cli",
	Short: "mssos-cli searches the Mississippi Secretary of State business registry.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(verbose)

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		opts := cfg.ScraperOptions()
		if dumpHttp != "" {
			output, err := restyutil.NewFilesystemOutput(dumpHttp)
			if err != nil {
				return err
			}
			opts.Dump = output
		}

		scraper, err = mssos.NewScraper(opts, telemetry.SlogAPI{})
		return err
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log debug information, including every http request.")
	flags.BoolVar(&jsonOutput, "json", false, "Print results as json instead of tables.")
	flags.StringVar(&dumpHttp, "dump-http", "", "Write every http exchange into the given directory (it is cleared first).")
	flags.StringVar(&configPath, "config", "config.json5", "Path to the json5 config file, a missing file is not an error.")
}

// ExecuteContext runs the cli and returns the process exit code.
func ExecuteContext(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
