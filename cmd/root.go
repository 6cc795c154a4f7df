// Package cmd implements the norquay CLI using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trailboard/norquay/internal/config"
	"github.com/trailboard/norquay/internal/log"
)

var (
	cfg *config.Config

	flagDebug  bool
	flagSource string
)

var rootCmd = &cobra.Command{
	Use:   "norquay",
	Short: "norquay: live run, lift and snow status for the Norquay trail map",
	Long: `norquay scrapes the Banff Norquay conditions page and serves run, lift and
weather status as JSON for a browser trail map.

Usage:
  norquay serve
  norquay scrape [runs|conditions|status|all] --json
  norquay runmap --svg public/norquay-map.svg --out public/runMap.json
  norquay watch --every 20m`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		if cmd.Flags().Changed("debug") {
			loaded.Debug = flagDebug
		}
		if flagSource != "" {
			loaded.SourceURL = flagSource
		}
		cfg = loaded
		return log.Init(cfg.Debug)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable development logging")
	rootCmd.PersistentFlags().StringVar(&flagSource, "source", "", "Conditions page URL (default: $NORQUAY_SOURCE_URL or the Norquay site)")
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	log.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
