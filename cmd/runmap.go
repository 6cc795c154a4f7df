package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trailboard/norquay/core/extract"
	"github.com/trailboard/norquay/core/output"
	"github.com/trailboard/norquay/core/resolve"
	"github.com/trailboard/norquay/internal/log"
)

var (
	flagSVG string
	flagOut string
)

var runmapCmd = &cobra.Command{
	Use:   "runmap",
	Short: "Build the name → element id map from the trail-map SVG",
	Long: `Runmap harvests every element id from the trail-map SVG, scrapes the run
names from the conditions page and matches them by normalized name (then
ignoring apostrophes). The map is written as pretty JSON; names that matched
no id are listed on stderr for hand-mapping.

Example:
  norquay runmap --svg public/norquay-map.svg --out public/runMap.json`,
	Args: cobra.NoArgs,
	RunE: runRunmap,
}

func init() {
	rootCmd.AddCommand(runmapCmd)

	runmapCmd.Flags().StringVar(&flagSVG, "svg", "", "Trail-map SVG (default: $NORQUAY_SVG or public/norquay-map.svg)")
	runmapCmd.Flags().StringVar(&flagOut, "out", "", "Output map path (default: $NORQUAY_RUNMAP or public/runMap.json)")
}

func runRunmap(cmd *cobra.Command, args []string) error {
	svgPath := cfg.SVGPath
	if flagSVG != "" {
		svgPath = flagSVG
	}
	outPath := cfg.RunMapPath
	if flagOut != "" {
		outPath = flagOut
	}

	_, ids, err := resolve.LoadTargets(svgPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.FetchTimeout)
	defer cancel()

	page, err := newFetcher(cfg).Fetch(ctx, cfg.SourceURL)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	names, err := extract.ExtractRunNames(page.HTML)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	m, missing := resolve.BuildIdentifierMap(names, ids)
	for _, key := range m.Keys() {
		log.Debugw("mapped run", "key", key, "id", m[key])
	}
	data, err := m.MarshalIndent()
	if err != nil {
		return err
	}

	writer, err := output.New("")
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	path, err := writer.WriteFile(outPath, data)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "✓ Written: %s (%d of %d names mapped, %d ids)\n", path, len(m), len(names), len(ids))
	for _, name := range missing {
		fmt.Fprintf(os.Stderr, "  ✗ No id for: %s\n", name)
	}
	return nil
}
