package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trailboard/norquay/core"
	"github.com/trailboard/norquay/core/output"
	"github.com/trailboard/norquay/core/render"
)

// Flag variables.
var (
	flagPDF       bool
	flagMarkdown  bool
	flagJSON      bool
	flagOutputDir string
)

// Report kinds accepted by scrape.
const (
	kindAll        = "all"
	kindRuns       = "runs"
	kindConditions = "conditions"
	kindStatus     = "status"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape [runs|conditions|status|all]",
	Short: "Scrape the conditions page once and render a report",
	Long: `Scrape fetches the conditions page once and renders the chosen view as
JSON, Markdown or PDF. Without --output_dir the report is written to stdout.

Examples:
  norquay scrape runs --json
  norquay scrape conditions --markdown
  norquay scrape --pdf --output_dir ./out`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{kindAll, kindRuns, kindConditions, kindStatus},
	RunE:      runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	// Output format flags (mutually exclusive).
	scrapeCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF")
	scrapeCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output Markdown")
	scrapeCmd.Flags().BoolVar(&flagJSON, "json", false, "Output JSON")

	scrapeCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: stdout)")
}

func runScrape(cmd *cobra.Command, args []string) error {
	kind := kindAll
	if len(args) == 1 {
		kind = args[0]
	}

	if err := validateFlags(); err != nil {
		return err
	}
	renderer, err := selectRenderer()
	if err != nil {
		return err
	}

	svc, err := newService(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.FetchTimeout)
	defer cancel()

	report, err := svc.Report(ctx)
	if err != nil {
		return fmt.Errorf("scrape: %w", err)
	}

	data, err := renderer.Render(trimReport(kind, report))
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if flagOutputDir == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	path, err := writer.WriteReport(report.Source, kind, data, renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "✓ Written: %s\n", path)
	return nil
}

// trimReport keeps the parts of a full report that belong to kind.
func trimReport(kind string, r core.Report) core.Report {
	switch kind {
	case kindRuns:
		r.Conditions = nil
		r.Applied, r.NotFound, r.Missing = 0, 0, nil
	case kindConditions:
		r.Runs = nil
		r.Applied, r.NotFound, r.Missing = 0, 0, nil
	case kindStatus:
		r.Conditions = nil
		r.Lifts = nil
	}
	return r
}

// validateFlags checks that exactly one output format is chosen.
func validateFlags() error {
	formatCount := 0
	if flagPDF {
		formatCount++
	}
	if flagMarkdown {
		formatCount++
	}
	if flagJSON {
		formatCount++
	}

	if formatCount == 0 {
		return fmt.Errorf("exactly one output format is required: --pdf, --markdown, or --json")
	}
	if formatCount > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}
	return nil
}

// selectRenderer creates the appropriate Renderer based on flags.
func selectRenderer() (core.Renderer, error) {
	switch {
	case flagMarkdown:
		return render.NewMarkdownRenderer(), nil
	case flagJSON:
		return render.NewJSONRenderer(), nil
	case flagPDF:
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("no output format selected")
	}
}
