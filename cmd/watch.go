package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/trailboard/norquay/core/output"
	"github.com/trailboard/norquay/internal/refresh"
)

var (
	flagEvery      string
	flagStatusFile string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reconcile the trail map on a schedule",
	Long: `Watch runs one reconcile cycle immediately and then on every tick of the
schedule. A failed cycle is logged and the next tick runs normally. With
--status_file each successful cycle rewrites that file with the status view.

Examples:
  norquay watch --every 20m
  norquay watch --every "*/10 6-22 * * *" --status_file public/status.json`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&flagEvery, "every", "", "Duration or cron spec (default: $NORQUAY_REFRESH or @every 20m)")
	watchCmd.Flags().StringVar(&flagStatusFile, "status_file", "", "Write the status JSON here after each cycle")
}

func runWatch(cmd *cobra.Command, args []string) error {
	spec := cfg.RefreshSpec
	if flagEvery != "" {
		spec = flagEvery
	}

	svc, err := newService(cfg)
	if err != nil {
		return err
	}

	var sink refresh.Sink
	if flagStatusFile != "" {
		writer, err := output.New("")
		if err != nil {
			return err
		}
		sink = func(data []byte) error {
			_, err := writer.WriteFile(flagStatusFile, data)
			return err
		}
	}

	r, err := refresh.New(svc, spec, 2*cfg.FetchTimeout, sink)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := r.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	r.Stop()
	return nil
}
