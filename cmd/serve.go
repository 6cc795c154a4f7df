package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/trailboard/norquay/api"
	"github.com/trailboard/norquay/internal/log"
)

var (
	flagPort      string
	flagPublicDir string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the runs, conditions and status endpoints over HTTP",
	Long: `Serve starts an HTTP server exposing:

  GET /api/runs          per-row trail and lift status
  GET /api/conditions    weather, snowfall, base depth and lifts
  GET /api/status        statuses reconciled against the trail map
  GET /healthz

The legacy function paths /.netlify/functions/norquay-runs and
/.netlify/functions/conditions are kept as aliases. With --public the
directory (trail map SVG, runMap.json, client) is served at /.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&flagPort, "port", "", "Listen port (default: $PORT or 3000)")
	serveCmd.Flags().StringVar(&flagPublicDir, "public", "", "Static directory served at / (default: $NORQUAY_PUBLIC_DIR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if flagPort != "" {
		cfg.Port = flagPort
	}
	if flagPublicDir != "" {
		cfg.PublicDir = flagPublicDir
	}

	svc, err := newService(cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(svc, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Infow("listening", "addr", srv.Addr, "source", cfg.SourceURL, "public", cfg.PublicDir)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Infow("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
