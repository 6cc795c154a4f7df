// Package refresh runs the reconcile cycle on a cron schedule, the
// server-side counterpart of a trail-map client's refresh timer.
package refresh

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/trailboard/norquay/api"
	"github.com/trailboard/norquay/internal/log"
)

// StatusSource produces one reconciled view per call.
type StatusSource interface {
	Status(ctx context.Context) (*api.StatusResponse, error)
}

// Sink receives the encoded view after every successful cycle.
type Sink func(data []byte) error

// Refresher owns the cron scheduler and the refresh job.
type Refresher struct {
	cron    *cron.Cron
	source  StatusSource
	sink    Sink
	spec    string
	timeout time.Duration
	wg      sync.WaitGroup
}

// NormalizeSpec accepts a cron spec, a descriptor such as "@hourly", or a
// bare Go duration ("20m"), and returns a spec robfig/cron understands.
func NormalizeSpec(spec string) (string, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return "", fmt.Errorf("empty refresh spec")
	}
	if d, err := time.ParseDuration(spec); err == nil {
		if d <= 0 {
			return "", fmt.Errorf("refresh interval must be positive, got %s", spec)
		}
		spec = "@every " + d.String()
	}
	if _, err := cron.ParseStandard(spec); err != nil {
		return "", fmt.Errorf("parsing refresh spec %q: %w", spec, err)
	}
	return spec, nil
}

// New creates a Refresher. sink may be nil. Each cycle gets its own timeout.
func New(source StatusSource, spec string, timeout time.Duration, sink Sink) (*Refresher, error) {
	spec, err := NormalizeSpec(spec)
	if err != nil {
		return nil, err
	}
	logger := cronLogger{}
	return &Refresher{
		cron: cron.New(
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		source:  source,
		sink:    sink,
		spec:    spec,
		timeout: timeout,
	}, nil
}

// Start registers the job, runs one cycle immediately and starts the
// scheduler. The immediate cycle goes through the same recover and
// skip-if-running chain as scheduled ones.
func (r *Refresher) Start(ctx context.Context) error {
	id, err := r.cron.AddFunc(r.spec, func() { r.RunOnce(ctx) })
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	job := r.cron.Entry(id).WrappedJob
	r.cron.Start()
	log.Infow("refresh scheduler started", "spec", r.spec)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		job.Run()
	}()
	return nil
}

// Stop stops the scheduler and waits for running cycles, including the one
// kicked off by Start, to finish.
func (r *Refresher) Stop() {
	<-r.cron.Stop().Done()
	r.wg.Wait()
	log.Infow("refresh scheduler stopped")
}

// RunOnce performs one cycle. Failures are logged and returned; they never
// affect the next cycle.
func (r *Refresher) RunOnce(ctx context.Context) (*api.StatusResponse, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	status, err := r.source.Status(ctx)
	if err != nil {
		log.Errorw("refresh cycle failed", "error", err)
		return nil, err
	}

	open := 0
	for _, l := range status.Lifts {
		if l.Open {
			open++
		}
	}
	log.Infow("refresh cycle complete",
		"applied", status.Applied,
		"notFound", status.NotFound,
		"liftsOpen", open,
	)

	if r.sink != nil {
		data, err := json.MarshalIndent(status, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding status: %w", err)
		}
		if err := r.sink(data); err != nil {
			log.Errorw("writing refreshed status", "error", err)
			return nil, err
		}
	}
	return status, nil
}

// cronLogger routes robfig/cron's own logging into zap.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	log.Debugw("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	log.Errorw("cron: "+msg, append(keysAndValues, "error", err)...)
}
