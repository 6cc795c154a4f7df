// Package api is the HTTP boundary: one upstream fetch per request, shaped
// into the runs, conditions and status views.
package api

import (
	"context"
	"fmt"
	"time"

	"github.com/trailboard/norquay/core"
	"github.com/trailboard/norquay/core/extract"
	"github.com/trailboard/norquay/core/reconcile"
	"github.com/trailboard/norquay/core/resolve"
	"github.com/trailboard/norquay/internal/log"
)

// RunsResponse is the body of the runs endpoint.
type RunsResponse struct {
	UpdatedAt time.Time                 `json:"updatedAt"`
	Source    string                    `json:"source"`
	Runs      map[string]core.RunStatus `json:"runs"`
}

// ConditionsResponse is the body of the conditions endpoint.
type ConditionsResponse struct {
	Source   string                    `json:"source"`
	TempC    *int                      `json:"tempC"`
	Note     *string                   `json:"note"`
	NewSnow  core.NewSnow              `json:"newSnow"`
	SnowBase core.SnowBase             `json:"snowBase"`
	Lifts    map[string]core.RunStatus `json:"lifts,omitempty"`
	Updated  time.Time                 `json:"updated"`
}

// StatusResponse is the reconciled view a trail-map client applies.
type StatusResponse struct {
	UpdatedAt time.Time `json:"updatedAt"`
	Source    string    `json:"source"`
	reconcile.Result
	Lifts []reconcile.LiftState `json:"lifts"`
}

// Service scrapes the source page on demand.
type Service struct {
	fetcher  core.Fetcher
	source   string
	lifts    reconcile.LiftTable
	resolver *resolve.Resolver
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLiftTable replaces the default Norquay lift table.
func WithLiftTable(t reconcile.LiftTable) Option {
	return func(s *Service) { s.lifts = t }
}

// WithResolver sets the resolver used by Status.
func WithResolver(r *resolve.Resolver) Option {
	return func(s *Service) { s.resolver = r }
}

// WithClock overrides the scrape timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a Service reading source through f. Without a resolver,
// Status accepts the first derived identifier for every name.
func NewService(f core.Fetcher, source string, opts ...Option) *Service {
	s := &Service{
		fetcher: f,
		source:  source,
		lifts:   reconcile.NorquayLifts(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.resolver == nil {
		s.resolver = resolve.NewResolver(nil, nil)
	}
	return s
}

// Source returns the upstream URL.
func (s *Service) Source() string {
	return s.source
}

// Runs scrapes per-row trail and lift statuses.
func (s *Service) Runs(ctx context.Context) (*RunsResponse, error) {
	page, err := s.page(ctx)
	if err != nil {
		return nil, err
	}
	return &RunsResponse{
		UpdatedAt: s.now().UTC(),
		Source:    s.source,
		Runs:      extract.ExtractRunStatuses(page),
	}, nil
}

// Conditions scrapes the weather report and lift statuses.
func (s *Service) Conditions(ctx context.Context) (*ConditionsResponse, error) {
	page, err := s.page(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := s.conditions(page)
	if err != nil {
		return nil, err
	}
	resp := &ConditionsResponse{
		Source:   s.source,
		TempC:    snap.TempC,
		Note:     snap.Note,
		NewSnow:  snap.NewSnow,
		SnowBase: snap.SnowBase,
		Updated:  snap.UpdatedAt,
	}
	if lifts := s.lifts.Select(extract.ExtractRunStatuses(page)); len(lifts) > 0 {
		resp.Lifts = lifts
	}
	return resp, nil
}

// Status scrapes run statuses and reconciles them against the trail map.
func (s *Service) Status(ctx context.Context) (*StatusResponse, error) {
	page, err := s.page(ctx)
	if err != nil {
		return nil, err
	}
	runs := extract.ExtractRunStatuses(page)
	res := reconcile.Reconcile(runs, s.resolver)
	if res.NotFound > 0 {
		log.Debugw("unresolved run names", "count", res.NotFound, "missing", res.Missing)
	}
	return &StatusResponse{
		UpdatedAt: s.now().UTC(),
		Source:    s.source,
		Result:    res,
		Lifts:     reconcile.Lifts(runs, s.lifts),
	}, nil
}

// Report scrapes everything from one fetch for the renderers.
func (s *Service) Report(ctx context.Context) (core.Report, error) {
	page, err := s.page(ctx)
	if err != nil {
		return core.Report{}, err
	}
	snap, err := s.conditions(page)
	if err != nil {
		return core.Report{}, err
	}
	runs := extract.ExtractRunStatuses(page)
	res := reconcile.Reconcile(runs, s.resolver)
	return core.Report{
		Source:     s.source,
		UpdatedAt:  snap.UpdatedAt,
		Runs:       runs,
		Lifts:      s.lifts.Select(runs),
		Conditions: &snap,
		Applied:    res.Applied,
		NotFound:   res.NotFound,
		Missing:    res.Missing,
	}, nil
}

func (s *Service) page(ctx context.Context) (string, error) {
	result, err := s.fetcher.Fetch(ctx, s.source)
	if err != nil {
		return "", err
	}
	return result.HTML, nil
}

func (s *Service) conditions(page string) (core.ConditionsSnapshot, error) {
	snap, err := extract.ExtractConditions(page)
	if err != nil {
		return core.ConditionsSnapshot{}, fmt.Errorf("extracting conditions: %w", err)
	}
	if log.DebugEnabled() {
		if text, err := extract.PageText(page); err == nil {
			if missed := extract.Diagnose(text); len(missed) > 0 {
				log.Debugw("conditions rules matched nothing", "rules", missed)
			}
		}
	}
	snap.UpdatedAt = s.now().UTC()
	return snap, nil
}
