package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/trailboard/norquay/internal/config"
	"github.com/trailboard/norquay/internal/log"
)

// Endpoint is one JSON view and the paths it answers on. Call performs at
// most one upstream fetch.
type Endpoint struct {
	Name   string
	Paths  []string
	MaxAge int
	Call   func(ctx context.Context) (any, error)
}

// Response is a fully rendered endpoint result, independent of transport.
type Response struct {
	StatusCode int
	Header     map[string]string
	Body       []byte
}

// Endpoints lists the views served over HTTP and lambda.
func Endpoints(svc *Service, cfg *config.Config) []Endpoint {
	return []Endpoint{
		{
			Name:   "runs",
			Paths:  []string{"/api/runs", "/.netlify/functions/norquay-runs"},
			MaxAge: cfg.RunsMaxAge,
			Call:   func(ctx context.Context) (any, error) { return svc.Runs(ctx) },
		},
		{
			Name:   "conditions",
			Paths:  []string{"/api/conditions", "/.netlify/functions/conditions"},
			MaxAge: cfg.ConditionsMaxAge,
			Call:   func(ctx context.Context) (any, error) { return svc.Conditions(ctx) },
		},
		{
			Name:   "status",
			Paths:  []string{"/api/status"},
			MaxAge: cfg.StatusMaxAge,
			Call:   func(ctx context.Context) (any, error) { return svc.Status(ctx) },
		},
		{
			Name:  "healthz",
			Paths: []string{"/healthz"},
			Call: func(ctx context.Context) (any, error) {
				return map[string]string{"status": "ok", "source": svc.Source()}, nil
			},
		},
	}
}

// Serve runs the endpoint and renders the outcome. Only successful
// responses carry a Cache-Control header.
func (e Endpoint) Serve(ctx context.Context) Response {
	header := map[string]string{"Content-Type": "application/json; charset=utf-8"}

	result, err := e.Call(ctx)
	if err == nil {
		body, merr := json.Marshal(result)
		if merr == nil {
			if e.MaxAge > 0 {
				header["Cache-Control"] = fmt.Sprintf("public, max-age=%d", e.MaxAge)
			}
			return Response{StatusCode: http.StatusOK, Header: header, Body: body}
		}
		err = fmt.Errorf("encoding %s response: %w", e.Name, merr)
	}

	code, errBody := classify(err)
	log.Warnw("endpoint failed", "endpoint", e.Name, "status", code, "error", err)
	body, _ := json.Marshal(errBody)
	return Response{StatusCode: code, Header: header, Body: body}
}

// ServeHTTP writes the endpoint result to w.
func (e Endpoint) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := e.Serve(r.Context())
	for k, v := range resp.Header {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)
	w.Write(resp.Body)
}
