package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"NORQUAY_SOURCE_URL", "NORQUAY_FETCH_TIMEOUT", "NORQUAY_RUNS_MAX_AGE",
		"NORQUAY_CONDITIONS_MAX_AGE", "NORQUAY_STATUS_MAX_AGE", "NORQUAY_DEBUG", "PORT",
		"NORQUAY_LAMBDA_ENDPOINT",
	} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SourceURL != DefaultSourceURL {
		t.Errorf("SourceURL = %q", cfg.SourceURL)
	}
	if cfg.FetchTimeout != 20*time.Second {
		t.Errorf("FetchTimeout = %v", cfg.FetchTimeout)
	}
	if cfg.RunsMaxAge != 60 || cfg.ConditionsMaxAge != 600 {
		t.Errorf("max ages = %d/%d, want 60/600", cfg.RunsMaxAge, cfg.ConditionsMaxAge)
	}
	if cfg.Port != "3000" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.LambdaEndpoint != "status" {
		t.Errorf("LambdaEndpoint = %q", cfg.LambdaEndpoint)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("NORQUAY_FETCH_TIMEOUT", "5s")
	t.Setenv("NORQUAY_RUNS_MAX_AGE", "120")
	t.Setenv("NORQUAY_DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FetchTimeout != 5*time.Second {
		t.Errorf("FetchTimeout = %v", cfg.FetchTimeout)
	}
	if cfg.RunsMaxAge != 120 {
		t.Errorf("RunsMaxAge = %d", cfg.RunsMaxAge)
	}
	if !cfg.Debug {
		t.Error("Debug should be true")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"NORQUAY_FETCH_TIMEOUT", "soon"},
		{"NORQUAY_FETCH_TIMEOUT", "-1s"},
		{"NORQUAY_CONDITIONS_MAX_AGE", "-5"},
		{"NORQUAY_DEBUG", "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}
