// Package config loads runtime configuration from environment variables.
// Invalid values fail fast; cobra flags may override the result afterwards.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// DefaultSourceURL is the upstream conditions page.
const DefaultSourceURL = "https://banffnorquay.com/winter/conditions/"

// Config holds all runtime configuration.
type Config struct {
	SourceURL    string
	UserAgent    string
	FetchTimeout time.Duration

	Port      string
	PublicDir string // served at / when non-empty

	RunMapPath string // precomputed name key -> element id JSON
	SVGPath    string // trail map whose element ids are resolution targets

	RunsMaxAge       int // Cache-Control max-age in seconds
	ConditionsMaxAge int
	StatusMaxAge     int

	RefreshSpec string // cron spec for the watch loop, e.g. "@every 20m"

	// LambdaEndpoint answers function-URL invocations that carry no path.
	LambdaEndpoint string

	Debug bool
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	cfg := &Config{
		SourceURL:        getenv("NORQUAY_SOURCE_URL", DefaultSourceURL),
		UserAgent:        getenv("NORQUAY_USER_AGENT", "Mozilla/5.0 (compatible; norquay-status)"),
		FetchTimeout:     20 * time.Second,
		Port:             getenv("PORT", "3000"),
		PublicDir:        os.Getenv("NORQUAY_PUBLIC_DIR"),
		RunMapPath:       getenv("NORQUAY_RUNMAP", "public/runMap.json"),
		SVGPath:          getenv("NORQUAY_SVG", "public/norquay-map.svg"),
		RunsMaxAge:       60,
		ConditionsMaxAge: 600,
		StatusMaxAge:     60,
		RefreshSpec:      getenv("NORQUAY_REFRESH", "@every 20m"),
		LambdaEndpoint:   getenv("NORQUAY_LAMBDA_ENDPOINT", "status"),
	}

	if s := os.Getenv("NORQUAY_FETCH_TIMEOUT"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("NORQUAY_FETCH_TIMEOUT must be a positive duration, got %q", s)
		}
		cfg.FetchTimeout = d
	}

	var err error
	if cfg.RunsMaxAge, err = maxAge("NORQUAY_RUNS_MAX_AGE", cfg.RunsMaxAge); err != nil {
		return nil, err
	}
	if cfg.ConditionsMaxAge, err = maxAge("NORQUAY_CONDITIONS_MAX_AGE", cfg.ConditionsMaxAge); err != nil {
		return nil, err
	}
	if cfg.StatusMaxAge, err = maxAge("NORQUAY_STATUS_MAX_AGE", cfg.StatusMaxAge); err != nil {
		return nil, err
	}

	if s := os.Getenv("NORQUAY_DEBUG"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("NORQUAY_DEBUG must be a boolean, got %q", s)
		}
		cfg.Debug = v
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func maxAge(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer, got %q", key, s)
	}
	return v, nil
}
