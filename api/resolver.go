package api

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/trailboard/norquay/core/resolve"
	"github.com/trailboard/norquay/internal/config"
	"github.com/trailboard/norquay/internal/log"
)

// LoadResolver builds the resolver every entry point uses. The identifier
// map and the trail-map SVG are loaded independently: a missing file is
// logged and skipped, a file that cannot be parsed is an error. Without the
// SVG any non-empty candidate id is accepted.
func LoadResolver(cfg *config.Config) (*resolve.Resolver, error) {
	m, err := resolve.LoadIdentifierMap(cfg.RunMapPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Warnw("identifier map not found, using derived identifiers", "path", cfg.RunMapPath)
	case err != nil:
		return nil, fmt.Errorf("loading identifier map: %w", err)
	}

	targets, _, err := resolve.LoadTargets(cfg.SVGPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Warnw("trail map not found, accepting first candidate identifier", "path", cfg.SVGPath)
		targets = nil
	case err != nil:
		return nil, fmt.Errorf("loading trail map ids: %w", err)
	}

	log.Debugw("resolver ready", "mapped", len(m), "targets", len(targets))
	return resolve.NewResolver(m, targets), nil
}
