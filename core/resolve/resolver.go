package resolve

import (
	"github.com/trailboard/norquay/core/normalize"
)

// Resolver finds the trail-map element for a scraped name. Map and Targets
// are never modified, so one Resolver may serve any number of requests.
type Resolver struct {
	Map IdentifierMap
	// Targets restricts results to ids the map actually draws. A nil set
	// accepts the first non-empty candidate.
	Targets Targets
}

// NewResolver creates a Resolver over m and targets.
func NewResolver(m IdentifierMap, targets Targets) *Resolver {
	return &Resolver{Map: m, Targets: targets}
}

// Candidates lists the ids tried for name, in order: the mapped id, its slug,
// the slug of the raw name, then the key joined with '-' and with '_'.
// Duplicates and empty strings are dropped.
func (r *Resolver) Candidates(name string) []string {
	key := normalize.Normalize(name)
	mapped := r.Map[key]

	raw := []string{
		mapped,
		normalize.Identify(mapped),
		normalize.Identify(name),
		key.Join("-"),
		key.Join("_"),
	}

	seen := make(map[string]bool, len(raw))
	out := raw[:0]
	for _, c := range raw {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// Resolve returns the first candidate the trail map draws, or false when none
// match. It never fails for unknown names.
func (r *Resolver) Resolve(name string) (string, bool) {
	for _, c := range r.Candidates(name) {
		if r.Targets == nil || r.Targets.Has(c) {
			return c, true
		}
	}
	return "", false
}
