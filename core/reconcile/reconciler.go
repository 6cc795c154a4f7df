// Package reconcile turns scraped run statuses into the per-element view the
// trail-map renderer applies.
package reconcile

import (
	"sort"

	"github.com/trailboard/norquay/core"
	"github.com/trailboard/norquay/core/normalize"
	"github.com/trailboard/norquay/core/resolve"
)

// GroomMarkerPrefix prefixes the id of a run's grooming marker in the map.
const GroomMarkerPrefix = "grm-"

// State is the visual state of one map element.
type State struct {
	Status  core.Status `json:"status"`
	Groomed bool        `json:"groomed"`
}

// Result is one reconciliation pass.
type Result struct {
	States       map[string]State `json:"states"`
	GroomMarkers map[string]bool  `json:"groomMarkers"`
	Applied      int              `json:"applied"`
	// NotFound counts names no candidate id matched. Missing lists them.
	NotFound int      `json:"notFound"`
	Missing  []string `json:"missing,omitempty"`
	// Unmapped counts resolved names that had no identifier-map entry and
	// fell back to a derived slug.
	Unmapped int `json:"unmapped"`
}

// Reconcile resolves every scraped name to a map element. Entries are
// independent: a miss is counted and skipped. Names are visited in sorted
// order so that two names resolving to one element always settle the same way.
func Reconcile(runs map[string]core.RunStatus, r *resolve.Resolver) Result {
	res := Result{
		States:       make(map[string]State, len(runs)),
		GroomMarkers: make(map[string]bool, len(runs)),
	}

	names := make([]string, 0, len(runs))
	for name := range runs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		id, ok := r.Resolve(name)
		if !ok {
			res.NotFound++
			res.Missing = append(res.Missing, name)
			continue
		}

		if _, mapped := r.Map[normalize.Normalize(name)]; !mapped {
			res.Unmapped++
		}

		run := runs[name]
		res.States[id] = State{Status: run.Status.Safe(), Groomed: run.Groomed}
		res.GroomMarkers[GroomMarkerPrefix+id] = run.Groomed
		res.Applied++
	}

	return res
}
