package reconcile

import (
	"github.com/trailboard/norquay/core"
	"github.com/trailboard/norquay/core/normalize"
)

// Badge fills and path classes for lift state.
const (
	BadgeOpenFill    = "#10b981"
	BadgeStoppedFill = "#ef4444"
	PathRunning      = "lift-running"
	PathStopped      = "lift-stopped"
)

// Lift ties a lift's name on the conditions page to its badge and line
// elements in the trail map.
type Lift struct {
	Name    string `json:"name"`
	Letter  string `json:"letter"`
	BadgeID string `json:"badgeId"`
	PathID  string `json:"pathId"`
}

// LiftTable is the set of lifts a map draws.
type LiftTable []Lift

// NorquayLifts is the lift table for the Norquay trail map.
func NorquayLifts() LiftTable {
	return LiftTable{
		{Name: "North American Chair", Letter: "A", BadgeID: "north-american-liftletter", PathID: "north-american-lift"},
		{Name: "Cascade Lift", Letter: "B", BadgeID: "cascade-liftletter", PathID: "cascade-lift"},
		{Name: "Spirit Chair", Letter: "C", BadgeID: "spirit-liftletter", PathID: "spirit-lift"},
		{Name: "Mystic Chair", Letter: "D", BadgeID: "mystic-liftletter", PathID: "mystic-lift"},
		{Name: "Sundance Carpet", Letter: "E", BadgeID: "sundance-liftletter", PathID: "sundance-lift"},
		{Name: "Rundle Conveyor", Letter: "F", BadgeID: "rundle-liftletter", PathID: "rundle-lift"},
		{Name: "Tube Park Carpet", Letter: "G", BadgeID: "tube-park-liftletter", PathID: "tube-park-lift"},
	}
}

// LiftState is the rendered state of one lift badge and line.
type LiftState struct {
	Lift
	Open      bool   `json:"open"`
	BadgeFill string `json:"badgeFill"`
	PathClass string `json:"pathClass"`
}

// Select returns the entries of statuses that name a lift in the table, with
// Groomed cleared. Keys keep their scraped spelling.
func (t LiftTable) Select(statuses map[string]core.RunStatus) map[string]core.RunStatus {
	want := make(map[normalize.NameKey]bool, len(t))
	for _, l := range t {
		want[normalize.Normalize(l.Name)] = true
	}

	lifts := make(map[string]core.RunStatus)
	for name, st := range statuses {
		if want[normalize.Normalize(name)] {
			lifts[name] = core.RunStatus{Status: st.Status}
		}
	}
	return lifts
}

// Lifts reports every lift in the table, in table order. A lift missing from
// statuses, or in any state other than open, is drawn as stopped.
func Lifts(statuses map[string]core.RunStatus, t LiftTable) []LiftState {
	byKey := make(map[normalize.NameKey]core.Status, len(statuses))
	for name, st := range statuses {
		byKey[normalize.Normalize(name)] = st.Status
	}

	out := make([]LiftState, 0, len(t))
	for _, l := range t {
		open := byKey[normalize.Normalize(l.Name)] == core.StatusOpen
		ls := LiftState{Lift: l, Open: open, BadgeFill: BadgeStoppedFill, PathClass: PathStopped}
		if open {
			ls.BadgeFill = BadgeOpenFill
			ls.PathClass = PathRunning
		}
		out = append(out, ls)
	}
	return out
}
