package reconcile

import (
	"reflect"
	"testing"

	"github.com/trailboard/norquay/core"
	"github.com/trailboard/norquay/core/extract"
	"github.com/trailboard/norquay/core/resolve"
)

const threeRows = `<table>
<tr><td class="trail_name"><div class="trail_open_status_icon"><i class="bi open-icon"></i></div><div>Valley of 10</div></td><td></td></tr>
<tr><td class="trail_name"><div class="trail_open_status_icon"><i class="bi open-icon"></i></div><div>Lone Pine</div></td><td><img src="icons-snow-plow-truck.svg"></td></tr>
<tr><td class="trail_name"><div class="trail_open_status_icon"><i class="bi close-icon"></i></div><div>Excalibur</div></td><td></td></tr>
</table>`

func TestPipelineEndToEnd(t *testing.T) {
	runs := extract.ExtractRunStatuses(threeRows)
	if len(runs) != 3 {
		t.Fatalf("extracted %d runs, want 3: %v", len(runs), runs)
	}

	stub := resolve.IdentifierMap{"lone pine": "lone-pine-run"}
	targets := resolve.NewTargets("valley-of-10", "lone-pine-run", "excalibur")
	res := Reconcile(runs, resolve.NewResolver(stub, targets))

	want := map[string]State{
		"valley-of-10":  {Status: core.StatusOpen},
		"lone-pine-run": {Status: core.StatusOpen, Groomed: true},
		"excalibur":     {Status: core.StatusClosed},
	}
	if !reflect.DeepEqual(res.States, want) {
		t.Errorf("States = %v, want %v", res.States, want)
	}
	if res.Applied != 3 || res.NotFound != 0 {
		t.Errorf("Applied/NotFound = %d/%d, want 3/0", res.Applied, res.NotFound)
	}
	if res.Unmapped != 2 {
		t.Errorf("Unmapped = %d, want 2 (rows absent from the stub map)", res.Unmapped)
	}
	if !res.GroomMarkers["grm-lone-pine-run"] || res.GroomMarkers["grm-valley-of-10"] {
		t.Errorf("GroomMarkers = %v", res.GroomMarkers)
	}
}

func TestReconcileCountsMisses(t *testing.T) {
	runs := map[string]core.RunStatus{
		"Valley of 10": {Status: core.StatusOpen},
		"Ghost Glade":  {Status: core.StatusClosed},
		"Lost Chute":   {Status: core.StatusOpen},
	}
	res := Reconcile(runs, resolve.NewResolver(nil, resolve.NewTargets("valley-of-10")))

	if res.Applied != 1 || res.NotFound != 2 {
		t.Errorf("Applied/NotFound = %d/%d, want 1/2", res.Applied, res.NotFound)
	}
	if !reflect.DeepEqual(res.Missing, []string{"Ghost Glade", "Lost Chute"}) {
		t.Errorf("Missing = %q", res.Missing)
	}
	if len(res.States) != 1 {
		t.Errorf("States = %v", res.States)
	}
}

func TestReconcileUnknownStatusIsSafe(t *testing.T) {
	runs := map[string]core.RunStatus{"Valley of 10": {Status: "on hold"}}
	res := Reconcile(runs, resolve.NewResolver(nil, nil))
	if got := res.States["valley-of-10"].Status; got != core.StatusUnknown {
		t.Errorf("status = %q, want unknown", got)
	}
}

func TestReconcileEmpty(t *testing.T) {
	res := Reconcile(nil, resolve.NewResolver(nil, nil))
	if res.Applied != 0 || res.NotFound != 0 || len(res.States) != 0 {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestLifts(t *testing.T) {
	statuses := map[string]core.RunStatus{
		"North American Chair": {Status: core.StatusOpen},
		"cascade lift":         {Status: core.StatusClosed},
		"Spirit  Chair":        {Status: core.StatusOpen},
		"Valley of 10":         {Status: core.StatusOpen, Groomed: true},
	}

	states := Lifts(statuses, NorquayLifts())
	if len(states) != 7 {
		t.Fatalf("got %d lift states, want 7", len(states))
	}

	byLetter := make(map[string]LiftState)
	for _, s := range states {
		byLetter[s.Letter] = s
	}
	if a := byLetter["A"]; !a.Open || a.BadgeFill != BadgeOpenFill || a.PathClass != PathRunning {
		t.Errorf("A = %+v", a)
	}
	if b := byLetter["B"]; b.Open || b.BadgeFill != BadgeStoppedFill || b.PathClass != PathStopped {
		t.Errorf("B = %+v", b)
	}
	if !byLetter["C"].Open {
		t.Error("C should be open after name normalization")
	}
	if byLetter["G"].Open {
		t.Error("G is absent from statuses and should be stopped")
	}
}

func TestLiftTableSelect(t *testing.T) {
	statuses := map[string]core.RunStatus{
		"Mystic Chair": {Status: core.StatusOpen, Groomed: true},
		"Valley of 10": {Status: core.StatusOpen},
	}
	got := NorquayLifts().Select(statuses)
	want := map[string]core.RunStatus{"Mystic Chair": {Status: core.StatusOpen}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Select = %v, want %v", got, want)
	}
}
