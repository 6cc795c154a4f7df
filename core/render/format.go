// Package render provides output renderers for a scrape Report.
package render

import (
	"fmt"
	"sort"
	"time"

	"github.com/trailboard/norquay/core"
)

// Cm formats a centimetre figure, or "--" when it is unknown.
func Cm(v *int) string {
	if v == nil {
		return "--"
	}
	return fmt.Sprintf("%d cm", *v)
}

// TempC formats a temperature, or "--°C" when it is unknown.
func TempC(v *int) string {
	if v == nil {
		return "--°C"
	}
	return fmt.Sprintf("%d°C", *v)
}

// Note returns the weather note or a dash.
func Note(v *string) string {
	if v == nil {
		return "--"
	}
	return *v
}

// Stamp formats a scrape time for display.
func Stamp(t time.Time) string {
	if t.IsZero() {
		return "--"
	}
	return t.UTC().Format(time.RFC3339)
}

// RunLine is one run in display order.
type RunLine struct {
	Name string
	core.RunStatus
}

// SortedRuns returns runs ordered by name.
func SortedRuns(runs map[string]core.RunStatus) []RunLine {
	lines := make([]RunLine, 0, len(runs))
	for name, st := range runs {
		lines = append(lines, RunLine{Name: name, RunStatus: st})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Name < lines[j].Name })
	return lines
}
