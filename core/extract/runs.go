// Package extract pulls run/lift status rows and the weather report out of the
// upstream conditions page. Every rule is a named pattern with a documented
// example input; a rule that stops matching degrades to a missing value or a
// skipped row, never an error.
package extract

import (
	"regexp"
	"strings"

	"github.com/trailboard/norquay/core"
)

var (
	// rowPattern partitions the page into <tr>…</tr> spans.
	rowPattern = regexp.MustCompile(`(?i)<tr[\s\S]*?</tr>`)

	// openMarker and closedMarker are the icon classes on the status cell:
	//	<i class="bi bi-check-circle-fill open-icon"></i>
	//	<i class="bi bi-x-circle-fill close-icon"></i>
	openMarker   = regexp.MustCompile(`open-icon`)
	closedMarker = regexp.MustCompile(`close-icon`)

	// groomedMarker matches the grooming icon:
	//	<img src="/wp-content/themes/norquay/images/icons-snow-plow-truck.svg">
	groomedMarker = regexp.MustCompile(`(?i)icons-snow-plow-truck\.svg|snow-plow-truck`)

	// nameInDiv reads the name from the trail_name cell's text div:
	//	<td class="trail_name"><div class="trail_open_status_icon">…</div><div>Valley of 10</div></td>
	nameInDiv = regexp.MustCompile(`(?i)class="trail_name"[\s\S]*?<div[^>]*>([^<]+)</div>`)

	// nameInCell is the fallback when the name sits directly in the cell:
	//	<td class="trail_name">Valley of 10</td>
	nameInCell = regexp.MustCompile(`(?i)class="trail_name"[\s\S]*?>([^<]+)</td>`)
)

// ExtractRunStatuses scans table rows for open/closed markers and returns the
// status of every row that carries one, keyed by the row's display name.
// Rows without a marker or without a readable name are skipped. When two rows
// share a name the later row wins.
func ExtractRunStatuses(html string) map[string]core.RunStatus {
	runs := make(map[string]core.RunStatus)

	for _, row := range rowPattern.FindAllString(html, -1) {
		status, ok := rowStatus(row)
		if !ok {
			continue
		}

		name := rowName(row)
		if name == "" {
			continue
		}

		runs[name] = core.RunStatus{
			Status:  status,
			Groomed: groomedMarker.MatchString(row),
		}
	}

	return runs
}

// rowStatus reports the row's state; an open marker takes precedence.
func rowStatus(row string) (core.Status, bool) {
	switch {
	case openMarker.MatchString(row):
		return core.StatusOpen, true
	case closedMarker.MatchString(row):
		return core.StatusClosed, true
	default:
		return "", false
	}
}

func rowName(row string) string {
	m := nameInDiv.FindStringSubmatch(row)
	if m == nil {
		m = nameInCell.FindStringSubmatch(row)
	}
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
