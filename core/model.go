package core

import (
	"encoding/json"
	"fmt"
	"time"
)

// Status is the open/closed state of a trail or lift.
type Status string

const (
	StatusOpen    Status = "open"
	StatusClosed  Status = "closed"
	StatusUnknown Status = "unknown"
)

// Valid reports whether s is one of the definitive states.
func (s Status) Valid() bool {
	return s == StatusOpen || s == StatusClosed
}

// Safe maps anything that is not open or closed to unknown.
func (s Status) Safe() Status {
	if s.Valid() {
		return s
	}
	return StatusUnknown
}

// UnmarshalJSON accepts the status spellings produced by older endpoint
// versions: "open"/"closed", "running", booleans and "1"/"yes".
func (s *Status) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		if b {
			*s = StatusOpen
		} else {
			*s = StatusClosed
		}
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("status must be a string or boolean: %w", err)
	}
	*s = ParseStatus(raw)
	return nil
}

// ParseStatus maps a free-text status to a Status.
func ParseStatus(raw string) Status {
	switch raw {
	case "open", "Open", "OPEN", "running", "1", "yes", "true":
		return StatusOpen
	case "closed", "Closed", "CLOSED", "stopped", "0", "no", "false":
		return StatusClosed
	default:
		return StatusUnknown
	}
}

// RunStatus is the scraped state of one trail or lift row.
// Groomed is only ever true for trails.
type RunStatus struct {
	Status  Status `json:"status"`
	Groomed bool   `json:"groomed"`
}

// NewSnow is the recent snowfall report, in centimetres.
type NewSnow struct {
	OvernightCm *int `json:"overnightCm"`
	Last24Cm    *int `json:"last24Cm"`
	Last7DaysCm *int `json:"last7DaysCm"`
}

// SnowBase is the base depth and season totals, in centimetres.
// YTDSnowfall2Cm holds the second year-to-date figure when the page repeats it.
type SnowBase struct {
	LowerCm        *int `json:"lowerCm"`
	UpperCm        *int `json:"upperCm"`
	YTDSnowfallCm  *int `json:"ytdSnowfallCm"`
	YTDSnowfall2Cm *int `json:"ytdSnowfall2Cm"`
}

// ConditionsSnapshot is one scrape of the weather and snow report.
// A nil field means the value could not be extracted, never zero.
type ConditionsSnapshot struct {
	TempC     *int      `json:"tempC"`
	Note      *string   `json:"note"`
	NewSnow   NewSnow   `json:"newSnow"`
	SnowBase  SnowBase  `json:"snowBase"`
	UpdatedAt time.Time `json:"updated"`
}

// Report bundles one scrape for the renderers. Runs and Conditions are
// optional so that a report can carry either half.
type Report struct {
	Source     string               `json:"source"`
	UpdatedAt  time.Time            `json:"updatedAt"`
	Runs       map[string]RunStatus `json:"runs,omitempty"`
	Lifts      map[string]RunStatus `json:"lifts,omitempty"`
	Conditions *ConditionsSnapshot  `json:"conditions,omitempty"`
	Applied    int                  `json:"applied,omitempty"`
	NotFound   int                  `json:"notFound,omitempty"`
	Missing    []string             `json:"missing,omitempty"`
}

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }
