package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/trailboard/norquay/core"
)

func sampleReport() core.Report {
	return core.Report{
		Source:    "https://example.test/conditions",
		UpdatedAt: time.Date(2026, 1, 10, 15, 4, 5, 0, time.UTC),
		Runs: map[string]core.RunStatus{
			"Valley of 10":          {Status: core.StatusOpen},
			"Lone Pine":             {Status: core.StatusOpen, Groomed: true},
			"Henderson\u2019s Turn": {Status: core.StatusClosed},
		},
		Lifts: map[string]core.RunStatus{
			"Mystic Express": {Status: core.StatusOpen},
		},
		Conditions: &core.ConditionsSnapshot{
			TempC: core.Int(-7),
			Note:  core.String("Light flurries overnight."),
			NewSnow: core.NewSnow{
				OvernightCm: core.Int(4),
				Last24Cm:    core.Int(6),
			},
			SnowBase: core.SnowBase{
				LowerCm:        core.Int(85),
				YTDSnowfallCm:  core.Int(212),
				YTDSnowfall2Cm: core.Int(198),
			},
		},
		Applied:  2,
		NotFound: 1,
		Missing:  []string{"Sunshine Traverse"},
	}
}

func TestJSONRenderer(t *testing.T) {
	r := NewJSONRenderer()
	if r.Extension() != ".json" {
		t.Errorf("Extension() = %q", r.Extension())
	}

	data, err := r.Render(sampleReport())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	var got core.Report
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.Runs["Lone Pine"] != (core.RunStatus{Status: core.StatusOpen, Groomed: true}) {
		t.Errorf("Lone Pine = %+v", got.Runs["Lone Pine"])
	}
	if got.Conditions == nil || got.Conditions.NewSnow.Last7DaysCm != nil {
		t.Errorf("missing field should stay null, got %+v", got.Conditions)
	}
	if !bytes.Contains(data, []byte(`"last7DaysCm": null`)) {
		t.Errorf("expected explicit null for last7DaysCm:\n%s", data)
	}
}

func TestMarkdownRenderer(t *testing.T) {
	r := NewMarkdownRenderer()
	if r.Extension() != ".md" {
		t.Errorf("Extension() = %q", r.Extension())
	}

	data, err := r.Render(sampleReport())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	md := string(data)

	for _, want := range []string{
		"Norquay conditions",
		"-7°C",
		"Light flurries overnight.",
		"212 cm / 198 cm",
		"Valley of 10",
		"(groomed)",
		"Mystic Express",
		"Sunshine Traverse",
		"--",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "<li>") {
		t.Errorf("markdown still contains HTML:\n%s", md)
	}
	if strings.Index(md, "Henderson") > strings.Index(md, "Valley of 10") {
		t.Errorf("runs not sorted by name:\n%s", md)
	}
}

func TestMarkdownRendererRunsOnly(t *testing.T) {
	report := core.Report{
		Source: "https://example.test/conditions",
		Runs:   map[string]core.RunStatus{"Lone Pine": {Status: core.StatusUnknown}},
	}
	data, err := NewMarkdownRenderer().Render(report)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(string(data), "Weather") {
		t.Errorf("conditions section rendered without conditions:\n%s", data)
	}
	if !strings.Contains(string(data), "unknown") {
		t.Errorf("expected unknown status:\n%s", data)
	}
}

func TestPDFRenderer(t *testing.T) {
	r := NewPDFRenderer()
	if r.Extension() != ".pdf" {
		t.Errorf("Extension() = %q", r.Extension())
	}

	data, err := r.Render(sampleReport())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", data[:min(len(data), 16)])
	}
}

func TestFormatters(t *testing.T) {
	if got := Cm(nil); got != "--" {
		t.Errorf("Cm(nil) = %q", got)
	}
	if got := Cm(core.Int(0)); got != "0 cm" {
		t.Errorf("Cm(0) = %q", got)
	}
	if got := TempC(core.Int(-3)); got != "-3°C" {
		t.Errorf("TempC(-3) = %q", got)
	}
	if got := Stamp(time.Time{}); got != "--" {
		t.Errorf("Stamp(zero) = %q", got)
	}

	lines := SortedRuns(map[string]core.RunStatus{"b": {}, "a": {}, "c": {}})
	if lines[0].Name != "a" || lines[2].Name != "c" {
		t.Errorf("SortedRuns order = %+v", lines)
	}
}
