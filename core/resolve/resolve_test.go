package resolve

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/trailboard/norquay/core/normalize"
)

const trailMap = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
  <g id="runs">
    <path id="valley-of-10" d="M0 0L10 10"/>
    <path id="Lone_Pine" d="M0 0L10 10"/>
    <path id="hendersons-turn" d="M0 0L10 10"/>
    <g id="upper_mystic"><path d="M0 0L1 1"/></g>
    <path id="valley-of-10" d="M1 1L2 2"/>
  </g>
  <path id="grm-valley-of-10" d="M0 0"/>
</svg>`

func TestHarvestIDs(t *testing.T) {
	ids, err := HarvestIDs([]byte(trailMap))
	if err != nil {
		t.Fatalf("HarvestIDs: %v", err)
	}
	want := []string{"runs", "valley-of-10", "Lone_Pine", "hendersons-turn", "upper_mystic", "grm-valley-of-10"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("ids = %q, want %q", ids, want)
	}
}

func TestLoadTargets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.svg")
	if err := os.WriteFile(path, []byte(trailMap), 0o644); err != nil {
		t.Fatal(err)
	}
	targets, ids, err := LoadTargets(path)
	if err != nil {
		t.Fatalf("LoadTargets: %v", err)
	}
	if len(ids) != 6 || !targets.Has("Lone_Pine") || targets.Has("lone-pine") {
		t.Errorf("unexpected targets %v", ids)
	}
}

func TestResolve(t *testing.T) {
	m := IdentifierMap{
		"lone pine":        "Lone_Pine",
		"henderson's turn": "hendersons-turn",
		"excalibur":        "Excalibur Main",
	}
	r := NewResolver(m, NewTargets("valley-of-10", "Lone_Pine", "hendersons-turn", "upper_mystic", "excalibur-main"))

	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"Lone Pine", "Lone_Pine", true},
		{"Henderson\u2019s Turn", "hendersons-turn", true},
		{"Excalibur", "excalibur-main", true},
		{"Valley of 10", "valley-of-10", true},
		{"Upper Mystic", "upper_mystic", true},
		{"Wiegele's", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := r.Resolve(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Resolve(%q) = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestResolveWithoutTargetsTakesFirstCandidate(t *testing.T) {
	r := NewResolver(nil, nil)
	got, ok := r.Resolve("Valley of 10")
	if !ok || got != "valley-of-10" {
		t.Errorf("Resolve = %q, %v", got, ok)
	}
}

func TestCandidatesOrder(t *testing.T) {
	r := NewResolver(IdentifierMap{"big bertha": "Big Bertha"}, nil)
	got := r.Candidates("Big Bertha")
	want := []string{"Big Bertha", "big-bertha", "big_bertha"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates = %q, want %q", got, want)
	}
}

func TestParseIdentifierMap(t *testing.T) {
	m, err := ParseIdentifierMap(strings.NewReader(`{"Lone_Pine": " Lone_Pine ", "": "x", "empty": "  "}`))
	if err != nil {
		t.Fatalf("ParseIdentifierMap: %v", err)
	}
	if len(m) != 1 || m["lone pine"] != "Lone_Pine" {
		t.Errorf("map = %v", m)
	}

	if _, err := ParseIdentifierMap(strings.NewReader(`[1,2]`)); err == nil {
		t.Error("expected error for non-object JSON")
	}
}

func TestIdentifierMapRoundTripsThroughFile(t *testing.T) {
	m := IdentifierMap{"valley of 10": "valley-of-10", "lone pine": "Lone_Pine"}
	data, err := m.MarshalIndent()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\n  \"lone pine\": \"Lone_Pine\"") {
		t.Errorf("expected pretty-printed output, got %s", data)
	}

	path := filepath.Join(t.TempDir(), "runMap.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadIdentifierMap(path)
	if err != nil {
		t.Fatalf("LoadIdentifierMap: %v", err)
	}
	if !reflect.DeepEqual(loaded, m) {
		t.Errorf("loaded = %v, want %v", loaded, m)
	}
}

func TestBuildIdentifierMap(t *testing.T) {
	ids := []string{"valley-of-10", "Valley_of_10", "asteroids", "wiegeles", "grm-valley-of-10"}
	names := []string{"Valley of 10", "Asteroid's", "Wiegele\u2019s", "Unknown Glade"}

	m, missing := BuildIdentifierMap(names, ids)

	want := IdentifierMap{
		"valley of 10": "valley-of-10",
		"asteroid's":   "asteroids",
		"wiegele's":    "wiegeles",
	}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("map = %v, want %v", m, want)
	}
	if !reflect.DeepEqual(missing, []string{"Unknown Glade"}) {
		t.Errorf("missing = %q", missing)
	}
}

func TestKeysSorted(t *testing.T) {
	m := IdentifierMap{"b": "1", "a": "2", "c": "3"}
	want := []normalize.NameKey{"a", "b", "c"}
	if got := m.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys = %v", got)
	}
}

func TestBuiltMapSurvivesReloadAndResolves(t *testing.T) {
	ids := []string{"wiegele\u00e2\u20ac\u2122s", "valley-of-10"}
	names := []string{"WIEGELE\u00c2\u20ac\u2122S", "Valley of 10"}

	built, missing := BuildIdentifierMap(names, ids)
	if len(missing) != 0 {
		t.Fatalf("missing = %q, want none", missing)
	}

	data, err := built.MarshalIndent()
	if err != nil {
		t.Fatal(err)
	}
	loaded, err := ParseIdentifierMap(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("ParseIdentifierMap: %v", err)
	}
	if !reflect.DeepEqual(loaded, built) {
		t.Errorf("reloaded map = %v, want %v", loaded, built)
	}

	r := NewResolver(loaded, NewTargets(ids...))
	for i, name := range names {
		if got, ok := r.Resolve(name); !ok || got != ids[i] {
			t.Errorf("Resolve(%q) = %q, %v, want %q", name, got, ok, ids[i])
		}
	}
}
