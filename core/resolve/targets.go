package resolve

import (
	"bytes"
	"fmt"
	"os"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

var withID = cascadia.MustCompile("[id]")

// Targets is the set of element ids present in the trail map.
type Targets map[string]struct{}

// NewTargets builds a Targets set from ids.
func NewTargets(ids ...string) Targets {
	t := make(Targets, len(ids))
	for _, id := range ids {
		t[id] = struct{}{}
	}
	return t
}

// Has reports whether id is drawn by the map.
func (t Targets) Has(id string) bool {
	_, ok := t[id]
	return ok
}

// HarvestIDs returns every id attribute in the SVG document, in document
// order and without duplicates.
func HarvestIDs(svg []byte) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("parsing SVG: %w", err)
	}

	seen := make(map[string]bool)
	var ids []string
	doc.FindMatcher(withID).Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		ids = append(ids, id)
	})
	return ids, nil
}

// LoadTargets harvests the ids of the SVG file at path.
func LoadTargets(path string) (Targets, []string, error) {
	svg, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading trail map: %w", err)
	}
	ids, err := HarvestIDs(svg)
	if err != nil {
		return nil, nil, err
	}
	return NewTargets(ids...), ids, nil
}
