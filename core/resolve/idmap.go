// Package resolve maps scraped run and lift names to element ids in the trail
// map. The IdentifierMap is built offline and read-only at request time.
package resolve

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/trailboard/norquay/core/normalize"
)

// IdentifierMap maps a normalized run name to the element id that draws it.
type IdentifierMap map[normalize.NameKey]string

// LoadIdentifierMap reads a JSON object of name -> id from path.
func LoadIdentifierMap(path string) (IdentifierMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening identifier map: %w", err)
	}
	defer f.Close()
	return ParseIdentifierMap(f)
}

// ParseIdentifierMap decodes a JSON object of name -> id. Keys are
// normalized and values trimmed; entries that end up empty are dropped.
func ParseIdentifierMap(r io.Reader) (IdentifierMap, error) {
	var raw map[string]string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding identifier map: %w", err)
	}

	m := make(IdentifierMap, len(raw))
	for k, v := range raw {
		key := normalize.Normalize(k)
		id := strings.TrimSpace(v)
		if key == "" || id == "" {
			continue
		}
		m[key] = id
	}
	return m, nil
}

// MarshalIndent renders the map as pretty-printed JSON with sorted keys.
func (m IdentifierMap) MarshalIndent() ([]byte, error) {
	raw := make(map[string]string, len(m))
	for k, v := range m {
		raw[string(k)] = v
	}
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling identifier map: %w", err)
	}
	return append(data, '\n'), nil
}

// BuildIdentifierMap correlates scraped names with element ids harvested from
// the trail map. Ids are indexed by their normalized form, first seen wins.
// Each name is matched exactly, then ignoring apostrophes; names that match
// neither way are returned as missing, in input order.
func BuildIdentifierMap(names, ids []string) (IdentifierMap, []string) {
	byKey := make(map[normalize.NameKey]string, len(ids))
	byLoose := make(map[normalize.NameKey]string, len(ids))
	for _, id := range ids {
		k := normalize.Normalize(id)
		if k == "" {
			continue
		}
		if _, ok := byKey[k]; !ok {
			byKey[k] = id
		}
		if lk := normalize.LooseKey(k); lk != "" {
			if _, ok := byLoose[lk]; !ok {
				byLoose[lk] = id
			}
		}
	}

	m := make(IdentifierMap)
	var missing []string
	for _, name := range names {
		k := normalize.Normalize(name)
		if k == "" {
			continue
		}
		if id, ok := byKey[k]; ok {
			m[k] = id
			continue
		}
		if id, ok := byLoose[normalize.LooseKey(k)]; ok {
			m[k] = id
			continue
		}
		missing = append(missing, name)
	}
	return m, missing
}

// Keys returns the map's keys in sorted order.
func (m IdentifierMap) Keys() []normalize.NameKey {
	keys := make([]normalize.NameKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
