package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/dragstorm/internal/geom"
)

// LoadLayout reads saved box positions from a JSON state file. A
// missing file is not an error; it yields an empty layout.
func LoadLayout(path string) (map[string]geom.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]geom.Point{}, nil
		}
		return nil, fmt.Errorf("reading layout file %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("layout file %s: invalid JSON", path)
	}

	positions := make(map[string]geom.Point)
	gjson.GetBytes(data, "boxes").ForEach(func(key, value gjson.Result) bool {
		positions[key.String()] = geom.Pt(value.Get("x").Float(), value.Get("y").Float())
		return true
	})
	return positions, nil
}

// SaveLayout writes box positions to a JSON state file. Keys are
// written in sorted order so repeated saves of the same layout produce
// the same bytes.
func SaveLayout(path string, positions map[string]geom.Point) error {
	ids := make([]string, 0, len(positions))
	for id := range positions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := []byte(`{"boxes":{}}`)
	var err error
	for _, id := range ids {
		p := positions[id]
		if out, err = sjson.SetBytes(out, "boxes."+id+".x", p.X); err != nil {
			return fmt.Errorf("encoding layout for box %q: %w", id, err)
		}
		if out, err = sjson.SetBytes(out, "boxes."+id+".y", p.Y); err != nil {
			return fmt.Errorf("encoding layout for box %q: %w", id, err)
		}
	}

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("writing layout file %s: %w", path, err)
	}
	return nil
}
