// Package config loads the demo application's TOML configuration:
// logging, the layout state file, and the set of draggable boxes with
// their constraints.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/dshills/dragstorm/internal/drag"
	"github.com/dshills/dragstorm/internal/geom"
)

// Config is the demo application configuration.
type Config struct {
	Log    LogConfig   `toml:"log"`
	Layout string      `toml:"layout"`
	Boxes  []BoxConfig `toml:"box"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// BoxConfig describes one draggable box.
type BoxConfig struct {
	ID    string `toml:"id"`
	Label string `toml:"label"`

	X int `toml:"x"`
	Y int `toml:"y"`
	W int `toml:"w"`
	H int `toml:"h"`

	Axis       string       `toml:"axis"`
	Grid       []float64    `toml:"grid"`
	Scale      float64      `toml:"scale"`
	Bounds     BoundsConfig `toml:"bounds"`
	Script     string       `toml:"script"`
	ForceApply bool         `toml:"force_apply"`
}

// BoundsConfig describes a box's containment constraint.
type BoundsConfig struct {
	// Mode is one of "none", "parent", "selector", or "box".
	Mode     string   `toml:"mode"`
	Selector string   `toml:"selector"`
	Left     *float64 `toml:"left"`
	Top      *float64 `toml:"top"`
	Right    *float64 `toml:"right"`
	Bottom   *float64 `toml:"bottom"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		Boxes: []BoxConfig{
			{ID: "one", Label: "drag me", X: 4, Y: 2, W: 14, H: 5, Bounds: BoundsConfig{Mode: "parent"}},
			{ID: "two", Label: "x only", X: 24, Y: 10, W: 14, H: 5, Axis: "x", Bounds: BoundsConfig{Mode: "parent"}},
		},
	}
}

// Load reads and validates a TOML configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Normalize(); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Normalize fills defaults and validates the configuration. Boxes
// without an ID are assigned one.
func (c *Config) Normalize() error {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	seen := make(map[string]bool, len(c.Boxes))
	for i := range c.Boxes {
		b := &c.Boxes[i]
		if b.ID == "" {
			b.ID = uuid.New().String()
		}
		// IDs become JSON paths in the layout file.
		if strings.ContainsAny(b.ID, ". ") {
			return fmt.Errorf("box id %q: dots and spaces are not allowed", b.ID)
		}
		if seen[b.ID] {
			return fmt.Errorf("duplicate box id %q", b.ID)
		}
		seen[b.ID] = true

		if b.W <= 0 || b.H <= 0 {
			return fmt.Errorf("box %q: size must be positive", b.ID)
		}
		if len(b.Grid) != 0 && len(b.Grid) != 2 {
			return fmt.Errorf("box %q: grid needs exactly two steps", b.ID)
		}
		switch b.Bounds.Mode {
		case "", "none", "parent", "box":
		case "selector":
			if b.Bounds.Selector == "" {
				return fmt.Errorf("box %q: selector bounds need a selector", b.ID)
			}
		default:
			return fmt.Errorf("box %q: unknown bounds mode %q", b.ID, b.Bounds.Mode)
		}
	}
	return nil
}

// DragConfig converts a box's settings into a drag configuration. The
// tracked position is a translation from the box's home cell, so the
// default position is the origin.
func (b BoxConfig) DragConfig() drag.Config {
	cfg := drag.DefaultConfig()
	cfg.Axis = geom.ParseAxis(b.Axis)
	cfg.Bounds = b.Bounds.Spec()
	cfg.ForceApply = b.ForceApply
	if len(b.Grid) == 2 {
		cfg.Grid = geom.Grid{X: b.Grid[0], Y: b.Grid[1]}
	}
	if b.Scale > 0 {
		cfg.Scale = b.Scale
	}
	origin := geom.Pt(0, 0)
	cfg.DefaultPosition = &origin
	return cfg
}

// Spec converts the bounds settings into a BoundsSpec.
func (b BoundsConfig) Spec() drag.BoundsSpec {
	switch b.Mode {
	case "parent":
		return drag.ParentBounds()
	case "selector":
		return drag.SelectorBounds(b.Selector)
	case "box":
		return drag.BoxBounds(geom.Bounds{
			Left:   side(b.Left),
			Top:    side(b.Top),
			Right:  side(b.Right),
			Bottom: side(b.Bottom),
		})
	default:
		return drag.NoBounds()
	}
}

// side maps an absent TOML side to the unbounded sentinel.
func side(v *float64) float64 {
	if v == nil {
		return geom.UnboundedSide()
	}
	return *v
}
