package drag

import "github.com/dshills/dragstorm/internal/geom"

// Config configures a Draggable instance.
type Config struct {
	// Axis restricts which coordinates of a move may change.
	Axis geom.Axis

	// Bounds is the containment constraint, re-resolved on every move.
	Bounds BoundsSpec

	// Grid is the snapping step size. Zero disables snapping.
	Grid geom.Grid

	// Scale is the zoom factor mapping visual pixels to logical units.
	// Zero or negative values are treated as 1.
	Scale float64

	// Position, when set, marks the position as externally controlled:
	// it seeds the tracked position and external changes are pushed in
	// through SetPosition.
	Position *geom.Point

	// DefaultPosition is the initial position when Position is absent.
	DefaultPosition *geom.Point

	// ForceApply applies every phase even when the consumer callback
	// rejects it, turning callbacks into pure notifications.
	ForceApply bool
}

// DefaultConfig returns the default draggable configuration: both axes,
// no bounds, no grid, scale 1.
func DefaultConfig() Config {
	return Config{
		Axis:   geom.AxisBoth,
		Bounds: NoBounds(),
		Scale:  1,
	}
}

// scale returns the effective zoom factor.
func (c Config) scale() float64 {
	if c.Scale <= 0 {
		return 1
	}
	return c.Scale
}
