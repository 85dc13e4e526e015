package geom

import "math"

// Grid is a snapping step size per axis. A zero value (either step <= 0)
// disables snapping.
type Grid struct {
	X float64
	Y float64
}

// IsZero reports whether the grid disables snapping.
func (g Grid) IsZero() bool {
	return g.X <= 0 || g.Y <= 0
}

// Snap rounds p to the nearest grid intersection. Rounding is
// half-away-from-zero on the quotient, so Snap is idempotent for any
// positive step sizes.
func (g Grid) Snap(p Point) Point {
	if g.IsZero() {
		return p
	}
	return Point{
		X: math.Round(p.X/g.X) * g.X,
		Y: math.Round(p.Y/g.Y) * g.Y,
	}
}
