package geom

import "math"

// Bounds is a rectangular constraint in a single coordinate space. A NaN
// side means the position is unbounded in that direction, mirroring an
// absent side in a partial constraint box.
type Bounds struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// UnboundedSide is the value of a Bounds side that applies no constraint.
func UnboundedSide() float64 {
	return math.NaN()
}

// NewBounds constructs a fully specified Bounds.
func NewBounds(left, top, right, bottom float64) Bounds {
	return Bounds{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Unbounded returns a Bounds that constrains nothing.
func Unbounded() Bounds {
	n := math.NaN()
	return Bounds{Left: n, Top: n, Right: n, Bottom: n}
}

// HasLeft reports whether the left side constrains.
func (b Bounds) HasLeft() bool { return !math.IsNaN(b.Left) }

// HasTop reports whether the top side constrains.
func (b Bounds) HasTop() bool { return !math.IsNaN(b.Top) }

// HasRight reports whether the right side constrains.
func (b Bounds) HasRight() bool { return !math.IsNaN(b.Right) }

// HasBottom reports whether the bottom side constrains.
func (b Bounds) HasBottom() bool { return !math.IsNaN(b.Bottom) }

// IsUnbounded reports whether no side constrains.
func (b Bounds) IsUnbounded() bool {
	return !b.HasLeft() && !b.HasTop() && !b.HasRight() && !b.HasBottom()
}

// Clamp forces p inside the bounds. Right and bottom are applied before
// left and top, so when the box is narrower than the range of motion the
// left/top side wins ties. Clamp is idempotent.
func (b Bounds) Clamp(p Point) Point {
	x, y := p.X, p.Y

	if b.HasRight() && x > b.Right {
		x = b.Right
	}
	if b.HasBottom() && y > b.Bottom {
		y = b.Bottom
	}
	if b.HasLeft() && x < b.Left {
		x = b.Left
	}
	if b.HasTop() && y < b.Top {
		y = b.Top
	}

	return Point{X: x, Y: y}
}

// Contains reports whether p already satisfies every present side.
func (b Bounds) Contains(p Point) bool {
	return b.Clamp(p).Equal(p)
}
