package geom

import "math"

// Point is a position in a 2D coordinate space. Points are immutable
// values; every transform returns a new Point.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for constructing a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Undefined returns the sentinel point used to mark "no previous sample".
// Both coordinates are NaN.
func Undefined() Point {
	return Point{X: math.NaN(), Y: math.NaN()}
}

// IsUndefined reports whether the point is the "no previous sample"
// sentinel.
func (p Point) IsUndefined() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

// Add returns p translated by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the vector from other to p.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale returns p with both coordinates multiplied by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Unscale maps visual (zoomed) coordinates to logical units by dividing
// both coordinates by f. A zero or negative f is treated as 1.
func (p Point) Unscale(f float64) Point {
	if f <= 0 {
		return p
	}
	return Point{X: p.X / f, Y: p.Y / f}
}

// Equal reports whether two points have identical coordinates.
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}
