package geom

// Axis restricts which coordinate of a move is permitted to change.
type Axis uint8

const (
	// AxisBoth allows movement on both axes.
	AxisBoth Axis = iota
	// AxisX allows horizontal movement only.
	AxisX
	// AxisY allows vertical movement only.
	AxisY
	// AxisNone allows no movement.
	AxisNone
)

// String returns a string representation of the axis mode.
func (a Axis) String() string {
	switch a {
	case AxisBoth:
		return "both"
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisNone:
		return "none"
	default:
		return "both"
	}
}

// ParseAxis parses an axis-mode name. Unknown names fall back to AxisBoth.
func ParseAxis(s string) Axis {
	switch s {
	case "x", "X":
		return AxisX
	case "y", "Y":
		return AxisY
	case "none":
		return AxisNone
	default:
		return AxisBoth
	}
}

// AllowsX reports whether horizontal movement is permitted.
func (a Axis) AllowsX() bool {
	return a == AxisBoth || a == AxisX
}

// AllowsY reports whether vertical movement is permitted.
func (a Axis) AllowsY() bool {
	return a == AxisBoth || a == AxisY
}

// Filter forces the disallowed coordinates of proposed back to previous.
func (a Axis) Filter(proposed, previous Point) Point {
	out := proposed
	if !a.AllowsX() {
		out.X = previous.X
	}
	if !a.AllowsY() {
		out.Y = previous.Y
	}
	return out
}
