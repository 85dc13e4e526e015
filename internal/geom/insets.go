package geom

// Insets is a per-side thickness, used for box-model margins and padding.
type Insets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Uniform returns insets with the same thickness on every side.
func Uniform(v float64) Insets {
	return Insets{Left: v, Top: v, Right: v, Bottom: v}
}
