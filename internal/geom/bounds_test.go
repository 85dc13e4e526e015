package geom

import (
	"math"
	"testing"
)

func TestClampInsideBox(t *testing.T) {
	b := NewBounds(0, 0, 100, 100)

	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"inside", Pt(50, 50), Pt(50, 50)},
		{"past right and above top", Pt(150, -20), Pt(100, 0)},
		{"past left", Pt(-5, 10), Pt(0, 10)},
		{"past bottom", Pt(10, 250), Pt(10, 100)},
		{"on corner", Pt(100, 100), Pt(100, 100)},
		{"both past min", Pt(-1, -1), Pt(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Clamp(tt.in); !got.Equal(tt.want) {
				t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClampPartialBounds(t *testing.T) {
	n := UnboundedSide()

	tests := []struct {
		name string
		b    Bounds
		in   Point
		want Point
	}{
		{"left only", Bounds{Left: 10, Top: n, Right: n, Bottom: n}, Pt(-5, -5), Pt(10, -5)},
		{"right only", Bounds{Left: n, Top: n, Right: 20, Bottom: n}, Pt(50, 50), Pt(20, 50)},
		{"top only", Bounds{Left: n, Top: 0, Right: n, Bottom: n}, Pt(7, -3), Pt(7, 0)},
		{"bottom only", Bounds{Left: n, Top: n, Right: n, Bottom: 9}, Pt(7, 30), Pt(7, 9)},
		{"unbounded", Unbounded(), Pt(1e9, -1e9), Pt(1e9, -1e9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.Clamp(tt.in); !got.Equal(tt.want) {
				t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// When the box is inverted (right < left), left wins because right is
// applied first. The draggable never ends up left of the left side.
func TestClampNarrowBoxLeftWins(t *testing.T) {
	b := NewBounds(10, 10, 5, 5)

	got := b.Clamp(Pt(100, 100))
	if got.X != 10 || got.Y != 10 {
		t.Errorf("Clamp on inverted box = %v, want (10, 10)", got)
	}
}

func TestClampIdempotent(t *testing.T) {
	b := NewBounds(-10, -10, 10, 10)
	points := []Point{Pt(0, 0), Pt(100, 100), Pt(-100, 5), Pt(10, -300)}

	for _, p := range points {
		once := b.Clamp(p)
		twice := b.Clamp(once)
		if !once.Equal(twice) {
			t.Errorf("Clamp not idempotent for %v: %v then %v", p, once, twice)
		}
	}
}

func TestClampContainment(t *testing.T) {
	b := NewBounds(0, -50, 200, 50)
	points := []Point{Pt(-1000, 0), Pt(1000, 0), Pt(0, 1000), Pt(0, -1000), Pt(17, 3)}

	for _, p := range points {
		got := b.Clamp(p)
		if got.X < b.Left || got.X > b.Right || got.Y < b.Top || got.Y > b.Bottom {
			t.Errorf("Clamp(%v) = %v escapes bounds %+v", p, got, b)
		}
	}
}

func TestBoundsSidePresence(t *testing.T) {
	b := Bounds{Left: 1, Top: math.NaN(), Right: 2, Bottom: math.NaN()}

	if !b.HasLeft() || !b.HasRight() {
		t.Error("present sides reported absent")
	}
	if b.HasTop() || b.HasBottom() {
		t.Error("absent sides reported present")
	}
	if b.IsUnbounded() {
		t.Error("partially bounded box reported unbounded")
	}
	if !Unbounded().IsUnbounded() {
		t.Error("Unbounded() not reported unbounded")
	}
}

func TestContains(t *testing.T) {
	b := NewBounds(0, 0, 10, 10)

	if !b.Contains(Pt(5, 5)) {
		t.Error("interior point reported outside")
	}
	if b.Contains(Pt(11, 5)) {
		t.Error("exterior point reported inside")
	}
}
