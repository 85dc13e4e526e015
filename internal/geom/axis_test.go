package geom

import "testing"

func TestAxisString(t *testing.T) {
	tests := []struct {
		axis     Axis
		expected string
	}{
		{AxisBoth, "both"},
		{AxisX, "x"},
		{AxisY, "y"},
		{AxisNone, "none"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.axis.String(); got != tt.expected {
				t.Errorf("Axis.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParseAxis(t *testing.T) {
	tests := []struct {
		in   string
		want Axis
	}{
		{"x", AxisX},
		{"X", AxisX},
		{"y", AxisY},
		{"none", AxisNone},
		{"both", AxisBoth},
		{"", AxisBoth},
		{"diagonal", AxisBoth},
	}

	for _, tt := range tests {
		if got := ParseAxis(tt.in); got != tt.want {
			t.Errorf("ParseAxis(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAxisFilter(t *testing.T) {
	proposed := Pt(30, 40)
	previous := Pt(10, 20)

	tests := []struct {
		axis Axis
		want Point
	}{
		{AxisBoth, Pt(30, 40)},
		{AxisX, Pt(30, 20)},
		{AxisY, Pt(10, 40)},
		{AxisNone, Pt(10, 20)},
	}

	for _, tt := range tests {
		t.Run(tt.axis.String(), func(t *testing.T) {
			if got := tt.axis.Filter(proposed, previous); !got.Equal(tt.want) {
				t.Errorf("Filter(%v, %v) = %v, want %v", proposed, previous, got, tt.want)
			}
		})
	}
}
