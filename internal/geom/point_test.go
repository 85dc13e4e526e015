package geom

import "testing"

func TestPointArithmetic(t *testing.T) {
	p := Pt(10, 20)

	if got := p.Add(Pt(1, -2)); !got.Equal(Pt(11, 18)) {
		t.Errorf("Add = %v, want (11, 18)", got)
	}
	if got := p.Sub(Pt(4, 5)); !got.Equal(Pt(6, 15)) {
		t.Errorf("Sub = %v, want (6, 15)", got)
	}
	if got := p.Scale(2); !got.Equal(Pt(20, 40)) {
		t.Errorf("Scale = %v, want (20, 40)", got)
	}
	if got := p.Unscale(2); !got.Equal(Pt(5, 10)) {
		t.Errorf("Unscale = %v, want (5, 10)", got)
	}
}

func TestUnscaleInvalidFactor(t *testing.T) {
	p := Pt(10, 20)

	if got := p.Unscale(0); !got.Equal(p) {
		t.Errorf("Unscale(0) = %v, want %v", got, p)
	}
	if got := p.Unscale(-1); !got.Equal(p) {
		t.Errorf("Unscale(-1) = %v, want %v", got, p)
	}
}

func TestUndefinedSentinel(t *testing.T) {
	if !Undefined().IsUndefined() {
		t.Error("Undefined() not detected as undefined")
	}
	if Pt(0, 0).IsUndefined() {
		t.Error("origin detected as undefined")
	}
}
