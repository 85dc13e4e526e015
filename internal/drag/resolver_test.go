package drag

import (
	"testing"

	"github.com/dshills/dragstorm/internal/geom"
)

func TestResolvePointerMouse(t *testing.T) {
	surface := newFakeSurface(200, 100)
	surface.origin = geom.Pt(10, 20)

	ev := PointerEvent{Pos: geom.Pt(60, 50)}

	got, ok := ResolvePointer(ev, NoTouch, surface, 1)
	if !ok {
		t.Fatal("mouse resolution failed")
	}
	if !got.Equal(geom.Pt(50, 30)) {
		t.Errorf("resolved = %v, want (50, 30)", got)
	}
}

func TestResolvePointerScale(t *testing.T) {
	surface := newFakeSurface(200, 100)

	ev := PointerEvent{Pos: geom.Pt(100, 60)}

	got, ok := ResolvePointer(ev, NoTouch, surface, 2)
	if !ok {
		t.Fatal("resolution failed")
	}
	if !got.Equal(geom.Pt(50, 30)) {
		t.Errorf("resolved = %v, want (50, 30)", got)
	}
}

func TestResolvePointerTouch(t *testing.T) {
	surface := newFakeSurface(200, 100)
	ev := PointerEvent{
		Pos: geom.Pt(999, 999), // primary coordinates are not ours
		Touches: []Touch{
			{ID: 3, Pos: geom.Pt(40, 40)},
			{ID: 7, Pos: geom.Pt(80, 10)},
		},
	}

	got, ok := ResolvePointer(ev, 7, surface, 1)
	if !ok {
		t.Fatal("touch resolution failed")
	}
	if !got.Equal(geom.Pt(80, 10)) {
		t.Errorf("resolved = %v, want (80, 10)", got)
	}
}

func TestResolvePointerMissingTouch(t *testing.T) {
	surface := newFakeSurface(200, 100)
	ev := PointerEvent{
		Touches: []Touch{{ID: 3, Pos: geom.Pt(40, 40)}},
	}

	if _, ok := ResolvePointer(ev, 9, surface, 1); ok {
		t.Error("resolution succeeded for an untracked touch")
	}
}

func TestResolvePointerNilSurface(t *testing.T) {
	ev := PointerEvent{Pos: geom.Pt(12, 34)}

	got, ok := ResolvePointer(ev, NoTouch, nil, 1)
	if !ok {
		t.Fatal("resolution failed")
	}
	if !got.Equal(geom.Pt(12, 34)) {
		t.Errorf("resolved = %v, want (12, 34)", got)
	}
}
