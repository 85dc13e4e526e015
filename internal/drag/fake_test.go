package drag

import "github.com/dshills/dragstorm/internal/geom"

// fakeNode is a fixed-geometry Node for tests.
type fakeNode struct {
	id     string
	offset geom.Point
	w, h   float64
	margin geom.Insets
}

func (n *fakeNode) ID() string                  { return n.id }
func (n *fakeNode) Offset() geom.Point          { return n.offset }
func (n *fakeNode) OuterSize() (float64, float64) { return n.w, n.h }
func (n *fakeNode) Margin() geom.Insets         { return n.margin }

// fakeSurface is a fixed-geometry Surface with a selector registry.
type fakeSurface struct {
	origin  geom.Point
	w, h    float64
	padding geom.Insets
	named   map[string]*fakeSurface
}

func (s *fakeSurface) Origin() geom.Point            { return s.origin }
func (s *fakeSurface) InnerSize() (float64, float64) { return s.w, s.h }
func (s *fakeSurface) Padding() geom.Insets          { return s.padding }

func (s *fakeSurface) Find(selector string) (Surface, bool) {
	target, ok := s.named[selector]
	if !ok {
		return nil, false
	}
	return target, true
}

func newFakeSurface(w, h float64) *fakeSurface {
	return &fakeSurface{w: w, h: h, named: make(map[string]*fakeSurface)}
}
