package tcellhost

import (
	"sync"

	"github.com/dshills/dragstorm/internal/drag"
	"github.com/dshills/dragstorm/internal/geom"
)

// Box is a terminal rectangle implementing drag.Node. Home is the box's
// laid-out origin; Pos is where it is currently rendered. The drag core
// tracks a translation from Home, so Offset reports Home and the owner
// keeps Pos at Home plus the accepted translation.
type Box struct {
	id   string
	Home geom.Point
	Pos  geom.Point
	W    int
	H    int
}

// NewBox creates a box whose current position starts at its home.
func NewBox(id string, x, y, w, h int) *Box {
	home := geom.Pt(float64(x), float64(y))
	return &Box{id: id, Home: home, Pos: home, W: w, H: h}
}

// ID returns the box identifier.
func (b *Box) ID() string { return b.id }

// Offset returns the box's laid-out origin relative to the screen.
func (b *Box) Offset() geom.Point { return b.Home }

// OuterSize returns the box dimensions in cells.
func (b *Box) OuterSize() (float64, float64) { return float64(b.W), float64(b.H) }

// Margin returns zero insets; terminal cells have no box model.
func (b *Box) Margin() geom.Insets { return geom.Insets{} }

// Contains reports whether the cell (x, y) falls inside the box at its
// current rendered position.
func (b *Box) Contains(x, y int) bool {
	fx, fy := float64(x), float64(y)
	return fx >= b.Pos.X && fx < b.Pos.X+float64(b.W) &&
		fy >= b.Pos.Y && fy < b.Pos.Y+float64(b.H)
}

// Screen is the terminal surface draggables live on. It implements
// drag.Surface; selector lookup resolves named regions registered with
// AddRegion.
type Screen struct {
	mu      sync.RWMutex
	width   int
	height  int
	regions map[string]*Region
}

// NewScreen creates a surface of the given terminal size.
func NewScreen(width, height int) *Screen {
	return &Screen{
		width:   width,
		height:  height,
		regions: make(map[string]*Region),
	}
}

// Resize updates the surface to a new terminal size.
func (s *Screen) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

// Origin returns the screen's top-left. Terminals do not scroll the
// root surface, so this is always (0, 0).
func (s *Screen) Origin() geom.Point { return geom.Point{} }

// InnerSize returns the terminal dimensions in cells.
func (s *Screen) InnerSize() (float64, float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return float64(s.width), float64(s.height)
}

// Padding returns zero insets.
func (s *Screen) Padding() geom.Insets { return geom.Insets{} }

// Find resolves a region name registered with AddRegion.
func (s *Screen) Find(selector string) (drag.Surface, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.regions[selector]
	if !ok {
		return nil, false
	}
	return r, true
}

// AddRegion registers a named rectangular region for selector bounds.
func (s *Screen) AddRegion(id string, x, y, w, h int) *Region {
	r := &Region{
		id:     id,
		origin: geom.Pt(float64(x), float64(y)),
		w:      w,
		h:      h,
		screen: s,
	}
	s.mu.Lock()
	s.regions[id] = r
	s.mu.Unlock()
	return r
}

// Region is a named rectangular sub-surface of the screen.
type Region struct {
	id     string
	origin geom.Point
	w      int
	h      int
	screen *Screen
}

// ID returns the region name used in selectors.
func (r *Region) ID() string { return r.id }

// Origin returns the region's top-left in screen coordinates.
func (r *Region) Origin() geom.Point { return r.origin }

// InnerSize returns the region dimensions in cells.
func (r *Region) InnerSize() (float64, float64) { return float64(r.w), float64(r.h) }

// Padding returns zero insets.
func (r *Region) Padding() geom.Insets { return geom.Insets{} }

// Find delegates selector lookup to the owning screen.
func (r *Region) Find(selector string) (drag.Surface, bool) {
	return r.screen.Find(selector)
}
