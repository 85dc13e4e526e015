package teahost

import (
	zone "github.com/lrstanley/bubblezone"

	"github.com/dshills/dragstorm/internal/drag"
	"github.com/dshills/dragstorm/internal/geom"
)

// ZoneSurface exposes a bubblezone manager as a drag surface. Selector
// lookup resolves marked zone IDs against the manager's last scan, so
// bounds follow the live layout.
type ZoneSurface struct {
	manager *zone.Manager
	width   int
	height  int
}

// NewZoneSurface wraps a bubblezone manager sized to the program window.
func NewZoneSurface(manager *zone.Manager, width, height int) *ZoneSurface {
	return &ZoneSurface{manager: manager, width: width, height: height}
}

// SetSize updates the surface to a new window size.
func (s *ZoneSurface) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Origin returns the window's top-left, always (0, 0).
func (s *ZoneSurface) Origin() geom.Point { return geom.Point{} }

// InnerSize returns the window dimensions in cells.
func (s *ZoneSurface) InnerSize() (float64, float64) {
	return float64(s.width), float64(s.height)
}

// Padding returns zero insets.
func (s *ZoneSurface) Padding() geom.Insets { return geom.Insets{} }

// Find resolves a marked zone ID to a sub-surface.
func (s *ZoneSurface) Find(selector string) (drag.Surface, bool) {
	info := s.manager.Get(selector)
	if info == nil || info.IsZero() {
		return nil, false
	}
	return &zoneArea{surface: s, info: info}, true
}

// zoneArea is a marked zone acting as a containment surface.
type zoneArea struct {
	surface *ZoneSurface
	info    *zone.ZoneInfo
}

func (z *zoneArea) Origin() geom.Point {
	return geom.Pt(float64(z.info.StartX), float64(z.info.StartY))
}

func (z *zoneArea) InnerSize() (float64, float64) {
	return float64(z.info.EndX - z.info.StartX), float64(z.info.EndY - z.info.StartY)
}

func (z *zoneArea) Padding() geom.Insets { return geom.Insets{} }

func (z *zoneArea) Find(selector string) (drag.Surface, bool) {
	return z.surface.Find(selector)
}

// ZoneNode is a draggable element whose geometry comes from its marked
// zone. The home position is captured on the first successful measure;
// the drag core tracks a translation from it.
type ZoneNode struct {
	id       string
	manager  *zone.Manager
	home     geom.Point
	w, h     float64
	anchored bool
}

// NewZoneNode creates a node for the given zone ID.
func NewZoneNode(manager *zone.Manager, id string) *ZoneNode {
	return &ZoneNode{id: id, manager: manager}
}

// ID returns the zone ID.
func (n *ZoneNode) ID() string { return n.id }

// Measure refreshes the node's size from the zone's last scan and
// anchors the home position on the first call. Reports whether the zone
// has been scanned yet.
func (n *ZoneNode) Measure() bool {
	info := n.manager.Get(n.id)
	if info == nil || info.IsZero() {
		return false
	}
	n.w = float64(info.EndX - info.StartX)
	n.h = float64(info.EndY - info.StartY)
	if !n.anchored {
		n.home = geom.Pt(float64(info.StartX), float64(info.StartY))
		n.anchored = true
	}
	return true
}

// Offset returns the node's anchored home position.
func (n *ZoneNode) Offset() geom.Point { return n.home }

// OuterSize returns the zone dimensions from the last measure.
func (n *ZoneNode) OuterSize() (float64, float64) { return n.w, n.h }

// Margin returns zero insets.
func (n *ZoneNode) Margin() geom.Insets { return geom.Insets{} }

// InBounds reports whether the mouse position falls inside the zone as
// of the last scan.
func (n *ZoneNode) InBounds(x, y int) bool {
	info := n.manager.Get(n.id)
	if info == nil || info.IsZero() {
		return false
	}
	return x >= info.StartX && x < info.EndX && y >= info.StartY && y < info.EndY
}
