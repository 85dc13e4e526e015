package drag

import "github.com/dshills/dragstorm/internal/geom"

// ResolvePointer converts a raw pointer event into a position local to
// the surface, divided by scale to map visual (zoomed) pixels onto
// logical units.
//
// When touchID is not NoTouch the event's touch list is searched for that
// identifier; ok is false when the tracked touch is absent, meaning the
// event belongs to another gesture and must be ignored. Pure: reads
// geometry, mutates nothing.
func ResolvePointer(ev PointerEvent, touchID int, surface Surface, scale float64) (pos geom.Point, ok bool) {
	page := ev.Pos
	if touchID != NoTouch {
		t, found := ev.FindTouch(touchID)
		if !found {
			return geom.Point{}, false
		}
		page = t.Pos
	}

	var origin geom.Point
	if surface != nil {
		origin = surface.Origin()
	}

	return page.Sub(origin).Unscale(scale), true
}
