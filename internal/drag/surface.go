package drag

import "github.com/dshills/dragstorm/internal/geom"

// Node is the measured geometry of a draggable element. Implementations
// read live host geometry on every call; the core reads and never
// mutates.
type Node interface {
	// ID identifies the element in emitted records. Non-owning.
	ID() string

	// Offset is the element's position relative to the surface origin.
	Offset() geom.Point

	// OuterSize is the element's width and height including border and
	// padding.
	OuterSize() (w, h float64)

	// Margin is the element's margin box.
	Margin() geom.Insets
}

// Surface is the geometry host a draggable element lives on. It serves
// as the offset parent for coordinate resolution and as the containment
// target for parent and selector bounds.
type Surface interface {
	// Origin is the surface's top-left in page coordinates, adjusted
	// for any host scrolling.
	Origin() geom.Point

	// InnerSize is the surface's content width and height, excluding
	// border.
	InnerSize() (w, h float64)

	// Padding is the surface's padding box.
	Padding() geom.Insets

	// Find resolves a selector to another surface. Hosts define the
	// selector syntax; terminal hosts use registered element IDs.
	Find(selector string) (Surface, bool)
}
