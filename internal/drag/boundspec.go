package drag

import "github.com/dshills/dragstorm/internal/geom"

// BoundsKind discriminates the BoundsSpec variants.
type BoundsKind uint8

const (
	// BoundsNone applies no containment.
	BoundsNone BoundsKind = iota
	// BoundsBox is an explicit numeric box, already resolved.
	BoundsBox
	// BoundsParent resolves against the draggable's own surface.
	BoundsParent
	// BoundsSelector resolves a selector against live host geometry.
	BoundsSelector
)

// BoundsSpec is a containment constraint: none, an explicit box, or a
// symbolic reference resolved fresh against live geometry on every move.
// The spec itself is immutable; resolution only reads it.
type BoundsSpec struct {
	kind     BoundsKind
	box      geom.Bounds
	selector string
}

// NoBounds returns the unbounded spec.
func NoBounds() BoundsSpec {
	return BoundsSpec{kind: BoundsNone}
}

// BoxBounds returns a spec with an explicit numeric box. The box is
// copied by value and never aliases caller state.
func BoxBounds(b geom.Bounds) BoundsSpec {
	return BoundsSpec{kind: BoundsBox, box: b}
}

// ParentBounds returns a spec that constrains the draggable to its own
// surface.
func ParentBounds() BoundsSpec {
	return BoundsSpec{kind: BoundsParent}
}

// SelectorBounds returns a spec that constrains the draggable to the
// surface matching selector at resolution time.
func SelectorBounds(selector string) BoundsSpec {
	return BoundsSpec{kind: BoundsSelector, selector: selector}
}

// Kind returns the spec's variant.
func (s BoundsSpec) Kind() BoundsKind {
	return s.kind
}

// IsNone reports whether the spec applies no containment.
func (s BoundsSpec) IsNone() bool {
	return s.kind == BoundsNone
}

// Resolve produces the numeric bounds for the current geometry. Symbolic
// specs resolve on every call so live container resizes are honored;
// nothing is cached. A selector that matches no surface fails with a
// *ConstraintError. The resulting box constrains the draggable's visual
// edge rather than its origin: container padding and node margins are
// folded in on each side.
func (s BoundsSpec) Resolve(node Node, surface Surface) (geom.Bounds, error) {
	switch s.kind {
	case BoundsNone:
		return geom.Unbounded(), nil

	case BoundsBox:
		return s.box, nil

	case BoundsParent:
		if surface == nil {
			return geom.Bounds{}, &ConstraintError{Selector: "parent", Err: ErrNoMatch}
		}
		return relativeBounds(node, surface, "parent")

	case BoundsSelector:
		if surface == nil {
			return geom.Bounds{}, &ConstraintError{Selector: s.selector, Err: ErrNoMatch}
		}
		target, ok := surface.Find(s.selector)
		if !ok || target == nil {
			return geom.Bounds{}, &ConstraintError{Selector: s.selector, Err: ErrNoMatch}
		}
		return relativeBounds(node, target, s.selector)

	default:
		return geom.Unbounded(), nil
	}
}

// relativeBounds computes the containment box for node inside container.
func relativeBounds(node Node, container Surface, selector string) (geom.Bounds, error) {
	if node == nil {
		return geom.Bounds{}, &ConstraintError{Selector: selector, Err: ErrMissingTarget}
	}

	off := node.Offset()
	margin := node.Margin()
	outerW, outerH := node.OuterSize()

	pad := container.Padding()
	innerW, innerH := container.InnerSize()

	return geom.Bounds{
		Left:   -off.X + pad.Left + margin.Left,
		Top:    -off.Y + pad.Top + margin.Top,
		Right:  innerW - outerW - off.X + pad.Right - margin.Right,
		Bottom: innerH - outerH - off.Y + pad.Bottom - margin.Bottom,
	}, nil
}
