// Package geom provides the geometry primitives and pure constraint
// transforms used by the drag pipeline: points, partial bounds with
// clamping, grid snapping, and axis filtering.
//
// All transforms are side-effect free and return new values. Clamp and
// Snap are idempotent; the drag state machine composes them in a fixed
// order (snap, then axis filter, then clamp) so the accepted position
// always satisfies the bounds.
package geom
