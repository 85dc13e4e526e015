// Package drag implements pointer-driven element repositioning: it
// tracks a pointer across start/move/stop phases, converts raw samples
// into a consistent logical position, enforces positional constraints,
// and emits a structured record to consumers on every phase.
//
// # Pipeline
//
// A host adapter translates its native events into PointerEvents and
// feeds them to a Draggable:
//
//	d := drag.New(node, surface, drag.DefaultConfig(), drag.Callbacks{
//	    OnDrag: func(ev drag.PointerEvent, rec drag.Record) bool {
//	        return rec.X < 500 // veto moves past x=500
//	    },
//	})
//	res, err := d.Start(ev)
//
// Each move runs: coordinate resolution, core delta building, grid snap,
// axis filter, bounds clamp, then delta recomputation against the
// previous tracked position. Snap and axis filtering run before the
// clamp, so the accepted position always satisfies the bounds even when
// the grid would push it outside.
//
// # Veto semantics
//
// Phase callbacks return false to veto. A vetoed start aborts the
// gesture; a vetoed move freezes the position while the session stays
// active; a vetoed stop keeps the session alive. Config.ForceApply
// overrides all vetoes. Observers registered with Subscribe are
// notified after accepted phases only and cannot veto.
//
// # Bounds
//
// BoundsSpec is none, an explicit box, the parent surface, or a
// selector resolved against live geometry on every move. A selector
// matching nothing fails the move with *ConstraintError; the position
// freezes rather than moving unconstrained.
//
// # Concurrency
//
// A Draggable is safe for concurrent use, but the pipeline itself is
// synchronous: callbacks and observers run on the calling goroutine.
// Exactly one session per instance is active at a time.
package drag
