package drag

import (
	"errors"
	"fmt"
)

// Drag errors.
var (
	// ErrMissingTarget indicates a draggable was activated without a
	// resolvable target node. The instance is inert, never crashed.
	ErrMissingTarget = errors.New("draggable has no target node")

	// ErrNoMatch indicates a bounds selector matched no surface.
	ErrNoMatch = errors.New("no surface matches bounds selector")
)

// ConstraintError reports a failed symbolic bounds resolution. It is
// fatal to the resolution attempt and surfaced to the caller; swallowing
// it would let the draggable move unconstrained.
type ConstraintError struct {
	Selector string
	Err      error
}

func (e *ConstraintError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("resolving bounds %q: %v", e.Selector, e.Err)
}

func (e *ConstraintError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
