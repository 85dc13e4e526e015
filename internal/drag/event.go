package drag

import "github.com/dshills/dragstorm/internal/geom"

// Phase identifies a step of a drag gesture.
type Phase uint8

const (
	// PhaseStart is the initial qualifying pointer-down.
	PhaseStart Phase = iota
	// PhaseMove is a pointer-move while a session is active.
	PhaseMove
	// PhaseStop is the pointer-up or cancel ending the gesture.
	PhaseStop
)

// String returns a string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseMove:
		return "move"
	case PhaseStop:
		return "stop"
	default:
		return "unknown"
	}
}

// NoTouch marks a mouse-driven gesture with no tracked touch identifier.
const NoTouch = -1

// Touch is a single active touch point in page coordinates.
type Touch struct {
	ID  int
	Pos geom.Point
}

// PointerEvent is a raw pointer sample delivered by a host adapter. The
// core never reads host event objects directly; adapters translate them
// into this form.
type PointerEvent struct {
	// Pos is the primary pointer position in page coordinates.
	Pos geom.Point

	// Touches is the list of active touches, if the host reports any.
	Touches []Touch
}

// FindTouch returns the active touch with the given identifier.
func (e PointerEvent) FindTouch(id int) (Touch, bool) {
	for _, t := range e.Touches {
		if t.ID == id {
			return t, true
		}
	}
	return Touch{}, false
}
