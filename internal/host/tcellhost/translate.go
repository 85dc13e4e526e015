package tcellhost

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/dragstorm/internal/drag"
	"github.com/dshills/dragstorm/internal/geom"
)

// Translator converts tcell mouse events into drag phases by tracking
// primary-button transitions between consecutive events. One Translator
// per event stream; it is not safe for concurrent use.
type Translator struct {
	prev tcell.ButtonMask
}

// Translate maps a tcell mouse event to a drag phase and pointer event.
// ok is false for events that are not part of a primary-button gesture:
// hover motion, wheel events, and secondary buttons.
func (t *Translator) Translate(ev *tcell.EventMouse) (drag.Phase, drag.PointerEvent, bool) {
	x, y := ev.Position()
	pe := drag.PointerEvent{Pos: geom.Pt(float64(x), float64(y))}

	held := ev.Buttons()&tcell.Button1 != 0
	was := t.prev&tcell.Button1 != 0
	t.prev = ev.Buttons()

	switch {
	case held && !was:
		return drag.PhaseStart, pe, true
	case held && was:
		return drag.PhaseMove, pe, true
	case !held && was:
		return drag.PhaseStop, pe, true
	default:
		return drag.PhaseMove, pe, false
	}
}

// Reset clears the tracked button state, for use after the screen is
// suspended or the event stream restarts.
func (t *Translator) Reset() {
	t.prev = 0
}
