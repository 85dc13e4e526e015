package teahost

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dshills/dragstorm/internal/drag"
	"github.com/dshills/dragstorm/internal/geom"
)

// Translator converts Bubble Tea mouse messages into drag phases. One
// Translator per program; it tracks whether the primary button is held
// between messages.
type Translator struct {
	held bool
}

// Translate maps a mouse message to a drag phase and pointer event. ok
// is false for messages outside a primary-button gesture: hover motion,
// wheel events, and secondary buttons.
func (t *Translator) Translate(msg tea.MouseMsg) (drag.Phase, drag.PointerEvent, bool) {
	pe := drag.PointerEvent{Pos: geom.Pt(float64(msg.X), float64(msg.Y))}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return drag.PhaseMove, pe, false
		}
		t.held = true
		return drag.PhaseStart, pe, true

	case tea.MouseActionMotion:
		if !t.held {
			return drag.PhaseMove, pe, false
		}
		return drag.PhaseMove, pe, true

	case tea.MouseActionRelease:
		if !t.held {
			return drag.PhaseMove, pe, false
		}
		t.held = false
		return drag.PhaseStop, pe, true
	}

	return drag.PhaseMove, pe, false
}

// Reset clears the tracked button state.
func (t *Translator) Reset() {
	t.held = false
}
