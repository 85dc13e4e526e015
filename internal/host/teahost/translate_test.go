package teahost

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dshills/dragstorm/internal/drag"
	"github.com/dshills/dragstorm/internal/geom"
)

func mouseMsg(x, y int, action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func TestTranslateGesture(t *testing.T) {
	var tr Translator

	phase, pe, ok := tr.Translate(mouseMsg(4, 2, tea.MouseActionPress, tea.MouseButtonLeft))
	if !ok || phase != drag.PhaseStart {
		t.Fatalf("press = (%v, %v), want start", phase, ok)
	}
	if !pe.Pos.Equal(geom.Pt(4, 2)) {
		t.Errorf("press position = %v, want (4, 2)", pe.Pos)
	}

	phase, _, ok = tr.Translate(mouseMsg(6, 2, tea.MouseActionMotion, tea.MouseButtonLeft))
	if !ok || phase != drag.PhaseMove {
		t.Fatalf("drag motion = (%v, %v), want move", phase, ok)
	}

	phase, _, ok = tr.Translate(mouseMsg(6, 2, tea.MouseActionRelease, tea.MouseButtonLeft))
	if !ok || phase != drag.PhaseStop {
		t.Fatalf("release = (%v, %v), want stop", phase, ok)
	}
}

func TestTranslateIgnoresNonGesture(t *testing.T) {
	var tr Translator

	tests := []struct {
		name string
		msg  tea.MouseMsg
	}{
		{"hover motion", mouseMsg(1, 1, tea.MouseActionMotion, tea.MouseButtonNone)},
		{"right press", mouseMsg(1, 1, tea.MouseActionPress, tea.MouseButtonRight)},
		{"stray release", mouseMsg(1, 1, tea.MouseActionRelease, tea.MouseButtonLeft)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, ok := tr.Translate(tt.msg); ok {
				t.Errorf("%s translated to a phase", tt.name)
			}
		})
	}
}

func TestTranslateReset(t *testing.T) {
	var tr Translator

	if _, _, ok := tr.Translate(mouseMsg(0, 0, tea.MouseActionPress, tea.MouseButtonLeft)); !ok {
		t.Fatal("press not translated")
	}
	tr.Reset()

	if _, _, ok := tr.Translate(mouseMsg(1, 1, tea.MouseActionMotion, tea.MouseButtonLeft)); ok {
		t.Error("motion translated after reset")
	}
}
