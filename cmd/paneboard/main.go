// Package main is the paneboard demo: draggable cards in a Bubble Tea
// program, hit-tested with bubblezone.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/dshills/dragstorm/internal/drag"
	"github.com/dshills/dragstorm/internal/geom"
	"github.com/dshills/dragstorm/internal/host/teahost"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}).
			Padding(0, 1)

	activeCardStyle = cardStyle.
			BorderForeground(lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"})

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})
)

// card is one draggable pane. home is its laid-out origin; the drag
// core tracks a translation from there.
type card struct {
	id    string
	title string
	body  string
	home  geom.Point
	node  *teahost.ZoneNode
	drag  *drag.Draggable
}

type model struct {
	zm      *zone.Manager
	surface *teahost.ZoneSurface
	trans   teahost.Translator

	cards  []*card
	active *card

	width  int
	height int
	ready  bool
}

func newModel() *model {
	zm := zone.New()
	surface := teahost.NewZoneSurface(zm, 0, 0)
	m := &model{zm: zm, surface: surface}

	m.addCard("snappy", "Snappy", "snaps to a 4x2 grid", geom.Pt(4, 2), func(cfg *drag.Config) {
		cfg.Grid = geom.Grid{X: 4, Y: 2}
	})
	m.addCard("rail", "Rail", "slides horizontally", geom.Pt(30, 6), func(cfg *drag.Config) {
		cfg.Axis = geom.AxisX
	})
	m.addCard("free", "Free", "goes anywhere inside", geom.Pt(12, 10), nil)

	return m
}

func (m *model) addCard(id, title, body string, home geom.Point, tweak func(*drag.Config)) {
	node := teahost.NewZoneNode(m.zm, id)

	cfg := drag.DefaultConfig()
	cfg.Bounds = drag.ParentBounds()
	origin := geom.Pt(0, 0)
	cfg.DefaultPosition = &origin
	if tweak != nil {
		tweak(&cfg)
	}

	m.cards = append(m.cards, &card{
		id:    id,
		title: title,
		body:  body,
		home:  home,
		node:  node,
		drag:  drag.New(node, m.surface, cfg, drag.Callbacks{}),
	})
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.surface.SetSize(msg.Width, msg.Height)
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	phase, pe, ok := m.trans.Translate(msg)
	if !ok {
		return
	}

	switch phase {
	case drag.PhaseStart:
		c := m.hit(msg.X, msg.Y)
		if c == nil {
			return
		}
		c.node.Measure()
		if res, _ := c.drag.Start(pe); res.Accepted {
			m.active = c
			m.raise(c)
		}

	case drag.PhaseMove:
		if m.active == nil {
			return
		}
		_, _ = m.active.drag.Move(pe)

	case drag.PhaseStop:
		if m.active == nil {
			return
		}
		if res, _ := m.active.drag.Stop(pe); res.Accepted {
			m.active = nil
		}
	}
}

// hit returns the topmost card under the cell, using the zones from the
// last rendered frame.
func (m *model) hit(x, y int) *card {
	for i := len(m.cards) - 1; i >= 0; i-- {
		if m.cards[i].node.InBounds(x, y) {
			return m.cards[i]
		}
	}
	return nil
}

// raise moves a card to the end of the slice so it renders, and hit
// tests, on top.
func (m *model) raise(c *card) {
	for i, cc := range m.cards {
		if cc == c {
			m.cards = append(append(m.cards[:i], m.cards[i+1:]...), c)
			return
		}
	}
}

func (m *model) View() string {
	if !m.ready {
		return ""
	}

	cv := newCanvas(m.width, m.height)
	cv.overlay(helpStyle.Render("drag the cards with the mouse  •  q quits"), 1, m.height-1)

	for _, c := range m.cards {
		style := cardStyle
		if c == m.active {
			style = activeCardStyle
		}
		block := style.Render(lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render(c.title),
			c.body,
		))

		pos := c.home.Add(c.drag.Position())
		cv.overlay(m.zm.Mark(c.id, block), int(pos.X), int(pos.Y))
	}

	return m.zm.Scan(cv.String())
}

func main() {
	m := newModel()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running program: %v\n", err)
		os.Exit(1)
	}
}
