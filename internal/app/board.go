package app

import (
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/dragstorm/internal/config"
	"github.com/dshills/dragstorm/internal/drag"
	"github.com/dshills/dragstorm/internal/geom"
	"github.com/dshills/dragstorm/internal/host/tcellhost"
	"github.com/dshills/dragstorm/internal/script"
)

// board owns the draggable boxes built from configuration and routes
// mouse events to them.
type board struct {
	surface    *tcellhost.Screen
	dispatcher *tcellhost.Dispatcher
	boxes      []*boardBox
	logger     *Logger
}

// boardBox pairs a configured box with its draggable and, when the box
// names a script, the Lua engine backing its callbacks.
type boardBox struct {
	cfg    config.BoxConfig
	box    *tcellhost.Box
	drag   *drag.Draggable
	engine *script.Engine
}

// newBoard builds the set of draggables from configuration. Relative
// script paths resolve against baseDir. The caller owns the returned
// board and must close it.
func newBoard(cfg config.Config, baseDir string, width, height int, logger *Logger) (*board, error) {
	bd := &board{
		surface:    tcellhost.NewScreen(width, height),
		dispatcher: tcellhost.NewDispatcher(),
		logger:     logger,
	}

	for _, bc := range cfg.Boxes {
		bb, err := bd.addBox(bc, baseDir)
		if err != nil {
			bd.close()
			return nil, err
		}
		bd.boxes = append(bd.boxes, bb)
	}
	return bd, nil
}

func (bd *board) addBox(bc config.BoxConfig, baseDir string) (*boardBox, error) {
	box := tcellhost.NewBox(bc.ID, bc.X, bc.Y, bc.W, bc.H)

	var cbs drag.Callbacks
	var engine *script.Engine
	if bc.Script != "" {
		path := bc.Script
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		engine = script.New()
		engine.SetLogger(bd.logger.WithComponent("script"))
		if err := engine.Load(path); err != nil {
			engine.Close()
			return nil, NewOperationError("load script", path, err)
		}
		cbs = engine.Callbacks()
	}

	d := drag.New(box, bd.surface, bc.DragConfig(), cbs)
	d.SetLogger(bd.logger.WithComponent("drag"))
	bd.dispatcher.Add(box, d)

	return &boardBox{cfg: bc, box: box, drag: d, engine: engine}, nil
}

// resize updates the surface to the new terminal size. Bounds resolve
// against live geometry, so nothing else needs recomputing.
func (bd *board) resize(width, height int) {
	bd.surface.Resize(width, height)
}

// handleMouse feeds a mouse event through the dispatcher.
func (bd *board) handleMouse(ev *tcell.EventMouse) {
	item, res, err := bd.dispatcher.HandleMouse(ev)
	if err != nil {
		bd.logger.Warn("drag error: %v", err)
	}
	if item != nil && res.Accepted {
		bd.logger.Debug("box %s at %v", item.Box.ID(), item.Box.Pos)
	}
}

// positions reports each box's accepted translation, keyed by box id.
func (bd *board) positions() map[string]geom.Point {
	out := make(map[string]geom.Point, len(bd.boxes))
	for _, bb := range bd.boxes {
		out[bb.cfg.ID] = bb.drag.Position()
	}
	return out
}

// applyLayout restores saved translations for boxes that still exist.
func (bd *board) applyLayout(positions map[string]geom.Point) {
	for _, bb := range bd.boxes {
		p, ok := positions[bb.cfg.ID]
		if !ok {
			continue
		}
		bb.drag.SetPosition(p)
		bb.box.Pos = bb.box.Home.Add(p)
	}
}

// close releases the script engines.
func (bd *board) close() {
	for _, bb := range bd.boxes {
		if bb.engine != nil {
			bb.engine.Close()
		}
	}
}

var (
	boxStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	activeStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
)

// render draws every box at its current position, registration order
// first so later boxes paint on top, matching hit-test order.
func (bd *board) render(screen tcell.Screen) {
	screen.Clear()
	active := bd.dispatcher.Active()

	for _, item := range bd.dispatcher.Items() {
		style := boxStyle
		if item == active {
			style = activeStyle
		}
		drawBox(screen, item.Box, bd.label(item.Box.ID()), style)
	}
	screen.Show()
}

func (bd *board) label(id string) string {
	for _, bb := range bd.boxes {
		if bb.cfg.ID == id && bb.cfg.Label != "" {
			return bb.cfg.Label
		}
	}
	return id
}

func drawBox(screen tcell.Screen, box *tcellhost.Box, label string, style tcell.Style) {
	x0 := int(box.Pos.X)
	y0 := int(box.Pos.Y)

	for y := 0; y < box.H; y++ {
		for x := 0; x < box.W; x++ {
			r := ' '
			switch {
			case y == 0 && x == 0:
				r = '┌'
			case y == 0 && x == box.W-1:
				r = '┐'
			case y == box.H-1 && x == 0:
				r = '└'
			case y == box.H-1 && x == box.W-1:
				r = '┘'
			case y == 0 || y == box.H-1:
				r = '─'
			case x == 0 || x == box.W-1:
				r = '│'
			}
			screen.SetContent(x0+x, y0+y, r, nil, style)
		}
	}

	// Label on the top border, truncated to fit.
	max := box.W - 2
	if max > 0 && label != "" {
		runes := []rune(label)
		if len(runes) > max {
			runes = runes[:max]
		}
		for i, r := range runes {
			screen.SetContent(x0+1+i, y0, r, nil, style)
		}
	}
}
