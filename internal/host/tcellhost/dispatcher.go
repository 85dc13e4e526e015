package tcellhost

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/dragstorm/internal/drag"
)

// Item pairs a box with its draggable instance.
type Item struct {
	Box  *Box
	Drag *drag.Draggable
}

// Dispatcher routes a tcell mouse stream to the draggable under the
// pointer. A press is hit-tested against the registered boxes (topmost
// registered last wins); the matched item owns the gesture until its
// stop is accepted.
type Dispatcher struct {
	translator Translator
	items      []*Item
	active     *Item
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Add registers a box with its draggable. Later additions are hit-tested
// first, matching paint order where the last drawn box is on top.
func (d *Dispatcher) Add(box *Box, dr *drag.Draggable) *Item {
	item := &Item{Box: box, Drag: dr}
	d.items = append(d.items, item)
	return item
}

// Items returns the registered items in registration order.
func (d *Dispatcher) Items() []*Item {
	return d.items
}

// Active returns the item owning the current gesture, if any.
func (d *Dispatcher) Active() *Item {
	return d.active
}

// HandleMouse feeds one tcell mouse event through the drag pipeline.
// The returned item is non-nil when a draggable handled the event. On
// an accepted phase the item's box position is synced to the accepted
// translation so rendering and hit testing stay consistent.
func (d *Dispatcher) HandleMouse(ev *tcell.EventMouse) (*Item, drag.Result, error) {
	phase, pe, ok := d.translator.Translate(ev)
	if !ok {
		return nil, drag.Result{}, nil
	}

	switch phase {
	case drag.PhaseStart:
		x, y := ev.Position()
		item := d.hit(x, y)
		if item == nil {
			return nil, drag.Result{}, nil
		}
		res, err := item.Drag.Start(pe)
		if res.Accepted {
			d.active = item
		}
		return item, res, err

	case drag.PhaseMove:
		if d.active == nil {
			return nil, drag.Result{}, nil
		}
		item := d.active
		res, err := item.Drag.Move(pe)
		if res.Accepted {
			item.Box.Pos = item.Box.Home.Add(res.Record.Position())
		}
		return item, res, err

	case drag.PhaseStop:
		if d.active == nil {
			return nil, drag.Result{}, nil
		}
		item := d.active
		res, err := item.Drag.Stop(pe)
		if res.Accepted {
			d.active = nil
		}
		return item, res, err
	}

	return nil, drag.Result{}, nil
}

// hit returns the topmost item containing the cell, or nil.
func (d *Dispatcher) hit(x, y int) *Item {
	for i := len(d.items) - 1; i >= 0; i-- {
		if d.items[i].Box.Contains(x, y) {
			return d.items[i]
		}
	}
	return nil
}
