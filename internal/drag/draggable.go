package drag

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/dragstorm/internal/geom"
)

// Logger is the minimal logging surface the drag core needs. The app
// package's Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}

// Result reports the outcome of a phase.
type Result struct {
	// Handled is false for stray events: phases received while no
	// session is active, events for an untracked touch, or phases on an
	// inert instance. Stray events are ignored, never errors.
	Handled bool

	// Accepted is true when the phase was applied. A vetoed phase is
	// handled but not accepted.
	Accepted bool

	// Record is the consumer record built for the phase. Valid only
	// when Handled.
	Record Record
}

// Draggable sequences pointer phases through the constraint pipeline for
// a single element. Exactly one drag session may be active at a time;
// the dragging flag is the mutual-exclusion gate. Instances are
// independent: no state is shared between draggables.
type Draggable struct {
	mu        sync.Mutex
	node      Node
	surface   Surface
	config    Config
	callbacks Callbacks
	logger    Logger
	observers map[string]Observer

	// inert is set when the instance was constructed without a target;
	// every phase is then a no-op.
	inert bool

	// dragging is true only between an accepted start and its matching
	// accepted stop.
	dragging bool

	// dragged is sticky: true forever after the first accepted start.
	// Presentation only, never consulted by the pipeline.
	dragged bool

	// pos is the tracked logical position in consumer space.
	pos geom.Point

	// lastSample is the raw resolved pointer sample of the last
	// accepted phase. Undefined while idle so the first sample of a
	// session anchors with zero delta.
	lastSample geom.Point

	// touchID is the touch identifier owned by the active session, or
	// NoTouch for mouse gestures.
	touchID int
}

// New creates a Draggable for the given node on the given surface.
// A nil node is reported as a diagnostic and yields a permanently inert
// instance rather than failing the host application.
func New(node Node, surface Surface, cfg Config, cbs Callbacks) *Draggable {
	d := &Draggable{
		node:       node,
		surface:    surface,
		config:     cfg,
		callbacks:  cbs,
		logger:     nopLogger{},
		observers:  make(map[string]Observer),
		lastSample: geom.Undefined(),
		touchID:    NoTouch,
	}

	if node == nil {
		d.inert = true
	}

	// Initial position priority: controlled, then default, then the
	// node's current visual placement.
	switch {
	case cfg.Position != nil:
		d.pos = *cfg.Position
	case cfg.DefaultPosition != nil:
		d.pos = *cfg.DefaultPosition
	case node != nil:
		d.pos = node.Offset()
	}

	return d
}

// SetLogger replaces the instance logger. A nil logger disables logging.
func (d *Draggable) SetLogger(logger Logger) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if logger == nil {
		logger = nopLogger{}
	}
	d.logger = logger
	if d.inert {
		d.logger.Warn("draggable is inert: %v", ErrMissingTarget)
	}
}

// Dragging reports whether a session is active.
func (d *Draggable) Dragging() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dragging
}

// Dragged reports whether any session has ever started.
func (d *Draggable) Dragged() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dragged
}

// Position returns the tracked logical position.
func (d *Draggable) Position() geom.Point {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pos
}

// SetPosition overrides the tracked position. Used by consumers running
// the draggable as a controlled component.
func (d *Draggable) SetPosition(p geom.Point) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pos = p
}

// Config returns a copy of the instance configuration.
func (d *Draggable) Config() Config {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.config
}

// SetConfig replaces the configuration. Takes effect on the next phase;
// the active session, if any, keeps running.
func (d *Draggable) SetConfig(cfg Config) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.config = cfg
}

// Node returns the target node, nil for inert instances.
func (d *Draggable) Node() Node {
	return d.node
}

// Subscribe registers a fire-and-forget observer and returns its
// subscription ID.
func (d *Draggable) Subscribe(fn Observer) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := uuid.New().String()
	d.observers[id] = fn
	return id
}

// Unsubscribe removes an observer. Reports whether the ID was known.
func (d *Draggable) Unsubscribe(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.observers[id]
	delete(d.observers, id)
	return ok
}

// Start begins a drag session from a qualifying pointer-down. A vetoed
// start aborts with no state mutation; no move or stop will be handled
// for the gesture.
func (d *Draggable) Start(ev PointerEvent) (Result, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.inert || d.dragging {
		return Result{}, nil
	}

	// Single-touch tracking: adopt the first active touch for the
	// session; mouse gestures track no touch.
	touchID := NoTouch
	if len(ev.Touches) > 0 {
		touchID = ev.Touches[0].ID
	}

	raw, ok := ResolvePointer(ev, touchID, d.surface, d.config.scale())
	if !ok {
		return Result{}, nil
	}

	core := NewCoreRecord(d.nodeID(), raw, d.lastSample)
	rec := NewConsumerRecord(core, d.pos, d.config.scale())

	if !accept(d.callbacks.OnStart, d.config.ForceApply, ev, rec) {
		return Result{Handled: true, Record: rec}, nil
	}

	d.dragging = true
	d.dragged = true
	d.lastSample = raw
	d.touchID = touchID
	d.notify(PhaseStart, rec)

	return Result{Handled: true, Accepted: true, Record: rec}, nil
}

// Move advances an active session by one pointer sample. The proposed
// position runs through grid snap, axis filter, and bounds clamp, in
// that order, and the emitted deltas are recomputed against the previous
// tracked position so record.X - record.LastX == record.DeltaX exactly.
// A vetoed move freezes the position at its last accepted value while
// the session stays active. Moves while idle are ignored.
func (d *Draggable) Move(ev PointerEvent) (Result, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.inert || !d.dragging {
		return Result{}, nil
	}

	raw, ok := ResolvePointer(ev, d.touchID, d.surface, d.config.scale())
	if !ok {
		return Result{}, nil
	}

	core := NewCoreRecord(d.nodeID(), raw, d.lastSample)

	proposed := d.pos.Add(core.Delta().Unscale(d.config.scale()))
	proposed = d.config.Grid.Snap(proposed)
	proposed = d.config.Axis.Filter(proposed, d.pos)

	if !d.config.Bounds.IsNone() {
		bounds, err := d.config.Bounds.Resolve(d.node, d.surface)
		if err != nil {
			// Moving unconstrained would violate the consumer's
			// explicit containment intent. Freeze and propagate.
			return Result{Handled: true}, err
		}
		proposed = bounds.Clamp(proposed)
	}

	delta := proposed.Sub(d.pos)
	rec := Record{
		NodeID: core.NodeID,
		X:      proposed.X,
		Y:      proposed.Y,
		DeltaX: delta.X,
		DeltaY: delta.Y,
		LastX:  d.pos.X,
		LastY:  d.pos.Y,
	}

	if !accept(d.callbacks.OnDrag, d.config.ForceApply, ev, rec) {
		return Result{Handled: true, Record: rec}, nil
	}

	d.pos = proposed
	d.lastSample = raw
	d.notify(PhaseMove, rec)

	return Result{Handled: true, Accepted: true, Record: rec}, nil
}

// Stop ends an active session on pointer-up or cancel. A vetoed stop
// keeps the session alive, a deliberate escape hatch for consumers that
// need to force continued tracking. Stops while idle are ignored.
func (d *Draggable) Stop(ev PointerEvent) (Result, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.inert || !d.dragging {
		return Result{}, nil
	}

	raw, ok := ResolvePointer(ev, d.touchID, d.surface, d.config.scale())
	if !ok {
		return Result{}, nil
	}

	core := NewCoreRecord(d.nodeID(), raw, d.lastSample)
	rec := NewConsumerRecord(core, d.pos, d.config.scale())

	if !accept(d.callbacks.OnStop, d.config.ForceApply, ev, rec) {
		return Result{Handled: true, Record: rec}, nil
	}

	d.dragging = false
	d.lastSample = geom.Undefined()
	d.touchID = NoTouch
	d.notify(PhaseStop, rec)

	return Result{Handled: true, Accepted: true, Record: rec}, nil
}

// Handle routes a phase event to the matching operation.
func (d *Draggable) Handle(phase Phase, ev PointerEvent) (Result, error) {
	switch phase {
	case PhaseStart:
		return d.Start(ev)
	case PhaseMove:
		return d.Move(ev)
	case PhaseStop:
		return d.Stop(ev)
	default:
		return Result{}, nil
	}
}

// nodeID returns the target's identifier, empty for inert instances.
func (d *Draggable) nodeID() string {
	if d.node == nil {
		return ""
	}
	return d.node.ID()
}

// notify invokes observers synchronously after an accepted phase.
func (d *Draggable) notify(phase Phase, rec Record) {
	for _, fn := range d.observers {
		fn(phase, rec)
	}
	d.logger.Debug("drag %s node=%s pos=(%.1f, %.1f)", phase, rec.NodeID, rec.X, rec.Y)
}
