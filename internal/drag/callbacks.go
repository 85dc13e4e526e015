package drag

// Callback is a consumer phase callback. Returning false vetoes the
// phase: the state machine freezes instead of applying the proposed
// change. A nil callback accepts. Callbacks run synchronously on the
// event path; a stalled callback stalls the pipeline.
type Callback func(ev PointerEvent, rec Record) bool

// Callbacks holds the three phase callbacks. All are optional.
type Callbacks struct {
	OnStart Callback
	OnDrag  Callback
	OnStop  Callback
}

// Observer is a fire-and-forget phase notification hook. Observers are
// invoked after every accepted phase and cannot veto.
type Observer func(phase Phase, rec Record)

// accept evaluates a callback's verdict under the force-apply rule.
func accept(cb Callback, force bool, ev PointerEvent, rec Record) bool {
	if cb == nil {
		return true
	}
	if cb(ev, rec) {
		return true
	}
	return force
}
