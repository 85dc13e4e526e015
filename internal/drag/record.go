package drag

import "github.com/dshills/dragstorm/internal/geom"

// Record is the position-and-delta record emitted to consumers on every
// phase. Core records are unscaled and surface-local; consumer records
// are rescaled by the zoom factor and offset by the session's tracked
// position.
type Record struct {
	// NodeID identifies the element being dragged. Non-owning.
	NodeID string

	X float64
	Y float64

	DeltaX float64
	DeltaY float64

	LastX float64
	LastY float64
}

// Position returns the record's absolute position.
func (r Record) Position() geom.Point {
	return geom.Pt(r.X, r.Y)
}

// Delta returns the record's displacement since the previous sample.
func (r Record) Delta() geom.Point {
	return geom.Pt(r.DeltaX, r.DeltaY)
}

// NewCoreRecord builds an unscaled record from a resolved sample and the
// previous sample. When last is the undefined sentinel this is the first
// sample of the session: deltas are zero and last anchors at the sample
// itself, so subsequent deltas measure from here.
func NewCoreRecord(nodeID string, sample, last geom.Point) Record {
	if last.IsUndefined() {
		return Record{
			NodeID: nodeID,
			X:      sample.X,
			Y:      sample.Y,
			LastX:  sample.X,
			LastY:  sample.Y,
		}
	}

	return Record{
		NodeID: nodeID,
		X:      sample.X,
		Y:      sample.Y,
		DeltaX: sample.X - last.X,
		DeltaY: sample.Y - last.Y,
		LastX:  last.X,
		LastY:  last.Y,
	}
}

// NewConsumerRecord builds the consumer-facing record from a core record:
// core deltas are rescaled by 1/scale and added to the session's tracked
// position, and last reports the pre-delta position rather than the raw
// pointer's last sample.
func NewConsumerRecord(core Record, pos geom.Point, scale float64) Record {
	if scale <= 0 {
		scale = 1
	}

	dx := core.DeltaX / scale
	dy := core.DeltaY / scale

	return Record{
		NodeID: core.NodeID,
		X:      pos.X + dx,
		Y:      pos.Y + dy,
		DeltaX: dx,
		DeltaY: dy,
		LastX:  pos.X,
		LastY:  pos.Y,
	}
}
