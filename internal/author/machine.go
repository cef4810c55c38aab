// Package author owns the point-by-point polygon capture: a closed state
// machine driven by one input event per frame, with all side effects routed
// through a Sink so the machine runs headless.
package author

import (
	"polyforge/internal/geom"
)

// State is the closed set of authoring states. Exactly one is active at a
// time; illegal combinations (a height on an open polygon, an empty drawing)
// are unrepresentable.
type State interface {
	authoringState()
}

// Idle means no polygon is in progress.
type Idle struct{}

// Drawing holds the vertices captured so far, in click order. The first
// vertex is the closing target. Never contains two consecutive duplicates.
type Drawing struct {
	Vertices []geom.Vertex
}

// PendingExtrusion is a closed polygon (>= 3 vertices) awaiting a confirmed
// non-zero height.
type PendingExtrusion struct {
	Vertices []geom.Vertex
	Height   int
}

func (Idle) authoringState()             {}
func (Drawing) authoringState()          {}
func (PendingExtrusion) authoringState() {}

// Sink receives the machine's side effects. RebuildPreview is called with the
// current height whenever it changes; a height of 0 means no preview.
// Commit materializes the solid; a non-nil error (a convexity rejection) keeps
// the machine in PendingExtrusion.
type Sink interface {
	RebuildPreview(vs []geom.Vertex, height int)
	DiscardPreview()
	Commit(vs []geom.Vertex, height int) error
}

// Machine is the authoring state machine. Not safe for concurrent use; the
// frame loop is the only caller.
type Machine struct {
	state State
	sink  Sink
}

// New returns an idle machine wired to sink.
func New(sink Sink) *Machine {
	return &Machine{state: Idle{}, sink: sink}
}

// State returns the current state. Callers must not mutate the vertex slices.
func (m *Machine) State() State { return m.state }

// Confirm handles a primary click. snapped reports whether v is a resolved
// lattice vertex this frame; without one, clicks in Idle and Drawing are
// no-ops. In PendingExtrusion the click confirms the extrusion regardless of
// the snap result.
func (m *Machine) Confirm(v geom.Vertex, snapped bool) {
	switch st := m.state.(type) {
	case Idle:
		if !snapped {
			return
		}
		m.state = Drawing{Vertices: []geom.Vertex{v}}
	case Drawing:
		if !snapped {
			return
		}
		vs := st.Vertices
		switch {
		case v.Equals(vs[0]) && len(vs) >= 3:
			m.state = PendingExtrusion{Vertices: vs, Height: 0}
		case v.Equals(vs[len(vs)-1]):
			// Clicking the most recent vertex again is a no-op, not a
			// duplicate insert.
		default:
			m.state = Drawing{Vertices: append(vs, v)}
		}
	case PendingExtrusion:
		if st.Height <= 0 {
			return
		}
		if err := m.sink.Commit(st.Vertices, st.Height); err != nil {
			// Rejected (non-convex). Stay pending; the user can keep
			// adjusting the height or cancel.
			return
		}
		m.state = Idle{}
		m.sink.DiscardPreview()
	}
}

// Cancel handles a secondary click: from PendingExtrusion it discards the
// pending polygon and preview. In every other state it is a no-op.
func (m *Machine) Cancel() {
	if _, ok := m.state.(PendingExtrusion); !ok {
		return
	}
	m.state = Idle{}
	m.sink.DiscardPreview()
}

// AdjustHeight raises or lowers the pending extrusion height by the sign of
// delta, clamping at 0, and rebuilds the preview. No-op outside
// PendingExtrusion.
func (m *Machine) AdjustHeight(delta int) {
	st, ok := m.state.(PendingExtrusion)
	if !ok {
		return
	}
	h := st.Height
	if delta > 0 {
		h++
	} else if delta < 0 && h > 0 {
		h--
	}
	m.state = PendingExtrusion{Vertices: st.Vertices, Height: h}
	if h == 0 {
		m.sink.DiscardPreview()
		return
	}
	m.sink.RebuildPreview(st.Vertices, h)
}
