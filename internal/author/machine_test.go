package author

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polyforge/internal/geom"
)

// recordingSink captures machine side effects for assertions.
type recordingSink struct {
	previews  []PendingExtrusion
	discards  int
	commits   []PendingExtrusion
	commitErr error
}

func (s *recordingSink) RebuildPreview(vs []geom.Vertex, h int) {
	s.previews = append(s.previews, PendingExtrusion{Vertices: vs, Height: h})
}

func (s *recordingSink) DiscardPreview() { s.discards++ }

func (s *recordingSink) Commit(vs []geom.Vertex, h int) error {
	if s.commitErr != nil {
		return s.commitErr
	}
	s.commits = append(s.commits, PendingExtrusion{Vertices: vs, Height: h})
	return nil
}

var square = []geom.Vertex{{X: 0, Z: 0}, {X: 2, Z: 0}, {X: 2, Z: 2}, {X: 0, Z: 2}}

func drawPolygon(m *Machine, vs []geom.Vertex) {
	for _, v := range vs {
		m.Confirm(v, true)
	}
	m.Confirm(vs[0], true) // closing click
}

func TestCaptureSequenceReachesPending(t *testing.T) {
	sink := &recordingSink{}
	m := New(sink)

	assert.IsType(t, Idle{}, m.State())
	m.Confirm(square[0], true)
	require.IsType(t, Drawing{}, m.State())

	for _, v := range square[1:] {
		m.Confirm(v, true)
	}
	d := m.State().(Drawing)
	assert.Equal(t, square, d.Vertices, "captured list matches click order exactly")

	m.Confirm(square[0], true)
	p, ok := m.State().(PendingExtrusion)
	require.True(t, ok)
	assert.Equal(t, square, p.Vertices)
	assert.Equal(t, 0, p.Height)
}

func TestConfirmWithoutSnapIsNoOp(t *testing.T) {
	m := New(&recordingSink{})
	m.Confirm(geom.Vertex{}, false)
	assert.IsType(t, Idle{}, m.State())

	m.Confirm(square[0], true)
	m.Confirm(geom.Vertex{X: 9, Z: 9}, false)
	assert.Len(t, m.State().(Drawing).Vertices, 1)
}

func TestRepeatClickOnLastVertexIsIdempotent(t *testing.T) {
	m := New(&recordingSink{})
	m.Confirm(square[0], true)
	m.Confirm(square[1], true)
	m.Confirm(square[1], true)
	m.Confirm(square[1], true)
	assert.Equal(t, square[:2], m.State().(Drawing).Vertices)
}

func TestClosingNeedsThreeVertices(t *testing.T) {
	m := New(&recordingSink{})
	m.Confirm(square[0], true)
	m.Confirm(square[1], true)
	// Clicking the first vertex with only two captured appends it instead of
	// closing; the closing click needs at least three vertices.
	m.Confirm(square[0], true)
	d, ok := m.State().(Drawing)
	require.True(t, ok)
	assert.Len(t, d.Vertices, 3)
}

func TestCancelOnlyAppliesWhilePending(t *testing.T) {
	sink := &recordingSink{}
	m := New(sink)

	m.Cancel()
	assert.IsType(t, Idle{}, m.State())

	m.Confirm(square[0], true)
	m.Cancel()
	assert.IsType(t, Drawing{}, m.State(), "cancel while drawing is a no-op")

	m2 := New(sink)
	drawPolygon(m2, square)
	m2.Cancel()
	assert.IsType(t, Idle{}, m2.State())
	assert.Positive(t, sink.discards)
}

func TestHeightAdjustClampsAtZero(t *testing.T) {
	sink := &recordingSink{}
	m := New(sink)
	drawPolygon(m, square)

	m.AdjustHeight(-1)
	m.AdjustHeight(-1)
	assert.Equal(t, 0, m.State().(PendingExtrusion).Height, "repeated decrements never go negative")

	m.AdjustHeight(+1)
	m.AdjustHeight(+1)
	assert.Equal(t, 2, m.State().(PendingExtrusion).Height)
	require.Len(t, sink.previews, 2)
	assert.Equal(t, 2, sink.previews[1].Height)

	m.AdjustHeight(-1)
	m.AdjustHeight(-1)
	assert.Equal(t, 0, m.State().(PendingExtrusion).Height)
	assert.Positive(t, sink.discards, "preview is discarded when the height reaches 0")
}

func TestConfirmAtZeroHeightIsNoOp(t *testing.T) {
	sink := &recordingSink{}
	m := New(sink)
	drawPolygon(m, square)

	m.Confirm(geom.Vertex{}, false)
	assert.IsType(t, PendingExtrusion{}, m.State())
	assert.Empty(t, sink.commits)
}

func TestConfirmCommitsAndReturnsToIdle(t *testing.T) {
	sink := &recordingSink{}
	m := New(sink)
	drawPolygon(m, square)
	m.AdjustHeight(+1)

	m.Confirm(geom.Vertex{}, false)
	assert.IsType(t, Idle{}, m.State())
	require.Len(t, sink.commits, 1)
	assert.Equal(t, square, sink.commits[0].Vertices)
	assert.Equal(t, 1, sink.commits[0].Height)
	assert.Positive(t, sink.discards, "preview discarded on commit")
}

func TestRejectedCommitStaysPending(t *testing.T) {
	sink := &recordingSink{commitErr: errors.New("not convex")}
	m := New(sink)
	drawPolygon(m, square)
	m.AdjustHeight(+1)

	m.Confirm(geom.Vertex{}, false)
	p, ok := m.State().(PendingExtrusion)
	require.True(t, ok, "rejection leaves the machine pending")
	assert.Equal(t, 1, p.Height)

	// The user can recover: clear the error and confirm again.
	sink.commitErr = nil
	m.Confirm(geom.Vertex{}, false)
	assert.IsType(t, Idle{}, m.State())
}

func TestHeightAdjustOutsidePendingIsNoOp(t *testing.T) {
	sink := &recordingSink{}
	m := New(sink)
	m.AdjustHeight(+1)
	assert.IsType(t, Idle{}, m.State())
	assert.Empty(t, sink.previews)
}
