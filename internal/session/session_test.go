package session

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polyforge/internal/author"
	"polyforge/internal/config"
	"polyforge/internal/geom"
	"polyforge/internal/input"
	"polyforge/internal/logger"
	"polyforge/internal/solid"
)

// fakeScene records registry calls; no GPU anywhere near the session.
type fakeScene struct {
	solids  []*solid.Solid
	preview *solid.Solid
}

func (f *fakeScene) AddSolid(s *solid.Solid)   { f.solids = append(f.solids, s) }
func (f *fakeScene) SetPreview(s *solid.Solid) { f.preview = s }

const dt = 1.0 / 60.0

func newSession() (*Session, *fakeScene) {
	scn := &fakeScene{}
	return New(scn, logger.New(), config.Default()), scn
}

// aim points the player's view straight at a lattice vertex.
func aim(s *Session, v geom.Vertex) {
	eye := s.Player.EyePosition()
	d := v.World().Sub(eye).Normalize()
	s.Player.Pitch = math32.Asin(d.Y)
	s.Player.Yaw = math32.Atan2(-d.X, -d.Z)
}

// click aims at v and sends a primary click.
func click(t *testing.T, s *Session, v geom.Vertex) {
	t.Helper()
	aim(s, v)
	s.Update(input.State{Confirm: true}, dt)
	got, ok := s.Snapped()
	require.True(t, ok, "vertex %v should be snappable from the spawn", v)
	require.Equal(t, v, got)
}

func TestEndToEndAuthorAndExtrude(t *testing.T) {
	s, scn := newSession()

	for _, v := range []geom.Vertex{{X: 0, Z: 0}, {X: 2, Z: 0}, {X: 2, Z: 2}, {X: 0, Z: 2}} {
		click(t, s, v)
	}
	click(t, s, geom.Vertex{X: 0, Z: 0}) // close on the first vertex
	require.IsType(t, author.PendingExtrusion{}, s.State())

	for i := 0; i < 3; i++ {
		s.Update(input.State{RaiseHeight: true}, dt)
	}
	p := s.State().(author.PendingExtrusion)
	assert.Equal(t, 3, p.Height)
	require.NotNil(t, scn.preview, "preview mirrors the pending height")
	assert.Equal(t, 3, scn.preview.Height)

	s.Update(input.State{Confirm: true}, dt)

	assert.IsType(t, author.Idle{}, s.State())
	require.Len(t, scn.solids, 1, "exactly one new solid")
	sol := scn.solids[0]
	assert.Equal(t, float32(4), geom.Area(sol.Polygon))
	assert.Equal(t, 3, sol.Height)
	assert.Equal(t, geom.Vec3{X: 1, Y: 1.5, Z: 1}, sol.BodyCenter())
	assert.Nil(t, scn.preview, "preview removed when the solid is registered")
	assert.Len(t, s.World.Prisms(), 1, "collision volume registered alongside the mesh")
	assert.Equal(t, 1, s.SolidCount())
}

func TestConvexityRejectionKeepsWorldUntouched(t *testing.T) {
	s, scn := newSession()

	for _, v := range []geom.Vertex{{X: 0, Z: 0}, {X: 4, Z: 0}, {X: 1, Z: 1}, {X: 0, Z: 4}} {
		click(t, s, v)
	}
	click(t, s, geom.Vertex{X: 0, Z: 0})
	require.IsType(t, author.PendingExtrusion{}, s.State())

	s.Update(input.State{RaiseHeight: true}, dt)
	s.Update(input.State{Confirm: true}, dt)

	assert.IsType(t, author.PendingExtrusion{}, s.State(), "rejection keeps the machine pending")
	assert.Empty(t, scn.solids)
	assert.Empty(t, s.World.Prisms())
	assert.NotEmpty(t, s.Notice())

	s.Update(input.State{Cancel: true}, dt)
	assert.IsType(t, author.Idle{}, s.State())
	assert.Nil(t, scn.preview)
}

func TestHeightDecrementRemovesPreviewAtZero(t *testing.T) {
	s, scn := newSession()
	for _, v := range []geom.Vertex{{X: 0, Z: 0}, {X: 2, Z: 0}, {X: 2, Z: 2}, {X: 0, Z: 2}} {
		click(t, s, v)
	}
	click(t, s, geom.Vertex{X: 0, Z: 0})

	s.Update(input.State{RaiseHeight: true}, dt)
	require.NotNil(t, scn.preview)
	s.Update(input.State{LowerHeight: true}, dt)
	assert.Nil(t, scn.preview, "preview absent exactly when height is 0")
	assert.Equal(t, 0, s.State().(author.PendingExtrusion).Height)
}

func TestPlaceSeedsThroughTheSamePath(t *testing.T) {
	s, scn := newSession()
	err := s.Place([]geom.Vertex{{X: 5, Z: 5}, {X: 8, Z: 5}, {X: 8, Z: 8}, {X: 5, Z: 8}}, 2)
	require.NoError(t, err)
	assert.Len(t, scn.solids, 1)
	assert.Len(t, s.World.Prisms(), 1)

	err = s.Place([]geom.Vertex{{X: 0, Z: 0}, {X: 4, Z: 0}, {X: 1, Z: 1}, {X: 0, Z: 4}}, 2)
	assert.Error(t, err, "starter terrain goes through the same convexity gate")
}

func TestPlacedSolidIsWalkableTerrain(t *testing.T) {
	s, _ := newSession()
	require.NoError(t, s.Place([]geom.Vertex{{X: 2, Z: 2}, {X: 6, Z: 2}, {X: 6, Z: 6}, {X: 2, Z: 6}}, 2))

	// Drop the player over the new solid; it lands on the top face and
	// becomes jump-capable there.
	s.Player.Body.Position = geom.Vec3{X: 4, Y: 6, Z: 4}
	for i := 0; i < 180; i++ {
		s.Update(input.State{}, dt)
	}
	assert.True(t, s.CanJump())
	assert.InDelta(t, 2+0.9, s.Player.Body.Position.Y, 0.05, "standing on the solid's top face")

	// Jumping from the top face works like jumping from the ground.
	s.Update(input.State{Jump: true}, dt)
	assert.Positive(t, s.Player.Body.Velocity.Y)
}
