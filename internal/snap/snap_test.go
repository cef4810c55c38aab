package snap

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"polyforge/internal/geom"
)

// lookingAt returns a view positioned at eye aiming straight at target.
func lookingAt(eye, target geom.Vec3) View {
	return View{
		Position: eye,
		Forward:  target.Sub(eye).Normalize(),
		FovScale: math32.Tan(30 * math32.Pi / 180), // 60 degree vertical fov
	}
}

func TestResolveRoundsToNearestLattice(t *testing.T) {
	v := lookingAt(geom.Vec3{X: 2.9, Y: 1.6, Z: 1.1}, geom.Vec3{X: 3.05, Y: 0, Z: 2.04})
	got, ok := Resolve(v, DefaultConfig())
	assert.True(t, ok)
	assert.Equal(t, geom.Vertex{X: 3, Z: 2}, got)
}

func TestResolveLevelRayMisses(t *testing.T) {
	v := View{
		Position: geom.Vec3{Y: 1.6},
		Forward:  geom.Vec3{Z: -1},
		FovScale: 0.577,
	}
	_, ok := Resolve(v, DefaultConfig())
	assert.False(t, ok, "a ray parallel to the ground plane has no candidate")
}

func TestResolveUpwardRayMisses(t *testing.T) {
	v := lookingAt(geom.Vec3{Y: 1.6}, geom.Vec3{X: 2, Y: 4, Z: 2})
	_, ok := Resolve(v, DefaultConfig())
	assert.False(t, ok)
}

func TestResolveRejectsBeyondRadius(t *testing.T) {
	v := lookingAt(geom.Vec3{Y: 1.6}, geom.Vec3{X: 20, Y: 0, Z: 0})
	_, ok := Resolve(v, DefaultConfig())
	assert.False(t, ok, "vertex 20 units out is past the 8 unit snap radius")
}

func TestResolveRejectsOutsideCone(t *testing.T) {
	// Aim at the midpoint between two lattice points from far enough away that
	// the rounded candidate sits well off the view axis.
	v := lookingAt(geom.Vec3{Y: 1.2}, geom.Vec3{X: 6, Y: 0, Z: 0.5})
	cfg := Config{Radius: 8, Tolerance: 0.02}
	_, ok := Resolve(v, cfg)
	assert.False(t, ok)
}

func TestResolveAcceptsInsideConeAtSamePose(t *testing.T) {
	v := lookingAt(geom.Vec3{Y: 1.2}, geom.Vec3{X: 6, Y: 0, Z: 0.5})
	got, ok := Resolve(v, DefaultConfig())
	assert.True(t, ok)
	assert.Equal(t, 6, got.X)
}
