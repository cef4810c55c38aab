// Package snap resolves the view-center ray to the nearest ground-lattice
// vertex. Pure geometry: it knows nothing about windows or input devices.
package snap

import (
	"github.com/chewxy/math32"

	"polyforge/internal/geom"
)

// Config bounds which lattice vertices are snappable.
type Config struct {
	// Radius is the maximum straight-line distance from the camera to a
	// snappable vertex, in world units.
	Radius float32 `yaml:"radius"`
	// Tolerance is the maximum offset of the vertex from the view center, in
	// normalized device coordinates. A constant NDC bound is a constant
	// angular cone, so snap feel does not change with distance.
	Tolerance float32 `yaml:"tolerance"`
}

// DefaultConfig returns the stock snap cone.
func DefaultConfig() Config {
	return Config{Radius: 8, Tolerance: 0.15}
}

// View is the camera pose the ray is cast from.
type View struct {
	Position geom.Vec3
	Forward  geom.Vec3 // unit view direction
	// FovScale is tan(vertical fov / 2); converts angular offsets to NDC.
	FovScale float32
}

// Resolve casts the view-center ray onto the ground plane and rounds the hit
// to the nearest lattice vertex. The second return is false when the ray never
// reaches the plane or the candidate fails the distance or cone test.
func Resolve(v View, cfg Config) (geom.Vertex, bool) {
	if v.Forward.Y == 0 {
		return geom.Vertex{}, false
	}
	t := -v.Position.Y / v.Forward.Y
	if t <= 0 {
		return geom.Vertex{}, false
	}
	hit := v.Position.Add(v.Forward.Scale(t))
	cand := geom.Vertex{
		X: int(math32.Round(hit.X)),
		Z: int(math32.Round(hit.Z)),
	}

	delta := cand.World().Sub(v.Position)
	dist := delta.Length()
	if dist > cfg.Radius {
		return geom.Vertex{}, false
	}
	along := delta.Dot(v.Forward)
	if along <= 0 {
		return geom.Vertex{}, false
	}
	// Perpendicular offset from the view axis, expressed in NDC.
	perp := delta.Sub(v.Forward.Scale(along)).Length()
	fov := v.FovScale
	if fov <= 0 {
		fov = 1
	}
	if perp/along/fov > cfg.Tolerance {
		return geom.Vertex{}, false
	}
	return cand, true
}
