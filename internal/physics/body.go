package physics

import (
	"polyforge/internal/geom"
)

// Body is a dynamic axis-aligned box with position, velocity, and half
// extents. Bodies have no orientation state at all: rotation is permanently
// fixed, which is exactly what an upright character needs.
type Body struct {
	Position geom.Vec3
	Velocity geom.Vec3
	Half     geom.Vec3
	Mass     float32
}

// NewBody returns a body at position with the given half extents and zero
// velocity. Non-positive mass falls back to 1.
func NewBody(position, half geom.Vec3, mass float32) *Body {
	if mass <= 0 {
		mass = 1
	}
	return &Body{Position: position, Half: half, Mass: mass}
}

func (b *Body) bottom() float32 { return b.Position.Y - b.Half.Y }
func (b *Body) top() float32    { return b.Position.Y + b.Half.Y }
