package physics

import (
	"polyforge/internal/geom"
)

// Prism is a static convex collision volume: a convex 2D cross-section swept
// vertically. The cross-section is stored centered on the volume's own origin
// in canonical (counter-clockwise) order; Center places it in the world.
type Prism struct {
	Verts  []geom.Vec2
	Center geom.Vec3
	HalfH  float32
}

// NewPrism returns a static prism. verts must be centered, convex, and in
// canonical order; callers derive them from a validated solid.
func NewPrism(verts []geom.Vec2, center geom.Vec3, halfH float32) *Prism {
	return &Prism{Verts: verts, Center: center, HalfH: halfH}
}

// Top returns the world y of the upper face.
func (p *Prism) Top() float32 { return p.Center.Y + p.HalfH }

// Bottom returns the world y of the lower face.
func (p *Prism) Bottom() float32 { return p.Center.Y - p.HalfH }

// ContainsXZ reports whether the world-space ground point (x, z) lies inside
// the cross-section. Convexity makes this a same-side test against every edge.
func (p *Prism) ContainsXZ(x, z float32) bool {
	q := geom.Vec2{X: x - p.Center.X, Z: z - p.Center.Z}
	n := len(p.Verts)
	for i := 0; i < n; i++ {
		a := p.Verts[i]
		b := p.Verts[(i+1)%n]
		edge := b.Sub(a)
		// Outward side of any edge means outside.
		if edge.Perp().Dot(q.Sub(a)) > 0 {
			return false
		}
	}
	return true
}
