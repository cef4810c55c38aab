package physics

import (
	"polyforge/internal/geom"
)

// collide runs a separating-axis test between a dynamic box and a vertical
// prism. Because prism side faces are vertical and its caps horizontal, the
// full 3D test reduces to the world Y axis plus 2D axes on the ground plane:
// the box's X and Z normals and one outward normal per cross-section edge.
// Returns the unit push-out axis (pointing away from the prism) and depth.
func collide(b *Body, p *Prism) (axis geom.Vec3, depth float32, hit bool) {
	yOverlap := minf(b.top(), p.Top()) - maxf(b.bottom(), p.Bottom())
	if yOverlap <= 0 {
		return geom.Vec3{}, 0, false
	}

	axes := make([]geom.Vec2, 0, 2+len(p.Verts))
	axes = append(axes, geom.Vec2{X: 1}, geom.Vec2{Z: 1})
	n := len(p.Verts)
	for i := 0; i < n; i++ {
		edge := p.Verts[(i+1)%n].Sub(p.Verts[i])
		out := edge.Perp().Normalize()
		if out.X != 0 || out.Z != 0 {
			axes = append(axes, out)
		}
	}

	boxC := b.Position.XZ()
	prismC := p.Center.XZ()
	bestDepth := yOverlap
	bestAxis := geom.Vec3{Y: 1}
	if b.Position.Y < p.Center.Y {
		bestAxis = geom.Vec3{Y: -1}
	}

	for _, a := range axes {
		pMin, pMax := projectPrism(p, a)
		c := boxC.Dot(a)
		r := b.Half.X*absf(a.X) + b.Half.Z*absf(a.Z)
		overlap := minf(pMax, c+r) - maxf(pMin, c-r)
		if overlap <= 0 {
			return geom.Vec3{}, 0, false
		}
		if overlap < bestDepth {
			bestDepth = overlap
			dir := a
			if boxC.Sub(prismC).Dot(a) < 0 {
				dir = a.Scale(-1)
			}
			bestAxis = geom.Vec3{X: dir.X, Z: dir.Z}
		}
	}
	return bestAxis, bestDepth, true
}

// projectPrism projects the cross-section onto a ground-plane axis.
func projectPrism(p *Prism, a geom.Vec2) (lo, hi float32) {
	base := p.Center.XZ().Dot(a)
	lo, hi = base, base
	for _, v := range p.Verts {
		d := base + v.Dot(a)
		if d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}
	return lo, hi
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func absf(a float32) float32 {
	if a < 0 {
		return -a
	}
	return a
}
