// Package solid turns a validated ground polygon plus a height into the two
// representations the rest of the system needs: a renderable extruded mesh and
// a convex collision hull. Both are derived independently from the same
// canonicalized vertex list; nothing here touches the scene or the physics
// world.
package solid

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"polyforge/internal/geom"
)

// ErrNotConvex is the rejection for polygons that fail the convex/CCW test.
// Matched with errors.Is.
var ErrNotConvex = errors.New("polygon is not convex")

// MeshSpec is a flat triangle-list mesh: xyz position triplets, matching
// normals, planar texcoords, and 16-bit indices. Engine-neutral so the builder
// stays testable without a GPU.
type MeshSpec struct {
	Positions []float32
	Normals   []float32
	Texcoords []float32
	Indices   []uint16
}

// VertexCount returns the number of mesh vertices.
func (m MeshSpec) VertexCount() int { return len(m.Positions) / 3 }

// TriangleCount returns the number of triangles.
func (m MeshSpec) TriangleCount() int { return len(m.Indices) / 3 }

// HullSpec is the convex collision volume: 2n points centered on the origin
// (bottom ring then top ring) and explicit faces. Faces are index lists wound
// counter-clockwise seen from outside the volume: bottom, top, then one quad
// per side edge.
type HullSpec struct {
	Points []geom.Vec3
	Faces  [][]int
}

// Solid is the immutable result of a confirmed extrusion.
type Solid struct {
	ID       uuid.UUID
	Polygon  []geom.Vertex // canonical winding
	Height   int
	Centroid geom.Vec2
	Mesh     MeshSpec
	Hull     HullSpec
}

// BodyCenter is where the physical volume sits: centroid on the ground plane,
// lifted by half the height.
func (s *Solid) BodyCenter() geom.Vec3 {
	return geom.Vec3{X: s.Centroid.X, Y: float32(s.Height) / 2, Z: s.Centroid.Z}
}

// Build validates the polygon and derives both representations.
// The polygon is canonicalized first (negative shoelace area reverses the
// order); the convexity test then requires every cyclic edge-pair cross
// product to be >= 0. Failure returns an error wrapping ErrNotConvex and
// performs no other work: a hard rejection, not a best-effort fix.
func Build(polygon []geom.Vertex, height int) (*Solid, error) {
	if len(polygon) < 3 {
		return nil, fmt.Errorf("solid: need at least 3 vertices, got %d", len(polygon))
	}
	if height <= 0 {
		return nil, fmt.Errorf("solid: height must be positive, got %d", height)
	}
	vs := geom.Canonicalize(polygon)
	if geom.SignedArea2(vs) == 0 {
		return nil, fmt.Errorf("solid: degenerate polygon: %w", ErrNotConvex)
	}
	if !geom.IsConvex(vs) {
		return nil, fmt.Errorf("solid: %d-gon: %w", len(vs), ErrNotConvex)
	}
	c := geom.Centroid(vs)
	return &Solid{
		ID:       uuid.New(),
		Polygon:  vs,
		Height:   height,
		Centroid: c,
		Mesh:     extrudeMesh(vs, c, height),
		Hull:     buildHull(vs, c, height),
	}, nil
}

// BuildPreview derives the visual mesh only, skipping the convexity test: the
// preview tracks the pending height even for polygons that will be rejected on
// confirm. It never carries a hull.
func BuildPreview(polygon []geom.Vertex, height int) (*Solid, error) {
	if len(polygon) < 3 {
		return nil, fmt.Errorf("solid: need at least 3 vertices, got %d", len(polygon))
	}
	if height <= 0 {
		return nil, fmt.Errorf("solid: height must be positive, got %d", height)
	}
	vs := geom.Canonicalize(polygon)
	c := geom.Centroid(vs)
	return &Solid{
		ID:       uuid.New(),
		Polygon:  vs,
		Height:   height,
		Centroid: c,
		Mesh:     extrudeMesh(vs, c, height),
	}, nil
}

// buildHull lays out 2n points: the bottom ring at y=-h/2 in canonical order,
// then the top ring at y=+h/2, both offset by -centroid so the volume is
// centered on the origin. In lattice coordinates the canonical order faces
// down, so the bottom face uses it directly and the top face reverses it.
func buildHull(vs []geom.Vertex, c geom.Vec2, height int) HullSpec {
	n := len(vs)
	h := float32(height)
	pts := make([]geom.Vec3, 0, 2*n)
	for _, v := range vs {
		pts = append(pts, geom.Vec3{X: float32(v.X) - c.X, Y: -h / 2, Z: float32(v.Z) - c.Z})
	}
	for _, v := range vs {
		pts = append(pts, geom.Vec3{X: float32(v.X) - c.X, Y: h / 2, Z: float32(v.Z) - c.Z})
	}

	faces := make([][]int, 0, n+2)
	bottom := make([]int, n)
	top := make([]int, n)
	for i := 0; i < n; i++ {
		bottom[i] = i
		top[i] = 2*n - 1 - i
	}
	faces = append(faces, bottom, top)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		faces = append(faces, []int{i, n + i, n + j, j})
	}
	return HullSpec{Points: pts, Faces: faces}
}

// extrudeMesh triangulates the prism: fans for the top and bottom caps and two
// triangles per side quad, every face with its own vertices so normals stay
// flat. Vertices are centered like the hull; the caller places the mesh at
// BodyCenter.
func extrudeMesh(vs []geom.Vertex, c geom.Vec2, height int) MeshSpec {
	n := len(vs)
	h := float32(height)
	var m MeshSpec

	local := make([]geom.Vec2, n)
	for i, v := range vs {
		local[i] = geom.Vec2{X: float32(v.X) - c.X, Z: float32(v.Z) - c.Z}
	}

	push := func(p geom.Vec3, nrm geom.Vec3, u, t float32) uint16 {
		idx := uint16(len(m.Positions) / 3)
		m.Positions = append(m.Positions, p.X, p.Y, p.Z)
		m.Normals = append(m.Normals, nrm.X, nrm.Y, nrm.Z)
		m.Texcoords = append(m.Texcoords, u, t)
		return idx
	}

	// Caps. Canonical lattice order faces -Y, so the bottom cap fans forward
	// and the top cap fans reversed.
	up := geom.Vec3{Y: 1}
	down := geom.Vec3{Y: -1}
	topIdx := make([]uint16, n)
	botIdx := make([]uint16, n)
	for i, p := range local {
		topIdx[i] = push(geom.Vec3{X: p.X, Y: h / 2, Z: p.Z}, up, p.X, p.Z)
		botIdx[i] = push(geom.Vec3{X: p.X, Y: -h / 2, Z: p.Z}, down, p.X, p.Z)
	}
	for i := 1; i < n-1; i++ {
		m.Indices = append(m.Indices, topIdx[0], topIdx[i+1], topIdx[i])
		m.Indices = append(m.Indices, botIdx[0], botIdx[i], botIdx[i+1])
	}

	// Sides: one quad per edge with the outward normal.
	var run float32
	for i := range local {
		a := local[i]
		b := local[(i+1)%n]
		edge := b.Sub(a)
		out := edge.Perp().Normalize()
		nrm := geom.Vec3{X: out.X, Z: out.Z}
		elen := edge.Length()

		bi := push(geom.Vec3{X: a.X, Y: -h / 2, Z: a.Z}, nrm, run, 0)
		bj := push(geom.Vec3{X: b.X, Y: -h / 2, Z: b.Z}, nrm, run+elen, 0)
		tj := push(geom.Vec3{X: b.X, Y: h / 2, Z: b.Z}, nrm, run+elen, h)
		ti := push(geom.Vec3{X: a.X, Y: h / 2, Z: a.Z}, nrm, run, h)
		m.Indices = append(m.Indices, bi, tj, bj, bi, ti, tj)
		run += elen
	}
	return m
}
