package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// rect is a unit-style axis-aligned rectangle in canonical winding.
var rect = []Vertex{{0, 0}, {2, 0}, {2, 2}, {0, 2}}

// reflexQuad has a reflex corner at (1,1).
var reflexQuad = []Vertex{{0, 0}, {4, 0}, {1, 1}, {0, 4}}

func reversed(vs []Vertex) []Vertex {
	out := make([]Vertex, len(vs))
	for i, v := range vs {
		out[len(vs)-1-i] = v
	}
	return out
}

func rotated(vs []Vertex, by int) []Vertex {
	out := make([]Vertex, 0, len(vs))
	for i := range vs {
		out = append(out, vs[(i+by)%len(vs)])
	}
	return out
}

func TestSignedArea2(t *testing.T) {
	assert.Equal(t, 8, SignedArea2(rect), "canonical rectangle has positive doubled area")
	assert.Equal(t, -8, SignedArea2(reversed(rect)), "reversed rectangle flips the sign")
	assert.Equal(t, 0, SignedArea2([]Vertex{{0, 0}, {1, 0}, {2, 0}}), "collinear polygon has zero area")
}

func TestAreaUnsigned(t *testing.T) {
	assert.Equal(t, float32(4), Area(rect))
	assert.Equal(t, float32(4), Area(reversed(rect)))
}

func TestCanonicalizeFixesWinding(t *testing.T) {
	cw := reversed(rect)
	fixed := Canonicalize(cw)
	assert.Positive(t, SignedArea2(fixed))
	assert.Equal(t, rect, fixed, "double reversal round-trips to the canonical order")

	already := Canonicalize(rect)
	assert.Equal(t, rect, already)
	// Canonicalize must not alias its input.
	already[0] = Vertex{9, 9}
	assert.Equal(t, Vertex{0, 0}, rect[0])
}

func TestIsConvexRectangleAnyWinding(t *testing.T) {
	assert.True(t, IsConvex(rect))
	assert.True(t, IsConvex(reversed(rect)))
}

func TestIsConvexInvariantUnderRotationAndReversal(t *testing.T) {
	polys := [][]Vertex{
		rect,
		{{0, 0}, {3, 0}, {4, 2}, {2, 4}, {0, 2}},
		reflexQuad,
	}
	for _, p := range polys {
		want := IsConvex(p)
		for by := 0; by < len(p); by++ {
			assert.Equal(t, want, IsConvex(rotated(p, by)), "cyclic rotation by %d changed the result", by)
			assert.Equal(t, want, IsConvex(rotated(reversed(p), by)), "reversal changed the result")
		}
	}
}

func TestIsConvexRejectsReflexQuad(t *testing.T) {
	assert.False(t, IsConvex(reflexQuad))
}

func TestIsConvexAllowsCollinearRun(t *testing.T) {
	withMid := []Vertex{{0, 0}, {1, 0}, {2, 0}, {2, 2}, {0, 2}}
	assert.True(t, IsConvex(withMid))
}

func TestIsConvexTooFewVertices(t *testing.T) {
	assert.False(t, IsConvex([]Vertex{{0, 0}, {1, 1}}))
}

func TestCentroid(t *testing.T) {
	c := Centroid(rect)
	assert.Equal(t, float32(1), c.X)
	assert.Equal(t, float32(1), c.Z)
}
