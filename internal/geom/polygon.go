package geom

// SignedArea2 returns twice the signed shoelace area of the polygon. The sign
// is positive for the canonical winding used throughout (counter-clockwise in
// lattice coordinates) and negative for the reverse. Exact: no float rounding.
func SignedArea2(vs []Vertex) int {
	area2 := 0
	for i, a := range vs {
		b := vs[(i+1)%len(vs)]
		area2 += a.X*b.Z - b.X*a.Z
	}
	return area2
}

// Area returns the unsigned polygon area.
func Area(vs []Vertex) float32 {
	a2 := SignedArea2(vs)
	if a2 < 0 {
		a2 = -a2
	}
	return float32(a2) / 2
}

// Canonicalize returns a copy of vs in canonical winding: if the signed area is
// negative the order is reversed, otherwise the copy keeps the input order.
// Zero-area polygons are returned as-is.
func Canonicalize(vs []Vertex) []Vertex {
	out := make([]Vertex, len(vs))
	if SignedArea2(vs) < 0 {
		for i, v := range vs {
			out[len(vs)-1-i] = v
		}
		return out
	}
	copy(out, vs)
	return out
}

// cross2 is the z-component of the cross product of edges ab and bc.
func cross2(a, b, c Vertex) int {
	return (b.X-a.X)*(c.Z-b.Z) - (b.Z-a.Z)*(c.X-b.X)
}

// IsConvex reports whether the polygon is convex. The test canonicalizes the
// winding first, then requires every cyclic consecutive-triple cross product to
// be >= 0, so the result is the same under cyclic rotation and under winding
// reversal. Collinear runs pass; polygons with fewer than 3 vertices do not.
func IsConvex(vs []Vertex) bool {
	if len(vs) < 3 {
		return false
	}
	cvs := Canonicalize(vs)
	n := len(cvs)
	for i := 0; i < n; i++ {
		if cross2(cvs[i], cvs[(i+1)%n], cvs[(i+2)%n]) < 0 {
			return false
		}
	}
	return true
}

// Centroid returns the mean of the vertex coordinates.
func Centroid(vs []Vertex) Vec2 {
	var c Vec2
	for _, v := range vs {
		c.X += float32(v.X)
		c.Z += float32(v.Z)
	}
	n := float32(len(vs))
	return Vec2{c.X / n, c.Z / n}
}
