package geom

// Vertex is a grid-snapped point on the ground plane. Coordinates are lattice
// integers; y is implicitly 0. Equality is exact integer equality.
type Vertex struct {
	X int
	Z int
}

// Equals reports exact lattice equality.
func (v Vertex) Equals(o Vertex) bool { return v.X == o.X && v.Z == o.Z }

// World returns the vertex as a world-space point on the ground plane.
func (v Vertex) World() Vec3 { return Vec3{float32(v.X), 0, float32(v.Z)} }

// Vec2 returns the vertex as a float ground-plane point.
func (v Vertex) Vec2() Vec2 { return Vec2{float32(v.X), float32(v.Z)} }
