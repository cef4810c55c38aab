package geom

import (
	"github.com/chewxy/math32"
)

// Vec2 is a float32 point or direction on the ground plane (x, z).
type Vec2 struct {
	X float32
	Z float32
}

// Vec3 is a float32 point or direction in world space (y up).
type Vec3 struct {
	X float32
	Y float32
	Z float32
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Z + o.Z} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Z - o.Z} }
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Z * s} }
func (v Vec2) Dot(o Vec2) float32   { return v.X*o.X + v.Z*o.Z }
func (v Vec2) Length() float32      { return math32.Sqrt(v.Dot(v)) }

// Perp returns v rotated so that, for an edge of a counter-clockwise polygon,
// the result points out of the polygon.
func (v Vec2) Perp() Vec2 { return Vec2{v.Z, -v.X} }

// Normalize returns v scaled to unit length, or the zero vector unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float32   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Length() float32      { return math32.Sqrt(v.Dot(v)) }

// XZ drops the vertical component.
func (v Vec3) XZ() Vec2 { return Vec2{v.X, v.Z} }

// Normalize returns v scaled to unit length, or the zero vector unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}
