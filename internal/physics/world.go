// Package physics is a small rigid-body world tailored to this game: dynamic
// upright boxes under gravity over a flat ground plane and static convex
// prisms. Pure Go, no engine types, single-threaded.
package physics

import (
	"polyforge/internal/geom"
)

const (
	// SubstepSize is the fixed internal integration step.
	SubstepSize float32 = 1.0 / 120.0
	// MaxSubsteps caps the work done for one Step call. Time beyond the cap
	// is dropped, not carried over: under sustained long frames simulated
	// time falls behind wall-clock time instead of spiraling.
	MaxSubsteps = 8
)

// World holds the bodies and static volumes and advances them in fixed
// substeps. The ground plane at y=0 is always present.
type World struct {
	Gravity geom.Vec3
	bodies  []*Body
	prisms  []*Prism
}

// NewWorld returns a world with the given downward gravity (positive g).
func NewWorld(g float32) *World {
	return &World{Gravity: geom.Vec3{Y: -g}}
}

// AddBody registers a dynamic body.
func (w *World) AddBody(b *Body) {
	w.bodies = append(w.bodies, b)
}

// AddPrism registers a static convex volume.
func (w *World) AddPrism(p *Prism) {
	w.prisms = append(w.prisms, p)
}

// Prisms returns the registered static volumes.
func (w *World) Prisms() []*Prism { return w.prisms }

// Step advances the simulation by dt seconds in fixed substeps, at most
// MaxSubsteps of them. A short final substep consumes any remainder below
// SubstepSize; anything beyond the cap is dropped.
func (w *World) Step(dt float32) {
	remaining := dt
	for i := 0; i < MaxSubsteps && remaining > 0; i++ {
		h := SubstepSize
		if remaining < h {
			h = remaining
		}
		w.substep(h)
		remaining -= h
	}
}

// substep integrates gravity and velocity, then resolves penetration against
// the ground plane and every prism.
func (w *World) substep(h float32) {
	for _, b := range w.bodies {
		b.Velocity = b.Velocity.Add(w.Gravity.Scale(h))
		b.Position = b.Position.Add(b.Velocity.Scale(h))

		if b.bottom() < 0 {
			b.Position.Y = b.Half.Y
			if b.Velocity.Y < 0 {
				b.Velocity.Y = 0
			}
		}
		for _, p := range w.prisms {
			w.resolve(b, p)
		}
	}
}

// resolve pushes b out of p along the minimum-penetration axis and kills the
// velocity component driving it in. Statics never move.
func (w *World) resolve(b *Body, p *Prism) {
	axis, depth, hit := collide(b, p)
	if !hit {
		return
	}
	b.Position = b.Position.Add(axis.Scale(depth))
	vn := b.Velocity.Dot(axis)
	if vn < 0 {
		b.Velocity = b.Velocity.Sub(axis.Scale(vn))
	}
}

// RaycastDown casts a ray straight down from origin and returns the y of the
// closest static surface (ground plane or a prism top) within maxDist. A miss
// is a valid no-hit result, not an error.
func (w *World) RaycastDown(origin geom.Vec3, maxDist float32) (hitY float32, ok bool) {
	best := float32(0)
	found := false
	if origin.Y >= 0 && origin.Y <= maxDist {
		best, found = 0, true
	}
	for _, p := range w.prisms {
		top := p.Top()
		if top > origin.Y || origin.Y-top > maxDist {
			continue
		}
		if !p.ContainsXZ(origin.X, origin.Z) {
			continue
		}
		if !found || top > best {
			best, found = top, true
		}
	}
	return best, found
}
