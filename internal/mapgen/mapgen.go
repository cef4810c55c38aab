// Package mapgen scatters starter platforms around the spawn so a fresh
// session has terrain to climb before the player authors anything. Every
// platform is a convex lattice polygon with an integer height, registered
// through the same builder path as user-authored solids.
package mapgen

import (
	"math/rand"

	"github.com/aquilax/go-perlin"

	"polyforge/internal/geom"
)

// Options controls starter terrain generation.
type Options struct {
	Seed      int64
	Platforms int
	MaxHeight int
}

// DefaultOptions returns a small deterministic ring of platforms.
func DefaultOptions() Options {
	return Options{Seed: 7, Platforms: 6, MaxHeight: 3}
}

// Platform is one generated solid-to-be.
type Platform struct {
	Polygon []geom.Vertex
	Height  int
}

// Perlin parameters: alpha/beta are the standard persistence/frequency pair,
// three octaves is plenty for height variation at this scale.
const (
	noiseAlpha   = 2
	noiseBeta    = 2
	noiseOctaves = 3
	noiseScale   = 0.13
)

// spawnClearance keeps platforms off the spawn point at the origin.
const spawnClearance = 4

// StarterPlatforms generates a deterministic set of convex platforms placed
// on a ring around the origin. Heights come from Perlin noise sampled at the
// platform anchor, mapped to [1, MaxHeight].
func StarterPlatforms(opts Options) []Platform {
	if opts.Platforms <= 0 {
		return nil
	}
	if opts.MaxHeight < 1 {
		opts.MaxHeight = 1
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, opts.Seed)

	out := make([]Platform, 0, opts.Platforms)
	for i := 0; i < opts.Platforms; i++ {
		// Anchor on a ring: distance in [spawnClearance+2, spawnClearance+9].
		dist := spawnClearance + 2 + rng.Intn(8)
		ax, az := ringPoint(i, opts.Platforms, dist)

		poly := shapeAt(ax, az, i, rng)
		h := heightAt(noise, ax, az, opts.MaxHeight)
		out = append(out, Platform{Polygon: poly, Height: h})
	}
	return out
}

// ringPoint spreads anchors over octants so platforms don't pile up.
func ringPoint(i, total, dist int) (x, z int) {
	switch i * 8 / max(total, 1) % 8 {
	case 0:
		return dist, 0
	case 1:
		return dist, dist
	case 2:
		return 0, dist
	case 3:
		return -dist, dist
	case 4:
		return -dist, 0
	case 5:
		return -dist, -dist
	case 6:
		return 0, -dist
	default:
		return dist, -dist
	}
}

// shapeAt centers one of the stock convex shapes on the anchor (x, z), so a
// shape never reaches more than 2 cells back toward the spawn.
func shapeAt(x, z, i int, rng *rand.Rand) []geom.Vertex {
	if i%3 == 2 {
		// Convex lattice octagon, 4x4 footprint with cut corners.
		x0, z0 := x-2, z-2
		return []geom.Vertex{
			{X: x0 + 1, Z: z0}, {X: x0 + 3, Z: z0}, {X: x0 + 4, Z: z0 + 1}, {X: x0 + 4, Z: z0 + 3},
			{X: x0 + 3, Z: z0 + 4}, {X: x0 + 1, Z: z0 + 4}, {X: x0, Z: z0 + 3}, {X: x0, Z: z0 + 1},
		}
	}
	w := 2 + rng.Intn(3)
	d := 2 + rng.Intn(3)
	x0, z0 := x-w/2, z-d/2
	return []geom.Vertex{{X: x0, Z: z0}, {X: x0 + w, Z: z0}, {X: x0 + w, Z: z0 + d}, {X: x0, Z: z0 + d}}
}

// heightAt maps noise in [-1, 1] to an integer height in [1, maxH].
func heightAt(noise *perlin.Perlin, x, z, maxH int) int {
	n := noise.Noise2D(float64(x)*noiseScale, float64(z)*noiseScale)
	h := 1 + int((n+1)/2*float64(maxH))
	if h < 1 {
		h = 1
	}
	if h > maxH {
		h = maxH
	}
	return h
}
