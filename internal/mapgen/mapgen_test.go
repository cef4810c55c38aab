package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polyforge/internal/geom"
)

func TestStarterPlatformsAreValidSolids(t *testing.T) {
	ps := StarterPlatforms(DefaultOptions())
	require.Len(t, ps, DefaultOptions().Platforms)
	for _, p := range ps {
		assert.True(t, geom.IsConvex(p.Polygon), "platform %v must pass the builder's gate", p.Polygon)
		assert.Positive(t, geom.Area(p.Polygon))
		assert.GreaterOrEqual(t, p.Height, 1)
		assert.LessOrEqual(t, p.Height, DefaultOptions().MaxHeight)
	}
}

func TestStarterPlatformsDeterministic(t *testing.T) {
	a := StarterPlatforms(DefaultOptions())
	b := StarterPlatforms(DefaultOptions())
	assert.Equal(t, a, b)

	other := DefaultOptions()
	other.Seed = 99
	c := StarterPlatforms(other)
	assert.NotEqual(t, a, c, "seed changes the layout")
}

func TestStarterPlatformsKeepSpawnClear(t *testing.T) {
	for _, p := range StarterPlatforms(DefaultOptions()) {
		for _, v := range p.Polygon {
			inX := v.X > -spawnClearance && v.X < spawnClearance
			inZ := v.Z > -spawnClearance && v.Z < spawnClearance
			assert.False(t, inX && inZ, "vertex %v crowds the spawn", v)
		}
	}
}

func TestStarterPlatformsZeroCount(t *testing.T) {
	assert.Empty(t, StarterPlatforms(Options{}))
}
