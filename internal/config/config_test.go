package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv(EnvPath, filepath.Join(t.TempDir(), "absent.yaml"))
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysNonZeroFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	body := `
player:
  move_speed: 9
snap:
  radius: 12
window:
  fullscreen: true
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	t.Setenv(EnvPath, path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, float32(9), cfg.Player.MoveSpeed)
	assert.Equal(t, float32(12), cfg.Snap.Radius)
	assert.True(t, cfg.Window.Fullscreen)
	// Untouched fields keep their defaults.
	assert.Equal(t, Default().Player.JumpImpulse, cfg.Player.JumpImpulse)
	assert.Equal(t, Default().Snap.Tolerance, cfg.Snap.Tolerance)
	assert.Equal(t, Default().Window.Width, cfg.Window.Width)
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: ["), 0644))
	t.Setenv(EnvPath, path)

	_, err := Load()
	assert.Error(t, err)
}
