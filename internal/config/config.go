// Package config loads gameplay tuning from a YAML file. A missing file means
// defaults; a present file overlays its non-zero fields onto the defaults.
package config

import (
	"fmt"
	"os"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"polyforge/internal/player"
	"polyforge/internal/snap"
)

// DefaultPath is used unless POLYFORGE_CONFIG overrides it.
const DefaultPath = "config/settings.yaml"

// EnvPath is the environment variable that overrides the config path.
const EnvPath = "POLYFORGE_CONFIG"

// Window controls the raylib window.
type Window struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	TargetFPS  int  `yaml:"target_fps"`
	FovY       int  `yaml:"fov_y"` // vertical field of view, degrees
}

// Physics controls the simulation globals.
type Physics struct {
	Gravity float32 `yaml:"gravity"` // positive, applied downward
}

// Terrain controls the starter platforms seeded at launch.
type Terrain struct {
	Seed      int64 `yaml:"seed"`
	Platforms int   `yaml:"platforms"`
	MaxHeight int   `yaml:"max_height"`
}

// Config is the root gameplay configuration.
type Config struct {
	Window  Window        `yaml:"window"`
	Player  player.Config `yaml:"player"`
	Snap    snap.Config   `yaml:"snap"`
	Physics Physics       `yaml:"physics"`
	Terrain Terrain       `yaml:"terrain"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Window:  Window{Width: 1600, Height: 900, TargetFPS: 60, FovY: 60},
		Player:  player.DefaultConfig(),
		Snap:    snap.DefaultConfig(),
		Physics: Physics{Gravity: 24},
		Terrain: Terrain{Seed: 7, Platforms: 6, MaxHeight: 3},
	}
}

// Load reads the config file and overlays it onto Default. A missing file is
// not an error. A malformed file is: silent half-applied tuning is worse than
// a startup failure.
func Load() (Config, error) {
	path := os.Getenv(EnvPath)
	if path == "" {
		path = DefaultPath
	}
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := copier.CopyWithOption(&cfg, &file, copier.Option{IgnoreEmpty: true, DeepCopy: true}); err != nil {
		return cfg, fmt.Errorf("config: merge %s: %w", path, err)
	}
	return cfg, nil
}
