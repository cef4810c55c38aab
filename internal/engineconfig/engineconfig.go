package engineconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// EnginePrefsPath is the prefs file, relative to the process working
// directory.
const EnginePrefsPath = "config/engine.json"

// EnginePrefs holds engine-only preferences (HUD overlays, grid visibility).
// Persisted across runs; gameplay tuning lives in the YAML config instead.
type EnginePrefs struct {
	ShowFPS     bool `json:"show_fps"`
	ShowMem     bool `json:"show_mem"`
	ShowStatus  bool `json:"show_status"`
	GridVisible bool `json:"grid_visible"`
}

// Default returns default preferences: overlays off, grid on.
func Default() EnginePrefs {
	return EnginePrefs{GridVisible: true}
}

// Load reads preferences from config/engine.json. A missing or invalid file
// yields Default() without creating anything.
func Load() EnginePrefs {
	data, err := os.ReadFile(EnginePrefsPath)
	if err != nil {
		return Default()
	}
	var p EnginePrefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default()
	}
	return p
}

// Save writes preferences, creating the config directory if needed.
func Save(p EnginePrefs) error {
	if err := os.MkdirAll(filepath.Dir(EnginePrefsPath), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(EnginePrefsPath, data, 0644)
}
