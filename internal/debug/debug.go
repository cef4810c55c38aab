// Package debug draws the optional HUD counters: FPS, heap allocation, and a
// one-line session status. All overlays are off until toggled.
package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: refresh FPS/Mem text every N frames to limit allocations.
	updateInterval = 30
)

// Debug holds the HUD toggles and the cached counter text.
type Debug struct {
	ShowFPS    bool
	ShowMem    bool
	ShowStatus bool

	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// Draw renders the enabled overlays top-right, plus the status line top-left.
// Call after the 3D scene in the draw loop.
func (d *Debug) Draw(status string) {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMem && d.lastMemText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		if d.lastFpsText != "" {
			w := rl.MeasureText(d.lastFpsText, fontSize)
			rl.DrawText(d.lastFpsText, screenW-w-padding, y, fontSize, rl.Green)
		}
		y += lineHeight
	}

	if d.ShowMem {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		if d.lastMemText != "" {
			w := rl.MeasureText(d.lastMemText, fontSize)
			rl.DrawText(d.lastMemText, screenW-w-padding, y, fontSize, rl.Green)
		}
	}

	if d.ShowStatus && status != "" {
		rl.DrawText(status, padding, padding, fontSize, rl.Green)
	}
}
