// Package graphics owns the window and the main loop. Each frame it calls
// update with the frame time, then clears the screen and calls draw. Keeping
// the loop here keeps raylib's lifecycle out of the simulation code.
package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Options is the window setup. Fullscreen ignores Width/Height and uses the
// primary monitor's resolution.
type Options struct {
	Width      int
	Height     int
	Fullscreen bool
	TargetFPS  int
	Title      string
}

// Run opens the window, captures the cursor for mouselook, and drives the
// frame loop until the window is closed. ESC stays free for future use; the
// window button quits.
func Run(opts Options, update func(dt float32), draw func()) {
	if opts.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode)
		rl.InitWindow(int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0)), opts.Title)
	} else {
		rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	}
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(opts.TargetFPS))
	rl.DisableCursor()

	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(96, 128, 158, 255))
		draw()
		rl.EndDrawing()
	}
}
