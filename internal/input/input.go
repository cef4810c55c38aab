// Package input samples raylib device state into one plain struct per frame
// so everything above it stays engine-free.
package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// State is one frame of input. Movement fields are key-down levels; the rest
// are edge-triggered (pressed this frame).
type State struct {
	Forward, Back, Left, Right bool
	Jump                       bool

	Confirm     bool // primary click: place vertex / close / confirm extrusion
	Cancel      bool // secondary click: abandon a pending extrusion
	RaiseHeight bool
	LowerHeight bool

	LookX, LookY float32

	ToggleFPS    bool
	ToggleMem    bool
	ToggleStatus bool
	ToggleGrid   bool
}

// Sample reads the devices once. Call exactly once per frame: the
// edge-triggered fields consume key presses.
func Sample() State {
	delta := rl.GetMouseDelta()
	wheel := rl.GetMouseWheelMove()
	return State{
		Forward: rl.IsKeyDown(rl.KeyW),
		Back:    rl.IsKeyDown(rl.KeyS),
		Left:    rl.IsKeyDown(rl.KeyA),
		Right:   rl.IsKeyDown(rl.KeyD),
		Jump:    rl.IsKeyPressed(rl.KeySpace),

		Confirm:     rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		Cancel:      rl.IsMouseButtonPressed(rl.MouseButtonRight),
		RaiseHeight: rl.IsKeyPressed(rl.KeyE) || wheel > 0,
		LowerHeight: rl.IsKeyPressed(rl.KeyQ) || wheel < 0,

		LookX: delta.X,
		LookY: delta.Y,

		ToggleFPS:    rl.IsKeyPressed(rl.KeyF1),
		ToggleMem:    rl.IsKeyPressed(rl.KeyF2),
		ToggleStatus: rl.IsKeyPressed(rl.KeyF3),
		ToggleGrid:   rl.IsKeyPressed(rl.KeyG),
	}
}
