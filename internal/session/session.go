// Package session is the per-run context object: it owns the authoring
// machine, the physics world, the player controller, and the snap state, and
// advances them in a strict per-frame order. It talks to the renderer only
// through the SceneRegistry interface, so the whole session runs headless in
// tests.
package session

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"polyforge/internal/author"
	"polyforge/internal/config"
	"polyforge/internal/geom"
	"polyforge/internal/input"
	"polyforge/internal/logger"
	"polyforge/internal/physics"
	"polyforge/internal/player"
	"polyforge/internal/snap"
	"polyforge/internal/solid"
)

// SceneRegistry is the render-side surface the session needs: permanent
// solids and the single transient preview. SetPreview(nil) clears it.
type SceneRegistry interface {
	AddSolid(s *solid.Solid)
	SetPreview(s *solid.Solid)
}

// playerHalf is the upright box the player occupies.
var playerHalf = geom.Vec3{X: 0.35, Y: 0.9, Z: 0.35}

// Session wires one player, one world, and one authoring machine together.
type Session struct {
	World   *physics.World
	Player  *player.Controller
	machine *author.Machine
	scene   SceneRegistry
	log     *logger.Logger

	snapCfg  snap.Config
	fovScale float32

	snapped geom.Vertex
	hasSnap bool
	notice  string
	solids  int
}

// New builds a session from config. The player spawns standing on the ground
// plane at the origin.
func New(scene SceneRegistry, log *logger.Logger, cfg config.Config) *Session {
	world := physics.NewWorld(cfg.Physics.Gravity)
	body := physics.NewBody(geom.Vec3{Y: playerHalf.Y}, playerHalf, 1)
	world.AddBody(body)

	s := &Session{
		World:    world,
		Player:   player.New(world, body, cfg.Player),
		scene:    scene,
		log:      log,
		snapCfg:  cfg.Snap,
		fovScale: math32.Tan(float32(cfg.Window.FovY) / 2 * math32.Pi / 180),
	}
	s.machine = author.New(s)
	return s
}

// Update runs one frame in a fixed order: aim, snap, at most one authoring
// event, then movement and the physics step. The camera pose read afterwards
// always reflects the just-completed step.
func (s *Session) Update(in input.State, dt float32) {
	s.Player.Look(in.LookX, in.LookY)

	s.snapped, s.hasSnap = snap.Resolve(snap.View{
		Position: s.Player.EyePosition(),
		Forward:  s.Player.ViewDir(),
		FovScale: s.fovScale,
	}, s.snapCfg)

	switch {
	case in.Confirm:
		s.machine.Confirm(s.snapped, s.hasSnap)
	case in.Cancel:
		s.machine.Cancel()
	case in.RaiseHeight:
		s.machine.AdjustHeight(+1)
	case in.LowerHeight:
		s.machine.AdjustHeight(-1)
	}

	s.Player.Update(player.Move{
		Forward: in.Forward,
		Back:    in.Back,
		Left:    in.Left,
		Right:   in.Right,
		Jump:    in.Jump,
	}, dt)
}

// Place registers a solid outside the authoring flow (starter terrain). It
// runs through the exact same build-and-register path as a confirmed
// extrusion.
func (s *Session) Place(polygon []geom.Vertex, height int) error {
	return s.Commit(polygon, height)
}

// State returns the current authoring state for the overlay.
func (s *Session) State() author.State { return s.machine.State() }

// Snapped returns this frame's snapped vertex, if any.
func (s *Session) Snapped() (geom.Vertex, bool) { return s.snapped, s.hasSnap }

// CanJump reports whether a jump command would take effect right now.
func (s *Session) CanJump() bool { return s.Player.Grounded }

// Notice returns the current non-fatal diagnostic (e.g. a convexity
// rejection), or "".
func (s *Session) Notice() string { return s.notice }

// SolidCount returns how many solids have been registered.
func (s *Session) SolidCount() int { return s.solids }

// Eye returns the camera pose derived from the player body.
func (s *Session) Eye() (pos, dir geom.Vec3) {
	return s.Player.EyePosition(), s.Player.ViewDir()
}

// RebuildPreview implements author.Sink: the old preview is discarded and a
// new one built at the pending height.
func (s *Session) RebuildPreview(vs []geom.Vertex, height int) {
	p, err := solid.BuildPreview(vs, height)
	if err != nil {
		s.scene.SetPreview(nil)
		return
	}
	s.scene.SetPreview(p)
}

// DiscardPreview implements author.Sink. Dropping the preview also retires
// any rejection notice about it.
func (s *Session) DiscardPreview() {
	s.scene.SetPreview(nil)
	s.notice = ""
}

// Commit implements author.Sink: build the solid and register it with the
// scene and the physics world at this single call site. A convexity rejection
// mutates nothing and is surfaced as a diagnostic.
func (s *Session) Commit(vs []geom.Vertex, height int) error {
	sol, err := solid.Build(vs, height)
	if err != nil {
		if errors.Is(err, solid.ErrNotConvex) {
			s.notice = "polygon must be convex"
		} else {
			s.notice = err.Error()
		}
		s.log.Logf("rejected %d-gon height %d: %v", len(vs), height, err)
		return err
	}

	s.scene.AddSolid(sol)
	s.World.AddPrism(prismFor(sol))
	s.solids++
	s.notice = ""
	s.log.Logf("registered solid %s: %d-gon area %.1f height %d at %s",
		sol.ID, len(sol.Polygon), geom.Area(sol.Polygon), sol.Height, fmtVec(sol.BodyCenter()))
	return nil
}

// prismFor derives the static collision volume from a built solid: the
// centered cross-section swept over the solid's height, placed at the body
// center.
func prismFor(sol *solid.Solid) *physics.Prism {
	verts := make([]geom.Vec2, len(sol.Polygon))
	for i, v := range sol.Polygon {
		verts[i] = v.Vec2().Sub(sol.Centroid)
	}
	return physics.NewPrism(verts, sol.BodyCenter(), float32(sol.Height)/2)
}

func fmtVec(v geom.Vec3) string {
	return fmt.Sprintf("(%.1f, %.1f, %.1f)", v.X, v.Y, v.Z)
}
