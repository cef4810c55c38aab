package main

import (
	"fmt"
	"os"

	"polyforge/internal/author"
	"polyforge/internal/config"
	"polyforge/internal/debug"
	"polyforge/internal/engineconfig"
	"polyforge/internal/env"
	"polyforge/internal/graphics"
	"polyforge/internal/input"
	"polyforge/internal/logger"
	"polyforge/internal/mapgen"
	"polyforge/internal/overlay"
	"polyforge/internal/scene"
	"polyforge/internal/session"
)

func main() {
	_ = env.Load(".env")
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	prefs := engineconfig.Load()

	scn := scene.New(float32(cfg.Window.FovY))
	scn.SetGridVisible(prefs.GridVisible)
	sess := session.New(scn, log, cfg)

	seedTerrain(sess, log, cfg.Terrain)

	dbg := debug.New()
	dbg.ShowFPS = prefs.ShowFPS
	dbg.ShowMem = prefs.ShowMem
	dbg.ShowStatus = prefs.ShowStatus

	savePrefs := func() {
		if err := engineconfig.Save(prefs); err != nil {
			log.Logf("prefs not saved: %v", err)
		}
	}

	update := func(dt float32) {
		in := input.Sample()
		if in.ToggleFPS {
			dbg.ShowFPS = !dbg.ShowFPS
			prefs.ShowFPS = dbg.ShowFPS
			savePrefs()
		}
		if in.ToggleMem {
			dbg.ShowMem = !dbg.ShowMem
			prefs.ShowMem = dbg.ShowMem
			savePrefs()
		}
		if in.ToggleStatus {
			dbg.ShowStatus = !dbg.ShowStatus
			prefs.ShowStatus = dbg.ShowStatus
			savePrefs()
		}
		if in.ToggleGrid {
			prefs.GridVisible = !prefs.GridVisible
			scn.SetGridVisible(prefs.GridVisible)
			savePrefs()
		}
		sess.Update(in, dt)
		pos, dir := sess.Eye()
		scn.SetView(pos, dir)
	}

	draw := func() {
		scn.Draw(func() { overlay.Draw3D(sess) })
		overlay.Draw2D(sess, scn)
		dbg.Draw(statusLine(sess))
	}

	graphics.Run(graphics.Options{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		TargetFPS:  cfg.Window.TargetFPS,
		Title:      "polyforge",
	}, update, draw)
}

// seedTerrain registers the starter platforms through the same path as
// user-authored solids. Generation only emits convex polygons; a rejection
// here means a generator bug, so it is logged and skipped rather than fatal.
func seedTerrain(sess *session.Session, log *logger.Logger, t config.Terrain) {
	for _, p := range mapgen.StarterPlatforms(mapgen.Options{
		Seed:      t.Seed,
		Platforms: t.Platforms,
		MaxHeight: t.MaxHeight,
	}) {
		if err := sess.Place(p.Polygon, p.Height); err != nil {
			log.Logf("starter platform skipped: %v", err)
		}
	}
	log.Logf("session started with %d starter platforms", sess.SolidCount())
}

// statusLine is the F3 HUD summary.
func statusLine(sess *session.Session) string {
	state := "idle"
	switch st := sess.State().(type) {
	case author.Drawing:
		state = fmt.Sprintf("drawing %d", len(st.Vertices))
	case author.PendingExtrusion:
		state = fmt.Sprintf("pending h=%d", st.Height)
	}
	ground := "airborne"
	if sess.CanJump() {
		ground = "grounded"
	}
	return fmt.Sprintf("%s | %s | solids %d", state, ground, sess.SolidCount())
}
