// Package overlay draws the authoring feedback on top of the scene: the
// snapped vertex marker, the open polygon outline, and the 2D reticle and
// status text. It reads the session and never mutates it.
package overlay

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"polyforge/internal/author"
	"polyforge/internal/geom"
	"polyforge/internal/scene"
	"polyforge/internal/session"
)

const (
	// lineLift keeps outlines off the coplanar ground and grid.
	lineLift     = 0.02
	markerRadius = 0.16

	reticleArm  = 8
	reticleGap  = 3
	textSize    = 20
	textPadding = 12
)

var (
	outlineColor = rl.NewColor(255, 221, 92, 255)
	markerColor  = rl.NewColor(255, 240, 150, 255)
	closeColor   = rl.NewColor(130, 255, 140, 255)
	rubberColor  = rl.NewColor(255, 221, 92, 150)
	noticeColor  = rl.NewColor(235, 80, 70, 255)
)

func groundPoint(v geom.Vertex) rl.Vector3 {
	return rl.NewVector3(float32(v.X), lineLift, float32(v.Z))
}

// marker draws a flat circle on the ground plane at v.
func marker(v geom.Vertex, c rl.Color) {
	rl.DrawCircle3D(groundPoint(v), markerRadius, rl.NewVector3(1, 0, 0), 90, c)
}

// Draw3D renders the authoring geometry. Must run inside BeginMode3D.
func Draw3D(s *session.Session) {
	snapped, hasSnap := s.Snapped()

	switch st := s.State().(type) {
	case author.Idle:
		if hasSnap {
			marker(snapped, markerColor)
		}
	case author.Drawing:
		vs := st.Vertices
		for i := 1; i < len(vs); i++ {
			rl.DrawLine3D(groundPoint(vs[i-1]), groundPoint(vs[i]), outlineColor)
		}
		for _, v := range vs {
			marker(v, markerColor)
		}
		// The first vertex is the closing target once three are down.
		if len(vs) >= 3 {
			marker(vs[0], closeColor)
		}
		if hasSnap {
			marker(snapped, markerColor)
			rl.DrawLine3D(groundPoint(vs[len(vs)-1]), groundPoint(snapped), rubberColor)
		}
	case author.PendingExtrusion:
		vs := st.Vertices
		for i := range vs {
			rl.DrawLine3D(groundPoint(vs[i]), groundPoint(vs[(i+1)%len(vs)]), outlineColor)
		}
	}
}

// Draw2D renders the reticle and status text. Must run outside 3D mode.
func Draw2D(s *session.Session, scn *scene.Scene) {
	cx := int32(rl.GetScreenWidth()) / 2
	cy := int32(rl.GetScreenHeight()) / 2
	rl.DrawLine(cx-reticleArm, cy, cx-reticleGap, cy, rl.White)
	rl.DrawLine(cx+reticleGap, cy, cx+reticleArm, cy, rl.White)
	rl.DrawLine(cx, cy-reticleArm, cx, cy-reticleGap, rl.White)
	rl.DrawLine(cx, cy+reticleGap, cx, cy+reticleArm, rl.White)

	y := int32(rl.GetScreenHeight()) - textSize - textPadding
	switch st := s.State().(type) {
	case author.Drawing:
		rl.DrawText(fmt.Sprintf("drawing: %d vertices", len(st.Vertices)), textPadding, y, textSize, rl.RayWhite)
	case author.PendingExtrusion:
		rl.DrawText(fmt.Sprintf("height: %d  (E/Q or wheel, click to confirm)", st.Height), textPadding, y, textSize, rl.RayWhite)
		// Float the height over the pending polygon as well.
		c := geom.Centroid(st.Vertices)
		p := scn.WorldToScreen(geom.Vec3{X: c.X, Y: float32(st.Height) + 0.5, Z: c.Z})
		label := fmt.Sprintf("%d", st.Height)
		rl.DrawText(label, int32(p.X)-rl.MeasureText(label, textSize)/2, int32(p.Y), textSize, outlineColor)
	}

	if notice := s.Notice(); notice != "" {
		w := rl.MeasureText(notice, textSize)
		rl.DrawText(notice, cx-w/2, cy+reticleArm+textPadding, textSize, noticeColor)
	}
}
