// Package scene is the raylib side of the sandbox: the first-person camera,
// the checkered ground plane, the lattice grid, and the GPU meshes for every
// registered solid plus the single extrusion preview. Mesh specs arrive as
// plain data and are uploaded lazily from Draw, so registration can happen
// before the window and GL context exist.
package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"polyforge/internal/geom"
	"polyforge/internal/solid"
)

const (
	gridExtent     = 50
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
	// gridLift keeps the grid lines off the coplanar ground texture.
	gridLift = 0.01

	groundSize = 120
	// groundTexSize/groundCheck: one check per world unit across the plane.
	groundTexSize = 960
	groundCheck   = 8
)

var (
	solidColor   = rl.NewColor(176, 154, 122, 255)
	previewColor = rl.NewColor(120, 190, 235, 140)
	groundLight  = rl.NewColor(92, 110, 88, 255)
	groundDark   = rl.NewColor(74, 90, 72, 255)
)

// entry is one uploaded solid. The spec pointer keeps the Go-side mesh slices
// reachable while the rl.Mesh references them.
type entry struct {
	spec   *solid.Solid
	mesh   rl.Mesh
	center geom.Vec3
	loaded bool
}

// Scene owns every GPU resource. All methods must run on the render goroutine.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool

	solids []*entry

	preview       *solid.Solid
	previewEntry  entry
	previewDirty  bool
	previewLoaded bool

	groundMesh rl.Mesh
	groundMtl  rl.Material
	groundTex  rl.Texture2D
	solidMtl   rl.Material
	previewMtl rl.Material
	gpuReady   bool
}

// New returns a scene with a perspective camera. The camera pose is
// overwritten every frame by SetView; only the projection settings persist.
func New(fovY float32) *Scene {
	s := &Scene{GridVisible: true}
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = fovY
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// SetGridVisible sets whether the lattice grid is drawn.
func (s *Scene) SetGridVisible(visible bool) { s.GridVisible = visible }

// SetView points the camera from pos along dir. Called once per frame after
// the simulation step so the view never lags the body.
func (s *Scene) SetView(pos, dir geom.Vec3) {
	s.Camera.Position = rl.NewVector3(pos.X, pos.Y, pos.Z)
	t := pos.Add(dir)
	s.Camera.Target = rl.NewVector3(t.X, t.Y, t.Z)
}

// WorldToScreen projects a world point through the current camera.
func (s *Scene) WorldToScreen(p geom.Vec3) rl.Vector2 {
	return rl.GetWorldToScreen(rl.NewVector3(p.X, p.Y, p.Z), s.Camera)
}

// AddSolid registers a permanent solid. Upload happens on the next Draw.
func (s *Scene) AddSolid(sol *solid.Solid) {
	s.solids = append(s.solids, &entry{spec: sol, center: sol.BodyCenter()})
}

// SetPreview replaces the transient preview; nil clears it. The old preview's
// GPU mesh is released on the next Draw.
func (s *Scene) SetPreview(sol *solid.Solid) {
	s.preview = sol
	s.previewDirty = true
}

// ensureGPU creates the shared materials and the ground on first Draw, after
// the GL context exists.
func (s *Scene) ensureGPU() {
	if s.gpuReady {
		return
	}
	s.gpuReady = true

	lit := rl.LoadShaderFromMemory(litVS, litFS)
	litTex := rl.LoadShaderFromMemory(litVS, litTexturedFS)

	s.solidMtl = rl.LoadMaterialDefault()
	if albedo := s.solidMtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = solidColor
	}
	if rl.IsShaderValid(lit) {
		s.solidMtl.Shader = lit
	}

	s.previewMtl = rl.LoadMaterialDefault()
	if albedo := s.previewMtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = previewColor
	}
	if rl.IsShaderValid(lit) {
		s.previewMtl.Shader = lit
	}

	img := rl.GenImageChecked(groundTexSize, groundTexSize, groundCheck, groundCheck, groundLight, groundDark)
	s.groundTex = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	s.groundMesh = rl.GenMeshPlane(groundSize, groundSize, 1, 1)
	s.groundMtl = rl.LoadMaterialDefault()
	if albedo := s.groundMtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.White
	}
	if rl.IsShaderValid(litTex) {
		s.groundMtl.Shader = litTex
	}
	rl.SetMaterialTexture(&s.groundMtl, rl.MapAlbedo, s.groundTex)
}

// uploadMesh moves a built mesh spec onto the GPU. The spec's slices must stay
// reachable for the lifetime of the returned mesh.
func uploadMesh(spec *solid.MeshSpec) rl.Mesh {
	var m rl.Mesh
	m.VertexCount = int32(spec.VertexCount())
	m.TriangleCount = int32(spec.TriangleCount())
	m.Vertices = &spec.Positions[0]
	m.Normals = &spec.Normals[0]
	m.Texcoords = &spec.Texcoords[0]
	m.Indices = &spec.Indices[0]
	rl.UploadMesh(&m, false)
	return m
}

// ensureMeshes uploads newly registered solids and reconciles the preview.
func (s *Scene) ensureMeshes() {
	for _, e := range s.solids {
		if !e.loaded {
			e.mesh = uploadMesh(&e.spec.Mesh)
			e.loaded = true
		}
	}
	if s.previewDirty {
		s.previewDirty = false
		if s.previewLoaded {
			rl.UnloadMesh(&s.previewEntry.mesh)
			s.previewLoaded = false
		}
		if s.preview != nil {
			s.previewEntry = entry{
				spec:   s.preview,
				mesh:   uploadMesh(&s.preview.Mesh),
				center: s.preview.BodyCenter(),
			}
			s.previewLoaded = true
		}
	}
}

// Draw renders one frame of the 3D world: ground, grid, solids, preview, then
// the caller's extra pass (authoring overlay) inside the same 3D mode.
func (s *Scene) Draw(extra func()) {
	s.ensureGPU()
	s.ensureMeshes()

	pos := s.Camera.Position
	s.setLitUniforms(s.solidMtl.Shader, pos)
	s.setLitUniforms(s.groundMtl.Shader, pos)

	rl.BeginMode3D(s.Camera)

	rl.DrawMesh(s.groundMesh, s.groundMtl, rl.MatrixIdentity())
	if s.GridVisible {
		drawLatticeGrid()
	}
	for _, e := range s.solids {
		rl.DrawMesh(e.mesh, s.solidMtl, rl.MatrixTranslate(e.center.X, e.center.Y, e.center.Z))
	}
	if s.previewLoaded {
		c := s.previewEntry.center
		rl.DrawMesh(s.previewEntry.mesh, s.previewMtl, rl.MatrixTranslate(c.X, c.Y, c.Z))
	}
	if extra != nil {
		extra()
	}

	rl.EndMode3D()
}

// drawLatticeGrid draws the unit lattice on the ground plane with major lines
// every gridMajorStep units and colored axis lines through the origin.
func drawLatticeGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	start.Y, end.Y = gridLift, gridLift
	for x := -gridExtent; x <= gridExtent; x++ {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Z = float32(x), float32(-gridExtent)
		end.X, end.Z = float32(x), float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z++ {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Z = float32(-gridExtent), float32(z)
		end.X, end.Z = float32(gridExtent), float32(z)
		rl.DrawLine3D(start, end, c)
	}

	start.X, start.Z = float32(-gridExtent), 0
	end.X, end.Z = float32(gridExtent), 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Z = 0, float32(-gridExtent)
	end.X, end.Z = 0, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}
