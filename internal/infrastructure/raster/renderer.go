// Package raster draws meshes with ebiten by projecting their triangles on the CPU.
//
// Triangles are transformed, culled and shaded when Draw is called and
// queued for the frame. Flush sorts the queue back to front and submits
// it with DrawTriangles, so depth is resolved per triangle, not per pixel.
package raster

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/brickbreak/internal/domain/render"
)

const (
	ambient = 0.25
	// maxBatchFaces keeps vertex indices within uint16
	maxBatchFaces = 65535 / 3
)

// Texture is an image uploaded to ebiten
type Texture struct {
	img  *ebiten.Image
	w, h int
}

// Size returns the texture size in pixels
func (t *Texture) Size() (int, int) {
	return t.w, t.h
}

// Mesh is geometry with surface state, created by Renderer.CreateMesh
type Mesh struct {
	tris     []Triangle
	color    color.RGBA
	texture  *Texture
	options  render.SurfaceOption
	released bool
	owner    *Renderer
}

// SetColor sets the diffuse color
func (m *Mesh) SetColor(c color.RGBA) {
	m.color = c
}

// SetTexture sets the texture used when OptionTexture is enabled
func (m *Mesh) SetTexture(tex render.Texture) {
	t, ok := tex.(*Texture)
	if !ok {
		m.texture = nil
		return
	}
	m.texture = t
}

// Enable turns a surface option on
func (m *Mesh) Enable(opt render.SurfaceOption) {
	m.options |= opt
}

// Disable turns a surface option off
func (m *Mesh) Disable(opt render.SurfaceOption) {
	m.options &^= opt
}

// Has returns true if the option is enabled
func (m *Mesh) Has(opt render.SurfaceOption) bool {
	return m.options&opt == opt
}

// Release drops the geometry. Only the first call has an effect.
func (m *Mesh) Release() {
	if m.released {
		return
	}
	m.released = true
	m.tris = nil
	m.texture = nil
	m.owner.live--
}

// face is one projected triangle waiting for Flush
type face struct {
	screen [3]mgl32.Vec2
	uv     [3]mgl32.Vec2
	shade  [4]float32 // RGBA multiplier, 0..1
	tex    *Texture
	depth  float32 // mean view-space z, more negative is farther
}

// Renderer implements render.Renderer on top of ebiten
type Renderer struct {
	fsys   fs.FS
	width  float32
	height float32
	light  mgl32.Vec3

	faces []face
	live  int
	white *ebiten.Image
}

// NewRenderer creates a renderer for a screen of the given size.
// Textures are read from fsys. light is the direction toward the light in view space.
func NewRenderer(fsys fs.FS, width, height int, light mgl32.Vec3) *Renderer {
	if light.Len() > 0 {
		light = light.Normalize()
	}
	return &Renderer{
		fsys:   fsys,
		width:  float32(width),
		height: float32(height),
		light:  light,
	}
}

// CreateMesh generates the geometry for spec
func (r *Renderer) CreateMesh(spec render.MeshSpec) render.Mesh {
	var tris []Triangle
	switch spec.Kind {
	case render.MeshQuad:
		tris = Quad()
	case render.MeshCube:
		tris = Cube()
	case render.MeshSphere:
		tris = Sphere(spec.Slices, spec.Stacks)
	}
	r.live++
	return &Mesh{
		tris:  tris,
		color: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		owner: r,
	}
}

// LiveMeshes returns the number of meshes not yet released
func (r *Renderer) LiveMeshes() int {
	return r.live
}

// LoadTexture decodes a PNG and uploads it
func (r *Renderer) LoadTexture(path string) (render.Texture, error) {
	img, err := decodeImage(r.fsys, path)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	return &Texture{
		img: ebiten.NewImageFromImage(img),
		w:   b.Dx(),
		h:   b.Dy(),
	}, nil
}

func decodeImage(fsys fs.FS, path string) (image.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}
	return img, nil
}

// Draw transforms, culls and shades the mesh triangles and queues them
func (r *Renderer) Draw(mesh render.Mesh, modelView, projection mgl32.Mat4) {
	m, ok := mesh.(*Mesh)
	if !ok || m.released {
		return
	}

	normalMat := modelView.Mat3()
	var tex *Texture
	if m.Has(render.OptionTexture) {
		tex = m.texture
	}

	for _, tri := range m.tris {
		var f face
		visible := true
		var meanNormal mgl32.Vec3
		for i, v := range tri {
			eye := modelView.Mul4x1(v.Pos.Vec4(1))
			clip := projection.Mul4x1(eye)
			if clip.W() <= 0 {
				visible = false
				break
			}
			f.screen[i] = r.toScreen(clip)
			f.depth += eye.Z() / 3
			f.uv[i] = v.UV
			meanNormal = meanNormal.Add(normalMat.Mul3x1(v.Normal))
		}
		if !visible {
			continue
		}
		if m.Has(render.OptionCullBackfaces) && !frontFacing(f.screen) {
			continue
		}

		f.shade = r.shade(m, meanNormal)
		f.tex = tex
		r.faces = append(r.faces, f)
	}
}

// toScreen maps clip coordinates to pixels, y down
func (r *Renderer) toScreen(clip mgl32.Vec4) mgl32.Vec2 {
	ndc := clip.Vec3().Mul(1 / clip.W())
	return mgl32.Vec2{
		(ndc.X() + 1) / 2 * r.width,
		(1 - ndc.Y()) / 2 * r.height,
	}
}

// frontFacing tests the winding in screen space, where y points down
func frontFacing(p [3]mgl32.Vec2) bool {
	ab := p[1].Sub(p[0])
	ac := p[2].Sub(p[0])
	return ab.X()*ac.Y()-ab.Y()*ac.X() < 0
}

// shade computes the vertex color multiplier for one triangle
func (r *Renderer) shade(m *Mesh, normal mgl32.Vec3) [4]float32 {
	rgba := [4]float32{1, 1, 1, 1}
	if m.Has(render.OptionColor) {
		rgba = [4]float32{
			float32(m.color.R) / 255,
			float32(m.color.G) / 255,
			float32(m.color.B) / 255,
			float32(m.color.A) / 255,
		}
	}
	if m.Has(render.OptionLighting) {
		intensity := float32(ambient)
		if normal.Len() > 0 {
			intensity += (1 - ambient) * max(0, normal.Normalize().Dot(r.light))
		}
		for i := 0; i < 3; i++ {
			rgba[i] *= intensity
		}
	}
	return rgba
}

// Pending returns the number of triangles queued for the current frame
func (r *Renderer) Pending() int {
	return len(r.faces)
}

// Flush draws every queued triangle back to front and empties the queue
func (r *Renderer) Flush(screen *ebiten.Image) {
	if len(r.faces) == 0 {
		return
	}
	if r.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	sort.SliceStable(r.faces, func(i, j int) bool {
		return r.faces[i].depth < r.faces[j].depth
	})

	// Consecutive faces sharing a source image go out in one batch
	start := 0
	for i := 1; i <= len(r.faces); i++ {
		if i < len(r.faces) && r.faces[i].tex == r.faces[start].tex && i-start < maxBatchFaces {
			continue
		}
		r.drawBatch(screen, r.faces[start:i])
		start = i
	}
	r.faces = r.faces[:0]
}

func (r *Renderer) drawBatch(screen *ebiten.Image, faces []face) {
	src := r.white
	var tw, th float32
	if tex := faces[0].tex; tex != nil {
		src = tex.img
		tw, th = float32(tex.w), float32(tex.h)
	}

	vertices := make([]ebiten.Vertex, 0, len(faces)*3)
	indices := make([]uint16, 0, len(faces)*3)
	for _, f := range faces {
		for i := 0; i < 3; i++ {
			sx, sy := float32(1.5), float32(1.5)
			if tw > 0 {
				sx, sy = f.uv[i].X()*tw, f.uv[i].Y()*th
			}
			indices = append(indices, uint16(len(vertices)))
			vertices = append(vertices, ebiten.Vertex{
				DstX:   f.screen[i].X(),
				DstY:   f.screen[i].Y(),
				SrcX:   sx,
				SrcY:   sy,
				ColorR: f.shade[0],
				ColorG: f.shade[1],
				ColorB: f.shade[2],
				ColorA: f.shade[3],
			})
		}
	}

	op := &ebiten.DrawTrianglesOptions{}
	if src != r.white {
		op.Address = ebiten.AddressRepeat
	}
	screen.DrawTriangles(vertices, indices, src, op)
}
