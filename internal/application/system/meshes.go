package system

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/younwookim/brickbreak/internal/domain/entity"
	"github.com/younwookim/brickbreak/internal/domain/render"
	"github.com/younwookim/brickbreak/internal/infrastructure/config"
)

// MeshSet owns the four game meshes from creation to release
type MeshSet struct {
	meshes   [len(render.Roles)]render.Mesh
	released bool
}

// NewMeshSet creates one mesh per role from the render config.
// A texture that fails to load is logged and the mesh keeps its flat color.
func NewMeshSet(r render.Renderer, cfg *config.RenderConfig) (*MeshSet, error) {
	set := &MeshSet{}
	for _, role := range render.Roles {
		name := strings.ToLower(role.String())
		mc, ok := cfg.Meshes[name]
		if !ok {
			set.Release()
			return nil, fmt.Errorf("mesh %s not configured", name)
		}

		spec, err := meshSpec(mc)
		if err != nil {
			set.Release()
			return nil, fmt.Errorf("mesh %s: %w", name, err)
		}

		mesh := r.CreateMesh(spec)
		mesh.SetColor(color.RGBA{R: mc.Color[0], G: mc.Color[1], B: mc.Color[2], A: mc.Color[3]})
		if mc.Texture != "" {
			tex, err := r.LoadTexture(mc.Texture)
			if err != nil {
				log.Printf("mesh %s: texture unavailable, using color only: %v", name, err)
			} else {
				mesh.SetTexture(tex)
			}
		}
		mesh.Enable(render.OptionCullBackfaces)
		set.meshes[role] = mesh
	}
	return set, nil
}

func meshSpec(mc config.MeshConfig) (render.MeshSpec, error) {
	switch mc.Kind {
	case "quad":
		return render.MeshSpec{Kind: render.MeshQuad}, nil
	case "cube":
		return render.MeshSpec{Kind: render.MeshCube}, nil
	case "sphere":
		if mc.Slices < 3 || mc.Stacks < 2 {
			return render.MeshSpec{}, fmt.Errorf("sphere needs at least 3 slices and 2 stacks, got %dx%d", mc.Slices, mc.Stacks)
		}
		return render.MeshSpec{Kind: render.MeshSphere, Slices: mc.Slices, Stacks: mc.Stacks}, nil
	default:
		return render.MeshSpec{}, fmt.Errorf("unknown mesh kind %q", mc.Kind)
	}
}

// Mesh returns the mesh used for a role
func (s *MeshSet) Mesh(role render.Role) render.Mesh {
	return s.meshes[role]
}

// ApplyOptions pushes the player's render options to every mesh
func (s *MeshSet) ApplyOptions(opts entity.RenderOptions) {
	if s.released {
		return
	}
	for _, mesh := range s.meshes {
		setOption(mesh, render.OptionTexture, opts.Texture)
		setOption(mesh, render.OptionColor, opts.Color)
		setOption(mesh, render.OptionLighting, opts.Lighting)
	}
}

func setOption(mesh render.Mesh, opt render.SurfaceOption, on bool) {
	if on {
		mesh.Enable(opt)
	} else {
		mesh.Disable(opt)
	}
}

// Draw hands every command to the renderer with its role's mesh
func (s *MeshSet) Draw(r render.Renderer, cmds []render.DrawCommand, projection mgl32.Mat4) {
	if s.released {
		return
	}
	for _, cmd := range cmds {
		r.Draw(s.meshes[cmd.Role], cmd.ModelView, projection)
	}
}

// Release frees every mesh. Only the first call has an effect.
func (s *MeshSet) Release() {
	if s.released {
		return
	}
	s.released = true
	for i, mesh := range s.meshes {
		if mesh != nil {
			mesh.Release()
			s.meshes[i] = nil
		}
	}
}

// Released returns true once Release has been called
func (s *MeshSet) Released() bool {
	return s.released
}
