// Package render defines the contract between the game and the rasterizer.
//
// The game only creates meshes, sets their surface attributes and hands
// (mesh, transform) pairs to a Renderer. How triangles are filled, depth
// sorted or lit is up to the implementation.
package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// MeshKind selects the primitive generated by CreateMesh
type MeshKind int

const (
	MeshQuad MeshKind = iota
	MeshCube
	MeshSphere
)

// String returns the string representation of the mesh kind
func (k MeshKind) String() string {
	switch k {
	case MeshQuad:
		return "Quad"
	case MeshCube:
		return "Cube"
	case MeshSphere:
		return "Sphere"
	default:
		return "Unknown"
	}
}

// MeshSpec describes a mesh to create.
// Slices and Stacks are only used by MeshSphere.
type MeshSpec struct {
	Kind   MeshKind
	Slices int
	Stacks int
}

// SurfaceOption is a per-mesh rendering switch
type SurfaceOption uint8

const (
	OptionTexture SurfaceOption = 1 << iota
	OptionColor
	OptionLighting
	OptionCullBackfaces
)

// Texture is an opaque handle to a loaded image
type Texture interface {
	Size() (w, h int)
}

// Mesh is an opaque handle to renderable geometry and its surface state
type Mesh interface {
	SetColor(c color.RGBA)
	SetTexture(tex Texture)
	Enable(opt SurfaceOption)
	Disable(opt SurfaceOption)
	// Release frees the mesh. Calling it more than once is a no-op.
	Release()
}

// Renderer creates meshes and rasterizes them
type Renderer interface {
	CreateMesh(spec MeshSpec) Mesh
	LoadTexture(path string) (Texture, error)
	// Draw issues one mesh with its model-view and projection transforms
	Draw(mesh Mesh, modelView, projection mgl32.Mat4)
}
