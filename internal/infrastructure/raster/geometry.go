package raster

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is a mesh vertex in model space
type Vertex struct {
	Pos    mgl32.Vec3
	Normal mgl32.Vec3
	UV     mgl32.Vec2
}

// Triangle is wound counter-clockwise when seen from its front side
type Triangle [3]Vertex

// Quad returns a 2x2 square in the XY plane facing +Z
func Quad() []Triangle {
	return face(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{})
}

// Cube returns a 2x2x2 cube centered on the origin: 6 faces, 12 triangles
func Cube() []Triangle {
	x := mgl32.Vec3{1, 0, 0}
	y := mgl32.Vec3{0, 1, 0}
	z := mgl32.Vec3{0, 0, 1}

	// Each (u, v) pair satisfies u x v = n
	faces := []struct{ n, u, v mgl32.Vec3 }{
		{x, y, z},
		{x.Mul(-1), z, y},
		{y, z, x},
		{y.Mul(-1), x, z},
		{z, x, y},
		{z.Mul(-1), y, x},
	}

	tris := make([]Triangle, 0, 12)
	for _, f := range faces {
		tris = append(tris, face(f.n, f.u, f.v, f.n)...)
	}
	return tris
}

// face builds the two triangles of a unit square with normal n, spanned by u and v, centered at c
func face(n, u, v, c mgl32.Vec3) []Triangle {
	corner := func(su, sv float32, uv mgl32.Vec2) Vertex {
		return Vertex{
			Pos:    c.Add(u.Mul(su)).Add(v.Mul(sv)),
			Normal: n,
			UV:     uv,
		}
	}
	a := corner(-1, -1, mgl32.Vec2{0, 1})
	b := corner(1, -1, mgl32.Vec2{1, 1})
	cc := corner(1, 1, mgl32.Vec2{1, 0})
	d := corner(-1, 1, mgl32.Vec2{0, 0})
	return []Triangle{{a, b, cc}, {a, cc, d}}
}

// Sphere returns a unit sphere with slices*stacks*2 triangles.
// The triangles touching the poles are degenerate.
func Sphere(slices, stacks int) []Triangle {
	point := func(i, j int) Vertex {
		phi := math.Pi * float64(i) / float64(stacks)
		theta := 2 * math.Pi * float64(j) / float64(slices)
		p := mgl32.Vec3{
			float32(math.Sin(phi) * math.Cos(theta)),
			float32(math.Cos(phi)),
			float32(math.Sin(phi) * math.Sin(theta)),
		}
		return Vertex{
			Pos:    p,
			Normal: p,
			UV:     mgl32.Vec2{float32(j) / float32(slices), float32(i) / float32(stacks)},
		}
	}

	tris := make([]Triangle, 0, slices*stacks*2)
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := point(i, j)
			b := point(i+1, j)
			c := point(i+1, j+1)
			d := point(i, j+1)
			tris = append(tris, Triangle{a, c, b}, Triangle{a, d, c})
		}
	}
	return tris
}
