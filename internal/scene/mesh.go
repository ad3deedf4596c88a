package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Interleaved vertex layout shared by every mesh: position, color, texture coords.
const (
	PositionSize = 3
	ColorSize    = 4
	UVSize       = 2
	Stride       = PositionSize + ColorSize + UVSize

	ColorOffset = PositionSize
	UVOffset    = PositionSize + ColorSize
)

// MetersToUnits scales the hand-authored geometry below, which is written in meters.
const MetersToUnits = 1.0

var ErrMalformedMesh = errors.New("scene: malformed mesh")

type Primitive int

const (
	Triangles Primitive = iota
	Lines
)

// Mesh is CPU-side geometry in the interleaved layout, drawn with indices.
type Mesh struct {
	Name      string
	Primitive Primitive
	Vertices  []float32
	Indices   []uint32
}

func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / Stride
}

// Validate checks the vertex layout and that every index refers to a vertex.
func (m *Mesh) Validate() error {
	if len(m.Vertices) == 0 || len(m.Vertices)%Stride != 0 {
		return fmt.Errorf("%w: %s has %d floats, not a multiple of %d", ErrMalformedMesh, m.Name, len(m.Vertices), Stride)
	}
	per := 3
	if m.Primitive == Lines {
		per = 2
	}
	if len(m.Indices) == 0 || len(m.Indices)%per != 0 {
		return fmt.Errorf("%w: %s has %d indices", ErrMalformedMesh, m.Name, len(m.Indices))
	}
	n := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("%w: %s index %d refers to vertex %d of %d", ErrMalformedMesh, m.Name, i, idx, n)
		}
	}
	return nil
}

type vertex struct {
	pos   mgl32.Vec3
	color mgl32.Vec4
	uv    mgl32.Vec2
}

func pack(vs []vertex) []float32 {
	out := make([]float32, 0, len(vs)*Stride)
	for _, v := range vs {
		p := v.pos.Mul(MetersToUnits)
		out = append(out, p[:]...)
		out = append(out, v.color[:]...)
		out = append(out, v.uv[:]...)
	}
	return out
}

var (
	white   = mgl32.Vec4{1, 1, 1, 1}
	red     = mgl32.Vec4{1, 0, 0, 1}
	yellow  = mgl32.Vec4{1, 1, 0, 1}
	magenta = mgl32.Vec4{1, 0, 1, 1}
	blue    = mgl32.Vec4{0, 0, 1, 1}
	cyan    = mgl32.Vec4{0, 1, 1, 1}
	grey    = mgl32.Vec4{0.4, 0.4, 0.45, 1}
)

// Grid is an n by n cell line grid in the XZ plane, centered on the origin.
func Grid(n int, spacing float32) *Mesh {
	half := float32(n) * spacing / 2
	m := &Mesh{Name: "grid", Primitive: Lines}

	var vs []vertex
	for i := 0; i <= n; i++ {
		d := -half + float32(i)*spacing
		base := uint32(len(vs))
		vs = append(vs,
			vertex{pos: mgl32.Vec3{d, 0, -half}, color: grey},
			vertex{pos: mgl32.Vec3{d, 0, half}, color: grey},
			vertex{pos: mgl32.Vec3{-half, 0, d}, color: grey},
			vertex{pos: mgl32.Vec3{half, 0, d}, color: grey},
		)
		m.Indices = append(m.Indices, base, base+1, base+2, base+3)
	}
	m.Vertices = pack(vs)
	return m
}

// Floor is a size by size textured quad in the XZ plane facing +Y. The texture
// repeats once per unit.
func Floor(size float32) *Mesh {
	h := size / 2
	return &Mesh{
		Name: "floor",
		Vertices: pack([]vertex{
			{mgl32.Vec3{-h, 0, -h}, white, mgl32.Vec2{0, 0}},
			{mgl32.Vec3{-h, 0, h}, white, mgl32.Vec2{0, size}},
			{mgl32.Vec3{h, 0, h}, white, mgl32.Vec2{size, size}},
			{mgl32.Vec3{h, 0, -h}, white, mgl32.Vec2{size, 0}},
		}),
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

// Wall is a 2x1 m wall standing on the XY plane at the origin.
//
//	3---4---5
//	|       |
//	0---1---2
func Wall() *Mesh {
	return &Mesh{
		Name: "wall",
		Vertices: pack([]vertex{
			{pos: mgl32.Vec3{0, 0, 0}, color: red},
			{pos: mgl32.Vec3{1, 0, 0}, color: yellow},
			{pos: mgl32.Vec3{2, 0, 0}, color: red},
			{pos: mgl32.Vec3{0, 1, 0}, color: magenta},
			{pos: mgl32.Vec3{1, 1, 0}, color: blue},
			{pos: mgl32.Vec3{2, 1, 0}, color: magenta},
		}),
		Indices: []uint32{
			4, 3, 0,
			4, 1, 0,
			4, 1, 2,
			4, 5, 2,
		},
	}
}

// Cube is a unit cube centered on the origin with one color per face.
func Cube() *Mesh {
	faces := []struct {
		normal, u, v mgl32.Vec3
		color        mgl32.Vec4
	}{
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, red},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}, cyan},
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}, yellow},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}, blue},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, magenta},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}, white},
	}

	m := &Mesh{Name: "cube"}
	var vs []vertex
	for _, f := range faces {
		c := f.normal.Mul(0.5)
		u, v := f.u.Mul(0.5), f.v.Mul(0.5)
		base := uint32(len(vs))
		vs = append(vs,
			vertex{c.Sub(u).Sub(v), f.color, mgl32.Vec2{0, 0}},
			vertex{c.Add(u).Sub(v), f.color, mgl32.Vec2{1, 0}},
			vertex{c.Add(u).Add(v), f.color, mgl32.Vec2{1, 1}},
			vertex{c.Sub(u).Add(v), f.color, mgl32.Vec2{0, 1}},
		)
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	m.Vertices = pack(vs)
	return m
}

// Spaceship is the starter ship: 8 m long floor, 10x8 m main deck, bridge windows.
// Its nose points down -Z like every other body.
func Spaceship() *Mesh {
	return &Mesh{
		Name: "spaceship",
		Vertices: pack([]vertex{
			// floor
			{pos: mgl32.Vec3{-2, -1, 4}, color: red},
			{pos: mgl32.Vec3{2, -1, 4}, color: red},
			{pos: mgl32.Vec3{0, -1, -4}, color: red},

			// main deck
			{pos: mgl32.Vec3{-4, 0, 5}, color: magenta},
			{pos: mgl32.Vec3{-1, 0, 5}, color: magenta},
			{pos: mgl32.Vec3{1, 0, 5}, color: magenta},
			{pos: mgl32.Vec3{4, 0, 5}, color: magenta},
			{pos: mgl32.Vec3{-1.5, 0.5, 3}, color: magenta},
			{pos: mgl32.Vec3{1.5, 0.5, 3}, color: magenta},
			{pos: mgl32.Vec3{-2, 0, 1}, color: magenta},
			{pos: mgl32.Vec3{2, 0, 1}, color: magenta},
			{pos: mgl32.Vec3{-0.8, 0, 0.5}, color: blue},
			{pos: mgl32.Vec3{0.8, 0, 0.5}, color: blue},
			{pos: mgl32.Vec3{-1, 0, -0.75}, color: blue},
			{pos: mgl32.Vec3{1, 0, -0.75}, color: blue},
			{pos: mgl32.Vec3{0, 0, -2}, color: blue},
			{pos: mgl32.Vec3{0, 0, -5}, color: magenta},

			// upper accents
			{pos: mgl32.Vec3{-2.5, 1.5, 3.67}, color: red},
			{pos: mgl32.Vec3{2.5, 1.5, 3.67}, color: red},
			{pos: mgl32.Vec3{-0.5, 1, 0}, color: cyan},
			{pos: mgl32.Vec3{0.5, 1, 0}, color: cyan},
			{pos: mgl32.Vec3{-0.5, 1, -0.67}, color: cyan},
			{pos: mgl32.Vec3{0.5, 1, -0.67}, color: cyan},
		}),
		Indices: []uint32{
			// floor
			0, 1, 2,

			// floor to main deck
			0, 3, 4,
			0, 3, 9,
			0, 2, 9,
			0, 4, 5,
			1, 5, 0,
			1, 5, 6,
			1, 10, 6,
			1, 10, 2,
			2, 16, 9,
			2, 16, 10,

			// left wing
			17, 3, 4,
			17, 7, 4,
			17, 7, 9,
			17, 3, 9,
			// right wing
			18, 6, 5,
			18, 8, 5,
			18, 8, 10,
			18, 6, 10,
			// rear
			4, 5, 7,
			8, 5, 7,
			// center
			8, 11, 7,
			8, 11, 12,
			8, 10, 12,
			9, 11, 7,
			// front body
			11, 13, 9,
			16, 13, 9,
			16, 13, 15,
			16, 14, 15,
			16, 14, 10,
			12, 14, 10,
			// bridge windows
			19, 11, 12,
			19, 11, 13,
			19, 21, 13,
			21, 15, 13,
			21, 15, 22,
			14, 15, 22,
			14, 12, 22,
			20, 12, 22,
			20, 12, 19,
			20, 21, 19,
			20, 21, 22,
		},
	}
}
