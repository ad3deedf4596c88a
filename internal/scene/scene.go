// Package scene is a flat list of mesh instances placed in the world. There is
// no hierarchy; each instance carries its own pose and scale.
package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/dschenker/flycam/internal/quat"
	"github.com/dschenker/flycam/internal/rigid"
)

// Instance places a mesh in the world.
type Instance struct {
	Mesh  *Mesh
	Body  rigid.Body
	Scale mgl32.Vec3

	// Spin is the rotation applied per second in the instance's own frame. The
	// zero value does not spin.
	Spin quat.Quaternion

	turns int
}

// NormalizeEvery is how many Animate steps a spinning instance takes between
// renormalizations of its orientation.
const NormalizeEvery = 120

func NewInstance(mesh *Mesh, position mgl32.Vec3) *Instance {
	return &Instance{
		Mesh:  mesh,
		Body:  rigid.NewBody(position, quat.Ident()),
		Scale: mgl32.Vec3{1, 1, 1},
	}
}

// Model returns translate * rotate * scale.
func (i *Instance) Model() mgl32.Mat4 {
	s := i.Scale
	return i.Body.Transform().Mul4(mgl32.Scale3D(s[0], s[1], s[2]))
}

// Animate advances the spin by dt seconds.
func (i *Instance) Animate(dt float32) {
	if i.Spin == (quat.Quaternion{}) || dt <= 0 {
		return
	}
	i.Body.Turn(i.Spin.Power(dt))

	i.turns++
	if i.turns >= NormalizeEvery {
		i.Body.Normalize()
		i.turns = 0
	}
}

type Scene struct {
	Instances []*Instance
}

func (s *Scene) Add(i *Instance) *Instance {
	s.Instances = append(s.Instances, i)
	return i
}

func (s *Scene) Animate(dt float32) {
	for _, i := range s.Instances {
		i.Animate(dt)
	}
}

// Meshes returns each distinct mesh once, in first-use order.
func (s *Scene) Meshes() []*Mesh {
	seen := make(map[*Mesh]bool)
	var out []*Mesh
	for _, i := range s.Instances {
		if !seen[i.Mesh] {
			seen[i.Mesh] = true
			out = append(out, i.Mesh)
		}
	}
	return out
}

// Find returns the first mesh with the given name, or nil.
func (s *Scene) Find(name string) *Mesh {
	for _, i := range s.Instances {
		if i.Mesh.Name == name {
			return i.Mesh
		}
	}
	return nil
}

// Demo builds the default scene: a background grid, a textured floor, a ring of
// walls, a slowly turning ship and a few spinning cubes.
func Demo() *Scene {
	s := &Scene{}

	s.Add(NewInstance(Grid(40, 1), mgl32.Vec3{0, -0.01, 0}))
	s.Add(NewInstance(Floor(10), mgl32.Vec3{}))

	wall := Wall()
	for k := 0; k < 6; k++ {
		angle := float32(k) * 2 * math.Pi / 6
		w := s.Add(NewInstance(wall, mgl32.Vec3{}))
		w.Body.SetOrientation(quat.FromAxisAngle(angle, quat.Up))
		w.Body.Move(mgl32.Vec3{-1, 0, -8})
	}

	ship := s.Add(NewInstance(Spaceship(), mgl32.Vec3{0, 3, -12}))
	ship.Spin = quat.FromAxisAngle(mgl32.DegToRad(10), quat.Up)

	cube := Cube()
	for k, p := range []mgl32.Vec3{{-3, 0.5, -3}, {3, 0.5, -3}, {0, 2, 3}} {
		c := s.Add(NewInstance(cube, p))
		c.Spin = quat.FromAxisAngle(mgl32.DegToRad(float32(30+20*k)), mgl32.Vec3{1, 1, 0}.Normalize())
	}

	return s
}
