// Package camera is a perspective camera on top of rigid.Body.
//
// Matrices are mgl32 column-major, right-handed, with the camera looking down -Z,
// ready for gl.UniformMatrix4fv without transposing.
package camera

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/dschenker/flycam/internal/rigid"
)

var (
	ErrInvalidFov    = errors.New("camera: field of view must be within (0, 180) degrees")
	ErrInvalidPlanes = errors.New("camera: planes must be finite and satisfy 0 < near < far")
	ErrInvalidAspect = errors.New("camera: aspect ratio must be positive and finite")
)

// Lens holds the projection parameters. FovY is the vertical field of view in degrees.
type Lens struct {
	FovY   float32
	Near   float32
	Far    float32
	Aspect float32
}

// Validate reports the first parameter that cannot produce a perspective matrix.
func (l Lens) Validate() error {
	if !(l.FovY > 0 && l.FovY < 180) {
		return fmt.Errorf("%w: got %g", ErrInvalidFov, l.FovY)
	}
	if err := validatePlanes(l.Near, l.Far); err != nil {
		return err
	}
	return validateAspect(l.Aspect)
}

func validatePlanes(near, far float32) error {
	if !(near > 0 && far > near) || math32.IsInf(far, 0) {
		return fmt.Errorf("%w: got near=%g far=%g", ErrInvalidPlanes, near, far)
	}
	return nil
}

func validateAspect(aspect float32) error {
	if !(aspect > 0) || math32.IsInf(aspect, 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidAspect, aspect)
	}
	return nil
}

// Camera is a rigid body with a lens. It is owned by the main loop; renderers
// only read from it.
type Camera struct {
	rigid.Body
	lens Lens
}

func New(lens Lens) (*Camera, error) {
	if err := lens.Validate(); err != nil {
		return nil, err
	}
	return &Camera{lens: lens}, nil
}

func (c *Camera) Lens() Lens          { return c.lens }
func (c *Camera) Fov() float32         { return c.lens.FovY }
func (c *Camera) NearPlane() float32   { return c.lens.Near }
func (c *Camera) FarPlane() float32    { return c.lens.Far }
func (c *Camera) AspectRatio() float32 { return c.lens.Aspect }

func (c *Camera) SetFov(deg float32) error {
	if !(deg > 0 && deg < 180) {
		return fmt.Errorf("%w: got %g", ErrInvalidFov, deg)
	}
	c.lens.FovY = deg
	return nil
}

func (c *Camera) SetNearPlane(near float32) error {
	return c.SetPlanes(near, c.lens.Far)
}

func (c *Camera) SetFarPlane(far float32) error {
	return c.SetPlanes(c.lens.Near, far)
}

func (c *Camera) SetPlanes(near, far float32) error {
	if err := validatePlanes(near, far); err != nil {
		return err
	}
	c.lens.Near, c.lens.Far = near, far
	return nil
}

func (c *Camera) SetAspectRatio(aspect float32) error {
	if err := validateAspect(aspect); err != nil {
		return err
	}
	c.lens.Aspect = aspect
	return nil
}

// Resize sets the aspect ratio from a framebuffer size. A minimized window
// reports a zero height, which is rejected and leaves the lens untouched.
func (c *Camera) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: framebuffer %dx%d", ErrInvalidAspect, width, height)
	}
	return c.SetAspectRatio(float32(width) / float32(height))
}

// View undoes the body's pose: R(orientation)^-1 * T(-position). Translation is
// undone first, then rotation, the reverse of how the pose was applied.
func (c *Camera) View() mgl32.Mat4 {
	p := c.Position()
	return c.Orientation().Invert().Mat4().Mul4(mgl32.Translate3D(-p[0], -p[1], -p[2]))
}

func (c *Camera) Proj() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.lens.FovY), c.lens.Aspect, c.lens.Near, c.lens.Far)
}

// ViewProjection returns Proj * View, the matrix handed to shaders.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.Proj().Mul4(c.View())
}
