// Package rigid tracks the pose of a rigid body: a world position and a unit
// orientation quaternion mapping the canonical basis (+X right, +Y up, -Z forward)
// onto the body's current basis.
//
// A Body has a single owner. It is not safe for concurrent mutation.
package rigid

import (
	"errors"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/dschenker/flycam/internal/quat"
)

var ErrDegenerateLookAt = errors.New("rigid: look-at direction is degenerate")

// Body is a position and orientation. The zero value sits at the origin with the
// identity orientation.
type Body struct {
	position    mgl32.Vec3
	orientation quat.Quaternion
}

func NewBody(position mgl32.Vec3, orientation quat.Quaternion) Body {
	b := Body{position: position}
	b.SetOrientation(orientation)
	return b
}

func (b *Body) Position() mgl32.Vec3 {
	return b.position
}

func (b *Body) Orientation() quat.Quaternion {
	// Only a zero Body holds the zero quaternion.
	if b.orientation == (quat.Quaternion{}) {
		return quat.Ident()
	}
	return b.orientation
}

// SetPosition places the body at an absolute world position.
func (b *Body) SetPosition(p mgl32.Vec3) {
	b.position = p
}

// TranslateWorld offsets the position by d in world coordinates, ignoring the
// orientation.
func (b *Body) TranslateWorld(d mgl32.Vec3) {
	b.position = b.position.Add(d)
}

// Move offsets the position by a displacement expressed in the body's own frame,
// so Move(quat.Forward) always goes where the body faces.
func (b *Body) Move(local mgl32.Vec3) {
	b.position = b.position.Add(b.Orientation().Rotate(local))
}

// SetOrientation snaps to an absolute orientation. The zero quaternion is not a
// rotation and is stored as the identity.
func (b *Body) SetOrientation(q quat.Quaternion) {
	if q == (quat.Quaternion{}) {
		q = quat.Ident()
	}
	b.orientation = q
}

// Turn applies q in the body's own frame: orientation = orientation * q.
func (b *Body) Turn(q quat.Quaternion) {
	b.SetOrientation(b.Orientation().Multiply(q))
}

// TurnWorld applies q in world space: orientation = q * orientation.
func (b *Body) TurnWorld(q quat.Quaternion) {
	b.SetOrientation(q.Multiply(b.Orientation()))
}

// LookAt orients the body so that Forward points at target and Up lies in the
// plane of the forward direction and up.
func (b *Body) LookAt(target, up mgl32.Vec3) error {
	dir := target.Sub(b.position)
	if dir.Len() < quat.Epsilon || up.Len() < quat.Epsilon {
		return ErrDegenerateLookAt
	}
	dir = dir.Normalize()

	right := dir.Cross(up)
	if right.Len() < quat.Epsilon {
		return ErrDegenerateLookAt
	}
	up = right.Cross(dir).Normalize()

	face := quat.Quaternion(mgl32.QuatBetweenVectors(quat.Forward, dir))

	// Roll about the new forward axis until the body's up matches.
	cur := face.Rotate(quat.Up)
	angle := math32.Atan2(cur.Cross(up).Dot(dir), cur.Dot(up))
	roll := quat.FromAxisAngle(angle, dir)

	b.SetOrientation(roll.Multiply(face).Normalize())
	return nil
}

// Normalize removes accumulated drift from the orientation.
func (b *Body) Normalize() {
	b.SetOrientation(b.Orientation().Normalize())
}

func (b *Body) Right() mgl32.Vec3 {
	return b.Orientation().Rotate(quat.Right)
}

func (b *Body) Up() mgl32.Vec3 {
	return b.Orientation().Rotate(quat.Up)
}

func (b *Body) Forward() mgl32.Vec3 {
	return b.Orientation().Rotate(quat.Forward)
}

func (b *Body) Backward() mgl32.Vec3 {
	return b.Orientation().Rotate(quat.Backward)
}

// Transform returns the body-to-world matrix T(position) * R(orientation).
func (b *Body) Transform() mgl32.Mat4 {
	p := b.position
	return mgl32.Translate3D(p[0], p[1], p[2]).Mul4(b.Orientation().Mat4())
}
