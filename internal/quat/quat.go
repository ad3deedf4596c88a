// Package quat provides rotation quaternions on top of mgl32.Quat.
//
// The basis is right-handed with +X right, +Y up and -Z forward. Composition reads
// right to left: a.Multiply(b) applies b first and then a. Composing a rotation on
// the right of an orientation turns the body in its own frame; composing on the
// left turns it in world space.
//
// None of the operations renormalize. Repeated composition drifts away from unit
// length in float32; call Normalize periodically if that matters.
package quat

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the threshold below which a vector part or axis counts as zero.
const Epsilon = 1e-6

// Canonical body axes.
var (
	Right    = mgl32.Vec3{1, 0, 0}
	Up       = mgl32.Vec3{0, 1, 0}
	Forward  = mgl32.Vec3{0, 0, -1}
	Backward = mgl32.Vec3{0, 0, 1}
)

// Quaternion is a scalar part W and a vector part V.
type Quaternion mgl32.Quat

// Ident returns the identity rotation.
func Ident() Quaternion {
	return Quaternion{W: 1}
}

// New builds a quaternion from its components without validation.
func New(w, x, y, z float32) Quaternion {
	return Quaternion{W: w, V: mgl32.Vec3{x, y, z}}
}

// FromAxisAngle returns the rotation of angle radians about axis. The axis is
// expected to be unit length and is not normalized; a zero axis gives the identity.
func FromAxisAngle(angle float32, axis mgl32.Vec3) Quaternion {
	if axis.Len() < Epsilon {
		return Ident()
	}
	return Quaternion(mgl32.QuatRotate(angle, axis))
}

// Quat returns q as an mgl32.Quat.
func (q Quaternion) Quat() mgl32.Quat {
	return mgl32.Quat(q)
}

// Invert returns the conjugate, which is the inverse for unit quaternions.
func (q Quaternion) Invert() Quaternion {
	return Quaternion(mgl32.Quat(q).Conjugate())
}

// Multiply returns the Hamilton product q*r.
func (q Quaternion) Multiply(r Quaternion) Quaternion {
	return Quaternion(mgl32.Quat(q).Mul(mgl32.Quat(r)))
}

// Rotate applies the rotation to v using the expanded form of q*v*q^-1:
// v + 2w(qv x v) + 2(qv x (qv x v)).
func (q Quaternion) Rotate(v mgl32.Vec3) mgl32.Vec3 {
	c := q.V.Cross(v)
	return v.Add(c.Mul(2 * q.W)).Add(q.V.Cross(c).Mul(2))
}

// ToAxisAngle returns the rotation axis and the angle in [0, 2*pi]. When the
// vector part is near zero the rotation is the identity and (+X, 0) is returned.
//
// q and -q describe the same rotation and come back as (axis, a) and
// (-axis, 2*pi-a) respectively.
func (q Quaternion) ToAxisAngle() (mgl32.Vec3, float32) {
	s := q.V.Len()
	if s < Epsilon {
		return Right, 0
	}
	return q.V.Mul(1 / s), 2 * math32.Atan2(s, q.W)
}

// Power returns the rotation scaled to t of its angle about the same axis.
func (q Quaternion) Power(t float32) Quaternion {
	axis, angle := q.ToAxisAngle()
	return FromAxisAngle(angle*t, axis)
}

// Slerp interpolates from q toward r. The relative rotation q^-1*r is taken the
// short way round, raised to t and composed onto q. t is not clamped.
func (q Quaternion) Slerp(r Quaternion, t float32) Quaternion {
	delta := q.Invert().Multiply(r)
	if delta.W < 0 {
		delta = Quaternion(mgl32.Quat(delta).Scale(-1))
	}
	return q.Multiply(delta.Power(t))
}

// Len returns the norm.
func (q Quaternion) Len() float32 {
	return mgl32.Quat(q).Len()
}

// Dot returns the four-component dot product.
func (q Quaternion) Dot(r Quaternion) float32 {
	return mgl32.Quat(q).Dot(mgl32.Quat(r))
}

// Normalize returns q scaled to unit length. The zero quaternion becomes the identity.
func (q Quaternion) Normalize() Quaternion {
	l := q.Len()
	if l < Epsilon {
		return Ident()
	}
	return Quaternion{W: q.W / l, V: q.V.Mul(1 / l)}
}

// Mat4 returns the column-major rotation matrix of q.
func (q Quaternion) Mat4() mgl32.Mat4 {
	return mgl32.Quat(q).Mat4()
}

// ApproxEqual compares components within an absolute eps.
func (q Quaternion) ApproxEqual(r Quaternion, eps float32) bool {
	return math32.Abs(q.W-r.W) <= eps && ApproxEqualVec(q.V, r.V, eps)
}

// SameRotation reports whether q and r rotate vectors identically, treating q
// and -q as equal.
func (q Quaternion) SameRotation(r Quaternion, eps float32) bool {
	return q.ApproxEqual(r, eps) || q.ApproxEqual(Quaternion(mgl32.Quat(r).Scale(-1)), eps)
}

// ApproxEqualVec compares vector components within an absolute eps. Unlike
// mgl32's threshold helpers it does not tighten the bound near zero.
func ApproxEqualVec(a, b mgl32.Vec3, eps float32) bool {
	return a.ApproxFuncEqual(b, func(x, y float32) bool {
		return math32.Abs(x-y) <= eps
	})
}

func (q Quaternion) String() string {
	return fmt.Sprintf("(%g; %g, %g, %g)", q.W, q.V[0], q.V[1], q.V[2])
}
