// Package control turns per-frame movement intents into motion of a rigid.Body.
// It knows nothing about keyboards or windows; the demo's input layer fills in
// an Intent each frame.
package control

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/dschenker/flycam/internal/quat"
	"github.com/dschenker/flycam/internal/rigid"
)

// Style selects how turns are applied.
type Style int

const (
	// FreeFlight turns about the body's own axes and allows roll.
	FreeFlight Style = iota
	// FirstPerson yaws about world up, pitches about the body's right axis within
	// MaxPitch and ignores roll, so the horizon stays level.
	FirstPerson
)

func (s Style) String() string {
	switch s {
	case FreeFlight:
		return "free-flight"
	case FirstPerson:
		return "first-person"
	}
	return "unknown"
}

// Intent is what the player asks for during one frame. Move is in body-local
// axes (-Z forward) with each component in [-1, 1]. Yaw, Pitch and Roll are
// signed turn rates in [-1, 1]: positive yaw turns left, positive pitch looks up
// and positive roll raises the right side.
type Intent struct {
	Move  mgl32.Vec3
	Yaw   float32
	Pitch float32
	Roll  float32
	Boost bool
}

// Controller applies intents at fixed speeds.
type Controller struct {
	Style Style

	MoveSpeed   float32 // units per second
	TurnSpeed   float32 // radians per second
	BoostFactor float32

	// LookSensitivity converts mouse motion in pixels to radians.
	LookSensitivity float32

	// MaxPitch bounds the first-person pitch in radians.
	MaxPitch float32

	// NormalizeEvery renormalizes the body's orientation after that many
	// updates. Zero never renormalizes.
	NormalizeEvery int

	pitch   float32
	updates int
}

// MaxPitchDefault stays clear of straight up or down, where yaw and roll coincide.
var MaxPitchDefault = mgl32.DegToRad(85)

func New(style Style) *Controller {
	return &Controller{
		Style:           style,
		MoveSpeed:       2.5,
		TurnSpeed:       mgl32.DegToRad(90),
		BoostFactor:     4,
		LookSensitivity: mgl32.DegToRad(0.1),
		MaxPitch:        MaxPitchDefault,
		NormalizeEvery:  120,
	}
}

// Pitch returns the accumulated first-person pitch in radians.
func (c *Controller) Pitch() float32 {
	return c.pitch
}

// Sync derives the first-person pitch from b's current forward direction. Call
// it after orienting the body directly, e.g. with LookAt.
func (c *Controller) Sync(b *rigid.Body) {
	c.pitch = math32.Asin(mgl32.Clamp(b.Forward().Y(), -1, 1))
}

// Update moves and turns b for a frame lasting dt seconds.
func (c *Controller) Update(b *rigid.Body, in Intent, dt float32) {
	if dt <= 0 {
		return
	}

	move := in.Move
	if l := move.Len(); l > 1 {
		move = move.Mul(1 / l)
	}
	speed := c.MoveSpeed
	if in.Boost {
		speed *= c.BoostFactor
	}
	if move != (mgl32.Vec3{}) {
		b.Move(move.Mul(speed * dt))
	}

	step := c.TurnSpeed * dt
	c.turn(b, clampUnit(in.Yaw)*step, clampUnit(in.Pitch)*step, clampUnit(in.Roll)*step)

	c.updates++
	if c.NormalizeEvery > 0 && c.updates%c.NormalizeEvery == 0 {
		b.Normalize()
	}
}

// Look applies mouse motion. dx grows to the right and dy grows downward, as
// window systems report cursor positions.
func (c *Controller) Look(b *rigid.Body, dx, dy float32) {
	c.turn(b, -dx*c.LookSensitivity, -dy*c.LookSensitivity, 0)
}

func (c *Controller) turn(b *rigid.Body, yaw, pitch, roll float32) {
	switch c.Style {
	case FirstPerson:
		next := mgl32.Clamp(c.pitch+pitch, -c.MaxPitch, c.MaxPitch)
		pitch, c.pitch = next-c.pitch, next

		if yaw != 0 {
			b.TurnWorld(quat.FromAxisAngle(yaw, quat.Up))
		}
		if pitch != 0 {
			b.Turn(quat.FromAxisAngle(pitch, quat.Right))
		}
	default:
		if yaw != 0 {
			b.Turn(quat.FromAxisAngle(yaw, quat.Up))
		}
		if pitch != 0 {
			b.Turn(quat.FromAxisAngle(pitch, quat.Right))
		}
		if roll != 0 {
			b.Turn(quat.FromAxisAngle(roll, quat.Backward))
		}
	}
}

func clampUnit(x float32) float32 {
	return math32.Max(-1, math32.Min(1, x))
}
