package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/dschenker/flycam/internal/control"
)

// keyboard is the part of *glfw.Window the key bindings poll.
type keyboard interface {
	GetKey(key glfw.Key) glfw.Action
}

func axis(kb keyboard, positive, negative glfw.Key) float32 {
	var v float32
	if kb.GetKey(positive) == glfw.Press {
		v++
	}
	if kb.GetKey(negative) == glfw.Press {
		v--
	}
	return v
}

// pollIntent reads the movement keys:
//
//	W/S        forward/back      arrows left/right  yaw
//	A/D        strafe            arrows up/down     pitch
//	Space/C    rise/sink         Q/E                roll
//	Left shift boost
func pollIntent(kb keyboard) control.Intent {
	var in control.Intent

	in.Move[0] = axis(kb, glfw.KeyD, glfw.KeyA)
	in.Move[1] = axis(kb, glfw.KeySpace, glfw.KeyC)
	in.Move[2] = axis(kb, glfw.KeyS, glfw.KeyW)

	in.Yaw = axis(kb, glfw.KeyLeft, glfw.KeyRight)
	in.Pitch = axis(kb, glfw.KeyUp, glfw.KeyDown)
	in.Roll = axis(kb, glfw.KeyE, glfw.KeyQ)

	in.Boost = kb.GetKey(glfw.KeyLeftShift) == glfw.Press
	return in
}

// cursor turns absolute cursor positions into per-event deltas. The first event
// after capture only records the position, otherwise the camera would jump.
type cursor struct {
	firstMouse bool
	lastX      float64
	lastY      float64
}

func newCursor() *cursor {
	return &cursor{firstMouse: true}
}

func (c *cursor) delta(xpos, ypos float64) (dx, dy float32) {
	if c.firstMouse {
		c.lastX, c.lastY = xpos, ypos
		c.firstMouse = false
		return 0, 0
	}

	dx, dy = float32(xpos-c.lastX), float32(ypos-c.lastY)
	c.lastX, c.lastY = xpos, ypos
	return dx, dy
}

// reset makes the next event a first event again, e.g. after the cursor is
// released and recaptured.
func (c *cursor) reset() {
	c.firstMouse = true
}
