package main

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// mockKeyboard reports the keys in the set as pressed.
type mockKeyboard map[glfw.Key]bool

func (m mockKeyboard) GetKey(key glfw.Key) glfw.Action {
	if m[key] {
		return glfw.Press
	}
	return glfw.Release
}

func TestPollIntent(t *testing.T) {
	tests := []struct {
		name  string
		keys  mockKeyboard
		move  mgl32.Vec3
		yaw   float32
		pitch float32
		roll  float32
		boost bool
	}{
		{name: "idle", keys: mockKeyboard{}},
		{name: "forward", keys: mockKeyboard{glfw.KeyW: true}, move: mgl32.Vec3{0, 0, -1}},
		{name: "back", keys: mockKeyboard{glfw.KeyS: true}, move: mgl32.Vec3{0, 0, 1}},
		{name: "opposing keys cancel", keys: mockKeyboard{glfw.KeyW: true, glfw.KeyS: true}},
		{name: "strafe up right", keys: mockKeyboard{glfw.KeyD: true, glfw.KeySpace: true}, move: mgl32.Vec3{1, 1, 0}},
		{name: "sink left", keys: mockKeyboard{glfw.KeyA: true, glfw.KeyC: true}, move: mgl32.Vec3{-1, -1, 0}},
		{name: "turn left", keys: mockKeyboard{glfw.KeyLeft: true}, yaw: 1},
		{name: "turn right", keys: mockKeyboard{glfw.KeyRight: true}, yaw: -1},
		{name: "nose down", keys: mockKeyboard{glfw.KeyDown: true}, pitch: -1},
		{name: "roll", keys: mockKeyboard{glfw.KeyQ: true}, roll: -1},
		{name: "boost", keys: mockKeyboard{glfw.KeyLeftShift: true, glfw.KeyW: true}, move: mgl32.Vec3{0, 0, -1}, boost: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := pollIntent(tt.keys)
			if in.Move != tt.move {
				t.Errorf("Expected move %v, got %v", tt.move, in.Move)
			}
			if in.Yaw != tt.yaw || in.Pitch != tt.pitch || in.Roll != tt.roll {
				t.Errorf("Expected turn (%v, %v, %v), got (%v, %v, %v)",
					tt.yaw, tt.pitch, tt.roll, in.Yaw, in.Pitch, in.Roll)
			}
			if in.Boost != tt.boost {
				t.Errorf("Expected boost %v, got %v", tt.boost, in.Boost)
			}
		})
	}
}

func TestCursorDelta(t *testing.T) {
	c := newCursor()

	if dx, dy := c.delta(400, 300); dx != 0 || dy != 0 {
		t.Errorf("Expected first event to be ignored, got (%v, %v)", dx, dy)
	}
	if dx, dy := c.delta(410, 295); dx != 10 || dy != -5 {
		t.Errorf("Expected (10, -5), got (%v, %v)", dx, dy)
	}

	c.reset()
	if dx, dy := c.delta(0, 0); dx != 0 || dy != 0 {
		t.Errorf("Expected event after reset to be ignored, got (%v, %v)", dx, dy)
	}
	if dx, dy := c.delta(-3, 4); dx != -3 || dy != 4 {
		t.Errorf("Expected (-3, 4), got (%v, %v)", dx, dy)
	}
}
