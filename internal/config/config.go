// Package config holds the demo's startup settings.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/dschenker/flycam/internal/camera"
	"github.com/dschenker/flycam/internal/control"
)

var ErrInvalidWindow = errors.New("config: window size must be positive")

type Config struct {
	Width  int
	Height int
	Title  string
	VSync  bool

	Fov  float64
	Near float64
	Far  float64

	MoveSpeed       float64
	TurnSpeed       float64 // degrees per second
	LookSensitivity float64 // degrees per pixel
	FirstPerson     bool

	// Texture is an optional PNG or JPEG applied to the floor grid.
	Texture string
}

func Default() Config {
	return Config{
		Width:           800,
		Height:          600,
		Title:           "flycam",
		VSync:           true,
		Fov:             90,
		Near:            0.01,
		Far:             100,
		MoveSpeed:       2.5,
		TurnSpeed:       90,
		LookSensitivity: 0.1,
	}
}

// RegisterFlags binds every field to fs using the current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.BoolVar(&c.VSync, "vsync", c.VSync, "wait for vertical sync between frames")
	fs.Float64Var(&c.Fov, "fov", c.Fov, "vertical field of view in degrees")
	fs.Float64Var(&c.Near, "near", c.Near, "near clipping plane")
	fs.Float64Var(&c.Far, "far", c.Far, "far clipping plane")
	fs.Float64Var(&c.MoveSpeed, "speed", c.MoveSpeed, "movement speed in units per second")
	fs.Float64Var(&c.TurnSpeed, "turn", c.TurnSpeed, "keyboard turn rate in degrees per second")
	fs.Float64Var(&c.LookSensitivity, "sensitivity", c.LookSensitivity, "mouse look in degrees per pixel")
	fs.BoolVar(&c.FirstPerson, "fps", c.FirstPerson, "first-person controls: level horizon, clamped pitch, no roll")
	fs.StringVar(&c.Texture, "texture", c.Texture, "PNG or JPEG texture for the floor grid")
}

// Lens returns the camera lens for the configured window.
func (c Config) Lens() camera.Lens {
	return camera.Lens{
		FovY:   float32(c.Fov),
		Near:   float32(c.Near),
		Far:    float32(c.Far),
		Aspect: float32(c.Width) / float32(c.Height),
	}
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidWindow, c.Width, c.Height)
	}
	if c.MoveSpeed < 0 || c.TurnSpeed < 0 || c.LookSensitivity < 0 {
		return errors.New("config: speeds must not be negative")
	}
	return c.Lens().Validate()
}

// Controller builds a controller with the configured speeds.
func (c Config) Controller() *control.Controller {
	style := control.FreeFlight
	if c.FirstPerson {
		style = control.FirstPerson
	}
	ctl := control.New(style)
	ctl.MoveSpeed = float32(c.MoveSpeed)
	ctl.TurnSpeed = mgl32.DegToRad(float32(c.TurnSpeed))
	ctl.LookSensitivity = mgl32.DegToRad(float32(c.LookSensitivity))
	return ctl
}
