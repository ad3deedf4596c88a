package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/dschenker/flycam/internal/camera"
	"github.com/dschenker/flycam/internal/clock"
	"github.com/dschenker/flycam/internal/config"
	"github.com/dschenker/flycam/internal/control"
	"github.com/dschenker/flycam/internal/quat"
	"github.com/dschenker/flycam/internal/render"
	"github.com/dschenker/flycam/internal/scene"
)

var startPosition = mgl32.Vec3{0, 4, 4}

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

// resetPose puts the camera back at the start, looking at the origin.
func resetPose(cam *camera.Camera, ctl *control.Controller) {
	cam.SetPosition(startPosition)
	if err := cam.LookAt(mgl32.Vec3{}, quat.Up); err != nil {
		log.Printf("reset camera: %v", err)
	}
	ctl.Sync(&cam.Body)
}

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatal("failed to initialize GLFW:", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		log.Fatal("failed to create GLFW window:", err)
	}
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	}

	if err := gl.Init(); err != nil {
		log.Fatal("failed to initialize OpenGL:", err)
	}
	log.Printf("OpenGL %s, GLSL %s, %s",
		gl.GoStr(gl.GetString(gl.VERSION)),
		gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
		gl.GoStr(gl.GetString(gl.RENDERER)))

	cam, err := camera.New(cfg.Lens())
	if err != nil {
		log.Fatal(err)
	}
	ctl := cfg.Controller()
	resetPose(cam, ctl)

	world := scene.Demo()

	renderer, err := render.NewRenderer()
	if err != nil {
		log.Fatal(err)
	}
	defer renderer.Delete()

	if err := renderer.Load(world); err != nil {
		log.Fatal(err)
	}

	if cfg.Texture != "" {
		texture, err := render.LoadTexture(cfg.Texture)
		if err != nil {
			log.Printf("warning: floor stays untextured: %v", err)
		} else {
			renderer.SetTexture(world.Find("floor"), texture)
			defer gl.DeleteTextures(1, &texture)
		}
	}

	fbWidth, fbHeight := window.GetFramebufferSize()
	renderer.Resize(fbWidth, fbHeight)
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		renderer.Resize(width, height)
		if err := cam.Resize(width, height); err != nil {
			// Minimized windows report 0x0; keep the last good aspect ratio.
			log.Printf("resize: %v", err)
		}
	})

	// Capture cursor
	captured := true
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	mouse := newCursor()

	window.SetCursorPosCallback(func(w *glfw.Window, xpos float64, ypos float64) {
		if !captured {
			return
		}
		dx, dy := mouse.delta(xpos, ypos)
		ctl.Look(&cam.Body, dx, dy)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		case glfw.KeyTab:
			captured = !captured
			if captured {
				w.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
				mouse.reset()
			} else {
				w.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
			}
		case glfw.KeyR:
			resetPose(cam, ctl)
		}
	})

	var frame clock.Frame
	fpsCounter := clock.NewFPSCounter(glfw.GetTime())

	// Main render loop
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := frame.Tick(now)

		fps := fpsCounter.Update(now)
		window.SetTitle(fmt.Sprintf("%s | %s | FPS: %.1f", cfg.Title, ctl.Style, fps))

		ctl.Update(&cam.Body, pollIntent(window), dt)
		world.Animate(dt)

		renderer.Draw(cam, world)

		window.SwapBuffers()
		glfw.PollEvents()
	}
}
