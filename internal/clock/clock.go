// Package clock turns a monotonically increasing time source (glfw.GetTime in the
// demo) into per-frame deltas and a smoothed frame rate.
package clock

// MaxDelta caps a single frame step so a stall (window drag, breakpoint) does not
// fling the camera across the scene.
const MaxDelta = 0.25

// Frame tracks the time between successive Tick calls.
type Frame struct {
	last    float64
	started bool
}

// Tick records now and returns the seconds elapsed since the previous tick,
// clamped to [0, MaxDelta]. The first tick returns 0.
func (f *Frame) Tick(now float64) float32 {
	if !f.started {
		f.last, f.started = now, true
		return 0
	}
	dt := now - f.last
	f.last = now

	if dt < 0 {
		return 0
	}
	if dt > MaxDelta {
		return MaxDelta
	}
	return float32(dt)
}

// FPSCounter counts frames over short windows and smooths the rate with an
// exponential moving average.
type FPSCounter struct {
	Window float64

	lastUpdate float64
	frameCount int
	fps        float64
}

func NewFPSCounter(now float64) *FPSCounter {
	return &FPSCounter{
		Window:     0.25,
		lastUpdate: now,
	}
}

// Update counts one frame at time now and returns the current estimate.
func (fc *FPSCounter) Update(now float64) float64 {
	fc.frameCount++

	if elapsed := now - fc.lastUpdate; elapsed >= fc.Window {
		fps := float64(fc.frameCount) / elapsed

		if fc.fps == 0 {
			fc.fps = fps
		} else {
			fc.fps = fc.fps*0.9 + fps*0.1
		}

		fc.frameCount = 0
		fc.lastUpdate = now
	}

	return fc.fps
}
