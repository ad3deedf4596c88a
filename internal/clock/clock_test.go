package clock

import (
	"math"
	"testing"
)

func TestFrameTick(t *testing.T) {
	var f Frame

	steps := []struct {
		now  float64
		want float32
	}{
		{10, 0},
		{10.2, 0.2},
		{10.2, 0},
		{12, MaxDelta},
		{11, 0},
		{11.1, 0.1},
	}

	for i, s := range steps {
		if got := f.Tick(s.now); math.Abs(float64(got-s.want)) > 1e-6 {
			t.Errorf("step %d: Tick(%v) = %v, expected %v", i, s.now, got, s.want)
		}
	}
}

func TestFPSCounter(t *testing.T) {
	fc := NewFPSCounter(0)

	// 60 frames per second for one second.
	var fps float64
	for i := 1; i <= 60; i++ {
		fps = fc.Update(float64(i) / 60)
	}
	if math.Abs(fps-60) > 1 {
		t.Fatalf("fps = %v, expected about 60", fps)
	}

	// Dropping to 30 moves the average only part of the way.
	for i := 1; i <= 8; i++ {
		fps = fc.Update(1 + float64(i)/30)
	}
	if fps >= 60 || fps <= 30 {
		t.Errorf("smoothed fps = %v, expected between 30 and 60", fps)
	}
}
