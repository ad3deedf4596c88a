package control

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/dschenker/flycam/internal/quat"
	"github.com/dschenker/flycam/internal/rigid"
)

const tolerance = 1e-4

func near(a, b mgl32.Vec3) bool {
	return quat.ApproxEqualVec(a, b, tolerance)
}

func TestUpdateMovesForward(t *testing.T) {
	c := New(FreeFlight)
	c.MoveSpeed = 2

	b := rigid.NewBody(mgl32.Vec3{0, 4, 4}, quat.Ident())
	if err := b.LookAt(mgl32.Vec3{}, quat.Up); err != nil {
		t.Fatal(err)
	}

	start := b.Position()
	for i := 0; i < 3; i++ {
		c.Update(&b, Intent{Move: quat.Forward}, 0.5)
	}

	want := b.Forward().Mul(3)
	if got := b.Position().Sub(start); !near(got, want) {
		t.Errorf("displacement = %v, expected %v", got, want)
	}
}

func TestUpdateClampsDiagonal(t *testing.T) {
	c := New(FreeFlight)
	c.MoveSpeed = 1

	var b rigid.Body
	c.Update(&b, Intent{Move: mgl32.Vec3{1, 0, -1}}, 1)

	if l := b.Position().Len(); mgl32.Abs(l-1) > tolerance {
		t.Errorf("diagonal move covered %v units, expected 1", l)
	}
}

func TestUpdateBoost(t *testing.T) {
	c := New(FreeFlight)
	c.MoveSpeed, c.BoostFactor = 1, 3

	var b rigid.Body
	c.Update(&b, Intent{Move: quat.Forward, Boost: true}, 1)

	if !near(b.Position(), mgl32.Vec3{0, 0, -3}) {
		t.Errorf("boosted position = %v, expected (0, 0, -3)", b.Position())
	}
}

func TestUpdateIgnoresNonPositiveDelta(t *testing.T) {
	c := New(FreeFlight)

	var b rigid.Body
	c.Update(&b, Intent{Move: quat.Forward, Yaw: 1}, 0)
	c.Update(&b, Intent{Move: quat.Forward, Yaw: 1}, -1)

	if b.Position() != (mgl32.Vec3{}) || b.Orientation() != quat.Ident() {
		t.Errorf("body changed on dt <= 0: %v %v", b.Position(), b.Orientation())
	}
}

func TestFreeFlightTurns(t *testing.T) {
	c := New(FreeFlight)
	c.TurnSpeed = math.Pi / 2

	cases := []struct {
		name  string
		in    Intent
		check func(b *rigid.Body) bool
	}{
		{"yaw left", Intent{Yaw: 1}, func(b *rigid.Body) bool { return near(b.Forward(), mgl32.Vec3{-1, 0, 0}) }},
		{"pitch up", Intent{Pitch: 1}, func(b *rigid.Body) bool { return near(b.Forward(), mgl32.Vec3{0, 1, 0}) }},
		{"roll", Intent{Roll: 1}, func(b *rigid.Body) bool { return near(b.Right(), mgl32.Vec3{0, 1, 0}) }},
		{"overdriven yaw is clamped", Intent{Yaw: 5}, func(b *rigid.Body) bool { return near(b.Forward(), mgl32.Vec3{-1, 0, 0}) }},
	}

	for _, tc := range cases {
		var b rigid.Body
		c.Update(&b, tc.in, 1)
		if !tc.check(&b) {
			t.Errorf("%s: forward = %v, right = %v", tc.name, b.Forward(), b.Right())
		}
	}
}

func TestFirstPersonClampsPitch(t *testing.T) {
	c := New(FirstPerson)

	var b rigid.Body
	for i := 0; i < 100; i++ {
		c.Update(&b, Intent{Pitch: 1}, 0.1)
	}

	if c.Pitch() != c.MaxPitch {
		t.Errorf("pitch = %v, expected %v", c.Pitch(), c.MaxPitch)
	}
	if got, want := b.Forward().Y(), float32(math.Sin(float64(c.MaxPitch))); mgl32.Abs(got-want) > tolerance {
		t.Errorf("forward.y = %v, expected %v", got, want)
	}
}

func TestFirstPersonKeepsHorizonLevel(t *testing.T) {
	c := New(FirstPerson)

	var b rigid.Body
	for i := 0; i < 50; i++ {
		c.Update(&b, Intent{Yaw: 0.7, Pitch: -0.4, Roll: 1}, 0.05)
	}

	if mgl32.Abs(b.Right().Y()) > tolerance {
		t.Errorf("right = %v, expected no vertical component", b.Right())
	}
	if b.Up().Y() <= 0 {
		t.Errorf("up = %v, expected to stay upright", b.Up())
	}
}

func TestSyncAfterLookAt(t *testing.T) {
	c := New(FirstPerson)

	b := rigid.NewBody(mgl32.Vec3{0, 4, 4}, quat.Ident())
	if err := b.LookAt(mgl32.Vec3{}, quat.Up); err != nil {
		t.Fatal(err)
	}
	c.Sync(&b)

	if want := float32(-math.Pi / 4); mgl32.Abs(c.Pitch()-want) > tolerance {
		t.Errorf("pitch = %v, expected %v", c.Pitch(), want)
	}
}

func TestLookTurnsTowardCursor(t *testing.T) {
	c := New(FirstPerson)
	c.LookSensitivity = 0.01

	var b rigid.Body
	c.Look(&b, 10, 0)
	if b.Forward().X() <= 0 {
		t.Errorf("moving the mouse right gave forward = %v", b.Forward())
	}

	c.Look(&b, 0, 10)
	if b.Forward().Y() >= 0 {
		t.Errorf("moving the mouse down gave forward = %v", b.Forward())
	}
}

func TestNormalizeEvery(t *testing.T) {
	c := New(FreeFlight)
	c.NormalizeEvery = 1

	b := rigid.NewBody(mgl32.Vec3{}, quat.New(2, 0, 0, 0))
	c.Update(&b, Intent{}, 0.1)

	if l := b.Orientation().Len(); mgl32.Abs(l-1) > 1e-6 {
		t.Errorf("|orientation| = %v after renormalizing update", l)
	}
}

func TestStyleString(t *testing.T) {
	if FreeFlight.String() != "free-flight" || FirstPerson.String() != "first-person" || Style(9).String() != "unknown" {
		t.Error("unexpected Style names")
	}
}
