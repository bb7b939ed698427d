package viewer

import (
	"math"
	"testing"
)

func TestMoverDecaysToRest(t *testing.T) {
	m := NewMover(60, 4.0, 1.0)
	m.Impulse(1, -0.5)

	var fwd, right float64
	for range 600 {
		f, r := m.Update()
		fwd += f
		right += r
	}

	if m.Moving() {
		t.Errorf("still moving after 10s: %+v", m)
	}
	if fwd <= 1 || right >= -0.5 {
		t.Errorf("travel = (%v, %v), want beyond the first frame's (1, -0.5)", fwd, right)
	}
	// Critically damped: velocity never reverses.
	if math.Signbit(fwd) || !math.Signbit(right) {
		t.Errorf("travel direction flipped: (%v, %v)", fwd, right)
	}
}

func TestMoverFirstFrameUsesImpulse(t *testing.T) {
	m := NewMover(60, 4.0, 1.0)
	m.Impulse(0.25, 0)

	f, r := m.Update()
	if f != 0.25 || r != 0 {
		t.Errorf("first frame = (%v, %v), want (0.25, 0)", f, r)
	}
	if m.Forward.Velocity >= 0.25 {
		t.Errorf("velocity %v did not decay", m.Forward.Velocity)
	}
}

func TestMoverReset(t *testing.T) {
	m := NewMover(60, 4.0, 1.0)
	m.Impulse(3, 3)
	m.Reset()
	if m.Moving() {
		t.Error("Reset left velocity")
	}
	if f, r := m.Update(); f != 0 || r != 0 {
		t.Errorf("after Reset moved (%v, %v)", f, r)
	}
}
