package viewer

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// axis carries a velocity that a critically damped spring pulls back to 0.
type axis struct {
	Velocity float64
	accel    float64 // spring velocity of Velocity itself
	spring   harmonica.Spring
}

func newAxis(fps int, frequency, damping float64) axis {
	return axis{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// step returns this frame's displacement and decays the velocity.
func (a *axis) step() float64 {
	d := a.Velocity
	a.Velocity, a.accel = a.spring.Update(a.Velocity, a.accel, 0)
	return d
}

// Mover turns discrete key presses into smooth camera motion. Each press
// adds velocity along the ground-forward or right axis; the velocity then
// eases back to rest.
type Mover struct {
	Forward, Right axis

	fps                int
	frequency, damping float64
}

// NewMover creates a mover updated fps times per second.
func NewMover(fps int, frequency, damping float64) *Mover {
	m := &Mover{fps: fps, frequency: frequency, damping: damping}
	m.Reset()
	return m
}

// Impulse adds velocity in units per frame.
func (m *Mover) Impulse(forward, right float64) {
	m.Forward.Velocity += forward
	m.Right.Velocity += right
}

// Update advances one frame and returns the displacement along each axis.
func (m *Mover) Update() (forward, right float64) {
	return m.Forward.step(), m.Right.step()
}

// Moving reports whether any velocity remains.
func (m *Mover) Moving() bool {
	const rest = 1e-6
	return math.Abs(m.Forward.Velocity) > rest || math.Abs(m.Right.Velocity) > rest
}

// Reset stops all motion.
func (m *Mover) Reset() {
	m.Forward = newAxis(m.fps, m.frequency, m.damping)
	m.Right = newAxis(m.fps, m.frequency, m.damping)
}
