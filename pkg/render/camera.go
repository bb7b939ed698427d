package render

import (
	"fmt"
	"math"

	"github.com/taigrr/softrend/pkg/math3d"
)

// Default camera settings.
const (
	DefaultFOVY        = 80.0 // degrees
	DefaultNear        = 0.5
	DefaultFar         = 100.0
	DefaultSensitivity = 1e-3 // radians per pixel of pointer motion

	// MaxPitchY bounds |forward.Y| so forward never becomes parallel to the
	// world up axis and the derived right vector stays well defined.
	MaxPitchY = 0.9
)

// Camera is a pinhole camera described by a position and an orthonormal
// forward/up pair. The right vector is always derived, never stored.
type Camera struct {
	// Pose in world space
	Position math3d.Vec3
	Forward  math3d.Vec3 // unit
	Up       math3d.Vec3 // unit, orthogonal to Forward

	// Lens
	FOVY float64 // Vertical field of view in degrees
	Near float64 // Near clipping plane (camera-space z)
	Far  float64 // Far plane distance

	// Sensitivity scales pointer deltas into rotation angles (radians/px).
	Sensitivity float64
}

// NewCamera creates a new camera with default settings.
func NewCamera() *Camera {
	c := &Camera{}
	c.SetDefault()
	return c
}

// SetDefault resets the camera: eye one unit above the origin, looking
// down +Z with +Y up.
func (c *Camera) SetDefault() {
	c.Position = math3d.V3(0, 1, 0)
	c.Forward = math3d.V3(0, 0, 1)
	c.Up = math3d.V3(0, 1, 0)
	c.FOVY = DefaultFOVY
	c.Near = DefaultNear
	c.Far = DefaultFar
	c.Sensitivity = DefaultSensitivity
}

// Right returns normalize(forward × up).
func (c *Camera) Right() math3d.Vec3 {
	return c.Forward.Cross(c.Up).Normalize()
}

// GroundForward returns the forward direction projected onto the XZ plane.
func (c *Camera) GroundForward() math3d.Vec3 {
	g := math3d.V3(c.Forward.X, 0, c.Forward.Z).Normalize()
	if g == (math3d.Vec3{}) {
		return math3d.Forward()
	}
	return g
}

// UpdateFromPointerDelta turns a relative pointer motion (pixels) into a
// new orientation: yaw about world up by -s*dx, then pitch about the
// derived right axis by -s*dy. forward.Y is clamped to ±MaxPitchY and the
// basis is re-orthonormalized.
func (c *Camera) UpdateFromPointerDelta(delta math3d.Vec2) {
	s := c.Sensitivity
	if s == 0 {
		s = DefaultSensitivity
	}
	worldUp := math3d.Up()
	prevRight := c.Right()

	c.Forward = c.Forward.RotateAround(worldUp, -s*delta.X).Normalize()

	right := rightFrom(c.Forward, worldUp, prevRight)
	c.Forward = c.Forward.RotateAround(right, -s*delta.Y).Normalize()
	c.Forward = clampPitch(c.Forward)

	right = rightFrom(c.Forward, worldUp, right)
	c.Up = right.Cross(c.Forward).Normalize()
}

// rightFrom derives the camera right vector from forward and world up.
// When the two are (nearly) parallel the cross product vanishes, so the
// fallback (or world +X) is used instead.
func rightFrom(forward, worldUp, fallback math3d.Vec3) math3d.Vec3 {
	r := forward.Cross(worldUp)
	if r.Len() < 1e-6 {
		if fallback.Len() < 1e-6 {
			return math3d.Right()
		}
		return fallback.Normalize()
	}
	return r.Normalize()
}

// clampPitch limits forward.Y to ±MaxPitchY, keeping the horizontal
// heading and unit length.
func clampPitch(f math3d.Vec3) math3d.Vec3 {
	if math.Abs(f.Y) <= MaxPitchY {
		return f
	}
	y := math.Copysign(MaxPitchY, f.Y)
	h := math.Hypot(f.X, f.Z)
	if h < 1e-12 {
		// Straight up or down: pick +Z as the heading.
		return math3d.V3(0, y, math.Sqrt(1-y*y))
	}
	k := math.Sqrt(1-y*y) / h
	return math3d.V3(f.X*k, y, f.Z*k)
}

// Translate moves the camera by offset.
func (c *Camera) Translate(offset math3d.Vec3) {
	c.Position = c.Position.Add(offset)
}

// MoveForward moves along the ground-projected forward direction.
func (c *Camera) MoveForward(distance float64) {
	c.Translate(c.GroundForward().Scale(distance))
}

// MoveRight strafes along the derived right vector.
func (c *Camera) MoveRight(distance float64) {
	c.Translate(c.Right().Scale(distance))
}

// Describe returns the camera pose and derived right vector.
func (c *Camera) Describe() string {
	r := c.Right()
	return fmt.Sprintf(
		"position = (%.2f, %.2f, %.2f)\nforward  = (%.2f, %.2f, %.2f)\nup       = (%.2f, %.2f, %.2f)\nright    = (%.2f, %.2f, %.2f)",
		c.Position.X, c.Position.Y, c.Position.Z,
		c.Forward.X, c.Forward.Y, c.Forward.Z,
		c.Up.X, c.Up.Y, c.Up.Z,
		r.X, r.Y, r.Z,
	)
}

// String implements fmt.Stringer.
func (c *Camera) String() string {
	return c.Describe()
}

// FocalLength returns 1/tan(fovy/2).
func (c *Camera) FocalLength() float64 {
	return 1 / math.Tan(0.5*c.FOVY*math.Pi/180)
}
