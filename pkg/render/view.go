package render

import (
	"image"
	"math"

	"github.com/taigrr/softrend/pkg/math3d"
)

// WorldToView transforms a world point into camera space: translate by
// -position, then project onto {right, up, forward}. +Z is ahead of the
// camera. The transform is a rigid change of basis, so lengths and angles
// are preserved.
func WorldToView(p math3d.Vec3, cam *Camera) math3d.Vec3 {
	rel := p.Sub(cam.Position)
	return math3d.V3(
		rel.Dot(cam.Right()),
		rel.Dot(cam.Up),
		rel.Dot(cam.Forward),
	)
}

// ViewBasis returns the world→view rotation as a matrix whose rows are
// right, up and forward. Useful when transforming many points with the
// same camera.
func ViewBasis(cam *Camera) math3d.Mat3 {
	return math3d.Rows(cam.Right(), cam.Up, cam.Forward)
}

// ProjectToScreen maps a camera-space point to integer pixel coordinates.
// The perspective divide uses max(z, near), so points at or behind the near
// plane never flip sign or blow up. Results are truncated toward zero and
// saturated to the int32 range.
func ProjectToScreen(p math3d.Vec3, cam *Camera, width, height int) image.Point {
	f := cam.FocalLength()
	a := float64(height) / float64(width)

	px := a * f * p.X
	py := f * p.Y

	z := math.Max(p.Z, cam.Near)
	if z > 0 {
		px /= z
		py /= z
	}

	xs := (px + 1) * 0.5 * float64(width)
	ys := (1 - py) * 0.5 * float64(height)

	return image.Pt(saturate(xs), saturate(ys))
}

// saturate truncates v toward zero and clamps it to the int32 range.
func saturate(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	}
	return int(v)
}
