package render

import (
	"image"
	"math"

	"github.com/taigrr/softrend/pkg/math3d"
)

// DefaultMargin is the inset, in pixels, of the drawable rectangle from
// each screen edge.
const DefaultMargin = 10

// parallelEps is the threshold under which a Liang-Barsky edge coefficient
// is treated as zero.
const parallelEps = 1e-12

// ClipNear clips a camera-space segment against the plane z = near.
// It reports false when the whole segment lies at or behind the plane.
// An endpoint in front of the plane (z < near) is replaced by the crossing
// point; the other endpoint is returned unchanged.
func ClipNear(p1, p2 math3d.Vec3, near float64) (math3d.Vec3, math3d.Vec3, bool) {
	if p1.Z <= near && p2.Z <= near {
		return p1, p2, false
	}
	if p1.Z < near {
		p1 = math3d.IntersectZ(p2, p1, near)
	}
	if p2.Z < near {
		p2 = math3d.IntersectZ(p1, p2, near)
	}
	return p1, p2, true
}

// Viewport is the drawable rectangle in pixel space. Both Min and Max are
// inclusive.
type Viewport struct {
	Min, Max image.Point
}

// NewViewport returns the screen rectangle inset by margin on every side.
func NewViewport(width, height, margin int) Viewport {
	return Viewport{
		Min: image.Pt(margin, margin),
		Max: image.Pt(width-margin, height-margin),
	}
}

// Rect returns the viewport as an image.Rectangle (Max exclusive).
func (v Viewport) Rect() image.Rectangle {
	return image.Rectangle{Min: v.Min, Max: v.Max.Add(image.Pt(1, 1))}
}

// Empty reports whether the viewport contains no pixels.
func (v Viewport) Empty() bool {
	return v.Max.X < v.Min.X || v.Max.Y < v.Min.Y
}

// Contains reports whether p lies inside the viewport.
func (v Viewport) Contains(p image.Point) bool {
	return p.X >= v.Min.X && p.X <= v.Max.X && p.Y >= v.Min.Y && p.Y <= v.Max.Y
}

// ClipLine clips the segment a→b to the viewport using the parametric
// (Liang-Barsky) method. It reports false when the segment misses the
// viewport; otherwise the returned endpoints lie inside it.
func (v Viewport) ClipLine(a, b image.Point) (image.Point, image.Point, bool) {
	if v.Empty() {
		return a, b, false
	}
	if v.Contains(a) && v.Contains(b) {
		return a, b, true
	}

	x1, y1 := float64(a.X), float64(a.Y)
	dx := float64(b.X) - x1
	dy := float64(b.Y) - y1

	// p*u <= q for each half-plane: left, right, top, bottom.
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{
		x1 - float64(v.Min.X),
		float64(v.Max.X) - x1,
		y1 - float64(v.Min.Y),
		float64(v.Max.Y) - y1,
	}

	u1, u2 := 0.0, 1.0
	for i := range 4 {
		if math.Abs(p[i]) < parallelEps {
			if q[i] < 0 {
				return a, b, false
			}
			continue
		}
		u := q[i] / p[i]
		if p[i] < 0 {
			u1 = math.Max(u1, u)
		} else {
			u2 = math.Min(u2, u)
		}
		if u1 > u2 {
			return a, b, false
		}
	}

	ca := image.Pt(int(math.Round(x1+u1*dx)), int(math.Round(y1+u1*dy)))
	cb := image.Pt(int(math.Round(x1+u2*dx)), int(math.Round(y1+u2*dy)))
	return v.clamp(ca), v.clamp(cb), true
}

// clamp pins p into the viewport against floating-point error at the edges.
func (v Viewport) clamp(p image.Point) image.Point {
	p.X = min(max(p.X, v.Min.X), v.Max.X)
	p.Y = min(max(p.Y, v.Min.Y), v.Max.Y)
	return p
}
