package render

import (
	"math"

	"github.com/taigrr/softrend/pkg/math3d"
)

// Plane is the set of points p with Normal·p + D = 0.
type Plane struct {
	Normal math3d.Vec3
	D      float64
}

// Normalize normalizes the plane equation so the normal has unit length.
func (p *Plane) Normalize() {
	l := p.Normal.Len()
	if l == 0 {
		return
	}
	p.Normal = p.Normal.Scale(1.0 / l)
	p.D /= l
}

// DistanceToPoint returns the signed distance from the plane to a point.
// Positive = in front (same side as normal), negative = behind.
func (p Plane) DistanceToPoint(point math3d.Vec3) float64 {
	return p.Normal.Dot(point) + p.D
}

// Frustum is the camera's view volume as six world-space planes with
// inward normals, indexed by the Frustum* constants.
type Frustum struct {
	Planes [6]Plane
}

// FrustumPlane indices for clarity.
const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumNear
	FrustumFar
)

// NewFrustum builds the world-space frustum seen by cam on a width×height
// pixel buffer. The side planes follow the projection in ProjectToScreen:
// a camera-space point is visible when |x| <= z*tx and |y| <= z*ty.
func NewFrustum(cam *Camera, width, height int) Frustum {
	ty := math.Tan(0.5 * cam.FOVY * math.Pi / 180)
	tx := ty
	if height > 0 {
		tx = ty * float64(width) / float64(height)
	}

	// Camera-space planes, normals pointing inward.
	view := [6]Plane{
		FrustumLeft:   {Normal: math3d.V3(1, 0, tx)},
		FrustumRight:  {Normal: math3d.V3(-1, 0, tx)},
		FrustumBottom: {Normal: math3d.V3(0, 1, ty)},
		FrustumTop:    {Normal: math3d.V3(0, -1, ty)},
		FrustumNear:   {Normal: math3d.V3(0, 0, 1), D: -cam.Near},
		FrustumFar:    {Normal: math3d.V3(0, 0, -1), D: cam.Far},
	}

	right := cam.Right()
	var f Frustum
	for i, p := range view {
		n := right.Scale(p.Normal.X).
			Add(cam.Up.Scale(p.Normal.Y)).
			Add(cam.Forward.Scale(p.Normal.Z))
		f.Planes[i] = Plane{Normal: n, D: p.D - n.Dot(cam.Position)}
		f.Planes[i].Normalize()
	}
	return f
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math3d.Vec3
	Max math3d.Vec3
}

// NewAABB creates an AABB from min and max points.
func NewAABB(min, max math3d.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// Center returns the center of the AABB.
func (b AABB) Center() math3d.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Transform returns the box bounding all 8 corners of b after t.
func (b AABB) Transform(t math3d.Transform) AABB {
	var out AABB
	for i := range 8 {
		c := b.Min
		if i&1 != 0 {
			c.X = b.Max.X
		}
		if i&2 != 0 {
			c.Y = b.Max.Y
		}
		if i&4 != 0 {
			c.Z = b.Max.Z
		}
		p := t.Apply(c)
		if i == 0 {
			out = AABB{Min: p, Max: p}
			continue
		}
		out.Min = out.Min.Min(p)
		out.Max = out.Max.Max(p)
	}
	return out
}

// IntersectAABB reports whether any part of box may be visible. A box is
// rejected only when its corner furthest along some plane normal is still
// behind that plane, so boxes near frustum corners can pass conservatively.
func (f Frustum) IntersectAABB(box AABB) bool {
	for _, pl := range f.Planes {
		far := math3d.V3(
			selectComponent(pl.Normal.X >= 0, box.Max.X, box.Min.X),
			selectComponent(pl.Normal.Y >= 0, box.Max.Y, box.Min.Y),
			selectComponent(pl.Normal.Z >= 0, box.Max.Z, box.Min.Z),
		)
		if pl.DistanceToPoint(far) < 0 {
			return false
		}
	}
	return true
}

// ContainsPoint reports whether p lies on the inner side of all six planes.
func (f Frustum) ContainsPoint(p math3d.Vec3) bool {
	for _, pl := range f.Planes {
		if pl.DistanceToPoint(p) < 0 {
			return false
		}
	}
	return true
}

func selectComponent(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}
