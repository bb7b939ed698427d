package math3d

import "math"

// Vec2 represents a 2D vector, e.g. a pointer delta in pixels.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Add returns the vector sum a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Scale returns the scalar product a * s.
func (a Vec2) Scale(s float64) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Dot returns the dot product a · b.
func (a Vec2) Dot(b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Cross returns the z component of the 3D cross product of a and b.
func (a Vec2) Cross(b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Len returns the length of the vector.
func (a Vec2) Len() float64 {
	return math.Hypot(a.X, a.Y)
}

// IntersectX returns the point where a→b crosses the vertical line X = x.
// A (nearly) vertical segment returns a unchanged.
func IntersectX(a, b Vec2, x float64) Vec2 {
	dx := b.X - a.X
	if dx*dx < Epsilon {
		return a
	}
	t := (x - a.X) / dx
	return Vec2{X: x, Y: a.Y + t*(b.Y-a.Y)}
}

// IntersectY returns the point where a→b crosses the horizontal line Y = y.
// A (nearly) horizontal segment returns a unchanged.
func IntersectY(a, b Vec2, y float64) Vec2 {
	dy := b.Y - a.Y
	if dy*dy < Epsilon {
		return a
	}
	t := (y - a.Y) / dy
	return Vec2{X: a.X + t*(b.X-a.X), Y: y}
}
