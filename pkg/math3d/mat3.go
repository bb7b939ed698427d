package math3d

import "math"

// Mat3 is a 3x3 matrix stored in row-major order.
//
// Memory layout (indices):
// | 0 1 2 |
// | 3 4 5 |
// | 6 7 8 |
type Mat3 [9]float64

// Identity3 returns the identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Diag3 returns a diagonal (scaling) matrix.
func Diag3(x, y, z float64) Mat3 {
	return Mat3{
		x, 0, 0,
		0, y, 0,
		0, 0, z,
	}
}

// RotateXY returns a rotation in the XY plane (about the Z axis).
func RotateXY(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// RotateXZ returns a rotation in the XZ plane (about the Y axis).
func RotateXZ(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// RotateYZ returns a rotation in the YZ plane (about the X axis).
func RotateYZ(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// Rows builds a matrix whose rows are r0, r1 and r2. For an orthonormal
// basis {right, up, forward} the result maps world directions into that
// basis.
func Rows(r0, r1, r2 Vec3) Mat3 {
	return Mat3{
		r0.X, r0.Y, r0.Z,
		r1.X, r1.Y, r1.Z,
		r2.X, r2.Y, r2.Z,
	}
}

// Mul multiplies two matrices: a * b.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat3) Mul(b Mat3) Mat3 {
	var m Mat3
	for row := range 3 {
		for col := range 3 {
			m[row*3+col] = a[row*3]*b[col] + a[row*3+1]*b[3+col] + a[row*3+2]*b[6+col]
		}
	}
	return m
}

// MulVec3 returns m * v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Determinant returns the determinant of the matrix.
func (m Mat3) Determinant() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Get returns the element at (row, col).
func (m Mat3) Get(row, col int) float64 {
	return m[row*3+col]
}

// Transform is an affine map p ↦ Linear*p + Offset used to place meshes
// in the world.
type Transform struct {
	Linear Mat3
	Offset Vec3
}

// IdentityTransform returns the transform that leaves points unchanged.
func IdentityTransform() Transform {
	return Transform{Linear: Identity3()}
}

// Place returns a transform that scales uniformly, rotates about the Y axis
// by yaw radians and then translates to position.
func Place(position Vec3, yaw, scale float64) Transform {
	return Transform{
		Linear: RotateXZ(yaw).Mul(Diag3(scale, scale, scale)),
		Offset: position,
	}
}

// Apply transforms a point.
func (t Transform) Apply(p Vec3) Vec3 {
	return t.Linear.MulVec3(p).Add(t.Offset)
}

// Then returns the transform that applies t first and next second.
func (t Transform) Then(next Transform) Transform {
	return Transform{
		Linear: next.Linear.Mul(t.Linear),
		Offset: next.Linear.MulVec3(t.Offset).Add(next.Offset),
	}
}
