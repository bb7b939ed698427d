package math3d

import (
	"testing"
)

func BenchmarkMat3Mul(b *testing.B) {
	m1 := RotateXZ(0.5)
	m2 := RotateYZ(0.25)

	for b.Loop() {
		_ = m1.Mul(m2)
	}
}

func BenchmarkMat3MulVec3(b *testing.B) {
	m := RotateXZ(0.5).Mul(Diag3(2, 2, 2))
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = m.MulVec3(v)
	}
}

func BenchmarkTransformApply(b *testing.B) {
	t := Place(V3(1, 2, 3), 0.5, 2)
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = t.Apply(v)
	}
}

func BenchmarkVec3Normalize(b *testing.B) {
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = v.Normalize()
	}
}

func BenchmarkVec3Cross(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Cross(v2)
	}
}

func BenchmarkVec3RotateAround(b *testing.B) {
	v := V3(0, 0, 1)
	axis := Up()

	for b.Loop() {
		_ = v.RotateAround(axis, 0.01)
	}
}
