// Package models provides triangle meshes and the loaders that build them.
package models

import (
	"errors"
	"fmt"

	"github.com/taigrr/softrend/pkg/math3d"
)

var (
	// ErrFaceIndex is returned when a face refers to a vertex that does not
	// exist.
	ErrFaceIndex = errors.New("face index out of range")

	// ErrUnsupportedFormat is returned by Load for unknown file extensions.
	ErrUnsupportedFormat = errors.New("unsupported model format")
)

// Mesh is a triangle mesh. Faces index Vertices starting at 1, the
// convention of OBJ files and of the built-in assets.
type Mesh struct {
	Name     string
	Vertices []math3d.Vec3
	Faces    []Face

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// Face is a triangle of 1-based vertex indices.
type Face struct {
	V [3]int
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// AddVertex appends a vertex and returns its 1-based index.
func (m *Mesh) AddVertex(v math3d.Vec3) int {
	m.Vertices = append(m.Vertices, v)
	return len(m.Vertices)
}

// AddFace appends a triangle of 1-based vertex indices.
func (m *Mesh) AddFace(a, b, c int) {
	m.Faces = append(m.Faces, Face{V: [3]int{a, b, c}})
}

// Validate reports the first face that refers to a missing vertex.
func (m *Mesh) Validate() error {
	n := len(m.Vertices)
	for i, f := range m.Faces {
		for _, idx := range f.V {
			if idx < 1 || idx > n {
				return fmt.Errorf("face %d: vertex %d of %d: %w", i+1, idx, n, ErrFaceIndex)
			}
		}
	}
	return nil
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		m.BoundsMin, m.BoundsMax = math3d.Vec3{}, math3d.Vec3{}
		return
	}

	m.BoundsMin = m.Vertices[0]
	m.BoundsMax = m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v)
		m.BoundsMax = m.BoundsMax.Max(v)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// Bounds returns the axis-aligned bounding box.
func (m *Mesh) Bounds() (min, max math3d.Vec3) {
	return m.BoundsMin, m.BoundsMax
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Triangle resolves face i to its three vertex positions. Indices are not
// checked; loaders call Validate.
func (m *Mesh) Triangle(i int) [3]math3d.Vec3 {
	f := m.Faces[i].V
	return [3]math3d.Vec3{
		m.Vertices[f[0]-1],
		m.Vertices[f[1]-1],
		m.Vertices[f[2]-1],
	}
}

// Transform applies t to all vertices in place.
func (m *Mesh) Transform(t math3d.Transform) {
	for i, v := range m.Vertices {
		m.Vertices[i] = t.Apply(v)
	}
	m.CalculateBounds()
}

// FitTransform returns the transform that centers the mesh on the origin
// and scales its largest extent to size.
func (m *Mesh) FitTransform(size float64) math3d.Transform {
	s := m.Size()
	extent := max(s.X, s.Y, s.Z)
	scale := 1.0
	if extent > math3d.Epsilon {
		scale = size / extent
	}
	return math3d.Transform{
		Linear: math3d.Diag3(scale, scale, scale),
		Offset: m.Center().Scale(-scale),
	}
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]math3d.Vec3, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	return clone
}

// Cube returns an axis-aligned cube of the given edge length centered on
// the origin: 8 vertices, 12 triangles.
func Cube(size float64) *Mesh {
	h := size / 2
	m := NewMesh("cube")
	for _, v := range [8]math3d.Vec3{
		{X: -h, Y: -h, Z: -h},
		{X: h, Y: -h, Z: -h},
		{X: h, Y: h, Z: -h},
		{X: -h, Y: h, Z: -h},
		{X: -h, Y: -h, Z: h},
		{X: h, Y: -h, Z: h},
		{X: h, Y: h, Z: h},
		{X: -h, Y: h, Z: h},
	} {
		m.AddVertex(v)
	}
	for _, f := range [12][3]int{
		{1, 2, 3}, {1, 3, 4}, // back
		{6, 5, 8}, {6, 8, 7}, // front
		{5, 1, 4}, {5, 4, 8}, // left
		{2, 6, 7}, {2, 7, 3}, // right
		{4, 3, 7}, {4, 7, 8}, // top
		{5, 6, 2}, {5, 2, 1}, // bottom
	} {
		m.AddFace(f[0], f[1], f[2])
	}
	m.CalculateBounds()
	return m
}
