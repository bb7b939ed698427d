package models

import (
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/softrend/pkg/math3d"
)

// LoadGLB loads a binary GLTF (.glb) or JSON GLTF (.gltf) file. All
// triangle primitives of all meshes are merged into one Mesh.
func LoadGLB(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh, err := FromGLTF(doc)
	if err != nil {
		return nil, err
	}
	mesh.Name = filepath.Base(path)
	return mesh, nil
}

// FromGLTF extracts triangle geometry from a decoded document.
func FromGLTF(doc *gltf.Document) (*Mesh, error) {
	mesh := NewMesh("")
	for _, m := range doc.Meshes {
		if err := processMesh(doc, m, mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}
	if err := mesh.Validate(); err != nil {
		return nil, err
	}
	mesh.CalculateBounds()
	return mesh, nil
}

// processMesh appends the geometry of every triangle primitive in m.
func processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			// Skip non-triangle primitives (lines, points, strips)
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		if posIdx < 0 || posIdx >= len(doc.Accessors) {
			return fmt.Errorf("position accessor %d of %d: %w", posIdx, len(doc.Accessors), ErrFaceIndex)
		}

		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		// Faces are 1-based.
		base := len(mesh.Vertices) + 1
		for _, p := range positions {
			mesh.AddVertex(math3d.V3(float64(p[0]), float64(p[1]), float64(p[2])))
		}

		if prim.Indices == nil {
			// No indices, sequential triangles
			for i := 0; i+2 < len(positions); i += 3 {
				mesh.AddFace(base+i, base+i+1, base+i+2)
			}
			continue
		}

		if *prim.Indices < 0 || *prim.Indices >= len(doc.Accessors) {
			return fmt.Errorf("index accessor %d of %d: %w", *prim.Indices, len(doc.Accessors), ErrFaceIndex)
		}
		indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return fmt.Errorf("read indices: %w", err)
		}
		for i := 0; i+2 < len(indices); i += 3 {
			mesh.AddFace(base+int(indices[i]), base+int(indices[i+1]), base+int(indices[i+2]))
		}
	}
	return nil
}
