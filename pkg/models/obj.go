package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/softrend/pkg/math3d"
)

// LoadOBJ loads a Wavefront OBJ file.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	mesh, err := ReadOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if mesh.Name == "" {
		mesh.Name = filepath.Base(path)
	}
	return mesh, nil
}

// ReadOBJ parses OBJ geometry from r. Only vertex positions ("v") and
// faces ("f") are used; polygons are split into triangle fans. Face
// corners may use the v, v/vt, v//vn or v/vt/vn forms, and negative
// indices count back from the latest vertex.
func ReadOBJ(r io.Reader) (*Mesh, error) {
	mesh := NewMesh("")
	sc := bufio.NewScanner(r)
	line := 0

	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "o":
			if len(fields) > 1 && mesh.Name == "" {
				mesh.Name = strings.Join(fields[1:], " ")
			}
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			mesh.AddVertex(v)
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs 3 vertices, got %d", line, len(fields)-1)
			}
			idx := make([]int, 0, len(fields)-1)
			for _, corner := range fields[1:] {
				i, err := parseCorner(corner, len(mesh.Vertices))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				idx = append(idx, i)
			}
			for k := 1; k+1 < len(idx); k++ {
				mesh.AddFace(idx[0], idx[k], idx[k+1])
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan obj: %w", err)
	}

	if err := mesh.Validate(); err != nil {
		return nil, err
	}
	mesh.CalculateBounds()
	return mesh, nil
}

func parseVertex(fields []string) (math3d.Vec3, error) {
	if len(fields) < 3 {
		return math3d.Vec3{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}
	var c [3]float64
	for i := range c {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("parse vertex: %w", err)
		}
		c[i] = f
	}
	return math3d.V3(c[0], c[1], c[2]), nil
}

// parseCorner returns the 1-based vertex index of a face corner.
func parseCorner(s string, nverts int) (int, error) {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse face index: %w", err)
	}
	if i < 0 {
		i = nverts + 1 + i
	}
	if i < 1 || i > nverts {
		return 0, fmt.Errorf("vertex %s of %d: %w", s, nverts, ErrFaceIndex)
	}
	return i, nil
}
