package models

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Load picks a loader by file extension.
func Load(path string) (*Mesh, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		return LoadOBJ(path)
	case ".glb", ".gltf":
		return LoadGLB(path)
	default:
		return nil, fmt.Errorf("load %s: %q: %w", path, ext, ErrUnsupportedFormat)
	}
}
