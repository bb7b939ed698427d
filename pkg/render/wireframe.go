package render

import (
	"image"

	"github.com/taigrr/softrend/pkg/math3d"
)

// Triangle is three world-space vertices.
type Triangle struct {
	V [3]math3d.Vec3
}

// Tri creates a Triangle.
func Tri(a, b, c math3d.Vec3) Triangle {
	return Triangle{V: [3]math3d.Vec3{a, b, c}}
}

// MeshSource is anything that can hand out triangles by index.
type MeshSource interface {
	TriangleCount() int
	Triangle(i int) [3]math3d.Vec3
}

// BoundedSource is a MeshSource that also knows its local bounding box.
// DrawMesh uses it to skip meshes outside the view frustum.
type BoundedSource interface {
	MeshSource
	Bounds() (min, max math3d.Vec3)
}

// Mode selects how DrawMesh renders triangles.
type Mode int

const (
	ModeWireframe Mode = iota
	ModeFill
)

func (m Mode) String() string {
	if m == ModeFill {
		return "fill"
	}
	return "wireframe"
}

// Stats counts the work done since the last ResetStats.
type Stats struct {
	Lines         int // segments that reached the framebuffer
	LinesRejected int // segments removed by near or viewport clipping
	Triangles     int // triangles submitted
	MeshesCulled  int // meshes skipped by the frustum test
}

// Wireframe renders 3D line work into a framebuffer.
type Wireframe struct {
	fb       *Framebuffer
	viewport Viewport
	Stats    Stats
}

// NewWireframe creates a wireframe renderer drawing into fb, clipped to the
// screen inset by margin pixels.
func NewWireframe(fb *Framebuffer, margin int) *Wireframe {
	return &Wireframe{
		fb:       fb,
		viewport: NewViewport(fb.Width, fb.Height, margin),
	}
}

// Framebuffer returns the target buffer.
func (w *Wireframe) Framebuffer() *Framebuffer {
	return w.fb
}

// Viewport returns the clipping rectangle.
func (w *Wireframe) Viewport() Viewport {
	return w.viewport
}

// ResetStats zeroes the counters.
func (w *Wireframe) ResetStats() {
	w.Stats = Stats{}
}

// DrawLine3D runs a world-space segment through the full pipeline: view
// transform, near clip, projection, viewport clip and Bresenham. It
// reports whether any pixels were drawn.
func (w *Wireframe) DrawLine3D(p1, p2 math3d.Vec3, cam *Camera, c Color) bool {
	a := WorldToView(p1, cam)
	b := WorldToView(p2, cam)

	a, b, ok := ClipNear(a, b, cam.Near)
	if !ok {
		w.Stats.LinesRejected++
		return false
	}

	sa := ProjectToScreen(a, cam, w.fb.Width, w.fb.Height)
	sb := ProjectToScreen(b, cam, w.fb.Width, w.fb.Height)

	sa, sb, ok = w.viewport.ClipLine(sa, sb)
	if !ok {
		w.Stats.LinesRejected++
		return false
	}

	w.fb.DrawLine(sa.X, sa.Y, sb.X, sb.Y, c)
	w.Stats.Lines++
	return true
}

// DrawTriangle draws the edges (v1,v2), (v1,v3) and (v2,v3).
func (w *Wireframe) DrawTriangle(tri Triangle, cam *Camera, c Color) {
	w.Stats.Triangles++
	w.DrawLine3D(tri.V[0], tri.V[1], cam, c)
	w.DrawLine3D(tri.V[0], tri.V[2], cam, c)
	w.DrawLine3D(tri.V[1], tri.V[2], cam, c)
}

// DrawMesh draws every triangle of mesh after applying transform.
// Meshes that report bounds are skipped when they lie outside the frustum.
func (w *Wireframe) DrawMesh(mesh MeshSource, transform math3d.Transform, cam *Camera, c Color, mode Mode) {
	if b, ok := mesh.(BoundedSource); ok {
		lo, hi := b.Bounds()
		box := NewAABB(lo, hi).Transform(transform)
		if !NewFrustum(cam, w.fb.Width, w.fb.Height).IntersectAABB(box) {
			w.Stats.MeshesCulled++
			return
		}
	}

	n := mesh.TriangleCount()
	for i := range n {
		v := mesh.Triangle(i)
		tri := Tri(transform.Apply(v[0]), transform.Apply(v[1]), transform.Apply(v[2]))
		if mode == ModeFill {
			w.FillTriangle(tri, cam, c)
			continue
		}
		w.DrawTriangle(tri, cam, c)
	}
}

// cubeEdges indexes the 12 edges of the corners returned by cubeCorners.
var cubeEdges = [12][2]int{
	// Back face
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	// Front face
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	// Connecting edges
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

func cubeCorners(center math3d.Vec3, half float64) [8]math3d.Vec3 {
	return [8]math3d.Vec3{
		{X: center.X - half, Y: center.Y - half, Z: center.Z - half}, // 0: bottom-left-back
		{X: center.X + half, Y: center.Y - half, Z: center.Z - half}, // 1: bottom-right-back
		{X: center.X + half, Y: center.Y + half, Z: center.Z - half}, // 2: top-right-back
		{X: center.X - half, Y: center.Y + half, Z: center.Z - half}, // 3: top-left-back
		{X: center.X - half, Y: center.Y - half, Z: center.Z + half}, // 4: bottom-left-front
		{X: center.X + half, Y: center.Y - half, Z: center.Z + half}, // 5: bottom-right-front
		{X: center.X + half, Y: center.Y + half, Z: center.Z + half}, // 6: top-right-front
		{X: center.X - half, Y: center.Y + half, Z: center.Z + half}, // 7: top-left-front
	}
}

// DrawCube draws a wireframe cube.
func (w *Wireframe) DrawCube(center math3d.Vec3, size float64, cam *Camera, c Color) {
	vertices := cubeCorners(center, size/2)
	for _, edge := range cubeEdges {
		w.DrawLine3D(vertices[edge[0]], vertices[edge[1]], cam, c)
	}
}

// DrawAxes draws the coordinate axes at the origin.
func (w *Wireframe) DrawAxes(length float64, cam *Camera) {
	origin := math3d.Zero3()
	w.DrawLine3D(origin, math3d.V3(length, 0, 0), cam, ColorRed)   // X axis
	w.DrawLine3D(origin, math3d.V3(0, length, 0), cam, ColorGreen) // Y axis
	w.DrawLine3D(origin, math3d.V3(0, 0, length), cam, ColorBlue)  // Z axis
}

// DrawGrid draws lines on the y=0 plane from -half to +half every step
// units in both X and Z.
func (w *Wireframe) DrawGrid(half, step float64, cam *Camera, c Color) {
	if step <= 0 || half <= 0 {
		return
	}
	n := int(half / step)
	for i := -n; i <= n; i++ {
		v := float64(i) * step
		w.DrawLine3D(math3d.V3(v, 0, -half), math3d.V3(v, 0, half), cam, c)
		w.DrawLine3D(math3d.V3(-half, 0, v), math3d.V3(half, 0, v), cam, c)
	}
}

// DrawPoint draws a point as a small 3D cross.
func (w *Wireframe) DrawPoint(pos math3d.Vec3, size float64, cam *Camera, c Color) {
	h := size / 2
	w.DrawLine3D(math3d.V3(pos.X-h, pos.Y, pos.Z), math3d.V3(pos.X+h, pos.Y, pos.Z), cam, c)
	w.DrawLine3D(math3d.V3(pos.X, pos.Y-h, pos.Z), math3d.V3(pos.X, pos.Y+h, pos.Z), cam, c)
	w.DrawLine3D(math3d.V3(pos.X, pos.Y, pos.Z-h), math3d.V3(pos.X, pos.Y, pos.Z+h), cam, c)
}

// DrawViewport outlines the clipping rectangle.
func (w *Wireframe) DrawViewport(c Color) {
	w.fb.DrawRectOutline(image.Rectangle{Min: w.viewport.Min, Max: w.viewport.Max}, c)
}

// project maps a world point to the screen, reporting false when it lies
// closer than the near plane.
func (w *Wireframe) project(p math3d.Vec3, cam *Camera) (image.Point, bool) {
	v := WorldToView(p, cam)
	if v.Z < cam.Near {
		return image.Point{}, false
	}
	return ProjectToScreen(v, cam, w.fb.Width, w.fb.Height), true
}
