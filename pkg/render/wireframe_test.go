package render

import (
	"image"
	"testing"

	"github.com/taigrr/softrend/pkg/math3d"
)

// triList is a minimal MeshSource.
type triList []Triangle

func (l triList) TriangleCount() int            { return len(l) }
func (l triList) Triangle(i int) [3]math3d.Vec3 { return l[i].V }

// boxedList reports bounds so DrawMesh can cull it.
type boxedList struct {
	triList
	min, max math3d.Vec3
}

func (b boxedList) Bounds() (math3d.Vec3, math3d.Vec3) { return b.min, b.max }

func newTestWireframe() (*Wireframe, *Framebuffer) {
	fb := NewFramebuffer(80, 60)
	return NewWireframe(fb, DefaultMargin), fb
}

func TestDrawLine3DAhead(t *testing.T) {
	w, fb := newTestWireframe()
	cam := NewCamera()

	if !w.DrawLine3D(math3d.V3(0, 0, 5), math3d.V3(0, 0, 50), cam, ColorWhite) {
		t.Fatal("segment ahead of the camera was rejected")
	}

	lit := litPixels(fb)
	if len(lit) == 0 {
		t.Fatal("no pixels drawn")
	}
	for p := range lit {
		if p.X != 40 {
			t.Errorf("pixel %v off the center column", p)
		}
	}
	// Near end lower on screen, far end approaching the horizon.
	want := pointSet()
	for y := 30; y <= 37; y++ {
		want[image.Pt(40, y)] = true
	}
	if len(lit) != len(want) {
		t.Errorf("got %v, want %v", sortedPoints(lit), sortedPoints(want))
	}
	if w.Stats.Lines != 1 || w.Stats.LinesRejected != 0 {
		t.Errorf("stats = %+v, want 1 line drawn", w.Stats)
	}
}

func TestDrawLine3DBehind(t *testing.T) {
	w, fb := newTestWireframe()
	cam := NewCamera()

	if w.DrawLine3D(math3d.V3(0, 0, -5), math3d.V3(3, 0, -5), cam, ColorWhite) {
		t.Error("segment behind the camera was drawn")
	}
	if n := fb.CountNonZero(); n != 0 {
		t.Errorf("got %d pixels, want 0", n)
	}
	if w.Stats.LinesRejected != 1 {
		t.Errorf("LinesRejected = %d, want 1", w.Stats.LinesRejected)
	}
}

func TestDrawLine3DCrossingNearPlane(t *testing.T) {
	w, fb := newTestWireframe()
	cam := NewCamera()

	if !w.DrawLine3D(math3d.V3(0, 0, -5), math3d.V3(0, 0, 5), cam, ColorWhite) {
		t.Fatal("segment crossing the near plane was rejected")
	}
	if fb.CountNonZero() == 0 {
		t.Error("no pixels drawn")
	}
	assertInsideViewport(t, w, fb)
}

func TestDrawLine3DOffScreen(t *testing.T) {
	w, fb := newTestWireframe()
	cam := NewCamera()

	// Far to the camera's right, entirely outside the viewport.
	if w.DrawLine3D(math3d.V3(-100, 1, 5), math3d.V3(-100, 3, 6), cam, ColorWhite) {
		t.Error("off-screen segment was drawn")
	}
	if n := fb.CountNonZero(); n != 0 {
		t.Errorf("got %d pixels, want 0", n)
	}
}

func TestDrawTriangle(t *testing.T) {
	w, fb := newTestWireframe()
	cam := NewCamera()

	w.DrawTriangle(Tri(math3d.V3(-1, 0, 5), math3d.V3(1, 0, 5), math3d.V3(0, 2, 5)), cam, ColorGreen)

	if w.Stats.Triangles != 1 || w.Stats.Lines != 3 {
		t.Errorf("stats = %+v, want 1 triangle, 3 lines", w.Stats)
	}
	lit := litPixels(fb)
	for _, p := range []image.Point{{47, 37}, {32, 37}, {40, 22}} {
		if !lit[p] {
			t.Errorf("vertex %v not plotted", p)
		}
	}
	// Outline only: the centroid stays empty.
	if lit[image.Pt(40, 32)] {
		t.Error("wireframe triangle filled its interior")
	}

	w.ResetStats()
	if w.Stats != (Stats{}) {
		t.Errorf("ResetStats left %+v", w.Stats)
	}
}

func TestDrawMesh(t *testing.T) {
	cam := NewCamera()
	tris := triList{
		Tri(math3d.V3(-1, 0, 0), math3d.V3(1, 0, 0), math3d.V3(0, 2, 0)),
		Tri(math3d.V3(-1, 0, 0), math3d.V3(0, 2, 0), math3d.V3(-1, 2, 0)),
	}

	t.Run("placed in front", func(t *testing.T) {
		w, fb := newTestWireframe()
		w.DrawMesh(tris, math3d.Place(math3d.V3(0, 0, 5), 0, 1), cam, ColorWhite, ModeWireframe)
		if w.Stats.Triangles != 2 || w.Stats.Lines != 6 {
			t.Errorf("stats = %+v, want 2 triangles, 6 lines", w.Stats)
		}
		if fb.CountNonZero() == 0 {
			t.Error("no pixels drawn")
		}
	})

	t.Run("fill mode", func(t *testing.T) {
		w, fb := newTestWireframe()
		w.DrawMesh(tris, math3d.Place(math3d.V3(0, 0, 5), 0, 1), cam, ColorWhite, ModeFill)
		if fb.GetPixel(40, 32) != ColorWhite {
			t.Error("fill mode left the interior empty")
		}
	})

	t.Run("culled behind", func(t *testing.T) {
		w, fb := newTestWireframe()
		mesh := boxedList{triList: tris, min: math3d.V3(-1, 0, 0), max: math3d.V3(1, 2, 0)}
		w.DrawMesh(mesh, math3d.Place(math3d.V3(0, 0, -5), 0, 1), cam, ColorWhite, ModeWireframe)
		if w.Stats.MeshesCulled != 1 || w.Stats.Triangles != 0 {
			t.Errorf("stats = %+v, want mesh culled", w.Stats)
		}
		if n := fb.CountNonZero(); n != 0 {
			t.Errorf("got %d pixels, want 0", n)
		}
	})

	t.Run("bounded but visible", func(t *testing.T) {
		w, _ := newTestWireframe()
		mesh := boxedList{triList: tris, min: math3d.V3(-1, 0, 0), max: math3d.V3(1, 2, 0)}
		w.DrawMesh(mesh, math3d.Place(math3d.V3(0, 0, 5), 0, 1), cam, ColorWhite, ModeWireframe)
		if w.Stats.MeshesCulled != 0 || w.Stats.Triangles != 2 {
			t.Errorf("stats = %+v, want 2 triangles drawn", w.Stats)
		}
	})
}

func TestDrawGridStaysInViewport(t *testing.T) {
	w, fb := newTestWireframe()
	cam := NewCamera()

	w.DrawGrid(40, 1, cam, ColorGray)

	if w.Stats.Lines == 0 {
		t.Error("no grid lines drawn")
	}
	if w.Stats.LinesRejected == 0 {
		t.Error("grid lines behind the camera should be rejected")
	}
	assertInsideViewport(t, w, fb)
}

func TestDrawHelpers(t *testing.T) {
	cam := NewCamera()
	cam.Position = math3d.V3(3, 3, -6)

	tests := []struct {
		name string
		draw func(w *Wireframe)
	}{
		{"cube", func(w *Wireframe) { w.DrawCube(math3d.V3(0, 0, 0), 2, cam, ColorWhite) }},
		{"axes", func(w *Wireframe) { w.DrawAxes(2, cam) }},
		{"point", func(w *Wireframe) { w.DrawPoint(math3d.V3(1, 1, 1), 0.5, cam, ColorYellow) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, fb := newTestWireframe()
			tc.draw(w)
			if fb.CountNonZero() == 0 {
				t.Error("nothing drawn")
			}
			assertInsideViewport(t, w, fb)
		})
	}
}

func TestDrawViewport(t *testing.T) {
	w, fb := newTestWireframe()
	w.DrawViewport(ColorRed)

	for _, p := range []image.Point{{10, 10}, {70, 10}, {70, 50}, {10, 50}} {
		if fb.GetPixel(p.X, p.Y) != ColorRed {
			t.Errorf("corner %v not drawn", p)
		}
	}
}

func assertInsideViewport(t *testing.T, w *Wireframe, fb *Framebuffer) {
	t.Helper()
	vp := w.Viewport()
	for p := range litPixels(fb) {
		if !vp.Contains(p) {
			t.Errorf("pixel %v outside viewport %v..%v", p, vp.Min, vp.Max)
			return
		}
	}
}

func BenchmarkDrawLine3D(b *testing.B) {
	fb := NewFramebuffer(320, 240)
	w := NewWireframe(fb, DefaultMargin)
	cam := NewCamera()
	for b.Loop() {
		w.DrawLine3D(math3d.V3(-5, 0, 5), math3d.V3(5, 2, 30), cam, ColorWhite)
	}
}

func BenchmarkDrawGrid(b *testing.B) {
	fb := NewFramebuffer(320, 240)
	w := NewWireframe(fb, DefaultMargin)
	cam := NewCamera()
	for b.Loop() {
		w.DrawGrid(40, 1, cam, ColorGray)
	}
}
