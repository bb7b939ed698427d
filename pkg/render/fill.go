package render

import "image"

// edge holds the coefficients of the edge function A*x + B*y + C for the
// directed edge a→b. Its value at p is cross(b-a, p-a): positive on one
// side of the edge, negative on the other, zero on the line.
type edge struct {
	A, B, C float64
}

func edgeCoeffs(a, b image.Point) edge {
	ax, ay := float64(a.X), float64(a.Y)
	bx, by := float64(b.X), float64(b.Y)
	return edge{
		A: ay - by,
		B: bx - ax,
		C: ax*by - ay*bx,
	}
}

func (e edge) at(x, y float64) float64 {
	return e.A*x + e.B*y + e.C
}

// FillTriangle fills the projected triangle with a flat colour. There is
// no depth test; later triangles overwrite earlier ones. A triangle with
// any vertex closer than the near plane is skipped. Either winding fills.
// It reports whether any pixel was written.
func (w *Wireframe) FillTriangle(tri Triangle, cam *Camera, c Color) bool {
	w.Stats.Triangles++

	var s [3]image.Point
	for i, v := range tri.V {
		p, ok := w.project(v, cam)
		if !ok {
			return false
		}
		s[i] = p
	}

	e0 := edgeCoeffs(s[1], s[2])
	e1 := edgeCoeffs(s[2], s[0])
	e2 := edgeCoeffs(s[0], s[1])
	if e0.at(float64(s[0].X), float64(s[0].Y)) == 0 {
		// Degenerate: all three points on a line.
		return false
	}

	vp := w.viewport
	minX := max(min(s[0].X, s[1].X, s[2].X), vp.Min.X)
	maxX := min(max(s[0].X, s[1].X, s[2].X), vp.Max.X)
	minY := max(min(s[0].Y, s[1].Y, s[2].Y), vp.Min.Y)
	maxY := min(max(s[0].Y, s[1].Y, s[2].Y), vp.Max.Y)
	if minX > maxX || minY > maxY {
		return false
	}

	// Sample at pixel centres, stepping the edge functions incrementally.
	x0 := float64(minX) + 0.5
	drawn := false
	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		w0 := e0.at(x0, py)
		w1 := e1.at(x0, py)
		w2 := e2.at(x0, py)
		for x := minX; x <= maxX; x++ {
			if (w0 >= 0 && w1 >= 0 && w2 >= 0) || (w0 <= 0 && w1 <= 0 && w2 <= 0) {
				w.fb.SetPixel(x, y, c)
				drawn = true
			}
			w0 += e0.A
			w1 += e1.A
			w2 += e2.A
		}
	}
	return drawn
}
