// Package overlay draws bitmap text on top of a rendered frame.
package overlay

import (
	"image/color"

	"github.com/taigrr/softrend/pkg/render"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Glyph metrics of the default font, in unscaled pixels.
const (
	ascent     = 5
	lineHeight = 6
)

// Text draws strings into a framebuffer. Every font pixel becomes a
// Scale×Scale block.
type Text struct {
	Font  tinyfont.Fonter
	Scale int
	Color render.Color
}

// New returns a Text using the TomThumb font.
func New(scale int, c render.Color) *Text {
	return &Text{
		Font:  &tinyfont.TomThumb,
		Scale: max(scale, 1),
		Color: c,
	}
}

// LineHeight returns the distance between baselines in framebuffer pixels.
func (t *Text) LineHeight() int {
	return lineHeight * t.scale()
}

// Width returns the rendered width of s in framebuffer pixels.
func (t *Text) Width(s string) int {
	_, outbox := tinyfont.LineWidth(t.Font, s)
	return int(outbox) * t.scale()
}

// Draw writes s with its top-left corner at (x, y).
func (t *Text) Draw(fb *render.Framebuffer, x, y int, s string) {
	d := &scaledDisplay{fb: fb, x: x, y: y, scale: t.scale()}
	c := color.RGBA{R: t.Color.R(), G: t.Color.G(), B: t.Color.B(), A: 0xff}
	tinyfont.WriteLine(d, t.Font, 0, ascent, s, c)
}

// DrawLines writes one string per line starting at (x, y).
func (t *Text) DrawLines(fb *render.Framebuffer, x, y int, lines []string) {
	for i, s := range lines {
		t.Draw(fb, x, y+i*t.LineHeight(), s)
	}
}

func (t *Text) scale() int {
	return max(t.Scale, 1)
}

// scaledDisplay adapts a framebuffer region to drivers.Displayer.
type scaledDisplay struct {
	fb    *render.Framebuffer
	x, y  int
	scale int
}

var _ drivers.Displayer = (*scaledDisplay)(nil)

func (d *scaledDisplay) Size() (x, y int16) {
	w := (d.fb.Width - d.x) / d.scale
	h := (d.fb.Height - d.y) / d.scale
	return int16(min(max(w, 0), 1<<15-1)), int16(min(max(h, 0), 1<<15-1))
}

func (d *scaledDisplay) SetPixel(x, y int16, c color.RGBA) {
	px := d.x + int(x)*d.scale
	py := d.y + int(y)*d.scale
	d.fb.DrawRect(px, py, d.scale, d.scale, render.RGB(c.R, c.G, c.B))
}

func (d *scaledDisplay) Display() error {
	return nil
}
