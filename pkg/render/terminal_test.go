package render

import (
	"image"
	"image/color"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
)

type fakeDisplay struct {
	cells    map[image.Point]*uv.Cell
	displays int
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{cells: make(map[image.Point]*uv.Cell)}
}

func (d *fakeDisplay) SetCell(x, y int, c *uv.Cell) { d.cells[image.Pt(x, y)] = c }

func (d *fakeDisplay) Display() error {
	d.displays++
	return nil
}

func TestFramebufferDrawHalfBlocks(t *testing.T) {
	fb := NewFramebuffer(3, 4)
	fb.SetPixel(1, 0, ColorRed)
	fb.SetPixel(1, 1, ColorBlue)
	fb.SetPixel(2, 3, ColorGreen)

	d := newFakeDisplay()
	fb.Draw(d, image.Rect(0, 0, 3, 2))

	if len(d.cells) != 6 {
		t.Fatalf("got %d cells, want 6", len(d.cells))
	}

	tests := []struct {
		cell   image.Point
		fg, bg Color
	}{
		{image.Pt(1, 0), ColorRed, ColorBlue},
		{image.Pt(2, 1), ColorBlack, ColorGreen},
		{image.Pt(0, 0), ColorBlack, ColorBlack},
	}
	for _, tc := range tests {
		c := d.cells[tc.cell]
		if c == nil {
			t.Errorf("cell %v missing", tc.cell)
			continue
		}
		if c.Content != "▀" {
			t.Errorf("cell %v content = %q, want ▀", tc.cell, c.Content)
		}
		if c.Style.Fg != color.Color(tc.fg.NRGBA()) || c.Style.Bg != color.Color(tc.bg.NRGBA()) {
			t.Errorf("cell %v = fg %v bg %v, want fg %v bg %v", tc.cell, c.Style.Fg, c.Style.Bg, tc.fg.Hex(), tc.bg.Hex())
		}
	}
}

func TestTerminalRenderer(t *testing.T) {
	d := newFakeDisplay()
	tr := NewTerminalRenderer(d, 10, 4)

	w, h := tr.FramebufferSize()
	if w != 10 || h != 8 {
		t.Fatalf("FramebufferSize() = %dx%d, want 10x8", w, h)
	}

	tr.Render(NewFramebuffer(w, h))
	if len(d.cells) != 40 {
		t.Errorf("got %d cells, want 40", len(d.cells))
	}
	if err := tr.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if d.displays != 1 {
		t.Errorf("Display called %d times, want 1", d.displays)
	}
}
