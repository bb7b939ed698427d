package render

import (
	"image"

	uv "github.com/charmbracelet/ultraviolet"
)

// CellSink receives terminal cells. *uv.Terminal satisfies it.
type CellSink interface {
	SetCell(x, y int, c *uv.Cell)
}

// Display is a CellSink that can flush its cells to the tty.
type Display interface {
	CellSink
	Display() error
}

// Draw converts the framebuffer to terminal cells inside area (in cell
// coordinates). Each cell covers two framebuffer rows: ▀ (upper half
// block) with fg=top pixel and bg=bottom pixel.
func (fb *Framebuffer) Draw(scr CellSink, area image.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col < fb.Width; col++ {
			scr.SetCell(col, row, &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: fb.GetPixel(col, topY).NRGBA(),
					Bg: fb.GetPixel(col, botY).NRGBA(),
				},
			})
		}
	}
}

// TerminalRenderer presents framebuffers on a cell display.
type TerminalRenderer struct {
	out        Display
	cols, rows int
}

// NewTerminalRenderer creates a renderer for a cols×rows terminal.
func NewTerminalRenderer(out Display, cols, rows int) *TerminalRenderer {
	return &TerminalRenderer{out: out, cols: cols, rows: rows}
}

// FramebufferSize returns the pixel size matching the terminal: one pixel
// per column and two per row.
func (t *TerminalRenderer) FramebufferSize() (width, height int) {
	return t.cols, t.rows * 2
}

// Render writes fb into the terminal's cell buffer.
func (t *TerminalRenderer) Render(fb *Framebuffer) {
	fb.Draw(t.out, image.Rect(0, 0, t.cols, t.rows))
}

// Flush sends pending cells to the terminal.
func (t *TerminalRenderer) Flush() error {
	return t.out.Display()
}
