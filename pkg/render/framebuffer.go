// Package render implements the softrend pipeline: camera, world→view
// transform, projection, near-plane and viewport clipping, and the line
// rasterizer.
package render

import (
	"image"
	"image/png"
	"io"
	"os"
)

// Framebuffer is a row-major grid of packed pixels with the origin at the
// top-left corner.
type Framebuffer struct {
	Width  int     // Width in pixels
	Height int     // Height in pixels
	Pixels []Color // Row-major pixel data
}

// NewFramebuffer allocates a framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
	}
}

// WrapFramebuffer uses an externally owned pixel slice. The slice must hold
// at least width*height entries; the framebuffer never reallocates it.
func WrapFramebuffer(pixels []Color, width, height int) *Framebuffer {
	if len(pixels) < width*height {
		height = len(pixels) / max(width, 1)
	}
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c Color) {
	n := fb.Width * fb.Height
	if n == 0 {
		return
	}
	fb.Pixels[0] = c
	for i := 1; i < n; i *= 2 {
		copy(fb.Pixels[i:n], fb.Pixels[:i])
	}
}

// SetPixel sets a pixel at (x, y) to the given color.
// Writes outside the buffer are dropped.
func (fb *Framebuffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y), or black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) Color {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return ColorBlack
	}
	return fb.Pixels[y*fb.Width+x]
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's
// algorithm. Both endpoints are plotted.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > dy {
			err += dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawRect draws a filled rectangle.
func (fb *Framebuffer) DrawRect(x, y, w, h int, c Color) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			fb.SetPixel(px, py, c)
		}
	}
}

// DrawRectOutline draws a rectangle outline.
func (fb *Framebuffer) DrawRectOutline(r image.Rectangle, c Color) {
	fb.DrawLine(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y, c)
	fb.DrawLine(r.Max.X, r.Min.Y, r.Max.X, r.Max.Y, c)
	fb.DrawLine(r.Max.X, r.Max.Y, r.Min.X, r.Max.Y, c)
	fb.DrawLine(r.Min.X, r.Max.Y, r.Min.X, r.Min.Y, c)
}

// CountNonZero returns how many pixels differ from black.
func (fb *Framebuffer) CountNonZero() int {
	n := 0
	for _, p := range fb.Pixels[:fb.Width*fb.Height] {
		if p != ColorBlack {
			n++
		}
	}
	return n
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		row := fb.Pixels[y*fb.Width : (y+1)*fb.Width]
		off := y * img.Stride
		for x, p := range row {
			img.Pix[off+x*4+0] = p.R()
			img.Pix[off+x*4+1] = p.G()
			img.Pix[off+x*4+2] = p.B()
			img.Pix[off+x*4+3] = 0xff
		}
	}
	return img
}

// WritePNG encodes the framebuffer as PNG.
func (fb *Framebuffer) WritePNG(w io.Writer) error {
	return png.Encode(w, fb.ToImage())
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fb.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
