package render

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a packed 0x00RRGGBB pixel value, the layout SDL-style surfaces
// and the terminal renderer both consume. It implements color.Color.
type Color uint32

// Colors for convenience
const (
	ColorBlack   Color = 0x00000000
	ColorWhite   Color = 0x00FFFFFF
	ColorRed     Color = 0x00FF0000
	ColorGreen   Color = 0x0000FF00
	ColorBlue    Color = 0x000000FF
	ColorYellow  Color = 0x00FFFF00
	ColorCyan    Color = 0x0000FFFF
	ColorMagenta Color = 0x00FF00FF
	ColorGray    Color = 0x00808080
)

// RGB packs 8-bit channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// RGBA implements color.Color. Packed colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	r |= r << 8
	g = uint32(c.G())
	g |= g << 8
	b = uint32(c.B())
	b |= b << 8
	return r, g, b, 0xffff
}

// NRGBA converts to the standard library's 8-bit color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{c.R(), c.G(), c.B(), 0xff}
}

// FromColor converts any color.Color, dropping alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// ParseColor parses a hex color such as "#00ff80".
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// Hex formats the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
}
