package render

import (
	"image/color"
	"testing"
)

func TestRGBPacking(t *testing.T) {
	c := RGB(0x12, 0x34, 0x56)
	if c != 0x00123456 {
		t.Fatalf("RGB = %#08x, want 0x00123456", uint32(c))
	}
	if c.R() != 0x12 || c.G() != 0x34 || c.B() != 0x56 {
		t.Errorf("channels = (%#x, %#x, %#x)", c.R(), c.G(), c.B())
	}

	r, g, b, a := c.RGBA()
	if r != 0x1212 || g != 0x3434 || b != 0x5656 || a != 0xffff {
		t.Errorf("RGBA() = (%#x, %#x, %#x, %#x)", r, g, b, a)
	}
}

func TestColorConversions(t *testing.T) {
	if got := FromColor(color.NRGBA{1, 2, 3, 255}); got != RGB(1, 2, 3) {
		t.Errorf("FromColor = %v, want %v", got.Hex(), RGB(1, 2, 3).Hex())
	}
	if got := ColorMagenta.NRGBA(); got != (color.NRGBA{255, 0, 255, 255}) {
		t.Errorf("NRGBA() = %v", got)
	}
	if got := ColorYellow.Hex(); got != "#ffff00" {
		t.Errorf("Hex() = %q, want #ffff00", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#00ff80", RGB(0, 255, 128), false},
		{"#FFFFFF", ColorWhite, false},
		{"#000", ColorBlack, false},
		{"green", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("got %v, want %v", got.Hex(), tc.want.Hex())
			}
		})
	}
}
