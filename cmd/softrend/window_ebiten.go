//go:build cgo

package main

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/taigrr/softrend/pkg/viewer"
)

// keyNames translates ebiten keys to the viewer's key names.
var keyNames = map[ebiten.Key]string{
	ebiten.KeyEscape:     "escape",
	ebiten.KeyG:          "g",
	ebiten.KeyF:          "f",
	ebiten.KeyX:          "x",
	ebiten.KeyH:          "h",
	ebiten.KeyI:          "i",
	ebiten.KeyR:          "r",
	ebiten.KeyW:          "w",
	ebiten.KeyS:          "s",
	ebiten.KeyA:          "a",
	ebiten.KeyD:          "d",
	ebiten.KeyArrowUp:    "up",
	ebiten.KeyArrowDown:  "down",
	ebiten.KeyArrowLeft:  "left",
	ebiten.KeyArrowRight: "right",
}

// Key repeat timing in ticks.
const (
	repeatDelay = 15
	repeatEvery = 3
)

var errQuit = errors.New("quit")

type windowGame struct {
	vc     *viewer.Context
	fbImg  *ebiten.Image
	lastX  int
	lastY  int
	primed bool
}

func runWindow(vc *viewer.Context, cfg viewer.Config, zoom int) error {
	zoom = max(zoom, 1)
	ebiten.SetWindowTitle("softrend")
	ebiten.SetWindowSize(cfg.Render.Width*zoom, cfg.Render.Height*zoom)
	ebiten.SetTPS(cfg.Render.FPS)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	err := ebiten.RunGame(&windowGame{vc: vc})
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

func (g *windowGame) Update() error {
	for k, name := range keyNames {
		cmd := viewer.KeyCommand(name)
		switch d := inpututil.KeyPressDuration(k); {
		case d == 1:
			g.vc.Handle(cmd)
		case cmd.Movement() && d > repeatDelay && d%repeatEvery == 0:
			// Held movement keys repeat like a terminal's key repeat.
			g.vc.Handle(cmd)
		}
	}

	x, y := ebiten.CursorPosition()
	if g.primed {
		g.vc.PointerMoved(float64(x-g.lastX), float64(y-g.lastY))
	}
	g.lastX, g.lastY, g.primed = x, y, true

	if g.vc.Done() {
		return errQuit
	}
	g.vc.Render(time.Now())
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	fb := g.vc.FB
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != fb.Width || g.fbImg.Bounds().Dy() != fb.Height {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.Width, fb.Height)
	}
	g.fbImg.WritePixels(fb.ToImage().Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.vc.FB.Width, g.vc.FB.Height
}
