package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/softrend/pkg/render"
	"github.com/taigrr/softrend/pkg/viewer"
)

// cellPixels converts pointer motion in cells to pixels of look rotation.
const cellPixels = 16

func runTerminal(ctx context.Context, cfg viewer.Config, opts *options) error {
	// Logs written while the alt screen is up would be overdrawn; hold
	// them until the terminal is restored.
	var held bytes.Buffer
	logger, closeLog, err := opts.logger(&held)
	if err != nil {
		return err
	}
	defer func() {
		closeLog()
		os.Stderr.Write(held.Bytes())
	}()

	term := uv.DefaultTerminal()
	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	tr := render.NewTerminalRenderer(term, width, height)
	vc, err := viewer.NewContext(cfg, width, height*2, logger)
	if err != nil {
		return err
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	fmt.Fprint(os.Stdout, "\x1b[?1003h") // any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // SGR extended mouse mode

	defer func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}()

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.Render.FPS))
	defer ticker.Stop()

	events := term.Events()
	var (
		lastX, lastY int
		tracking     bool
	)
	logger.Info("terminal viewer started", "cols", width, "rows", height)

	for !vc.Done() {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				tr = render.NewTerminalRenderer(term, width, height)
				vc.Resize(tr.FramebufferSize())

			case uv.KeyPressEvent:
				for _, name := range viewer.KeyNames() {
					if ev.MatchString(name) {
						vc.Handle(viewer.KeyCommand(name))
						break
					}
				}

			case uv.MouseMotionEvent:
				if tracking {
					dx := float64(ev.X-lastX) * cellPixels
					dy := float64(ev.Y-lastY) * cellPixels * 2
					vc.PointerMoved(dx, dy)
				}
				lastX, lastY, tracking = ev.X, ev.Y, true
			}

		case now := <-ticker.C:
			vc.Render(now)
			tr.Render(vc.FB)
			if err := tr.Flush(); err != nil {
				return fmt.Errorf("flush: %w", err)
			}
		}
	}
	return nil
}
