package viewer

import (
	"bytes"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/taigrr/softrend/pkg/math3d"
	"github.com/taigrr/softrend/pkg/render"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestContext(t *testing.T, cfg Config) *Context {
	t.Helper()
	c, err := NewContext(cfg, 160, 120, discardLogger())
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	return c
}

func TestContextRenderDefaultScene(t *testing.T) {
	c := newTestContext(t, DefaultConfig())
	c.Render(time.Now())

	if c.FB.CountNonZero() == 0 {
		t.Fatal("nothing drawn")
	}
	s := c.WF.Stats
	if s.Triangles != 12 {
		t.Errorf("Triangles = %d, want the cube's 12", s.Triangles)
	}
	if s.Lines == 0 || s.LinesRejected == 0 {
		t.Errorf("stats = %+v, want grid lines drawn and rejected", s)
	}
}

func TestContextToggles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Render.HUD = false
	c := newTestContext(t, cfg)

	c.Render(time.Now())
	withGrid := c.WF.Stats.Lines

	c.Handle(CmdToggleGrid)
	if c.Grid {
		t.Fatal("grid still on")
	}
	c.Render(time.Now())
	if c.WF.Stats.Lines >= withGrid {
		t.Errorf("lines without grid %d, with %d", c.WF.Stats.Lines, withGrid)
	}

	c.Handle(CmdToggleFill)
	c.Render(time.Now())
	if !c.Fill || c.WF.Stats.Lines != 0 {
		t.Errorf("fill mode drew %d lines", c.WF.Stats.Lines)
	}

	c.Handle(CmdToggleHUD)
	if !c.HUD {
		t.Error("HUD still off")
	}

	if c.Done() {
		t.Fatal("done before quit")
	}
	c.Handle(CmdQuit)
	if !c.Done() {
		t.Error("CmdQuit did not finish the loop")
	}
}

func TestContextHUDDrawsInMargin(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Render.Grid = false
	cfg.Objects = nil
	c := newTestContext(t, cfg)

	c.Render(time.Now())
	if c.FB.CountNonZero() == 0 {
		t.Error("HUD text not drawn")
	}

	c.Handle(CmdToggleHUD)
	c.Render(time.Now())
	if n := c.FB.CountNonZero(); n != 0 {
		t.Errorf("empty scene without HUD lit %d pixels", n)
	}
}

func TestContextMovement(t *testing.T) {
	c := newTestContext(t, DefaultConfig())
	start := c.Camera.Position

	c.Handle(CmdForward)
	for range 120 {
		c.Render(time.Now())
	}
	moved := c.Camera.Position.Sub(start)
	if moved.Z <= 0 || math.Abs(moved.X) > 1e-9 || moved.Y != 0 {
		t.Errorf("forward moved %v, want +Z only", moved)
	}

	c.Handle(CmdStrafeRight)
	before := c.Camera.Position
	for range 120 {
		c.Render(time.Now())
	}
	// Camera right is world -X when looking down +Z.
	if d := c.Camera.Position.Sub(before); d.X >= 0 {
		t.Errorf("strafe right moved %v, want -X", d)
	}

	c.Handle(CmdReset)
	if c.Camera.Position != start || c.Mover.Moving() {
		t.Errorf("reset left camera at %v", c.Camera.Position)
	}
}

func TestContextPointerAndDescribe(t *testing.T) {
	var buf bytes.Buffer
	c, err := NewContext(DefaultConfig(), 80, 60, slog.New(slog.NewTextHandler(&buf, nil)))
	if err != nil {
		t.Fatal(err)
	}

	c.PointerMoved(0, 0)
	if c.Camera.Forward != math3d.V3(0, 0, 1) {
		t.Error("zero delta turned the camera")
	}
	c.PointerMoved(100, -50)
	if c.Camera.Forward == math3d.V3(0, 0, 1) {
		t.Error("pointer motion ignored")
	}

	c.Handle(CmdDescribe)
	out := buf.String()
	for _, want := range []string{"msg=camera", "position=", "forward=", "up=", "right="} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestContextResize(t *testing.T) {
	c := newTestContext(t, DefaultConfig())
	c.Resize(40, 30)
	if c.FB.Width != 40 || c.FB.Height != 30 {
		t.Errorf("framebuffer %dx%d, want 40x30", c.FB.Width, c.FB.Height)
	}
	if c.WF.Framebuffer() != c.FB {
		t.Error("wireframe not retargeted")
	}
	c.Render(time.Now())
}

func TestContextLoadsModelFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tri.obj")
	obj := "v 0 0 0\nv 4 0 0\nv 0 4 0\nf 1 2 3\n"
	if err := os.WriteFile(path, []byte(obj), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.Objects = []ObjectConfig{{Model: path, Scale: 2, Color: "#ff0000"}}
	c := newTestContext(t, cfg)

	if len(c.Scene) != 1 || c.Scene[0].Color != render.ColorRed {
		t.Fatalf("scene = %+v", c.Scene)
	}
	// Fitted to a 2-unit extent around the origin.
	lo, hi := c.Scene[0].Mesh.Bounds()
	a := c.Scene[0].Transform.Apply(lo)
	b := c.Scene[0].Transform.Apply(hi)
	if math.Abs(b.X-a.X-2) > 1e-9 || math.Abs(a.X+1) > 1e-9 {
		t.Errorf("fitted extent %v..%v, want x in [-1, 1]", a, b)
	}

	cfg.Objects = []ObjectConfig{{Model: filepath.Join(dir, "missing.obj")}}
	if _, err := NewContext(cfg, 80, 60, discardLogger()); err == nil {
		t.Error("expected error for missing model")
	}
}
