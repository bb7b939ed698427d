// Package viewer ties the renderer to a frame loop: it owns the camera,
// framebuffer and scene, maps input to commands and keeps frame timing.
// Backends (terminal, window, snapshot) drive a Context and present its
// framebuffer.
package viewer

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/taigrr/softrend/pkg/math3d"
	"github.com/taigrr/softrend/pkg/models"
	"github.com/taigrr/softrend/pkg/overlay"
	"github.com/taigrr/softrend/pkg/render"
)

// Object is a mesh placed in the world.
type Object struct {
	Name      string
	Mesh      *models.Mesh
	Transform math3d.Transform
	Color     render.Color
}

// Context is the render context owned by a frame loop. It is not safe for
// concurrent use; backends funnel input into the loop goroutine.
type Context struct {
	Camera *render.Camera
	FB     *render.Framebuffer
	WF     *render.Wireframe
	Scene  []Object

	Grid bool
	Fill bool
	HUD  bool

	Mover *Mover
	Timer *FrameTimer

	cfg     Config
	palette Palette
	text    *overlay.Text
	log     *slog.Logger
	done    bool
}

// NewContext builds a context for a width×height framebuffer, loading
// every configured object.
func NewContext(cfg Config, width, height int, logger *slog.Logger) (*Context, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, err := cfg.Colors.Palette()
	if err != nil {
		return nil, err
	}

	c := &Context{
		Camera:  cfg.Camera.NewCamera(),
		Grid:    cfg.Render.Grid,
		Fill:    cfg.Render.Fill,
		HUD:     cfg.Render.HUD,
		Mover:   NewMover(cfg.Render.FPS, cfg.Movement.Frequency, cfg.Movement.Damping),
		Timer:   NewFrameTimer(DefaultTimerWindow, logger),
		cfg:     cfg,
		palette: palette,
		text:    overlay.New(cfg.Render.HUDScale, palette.HUD),
		log:     logger,
	}
	c.Resize(width, height)

	for i, oc := range cfg.Objects {
		obj, err := loadObject(oc, palette.Mesh)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		logger.Debug("loaded object",
			slog.String("name", obj.Name),
			slog.Int("vertices", obj.Mesh.VertexCount()),
			slog.Int("triangles", obj.Mesh.TriangleCount()),
		)
		c.Scene = append(c.Scene, obj)
	}
	return c, nil
}

func loadObject(oc ObjectConfig, fallback render.Color) (Object, error) {
	var mesh *models.Mesh
	if oc.Model == "cube" {
		mesh = models.Cube(1)
	} else {
		m, err := models.Load(oc.Model)
		if err != nil {
			return Object{}, err
		}
		mesh = m
	}

	color := fallback
	if oc.Color != "" {
		col, err := render.ParseColor(oc.Color)
		if err != nil {
			return Object{}, err
		}
		color = col
	}

	scale := oc.Scale
	if scale == 0 {
		scale = 1
	}
	pos := math3d.V3(oc.Position[0], oc.Position[1], oc.Position[2])
	place := math3d.Place(pos, oc.Yaw*math.Pi/180, 1)

	return Object{
		Name:      mesh.Name,
		Mesh:      mesh,
		Transform: mesh.FitTransform(scale).Then(place),
		Color:     color,
	}, nil
}

// Resize replaces the framebuffer. Camera and scene are kept.
func (c *Context) Resize(width, height int) {
	c.FB = render.NewFramebuffer(width, height)
	c.WF = render.NewWireframe(c.FB, c.cfg.Render.Margin)
}

// Done reports whether CmdQuit was handled.
func (c *Context) Done() bool {
	return c.done
}

// Handle applies a command.
func (c *Context) Handle(cmd Command) {
	speed := c.cfg.Movement.Speed
	switch cmd {
	case CmdQuit:
		c.done = true
	case CmdToggleGrid:
		c.Grid = !c.Grid
		c.log.Info("grid", slog.Bool("on", c.Grid))
	case CmdToggleFill:
		c.Fill = !c.Fill
		c.log.Info("mode", slog.String("mode", c.mode().String()))
	case CmdToggleHUD:
		c.HUD = !c.HUD
	case CmdForward:
		c.Mover.Impulse(speed, 0)
	case CmdBack:
		c.Mover.Impulse(-speed, 0)
	case CmdStrafeLeft:
		c.Mover.Impulse(0, -speed)
	case CmdStrafeRight:
		c.Mover.Impulse(0, speed)
	case CmdDescribe:
		c.log.Info("camera", describeAttrs(c.Camera)...)
	case CmdReset:
		c.Camera = c.cfg.Camera.NewCamera()
		c.Mover.Reset()
		c.log.Info("camera reset")
	}
}

// describeAttrs turns the "name = value" lines of Camera.Describe into log
// attributes.
func describeAttrs(cam *render.Camera) []any {
	var attrs []any
	for line := range strings.SplitSeq(cam.Describe(), "\n") {
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		attrs = append(attrs, slog.String(strings.TrimSpace(k), strings.TrimSpace(v)))
	}
	return attrs
}

// PointerMoved feeds a relative pointer motion (pixels) to the camera.
func (c *Context) PointerMoved(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	c.Camera.UpdateFromPointerDelta(math3d.V2(dx, dy))
}

func (c *Context) mode() render.Mode {
	if c.Fill {
		return render.ModeFill
	}
	return render.ModeWireframe
}

// Render advances movement by one frame and draws the scene. now is the
// frame timestamp used for frame-time measurement.
func (c *Context) Render(now time.Time) {
	if fwd, right := c.Mover.Update(); fwd != 0 || right != 0 {
		c.Camera.MoveForward(fwd)
		c.Camera.MoveRight(right)
	}

	c.FB.Clear(c.palette.Background)
	c.WF.ResetStats()

	if c.Grid {
		c.WF.DrawGrid(c.cfg.Render.GridSize, c.cfg.Render.GridStep, c.Camera, c.palette.Grid)
	}
	mode := c.mode()
	for _, o := range c.Scene {
		c.WF.DrawMesh(o.Mesh, o.Transform, c.Camera, o.Color, mode)
	}

	c.Timer.Tick(now)
	if c.HUD {
		c.text.DrawLines(c.FB, 2, 2, c.hudLines())
	}
}

func (c *Context) hudLines() []string {
	s := c.WF.Stats
	t := c.Timer.Last()
	return []string{
		fmt.Sprintf("%.0f FPS  %.2f ms", t.FPS, t.Milliseconds()),
		fmt.Sprintf("lines %d  clipped %d", s.Lines, s.LinesRejected),
		fmt.Sprintf("tris %d  culled %d  %s", s.Triangles, s.MeshesCulled, c.mode()),
	}
}
