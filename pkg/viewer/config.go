package viewer

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/taigrr/softrend/pkg/math3d"
	"github.com/taigrr/softrend/pkg/render"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything a viewer session needs.
type Config struct {
	Camera   CameraConfig   `toml:"camera"`
	Render   RenderConfig   `toml:"render"`
	Movement MovementConfig `toml:"movement"`
	Colors   ColorConfig    `toml:"colors"`
	Objects  []ObjectConfig `toml:"objects"`
}

// CameraConfig is the starting pose and lens.
type CameraConfig struct {
	Position    [3]float64 `toml:"position"`
	FOVY        float64    `toml:"fovy"` // degrees
	Near        float64    `toml:"near"`
	Far         float64    `toml:"far"`
	Sensitivity float64    `toml:"sensitivity"` // radians per pixel
}

// RenderConfig controls the framebuffer and what is drawn.
type RenderConfig struct {
	Width    int     `toml:"width"`  // window and snapshot size; the terminal uses its own
	Height   int     `toml:"height"` //
	Margin   int     `toml:"margin"` // viewport inset in pixels
	FPS      int     `toml:"fps"`
	Grid     bool    `toml:"grid"`
	GridSize float64 `toml:"grid_size"` // half extent
	GridStep float64 `toml:"grid_step"`
	Fill     bool    `toml:"fill"`
	HUD      bool    `toml:"hud"`
	HUDScale int     `toml:"hud_scale"`
}

// MovementConfig tunes WASD movement.
type MovementConfig struct {
	Speed     float64 `toml:"speed"`     // units per key press
	Frequency float64 `toml:"frequency"` // spring angular frequency
	Damping   float64 `toml:"damping"`   // spring damping ratio
}

// ColorConfig holds hex colors.
type ColorConfig struct {
	Background string `toml:"background"`
	Grid       string `toml:"grid"`
	Mesh       string `toml:"mesh"`
	HUD        string `toml:"hud"`
}

// ObjectConfig places one mesh in the scene.
type ObjectConfig struct {
	Model    string     `toml:"model"` // "cube" or a path to .obj/.glb/.gltf
	Position [3]float64 `toml:"position"`
	Yaw      float64    `toml:"yaw"`   // degrees about +Y
	Scale    float64    `toml:"scale"` // largest extent after fitting
	Color    string     `toml:"color"` // defaults to colors.mesh
}

// DefaultConfig returns the built-in settings: a cube in front of an eye
// standing at (4, 1, -12) above a ±40 grid.
func DefaultConfig() Config {
	return Config{
		Camera: CameraConfig{
			Position:    [3]float64{4, 1, -12},
			FOVY:        render.DefaultFOVY,
			Near:        render.DefaultNear,
			Far:         render.DefaultFar,
			Sensitivity: render.DefaultSensitivity,
		},
		Render: RenderConfig{
			Width:    320,
			Height:   240,
			Margin:   render.DefaultMargin,
			FPS:      60,
			Grid:     true,
			GridSize: 40,
			GridStep: 1,
			HUD:      true,
			HUDScale: 1,
		},
		Movement: MovementConfig{
			Speed:     0.1,
			Frequency: 4.0,
			Damping:   1.0,
		},
		Colors: ColorConfig{
			Background: "#000000",
			Grid:       "#0000ff",
			Mesh:       "#00ff80",
			HUD:        "#ffffff",
		},
		Objects: []ObjectConfig{
			{Model: "cube", Position: [3]float64{0, 1, 0}, Scale: 2},
		},
	}
}

// LoadConfig reads a TOML file over DefaultConfig and validates it.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := ParseConfig(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes TOML into cfg, keeping fields the document does not
// set, then validates the result.
func ParseConfig(data []byte, cfg *Config) error {
	// Array tables would append to the default scene; decode them on their
	// own so a file's [[objects]] replace it.
	var scene struct {
		Objects []ObjectConfig `toml:"objects"`
	}
	if err := toml.Unmarshal(data, &scene); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if scene.Objects != nil {
		cfg.Objects = scene.Objects
	}
	return cfg.Validate()
}

// Validate checks ranges and colors.
func (c Config) Validate() error {
	cam := c.Camera
	switch {
	case cam.FOVY <= 0 || cam.FOVY >= 180:
		return fmt.Errorf("%w: camera.fovy %v not in (0, 180)", ErrInvalidConfig, cam.FOVY)
	case cam.Near <= 0:
		return fmt.Errorf("%w: camera.near %v must be positive", ErrInvalidConfig, cam.Near)
	case cam.Far <= cam.Near:
		return fmt.Errorf("%w: camera.far %v must exceed near %v", ErrInvalidConfig, cam.Far, cam.Near)
	case cam.Sensitivity <= 0:
		return fmt.Errorf("%w: camera.sensitivity %v must be positive", ErrInvalidConfig, cam.Sensitivity)
	}

	r := c.Render
	switch {
	case r.Width <= 0 || r.Height <= 0:
		return fmt.Errorf("%w: render size %dx%d", ErrInvalidConfig, r.Width, r.Height)
	case r.Margin < 0:
		return fmt.Errorf("%w: render.margin %d is negative", ErrInvalidConfig, r.Margin)
	case r.FPS <= 0:
		return fmt.Errorf("%w: render.fps %d must be positive", ErrInvalidConfig, r.FPS)
	case r.GridStep <= 0:
		return fmt.Errorf("%w: render.grid_step %v must be positive", ErrInvalidConfig, r.GridStep)
	case r.HUDScale < 1:
		return fmt.Errorf("%w: render.hud_scale %d must be at least 1", ErrInvalidConfig, r.HUDScale)
	}

	if c.Movement.Frequency <= 0 || c.Movement.Damping < 0 {
		return fmt.Errorf("%w: movement spring (%v, %v)", ErrInvalidConfig, c.Movement.Frequency, c.Movement.Damping)
	}

	if _, err := c.Colors.Palette(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	for i, o := range c.Objects {
		if o.Model == "" {
			return fmt.Errorf("%w: objects[%d] has no model", ErrInvalidConfig, i)
		}
		if o.Scale < 0 {
			return fmt.Errorf("%w: objects[%d].scale %v is negative", ErrInvalidConfig, i, o.Scale)
		}
		if o.Color != "" {
			if _, err := render.ParseColor(o.Color); err != nil {
				return fmt.Errorf("%w: objects[%d]: %w", ErrInvalidConfig, i, err)
			}
		}
	}
	return nil
}

// NewCamera builds a camera from the configured pose and lens.
func (c CameraConfig) NewCamera() *render.Camera {
	cam := render.NewCamera()
	cam.Position = math3d.V3(c.Position[0], c.Position[1], c.Position[2])
	cam.FOVY = c.FOVY
	cam.Near = c.Near
	cam.Far = c.Far
	cam.Sensitivity = c.Sensitivity
	return cam
}

// Palette is the resolved set of colors.
type Palette struct {
	Background render.Color
	Grid       render.Color
	Mesh       render.Color
	HUD        render.Color
}

// Palette parses the hex colors.
func (c ColorConfig) Palette() (Palette, error) {
	var p Palette
	for _, f := range []struct {
		name string
		hex  string
		dst  *render.Color
	}{
		{"background", c.Background, &p.Background},
		{"grid", c.Grid, &p.Grid},
		{"mesh", c.Mesh, &p.Mesh},
		{"hud", c.HUD, &p.HUD},
	} {
		col, err := render.ParseColor(f.hex)
		if err != nil {
			return p, fmt.Errorf("colors.%s: %w", f.name, err)
		}
		*f.dst = col
	}
	return p, nil
}
