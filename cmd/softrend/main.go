// softrend - software 3D wireframe viewer
// Walk around a grid and a few meshes in the terminal, in a window, or
// render a single frame to PNG.
//
// Controls:
//
//	Mouse       - Look around
//	W/A/S/D     - Move and strafe (arrow keys work too)
//	G           - Toggle grid
//	F / X       - Toggle filled triangles
//	H / ?       - Toggle HUD
//	I           - Log camera position and basis
//	R           - Reset camera
//	Esc         - Quit
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/softrend/pkg/viewer"
)

var version = "dev"

type options struct {
	configPath string
	logLevel   string
	logFile    string
	fill       bool
	noGrid     bool
}

func main() {
	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "softrend [model.obj|model.glb]",
		Short: "Software 3D wireframe viewer for the terminal",
		Long: "softrend draws a ground grid and wireframe meshes with a pure software\n" +
			"pipeline: camera transform, near-plane clipping, perspective projection,\n" +
			"viewport clipping and Bresenham lines.",
		Args: cobra.MaximumNArgs(1),
		RunE: opts.runView,
	}

	f := root.PersistentFlags()
	f.StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	f.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	f.StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")
	f.BoolVar(&opts.fill, "fill", false, "start with filled triangles")
	f.BoolVar(&opts.noGrid, "no-grid", false, "start with the grid hidden")

	view := &cobra.Command{
		Use:   "view [model.obj|model.glb]",
		Short: "View in the terminal (the default command)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  opts.runView,
	}

	root.AddCommand(view, newWindowCmd(opts), newSnapshotCmd(opts))
	return root
}

func (o *options) runView(cmd *cobra.Command, args []string) error {
	cfg, err := o.config(args)
	if err != nil {
		return err
	}
	return runTerminal(cmd.Context(), cfg, o)
}

// config loads the config file (if any), applies flags and replaces the
// scene with the model argument.
func (o *options) config(args []string) (viewer.Config, error) {
	cfg := viewer.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = viewer.LoadConfig(o.configPath); err != nil {
			return cfg, err
		}
	}
	if o.fill {
		cfg.Render.Fill = true
	}
	if o.noGrid {
		cfg.Render.Grid = false
	}
	if len(args) == 1 {
		cfg.Objects = []viewer.ObjectConfig{
			{Model: args[0], Position: [3]float64{0, 1, 0}, Scale: 2},
		}
	}
	return cfg, cfg.Validate()
}

// logger builds the slog logger. When no log file is set, logs go to
// fallback.
func (o *options) logger(fallback io.Writer) (*slog.Logger, func() error, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	w, closer := fallback, func() error { return nil }
	if o.logFile != "" {
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f.Close
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h), closer, nil
}
