package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/taigrr/softrend/pkg/viewer"
)

func newWindowCmd(opts *options) *cobra.Command {
	var zoom int
	cmd := &cobra.Command{
		Use:   "window [model.obj|model.glb]",
		Short: "Open a desktop window with a captured mouse",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(args)
			if err != nil {
				return err
			}
			logger, closeLog, err := opts.logger(os.Stderr)
			if err != nil {
				return err
			}
			defer closeLog()

			vc, err := viewer.NewContext(cfg, cfg.Render.Width, cfg.Render.Height, logger)
			if err != nil {
				return err
			}
			return runWindow(vc, cfg, zoom)
		},
	}
	cmd.Flags().IntVar(&zoom, "zoom", 2, "window pixels per framebuffer pixel")
	return cmd
}
