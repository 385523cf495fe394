//go:build raylib

package main

import (
	"github.com/spf13/cobra"

	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/config"
	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/grid"
	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/scene"
	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/surface/window"
)

func init() {
	extraCommands = append(extraCommands, windowCmd)
}

func windowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Show the layout in a desktop window",
		RunE: func(cmd *cobra.Command, args []string) error {
			scale, _ := cmd.Flags().GetInt("scale")
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			bg, err := config.Color(cfg.Display.Background, grid.Black)
			if err != nil {
				return err
			}

			var sc *scene.Scene
			opts := window.Options{
				Title:      "tftgrid: " + cfg.Name,
				Width:      cfg.Display.Width,
				Height:     cfg.Display.Height,
				Scale:      scale,
				Background: bg,
			}
			return window.Run(opts, func(s grid.Surface) error {
				if sc == nil {
					built, err := scene.Build(cfg, s)
					if err != nil {
						return err
					}
					sc = built
					printWarnings(cmd.ErrOrStderr(), sc.Diagnostics())
				}
				return sc.Render()
			})
		},
	}
	cmd.Flags().Int("scale", 2, "screen pixels per display pixel")
	return cmd
}
