package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/pdiddy/mergepdf/pkg/types"
)

// loadConfig builds the merge settings from flags, environment, and the
// config file, in viper's precedence order, on top of the defaults.
func loadConfig(v *viper.Viper) (types.MergeConfig, error) {
	cfg := types.DefaultMergeConfig()

	v.SetDefault("output", cfg.Output)
	v.SetDefault("image_size", string(cfg.Placement))
	v.SetDefault("image.enabled", cfg.Image.Enabled)
	v.SetDefault("image.canvas_width", cfg.Image.CanvasWidth)
	v.SetDefault("image.canvas_height", cfg.Image.CanvasHeight)
	v.SetDefault("image.quality", cfg.Image.Quality)
	v.SetDefault("image.lossless", cfg.Image.Lossless)
	v.SetDefault("pdf.strict", cfg.PDF.Strict)

	placement, err := types.ParsePlacement(v.GetString("image_size"))
	if err != nil {
		return cfg, err
	}

	cfg.Output = v.GetString("output")
	cfg.Placement = placement
	cfg.Force = v.GetBool("force")
	cfg.Verbose = v.GetBool("verbose")
	cfg.Image.Enabled = v.GetBool("image.enabled")
	cfg.Image.CanvasWidth = v.GetInt("image.canvas_width")
	cfg.Image.CanvasHeight = v.GetInt("image.canvas_height")
	cfg.Image.Quality = v.GetInt("image.quality")
	cfg.Image.Lossless = v.GetBool("image.lossless")
	cfg.PDF.Strict = v.GetBool("pdf.strict")

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
