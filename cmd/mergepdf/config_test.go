package main

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/mergepdf/pkg/types"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(viper.New())
	require.NoError(t, err)
	assert.Equal(t, types.DefaultMergeConfig(), cfg)
}

func TestLoadConfig_FromYAML(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
output: book.pdf
image_size: original
force: true
image:
  canvas_width: 1240
  canvas_height: 1754
  quality: 80
  lossless: true
pdf:
  strict: true
`)))

	cfg, err := loadConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "book.pdf", cfg.Output)
	assert.Equal(t, types.PlacementNative, cfg.Placement)
	assert.True(t, cfg.Force)
	assert.True(t, cfg.Image.Enabled)
	assert.Equal(t, 1240, cfg.Image.CanvasWidth)
	assert.Equal(t, 1754, cfg.Image.CanvasHeight)
	assert.Equal(t, 80, cfg.Image.Quality)
	assert.True(t, cfg.Image.Lossless)
	assert.True(t, cfg.PDF.Strict)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   any
		wantErr string
	}{
		{name: "unknown image size", key: "image_size", value: "letter", wantErr: "invalid image size"},
		{name: "zero canvas", key: "image.canvas_height", value: 0, wantErr: "invalid canvas size"},
		{name: "quality too low", key: "image.quality", value: 0, wantErr: "invalid JPEG quality"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.value)
			_, err := loadConfig(v)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
