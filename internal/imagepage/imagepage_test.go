// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package imagepage

import (
	"image"
	"image/color"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/mergepdf/internal/pdftest"
	"github.com/pdiddy/mergepdf/pkg/types"
)

var red = color.NRGBA{R: 255, A: 255}

func TestScaledSize(t *testing.T) {
	tests := []struct {
		name             string
		imgW, imgH       int
		canvasW, canvasH int
		wantW, wantH     int
	}{
		{name: "landscape larger than A4 scales down", imgW: 4000, imgH: 3000, canvasW: 2480, canvasH: 3508, wantW: 2480, wantH: 1860},
		{name: "portrait larger than A4 limited by height", imgW: 1000, imgH: 4000, canvasW: 2480, canvasH: 3508, wantW: 877, wantH: 3508},
		{name: "small image scales up", imgW: 100, imgH: 50, canvasW: 2480, canvasH: 3508, wantW: 2480, wantH: 1240},
		{name: "exact fit is unchanged", imgW: 2480, imgH: 3508, canvasW: 2480, canvasH: 3508, wantW: 2480, wantH: 3508},
		{name: "degenerate axis clamps to one pixel", imgW: 10000, imgH: 1, canvasW: 100, canvasH: 100, wantW: 100, wantH: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := ScaledSize(tt.imgW, tt.imgH, tt.canvasW, tt.canvasH)
			assert.Equal(t, tt.wantW, w, "width")
			assert.Equal(t, tt.wantH, h, "height")
			assert.LessOrEqual(t, w, tt.canvasW)
			assert.LessOrEqual(t, h, tt.canvasH)
		})
	}
}

func TestFlatten(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	src.SetNRGBA(0, 0, color.NRGBA{})
	src.SetNRGBA(1, 0, red)
	src.SetNRGBA(2, 0, color.NRGBA{A: 128})

	got := Flatten(src)

	require.Equal(t, src.Bounds(), got.Bounds())
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, got.NRGBAAt(0, 0))
	assert.Equal(t, red, got.NRGBAAt(1, 0))

	gray := got.NRGBAAt(2, 0)
	assert.Equal(t, uint8(255), gray.A)
	assert.InDelta(t, 127, int(gray.R), 2)
	assert.Equal(t, gray.R, gray.G)
	assert.Equal(t, gray.R, gray.B)
}

func TestFlatten_Paletted(t *testing.T) {
	pal := color.Palette{color.Transparent, red}
	src := image.NewPaletted(image.Rect(0, 0, 2, 1), pal)
	src.SetColorIndex(0, 0, 0)
	src.SetColorIndex(1, 0, 1)

	got := Flatten(src)

	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, got.NRGBAAt(0, 0))
	assert.Equal(t, red, got.NRGBAAt(1, 0))
}

func TestFitToCanvas(t *testing.T) {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	t.Run("small image is scaled up and centered", func(t *testing.T) {
		// scale = min(200/100, 400/50) = 2, so the image becomes 200x100
		// and sits at y = (400-100)/2 = 150.
		got := FitToCanvas(pdftest.Image(100, 50, red), 200, 400)

		assert.Equal(t, image.Rect(0, 0, 200, 400), got.Bounds())
		assert.Equal(t, white, got.NRGBAAt(100, 149))
		assert.Equal(t, red, got.NRGBAAt(100, 150))
		assert.Equal(t, red, got.NRGBAAt(100, 249))
		assert.Equal(t, white, got.NRGBAAt(100, 250))
		assert.Equal(t, red, got.NRGBAAt(0, 200))
		assert.Equal(t, red, got.NRGBAAt(199, 200))
	})

	t.Run("large image is scaled down and centered", func(t *testing.T) {
		// scale = min(100/400, 100/200) = 0.25, so the image becomes 100x50
		// and sits at y = 25.
		got := FitToCanvas(pdftest.Image(400, 200, red), 100, 100)

		assert.Equal(t, image.Rect(0, 0, 100, 100), got.Bounds())
		assert.Equal(t, white, got.NRGBAAt(50, 0))
		assert.Equal(t, white, got.NRGBAAt(50, 24))
		assert.Equal(t, red, got.NRGBAAt(50, 25))
		assert.Equal(t, red, got.NRGBAAt(50, 74))
		assert.Equal(t, white, got.NRGBAAt(50, 75))
	})

	t.Run("tall image is centered horizontally", func(t *testing.T) {
		got := FitToCanvas(pdftest.Image(10, 100, red), 100, 100)

		assert.Equal(t, white, got.NRGBAAt(44, 50))
		assert.Equal(t, red, got.NRGBAAt(45, 50))
		assert.Equal(t, red, got.NRGBAAt(54, 50))
		assert.Equal(t, white, got.NRGBAAt(55, 50))
	})
}

func newTestConverter(t *testing.T, placement types.PlacementMode, canvasW, canvasH int) (*Converter, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	cfg := types.DefaultMergeConfig().Image
	cfg.CanvasWidth = canvasW
	cfg.CanvasHeight = canvasH
	return NewConverter(fs, cfg, placement, pdftest.Config()), fs
}

func TestConverter_Convert(t *testing.T) {
	tests := []struct {
		name      string
		placement types.PlacementMode
		imgW      int
		imgH      int
		want      image.Point
	}{
		{name: "native keeps pixel size", placement: types.PlacementNative, imgW: 300, imgH: 200, want: image.Pt(300, 200)},
		{name: "native never resizes large images", placement: types.PlacementNative, imgW: 900, imgH: 700, want: image.Pt(900, 700)},
		{name: "fit renders the canvas", placement: types.PlacementFit, imgW: 300, imgH: 200, want: image.Pt(248, 351)},
		{name: "fit upscales onto the canvas", placement: types.PlacementFit, imgW: 20, imgH: 10, want: image.Pt(248, 351)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv, fs := newTestConverter(t, tt.placement, 248, 351)
			pdftest.WriteFile(t, fs, "/in/photo.png", pdftest.PNG(t, pdftest.Image(tt.imgW, tt.imgH, red)))

			page, err := conv.Convert("/in/photo.png")
			require.NoError(t, err)

			assert.Equal(t, "/in/photo.png", page.Name())
			assert.Equal(t, 1, page.PageCount())
			assert.Equal(t, tt.want, image.Pt(page.Width, page.Height))

			data, err := io.ReadAll(page.Reader())
			require.NoError(t, err)
			assert.Equal(t, []image.Point{tt.want}, pdftest.Sizes(pdftest.PageDims(t, data)))

			var pages []types.Page
			for p := range page.Pages() {
				pages = append(pages, p)
			}
			assert.Equal(t, []types.Page{{Source: "/in/photo.png", Number: 1}}, pages)
		})
	}
}

func TestConverter_ConvertLossless(t *testing.T) {
	conv, fs := newTestConverter(t, types.PlacementNative, 10, 10)
	conv.cfg.Lossless = true
	pdftest.WriteFile(t, fs, "scan.png", pdftest.PNG(t, pdftest.Image(64, 32, red)))

	page, err := conv.Convert("scan.png")
	require.NoError(t, err)

	data, err := io.ReadAll(page.Reader())
	require.NoError(t, err)
	assert.Equal(t, []image.Point{image.Pt(64, 32)}, pdftest.Sizes(pdftest.PageDims(t, data)))
}

func TestConverter_ConvertErrors(t *testing.T) {
	conv, fs := newTestConverter(t, types.PlacementFit, 248, 351)
	pdftest.WriteFile(t, fs, "broken.png", []byte("definitely not a PNG"))

	_, err := conv.Convert("broken.png")
	assert.ErrorIs(t, err, types.ErrUnsupportedImageFormat)

	_, err = conv.Convert("missing.png")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, types.ErrUnsupportedImageFormat)
}
