// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftest builds PDF and image fixtures for tests.
package pdftest

import (
	"bytes"
	"image"
	"image/color"
	"io"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// Config returns a relaxed pdfcpu configuration that never touches the
// user's pdfcpu config directory.
func Config() *model.Configuration {
	api.DisableConfigDir()
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// Image returns a w x h image filled with c.
func Image(w, h int, c color.Color) *image.NRGBA {
	return imaging.New(w, h, c)
}

// PNG encodes img as PNG.
func PNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return buf.Bytes()
}

// PDF builds a document with one page per size. Each page is sized to its
// entry, so page order can be checked through PageDims.
func PDF(t *testing.T, sizes ...image.Point) []byte {
	t.Helper()
	require.NotEmpty(t, sizes, "a PDF fixture needs at least one page")

	imgs := make([]io.Reader, len(sizes))
	for i, s := range sizes {
		imgs[i] = bytes.NewReader(PNG(t, Image(s.X, s.Y, color.Gray{Y: 128})))
	}

	imp := pdfcpu.DefaultImportConfig()
	imp.Pos = types.Full

	var out bytes.Buffer
	require.NoError(t, api.ImportImages(nil, &out, imgs, imp, Config()))
	return out.Bytes()
}

// WriteFile stores data at path in fs.
func WriteFile(t *testing.T, fs afero.Fs, path string, data []byte) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, data, 0o644))
}

// PageDims returns the media box size of every page of the PDF in data.
func PageDims(t *testing.T, data []byte) []types.Dim {
	t.Helper()
	dims, err := api.PageDims(bytes.NewReader(data), Config())
	require.NoError(t, err)
	return dims
}

// Sizes converts page dimensions to integer points for easy comparison.
func Sizes(dims []types.Dim) []image.Point {
	out := make([]image.Point, len(dims))
	for i, d := range dims {
		out[i] = image.Pt(int(d.Width+0.5), int(d.Height+0.5))
	}
	return out
}
