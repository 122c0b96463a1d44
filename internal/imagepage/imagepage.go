// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package imagepage turns raster images into single-page PDF documents.
//
// An image is decoded, flattened onto white, and then either centered on a
// fixed-size canvas (fit placement) or used at its own pixel size (native
// placement). The resulting picture is embedded as the only page of a new PDF
// whose media box matches the picture's pixel dimensions.
package imagepage

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"iter"

	"github.com/disintegration/imaging"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	pdftypes "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/spf13/afero"
	_ "golang.org/x/image/webp"

	"github.com/pdiddy/mergepdf/pkg/types"
)

// Converter renders image files as PDF pages.
type Converter struct {
	fs        afero.Fs
	cfg       types.ImageConfig
	placement types.PlacementMode
	conf      *model.Configuration
}

// NewConverter creates a converter reading images from fs. The canvas size
// and encoding come from cfg; placement selects fit or native rendering.
func NewConverter(fs afero.Fs, cfg types.ImageConfig, placement types.PlacementMode, conf *model.Configuration) *Converter {
	return &Converter{fs: fs, cfg: cfg, placement: placement, conf: conf}
}

// Convert decodes the image at path and renders it as exactly one page.
// Decoding failures are reported as types.ErrUnsupportedImageFormat.
func (c *Converter) Convert(path string) (*Page, error) {
	img, err := c.decode(path)
	if err != nil {
		return nil, err
	}

	pic := Flatten(img)
	if c.placement == types.PlacementFit {
		pic = FitToCanvas(pic, c.cfg.CanvasWidth, c.cfg.CanvasHeight)
	}

	data, err := Render(pic, c.cfg, c.conf)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", path, err)
	}

	b := pic.Bounds()
	return &Page{path: path, data: data, Width: b.Dx(), Height: b.Dy()}, nil
}

func (c *Converter) decode(path string) (image.Image, error) {
	f, err := c.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image %s: %w", path, err)
	}
	defer f.Close()

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %w", types.ErrUnsupportedImageFormat, path, err)
	}
	if b := img.Bounds(); b.Dx() < 1 || b.Dy() < 1 {
		return nil, fmt.Errorf("%w: %s has no pixels", types.ErrUnsupportedImageFormat, path)
	}
	return img, nil
}

// Flatten composites img onto an opaque white background. Transparent and
// palette images come out as plain opaque RGB.
func Flatten(img image.Image) *image.NRGBA {
	b := img.Bounds()
	bg := imaging.New(b.Dx(), b.Dy(), color.White)
	return imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
}

// ScaledSize returns the size of an imgW x imgH image scaled proportionally
// so that it fills a canvasW x canvasH canvas along its limiting dimension.
// Images smaller than the canvas are scaled up. Each axis is at least 1.
func ScaledSize(imgW, imgH, canvasW, canvasH int) (int, int) {
	scale := min(float64(canvasW)/float64(imgW), float64(canvasH)/float64(imgH))
	w := int(float64(imgW) * scale)
	h := int(float64(imgH) * scale)
	return max(w, 1), max(h, 1)
}

// FitToCanvas resizes img with ScaledSize and centers it on a white
// canvasW x canvasH canvas.
func FitToCanvas(img image.Image, canvasW, canvasH int) *image.NRGBA {
	b := img.Bounds()
	w, h := ScaledSize(b.Dx(), b.Dy(), canvasW, canvasH)
	if w != b.Dx() || h != b.Dy() {
		img = imaging.Resize(img, w, h, imaging.Lanczos)
	}

	canvas := imaging.New(canvasW, canvasH, color.White)
	return imaging.Paste(canvas, img, image.Pt((canvasW-w)/2, (canvasH-h)/2))
}

// Render embeds pic as the single page of a new PDF. The page media box
// equals the picture's pixel size.
func Render(pic image.Image, cfg types.ImageConfig, conf *model.Configuration) ([]byte, error) {
	var enc bytes.Buffer
	var err error
	if cfg.Lossless {
		err = imaging.Encode(&enc, pic, imaging.PNG)
	} else {
		err = imaging.Encode(&enc, pic, imaging.JPEG, imaging.JPEGQuality(cfg.Quality))
	}
	if err != nil {
		return nil, fmt.Errorf("encoding page image: %w", err)
	}

	imp := pdfcpu.DefaultImportConfig()
	imp.Pos = pdftypes.Full

	var out bytes.Buffer
	if err := api.ImportImages(nil, &out, []io.Reader{&enc}, imp, conf); err != nil {
		return nil, fmt.Errorf("importing page image: %w", err)
	}
	return out.Bytes(), nil
}

// Page is a single-page PDF synthesized from an image.
type Page struct {
	path string
	data []byte

	// Width and Height are the rendered page size in pixels.
	Width, Height int
}

// Name returns the path of the source image.
func (p *Page) Name() string { return p.path }

// PageCount always returns 1.
func (p *Page) PageCount() int { return 1 }

// Pages yields the one page.
func (p *Page) Pages() iter.Seq[types.Page] {
	return func(yield func(types.Page) bool) {
		yield(types.Page{Source: p.path, Number: 1})
	}
}

// Reader returns a fresh reader over the PDF bytes.
func (p *Page) Reader() io.ReadSeeker {
	return bytes.NewReader(p.data)
}
