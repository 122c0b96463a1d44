package types

import "fmt"

// PlacementMode governs how an image is mapped onto a PDF page.
type PlacementMode string

const (
	// PlacementFit scales the image proportionally to fill a fixed-size
	// canvas and centers it.
	PlacementFit PlacementMode = "a4"

	// PlacementNative renders the image as a page sized to its own pixel
	// dimensions.
	PlacementNative PlacementMode = "original"
)

// ParsePlacement converts an --image-size value into a PlacementMode.
func ParsePlacement(s string) (PlacementMode, error) {
	switch PlacementMode(s) {
	case PlacementFit, PlacementNative:
		return PlacementMode(s), nil
	}
	return "", fmt.Errorf("invalid image size %q: must be %q or %q", s, PlacementFit, PlacementNative)
}

// Default canvas: an A4 page at 300 DPI.
const (
	DefaultCanvasWidth  = 2480
	DefaultCanvasHeight = 3508
	DefaultJPEGQuality  = 95
	DefaultOutput       = "merged.pdf"
)

// ImageConfig holds settings for the image-to-page converter.
type ImageConfig struct {
	// Enabled turns image support on. When false, image inputs make the run
	// fail with ErrMissingCapability.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// CanvasWidth and CanvasHeight are the fit-to-canvas page size in pixels.
	CanvasWidth  int `json:"canvas_width" yaml:"canvas_width"`
	CanvasHeight int `json:"canvas_height" yaml:"canvas_height"`

	// Quality is the JPEG quality (1-100) used to embed page images.
	Quality int `json:"quality" yaml:"quality"`

	// Lossless embeds page images as PNG instead of JPEG.
	Lossless bool `json:"lossless" yaml:"lossless"`
}

// PDFConfig holds settings for reading and writing PDF files.
type PDFConfig struct {
	// Strict selects strict validation of input documents. The default is
	// relaxed validation, which accepts most real-world files.
	Strict bool `json:"strict" yaml:"strict"`
}

// MergeConfig groups all settings for one merge run.
type MergeConfig struct {
	// Output is the destination path (default merged.pdf).
	Output string `json:"output" yaml:"output"`

	// Placement selects how images become pages.
	Placement PlacementMode `json:"image_size" yaml:"image_size"`

	// Force overwrites an existing output without asking.
	Force bool `json:"force" yaml:"force"`

	// Verbose echoes the resolved inputs and output before merging.
	Verbose bool `json:"verbose" yaml:"verbose"`

	Image ImageConfig `json:"image" yaml:"image"`
	PDF   PDFConfig   `json:"pdf" yaml:"pdf"`
}

// DefaultMergeConfig returns the settings used when nothing is configured.
func DefaultMergeConfig() MergeConfig {
	return MergeConfig{
		Output:    DefaultOutput,
		Placement: PlacementFit,
		Image: ImageConfig{
			Enabled:      true,
			CanvasWidth:  DefaultCanvasWidth,
			CanvasHeight: DefaultCanvasHeight,
			Quality:      DefaultJPEGQuality,
		},
	}
}

// Validate checks that the configuration values are usable.
func (c MergeConfig) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if _, err := ParsePlacement(string(c.Placement)); err != nil {
		return err
	}
	if c.Image.CanvasWidth <= 0 || c.Image.CanvasHeight <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", c.Image.CanvasWidth, c.Image.CanvasHeight)
	}
	if c.Image.Quality < 1 || c.Image.Quality > 100 {
		return fmt.Errorf("invalid JPEG quality %d: must be between 1 and 100", c.Image.Quality)
	}
	return nil
}
