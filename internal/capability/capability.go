// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package capability detects optional features once at startup so they can
// be passed explicitly to the resolver and the merge pipeline.
package capability

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"golang.org/x/term"
)

// Set records which optional features are usable in this run.
type Set struct {
	// Images reports whether image inputs can be turned into pages.
	Images bool

	// Interactive reports whether standard input is a terminal, so input
	// files can be requested at a prompt.
	Interactive bool
}

// Options controls detection.
type Options struct {
	// ImagesEnabled is the configured image switch. When false the image
	// probe is skipped and Images is false.
	ImagesEnabled bool

	// Conf is the pdfcpu configuration used for the image probe.
	Conf *model.Configuration
}

// prober abstracts the checks for testing.
type prober interface {
	ProbeImages(conf *model.Configuration) error
	IsTerminal() bool
}

// osProber is the production prober.
type osProber struct {
	stdin *os.File
}

// ProbeImages encodes a 1x1 picture and imports it into an empty PDF.
func (o *osProber) ProbeImages(conf *model.Configuration) error {
	var enc bytes.Buffer
	if err := imaging.Encode(&enc, imaging.New(1, 1, color.White), imaging.PNG); err != nil {
		return fmt.Errorf("encoding probe image: %w", err)
	}
	if err := api.ImportImages(nil, io.Discard, []io.Reader{&enc}, nil, conf); err != nil {
		return fmt.Errorf("importing probe image: %w", err)
	}
	return nil
}

func (o *osProber) IsTerminal() bool {
	return term.IsTerminal(int(o.stdin.Fd()))
}

// Detect probes the running environment. A failed image probe is reported
// on w as a warning.
func Detect(opts Options, w io.Writer) Set {
	return detect(&osProber{stdin: os.Stdin}, opts, w)
}

func detect(p prober, opts Options, w io.Writer) Set {
	var s Set
	if opts.ImagesEnabled {
		if err := p.ProbeImages(opts.Conf); err != nil {
			fmt.Fprintf(w, "warning: image support unavailable: %v\n", err)
		} else {
			s.Images = true
		}
	}
	s.Interactive = p.IsTerminal()
	return s
}
