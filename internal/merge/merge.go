// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package merge assembles PDF documents and image pages into one output PDF.
//
// Inputs are processed strictly in order, one file at a time. A file that
// cannot be read or decoded is reported and skipped; the run only fails when
// nothing usable remains or the destination cannot be written.
package merge

import (
	"fmt"
	"io"
	"iter"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/spf13/afero"

	"github.com/pdiddy/mergepdf/internal/capability"
	"github.com/pdiddy/mergepdf/internal/imagepage"
	"github.com/pdiddy/mergepdf/internal/pdfsource"
	"github.com/pdiddy/mergepdf/pkg/types"
)

// Segment is a run of finished pages contributed by one input, held as a
// standalone PDF.
type Segment interface {
	// Name returns the path of the input the pages came from.
	Name() string

	// PageCount returns the number of pages in the segment.
	PageCount() int

	// Pages yields the segment's pages in order.
	Pages() iter.Seq[types.Page]

	// Reader returns a fresh reader over the segment's PDF bytes.
	Reader() io.ReadSeeker
}

// Loader turns one input file into a segment. The PDF reader and the image
// converter are the two implementations.
type Loader interface {
	Load(path string) (Segment, error)
}

// Result holds the outcome of a merge run.
type Result struct {
	Inputs  int
	Merged  int
	Failed  int
	Skipped int
	Pages   int
}

// HasFailures reports whether any input failed to load.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// Pipeline merges inputs in order.
type Pipeline struct {
	fs      afero.Fs
	conf    *model.Configuration
	caps    capability.Set
	loaders map[types.InputKind]Loader
	w       io.Writer
}

// New creates a pipeline reading and writing through fs. Progress lines are
// written to w.
func New(fs afero.Fs, cfg types.MergeConfig, caps capability.Set, conf *model.Configuration, w io.Writer) *Pipeline {
	return &Pipeline{
		fs:   fs,
		conf: conf,
		caps: caps,
		loaders: map[types.InputKind]Loader{
			types.KindPDF:   pdfLoader{pdfsource.NewReader(fs, conf)},
			types.KindImage: imageLoader{imagepage.NewConverter(fs, cfg.Image, cfg.Placement, conf)},
		},
		w: w,
	}
}

// Merge loads every input in order and returns the assembled document.
// Inputs that fail to load are reported and skipped. It fails with
// types.ErrMissingCapability when images are present but unsupported, and
// with types.ErrEmptyMergeResult when no input produced a page.
func (p *Pipeline) Merge(inputs []types.Input) (*Document, Result, error) {
	result := Result{Inputs: len(inputs)}

	if types.HasImages(inputs) && !p.caps.Images {
		return nil, result, fmt.Errorf("%w: image inputs given but image support is unavailable", types.ErrMissingCapability)
	}

	doc := NewDocument()
	for _, in := range inputs {
		loader, ok := p.loaders[in.Kind]
		if !ok {
			fmt.Fprintf(p.w, "skipped: %s (unsupported file type)\n", in.Path)
			result.Skipped++
			continue
		}

		fmt.Fprintf(p.w, "Processing: %s\n", in.Path)
		seg, err := loader.Load(in.Path)
		if err != nil {
			fmt.Fprintf(p.w, "failed:  %s (%v)\n", in.Path, err)
			result.Failed++
			continue
		}

		doc.Append(seg)
		result.Merged++
		fmt.Fprintf(p.w, "  Added %d page(s) from %s\n", seg.PageCount(), in.Path)
	}

	result.Pages = doc.PageCount()
	if result.Pages == 0 {
		return nil, result, fmt.Errorf("%w: none of the %d input file(s) could be merged", types.ErrEmptyMergeResult, len(inputs))
	}
	return doc, result, nil
}

// Run merges inputs and writes the result to output. The destination is
// only touched once every input has been processed.
func (p *Pipeline) Run(inputs []types.Input, output string) (Result, error) {
	doc, result, err := p.Merge(inputs)
	if err != nil {
		return result, err
	}

	if err := doc.Write(p.fs, output, p.conf); err != nil {
		return result, err
	}

	fmt.Fprintf(p.w, "\nSuccessfully merged %d of %d files into: %s\n", result.Merged, result.Inputs, output)
	fmt.Fprintf(p.w, "Total pages in merged PDF: %d\n", result.Pages)
	return result, nil
}

// pdfLoader adapts the PDF reader to Loader.
type pdfLoader struct {
	r *pdfsource.Reader
}

func (l pdfLoader) Load(path string) (Segment, error) {
	doc, err := l.r.Open(path)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// imageLoader adapts the image converter to Loader.
type imageLoader struct {
	c *imagepage.Converter
}

func (l imageLoader) Load(path string) (Segment, error) {
	page, err := l.c.Convert(path)
	if err != nil {
		return nil, err
	}
	return page, nil
}
