// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfsource opens PDF input files and exposes their pages in file
// order. Each file is read to completion and validated before any of its
// pages are handed to the merge stage, so a damaged file contributes nothing.
package pdfsource

import (
	"bytes"
	"fmt"
	"io"
	"iter"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/spf13/afero"

	"github.com/pdiddy/mergepdf/pkg/types"
)

// Configuration returns the pdfcpu configuration shared by the reader, the
// image converter, and the output writer. The on-disk pdfcpu config
// directory is never touched.
func Configuration(strict bool) *model.Configuration {
	api.DisableConfigDir()
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if strict {
		conf.ValidationMode = model.ValidationStrict
	}
	return conf
}

// Reader opens PDF files from a filesystem.
type Reader struct {
	fs   afero.Fs
	conf *model.Configuration
}

// NewReader creates a Reader that loads files from fs and parses them with conf.
func NewReader(fs afero.Fs, conf *model.Configuration) *Reader {
	return &Reader{fs: fs, conf: conf}
}

// Open reads and validates the PDF at path. Any failure to read, parse, or
// validate the file is reported as types.ErrUnreadableDocument.
func (r *Reader) Open(path string) (*Document, error) {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", types.ErrUnreadableDocument, path, err)
	}

	ctx, err := api.ReadContext(bytes.NewReader(data), r.conf)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", types.ErrUnreadableDocument, path, err)
	}
	if err := api.ValidateContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: validating %s: %w", types.ErrUnreadableDocument, path, err)
	}
	if ctx.PageCount < 1 {
		return nil, fmt.Errorf("%w: %s has no pages", types.ErrUnreadableDocument, path)
	}

	return &Document{path: path, data: data, pages: ctx.PageCount}, nil
}

// Document is a validated PDF file held in memory.
type Document struct {
	path  string
	data  []byte
	pages int
}

// Name returns the path the document was read from.
func (d *Document) Name() string { return d.path }

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int { return d.pages }

// Pages yields the document's pages in file order. The sequence can be
// ranged over any number of times and always starts at page 1.
func (d *Document) Pages() iter.Seq[types.Page] {
	return func(yield func(types.Page) bool) {
		for n := 1; n <= d.pages; n++ {
			if !yield(types.Page{Source: d.path, Number: n}) {
				return
			}
		}
	}
}

// Reader returns a fresh reader over the document bytes.
func (d *Document) Reader() io.ReadSeeker {
	return bytes.NewReader(d.data)
}
