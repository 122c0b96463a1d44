// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/spf13/afero"

	"github.com/pdiddy/mergepdf/pkg/types"
)

// Document is the output under construction: an ordered list of segments.
type Document struct {
	segments []Segment
	pages    []types.Page
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Append adds all pages of seg after the pages already in the document.
func (d *Document) Append(seg Segment) {
	d.segments = append(d.segments, seg)
	for p := range seg.Pages() {
		d.pages = append(d.pages, p)
	}
}

// PageCount returns the number of pages appended so far.
func (d *Document) PageCount() int { return len(d.pages) }

// Pages returns the pages in output order.
func (d *Document) Pages() []types.Page { return d.pages }

// Write stores the document at path. The merged PDF is written to a
// temporary file next to path and renamed into place, so a failed write
// leaves any existing file at path untouched. Failures are reported as
// types.ErrOutputWriteFailed.
func (d *Document) Write(fs afero.Fs, path string, conf *model.Configuration) error {
	if len(d.segments) == 0 {
		return types.ErrEmptyMergeResult
	}

	tmp, err := afero.TempFile(fs, filepath.Dir(path), ".mergepdf-*.pdf")
	if err != nil {
		return fmt.Errorf("%w: creating %s: %w", types.ErrOutputWriteFailed, path, err)
	}
	tmpName := tmp.Name()

	if err := d.writeTo(tmp, conf); err != nil {
		tmp.Close()
		fs.Remove(tmpName)
		return fmt.Errorf("%w: writing %s: %w", types.ErrOutputWriteFailed, path, err)
	}
	if err := tmp.Close(); err != nil {
		fs.Remove(tmpName)
		return fmt.Errorf("%w: closing %s: %w", types.ErrOutputWriteFailed, path, err)
	}
	if err := fs.Chmod(tmpName, 0o644); err != nil {
		fs.Remove(tmpName)
		return fmt.Errorf("%w: setting permissions on %s: %w", types.ErrOutputWriteFailed, path, err)
	}
	if err := fs.Rename(tmpName, path); err != nil {
		fs.Remove(tmpName)
		return fmt.Errorf("%w: renaming into %s: %w", types.ErrOutputWriteFailed, path, err)
	}
	return nil
}

// writeTo emits the merged PDF. A lone segment is already a complete
// document and is copied as is.
func (d *Document) writeTo(w io.Writer, conf *model.Configuration) error {
	if len(d.segments) == 1 {
		_, err := io.Copy(w, d.segments[0].Reader())
		return err
	}

	readers := make([]io.ReadSeeker, len(d.segments))
	for i, seg := range d.segments {
		readers[i] = seg.Reader()
	}
	return api.MergeRaw(readers, w, false, conf)
}
