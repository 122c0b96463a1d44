// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"path/filepath"
	"strings"
)

// InputKind identifies how an input file contributes pages to the merge.
type InputKind string

const (
	KindPDF   InputKind = "pdf"
	KindImage InputKind = "image"
)

// imageExtensions lists the raster formats the image converter can decode.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// Input is a resolved, typed reference to one file to be merged.
// The kind is derived from the file extension when the input is resolved.
type Input struct {
	// Path is the filesystem path of the input file.
	Path string `json:"path" yaml:"path"`

	// Kind selects the PDF reader or the image converter.
	Kind InputKind `json:"kind" yaml:"kind"`
}

// KindForPath derives the input kind from the file extension, ignoring case.
// It returns false when the extension is neither PDF nor a supported image.
func KindForPath(path string) (InputKind, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".pdf":
		return KindPDF, true
	case imageExtensions[ext]:
		return KindImage, true
	}
	return "", false
}

// NewInput builds an Input for path, or returns false when the extension is
// not recognized.
func NewInput(path string) (Input, bool) {
	kind, ok := KindForPath(path)
	if !ok {
		return Input{}, false
	}
	return Input{Path: path, Kind: kind}, true
}

// HasImages reports whether any of the inputs is an image.
func HasImages(inputs []Input) bool {
	for _, in := range inputs {
		if in.Kind == KindImage {
			return true
		}
	}
	return false
}

// Page identifies one finished page by the input it came from and its
// 1-based position within that input.
type Page struct {
	Source string `json:"source" yaml:"source"`
	Number int    `json:"number" yaml:"number"`
}
