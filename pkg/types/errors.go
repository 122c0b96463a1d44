// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the mergepdf pipeline:
// resolved inputs, placement modes, configuration, and the error taxonomy
// shared by the reader, the image converter, and the merge stage.
package types

import "errors"

// Per-file errors. The merge pipeline reports these and skips the file.
var (
	// ErrUnreadableDocument means a file could not be parsed as a PDF
	// (corrupt header, unsupported encryption, truncated stream).
	ErrUnreadableDocument = errors.New("unreadable document")

	// ErrUnsupportedImageFormat means the image decoder could not interpret a file.
	ErrUnsupportedImageFormat = errors.New("unsupported image format")

	// ErrInvalidInputPath means a path does not exist, is not a regular file,
	// or has an unrecognized extension.
	ErrInvalidInputPath = errors.New("invalid input path")
)

// Whole-run errors. These terminate the run with a non-zero status.
var (
	// ErrMissingCapability means image inputs are present but image support
	// is unavailable.
	ErrMissingCapability = errors.New("missing capability")

	// ErrEmptyMergeResult means no input contributed any page.
	ErrEmptyMergeResult = errors.New("no pages to write")

	// ErrOutputWriteFailed means the destination could not be created or written.
	ErrOutputWriteFailed = errors.New("output write failed")
)
