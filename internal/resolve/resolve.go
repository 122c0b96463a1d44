// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve turns user input into the ordered list of files to merge
// and the destination path.
//
// Three resolvers share one contract: command-line arguments, a YAML
// manifest, and an interactive prompt. Each returns a Request or
// ErrCancelled when the user backs out.
package resolve

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/pdiddy/mergepdf/pkg/types"
)

// ErrCancelled means the user chose not to proceed. It is not a failure.
var ErrCancelled = errors.New("operation cancelled")

// Request is a resolved merge job.
type Request struct {
	// Inputs are the valid input files in merge order.
	Inputs []types.Input

	// Output is the destination path.
	Output string

	// Confirm reports whether an existing output should be confirmed before
	// it is overwritten. Interactive selection already asked for the path.
	Confirm bool
}

// Resolver produces a merge request.
type Resolver interface {
	Resolve() (Request, error)
}

// validate checks paths in order and keeps the usable ones. Rejected paths
// are reported on w and skipped.
func validate(fs afero.Fs, paths []string, w io.Writer) []types.Input {
	var inputs []types.Input
	for _, p := range paths {
		in, err := check(fs, p)
		if err != nil {
			fmt.Fprintf(w, "warning: %v\n", err)
			continue
		}
		inputs = append(inputs, in)
	}
	return inputs
}

// check verifies that path exists, is a regular file, and has a recognized
// extension.
func check(fs afero.Fs, path string) (types.Input, error) {
	info, err := fs.Stat(path)
	if err != nil {
		return types.Input{}, fmt.Errorf("%w: file not found: %s", types.ErrInvalidInputPath, path)
	}
	if !info.Mode().IsRegular() {
		return types.Input{}, fmt.Errorf("%w: not a file: %s", types.ErrInvalidInputPath, path)
	}
	in, ok := types.NewInput(path)
	if !ok {
		return types.Input{}, fmt.Errorf("%w: not a PDF or supported image: %s", types.ErrInvalidInputPath, path)
	}
	return in, nil
}

// ArgsResolver resolves inputs given as command-line arguments.
type ArgsResolver struct {
	FS     afero.Fs
	Args   []string
	Output string

	// Warn receives one line per rejected path.
	Warn io.Writer
}

// Resolve validates the arguments. It fails with types.ErrInvalidInputPath
// when none of them is usable.
func (r *ArgsResolver) Resolve() (Request, error) {
	inputs := validate(r.FS, r.Args, r.Warn)
	if len(inputs) == 0 {
		return Request{}, fmt.Errorf("%w: no valid PDF or image files provided", types.ErrInvalidInputPath)
	}
	return Request{Inputs: inputs, Output: r.Output, Confirm: true}, nil
}
