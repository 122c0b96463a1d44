// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/pdiddy/mergepdf/pkg/types"
)

// PromptResolver asks for input files and the output path on a terminal.
type PromptResolver struct {
	FS  afero.Fs
	In  io.Reader
	Out io.Writer

	// DefaultOutput is offered when the user enters no output path.
	DefaultOutput string
}

// Resolve reads one input path per line until an empty line, then the
// output path. Selecting nothing, or closing the input, cancels.
func (r *PromptResolver) Resolve() (Request, error) {
	sc := bufio.NewScanner(r.In)

	fmt.Fprintln(r.Out, "Enter the PDF or image files to merge, one per line. Finish with an empty line.")
	var paths []string
	for {
		fmt.Fprint(r.Out, "> ")
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			break
		}
		paths = append(paths, line)
	}
	if err := sc.Err(); err != nil {
		return Request{}, fmt.Errorf("reading file selection: %w", err)
	}
	if len(paths) == 0 {
		fmt.Fprintln(r.Out, "No files selected. Operation cancelled.")
		return Request{}, ErrCancelled
	}

	inputs := validate(r.FS, paths, r.Out)
	if len(inputs) == 0 {
		fmt.Fprintln(r.Out, "No valid PDF or image files selected. Operation cancelled.")
		return Request{}, ErrCancelled
	}

	def := r.DefaultOutput
	if def == "" {
		def = types.DefaultOutput
	}
	fmt.Fprintf(r.Out, "Save merged PDF as [%s]: ", def)
	if !sc.Scan() {
		fmt.Fprintln(r.Out, "\nNo output file specified. Operation cancelled.")
		return Request{}, ErrCancelled
	}
	output := strings.TrimSpace(sc.Text())
	if output == "" {
		output = def
	}
	if filepath.Ext(output) == "" {
		output += ".pdf"
	}

	return Request{Inputs: inputs, Output: output}, nil
}

// ConfirmOverwrite asks before an existing file at path is replaced. It
// returns true without asking when path does not exist. Only "y" or "yes"
// confirms; anything else, including end of input, declines.
func ConfirmOverwrite(fs afero.Fs, path string, in io.Reader, out io.Writer) (bool, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return false, fmt.Errorf("checking output %s: %w", path, err)
	}
	if !exists {
		return true, nil
	}

	fmt.Fprintf(out, "Output file '%s' already exists. Overwrite? (y/N): ", path)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
