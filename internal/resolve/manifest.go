// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/mergepdf/pkg/types"
)

// Manifest lists merge inputs in a YAML file:
//
//	output: combined.pdf
//	inputs:
//	  - cover.png
//	  - chapters/one.pdf
//
// Relative paths are resolved against the manifest's directory.
type Manifest struct {
	Output string   `yaml:"output"`
	Inputs []string `yaml:"inputs"`
}

// LoadManifest reads and parses the manifest at path.
func LoadManifest(fs afero.Fs, path string) (Manifest, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Manifest{}, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return m, nil
}

// ManifestResolver resolves inputs listed in a manifest file.
type ManifestResolver struct {
	FS   afero.Fs
	Path string

	// Output overrides the manifest's output when non-empty.
	Output string

	Warn io.Writer
}

// Resolve loads the manifest and validates its inputs in listed order.
func (r *ManifestResolver) Resolve() (Request, error) {
	m, err := LoadManifest(r.FS, r.Path)
	if err != nil {
		return Request{}, err
	}

	base := filepath.Dir(r.Path)
	paths := make([]string, len(m.Inputs))
	for i, p := range m.Inputs {
		paths[i] = relativeTo(base, p)
	}

	inputs := validate(r.FS, paths, r.Warn)
	if len(inputs) == 0 {
		return Request{}, fmt.Errorf("%w: manifest %s lists no valid PDF or image files", types.ErrInvalidInputPath, r.Path)
	}

	output := r.Output
	switch {
	case output != "":
	case m.Output != "":
		output = relativeTo(base, m.Output)
	default:
		output = types.DefaultOutput
	}

	return Request{Inputs: inputs, Output: output, Confirm: true}, nil
}

func relativeTo(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
