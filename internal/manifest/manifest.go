// Package manifest models the VM-invocation metadata delivered alongside a
// contract program: the declared inputs and outputs of the invocation and the
// context variables the VM binds at execution time. The analyzer seeds its
// global scope from this data before the first AST node is visited.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Binding is one declared input or output: a name and the number of field
// elements it spans. Length 1 is a scalar, anything larger an array.
type Binding struct {
	Name   string `yaml:"name"`
	Length int    `yaml:"length"`
}

// Manifest is the invocation metadata ("prophet") of a program.
type Manifest struct {
	Inputs  []Binding `yaml:"inputs"`
	Outputs []Binding `yaml:"outputs"`
	Context []string  `yaml:"ctx"`
}

// Parse decodes a YAML manifest and validates it.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	return Parse(data)
}

// Validate checks the structural rules the analyzer relies on: every binding
// named, every length positive, and no name declared twice across inputs,
// outputs, and context variables.
func (m *Manifest) Validate() error {
	seen := make(map[string]bool)
	claim := func(name string) error {
		if name == "" {
			return fmt.Errorf("manifest: binding with empty name")
		}
		if seen[name] {
			return fmt.Errorf("manifest: name '%s' declared more than once", name)
		}
		seen[name] = true
		return nil
	}

	for _, in := range m.Inputs {
		if err := claim(in.Name); err != nil {
			return err
		}
		if in.Length < 1 {
			return fmt.Errorf("manifest: input '%s' has non-positive length %d", in.Name, in.Length)
		}
	}
	for _, name := range m.Context {
		if err := claim(name); err != nil {
			return err
		}
	}
	for _, out := range m.Outputs {
		if err := claim(out.Name); err != nil {
			return err
		}
		if out.Length < 1 {
			return fmt.Errorf("manifest: output '%s' has non-positive length %d", out.Name, out.Length)
		}
	}
	return nil
}
