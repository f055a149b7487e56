// Package classfile loads named class definitions from YAML files.
//
// A class file lists class expressions in priority order. Order matters
// downstream: the resolved sets feed the minterm partitioner, which
// numbers derived classes by first appearance in the input.
package classfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/ieviev/runtime/charset"
	"github.com/ieviev/runtime/parser"
	"gopkg.in/yaml.v3"
)

// File is the on-disk YAML shape of a class definition file.
type File struct {
	Classes []Class `yaml:"classes"`
}

// Class is one named class expression.
type Class struct {
	Name string `yaml:"name"`
	Expr string `yaml:"expr"`
}

// Resolved pairs a class name with the set its expression denotes.
type Resolved struct {
	Name string
	Set  *charset.Set
}

// Load parses and validates class definitions from YAML bytes.
func Load(b []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, err
	}
	if len(f.Classes) == 0 {
		return nil, errors.New("no classes defined")
	}
	seen := make(map[string]bool, len(f.Classes))
	for i, c := range f.Classes {
		if c.Name == "" {
			return nil, fmt.Errorf("class %d: missing name", i)
		}
		if c.Expr == "" {
			return nil, fmt.Errorf("class %q: missing expr", c.Name)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("class %q: defined twice", c.Name)
		}
		seen[c.Name] = true
	}
	return &f, nil
}

// LoadFile reads class definitions from a YAML file.
func LoadFile(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	f, err := Load(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Resolve parses every class expression. Definition order is kept.
func (f *File) Resolve(p *parser.Parser) ([]Resolved, error) {
	out := make([]Resolved, len(f.Classes))
	for i, c := range f.Classes {
		set, err := p.Parse(c.Expr)
		if err != nil {
			return nil, fmt.Errorf("class %q: %w", c.Name, err)
		}
		out[i] = Resolved{Name: c.Name, Set: set}
	}
	return out, nil
}

// Sets extracts the resolved sets in definition order, ready for
// partitioning.
func Sets(resolved []Resolved) []*charset.Set {
	sets := make([]*charset.Set, len(resolved))
	for i, r := range resolved {
		sets[i] = r.Set
	}
	return sets
}
