package internal

import (
	"github.com/ieviev/runtime/charset"
	"github.com/ieviev/runtime/classfile"
	"github.com/ieviev/runtime/minterm"
	"github.com/ieviev/runtime/parser"
)

// LoadClasses reads a class definition file and resolves every expression.
func LoadClasses(path string) ([]classfile.Resolved, error) {
	f, err := classfile.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return f.Resolve(parser.New())
}

// BuildClassifier partitions the resolved classes into minterms and builds
// the lookup table over them.
func BuildClassifier(resolved []classfile.Resolved) ([]*charset.Set, *minterm.Classifier, error) {
	minterms, err := minterm.Partition(classfile.Sets(resolved))
	if err != nil {
		return nil, nil, err
	}
	return minterms, minterm.NewClassifier(minterms), nil
}
