package main

import (
	"fmt"
	"os"

	"github.com/ieviev/runtime/classfile"
	"github.com/ieviev/runtime/parser"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <classes.yaml>\n", os.Args[0])
		os.Exit(1)
	}

	filename := os.Args[1]

	f, err := classfile.LoadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", filename, err)
		os.Exit(1)
	}

	resolved, err := f.Resolve(parser.New())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving %s: %v\n", filename, err)
		os.Exit(1)
	}

	// Print summary
	fmt.Printf("Resolved %d classes from %s\n", len(resolved), filename)

	for _, r := range resolved {
		fmt.Printf("  - %s (%d units, %d ranges)\n",
			r.Name, r.Set.Count(), len(r.Set.Ranges()))
	}
}
