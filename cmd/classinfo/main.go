package main

import (
	"flag"
	"fmt"
	"os"
	"time"
	"unicode/utf16"

	"github.com/ieviev/runtime/cmd/internal"
	"github.com/ieviev/runtime/minterm"
)

func main() {
	flag.Parse()
	if flag.NArg() < 1 || flag.NArg() > 2 {
		fmt.Fprintf(os.Stderr, "usage: classinfo <classes.yaml> [file]\n")
		os.Exit(1)
	}

	resolved, err := internal.LoadClasses(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading classes: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("classes: %d\n", len(resolved))
	for _, r := range resolved {
		fmt.Printf("  %-12s %6d units  %s\n", r.Name, r.Set.Count(), r.Set)
	}

	start := time.Now()
	minterms, clf, err := internal.BuildClassifier(resolved)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error partitioning: %v\n", err)
		os.Exit(1)
	}
	built := time.Since(start)

	shape := "full"
	switch {
	case clf.ASCIIOnly():
		shape = "ascii"
	case clf.AlphabetLen() > 256:
		shape = "wide"
	}

	fmt.Printf("\nminterms: %d (built in %v)\n", clf.AlphabetLen(), built)
	fmt.Printf("table: %s, %d bytes\n", shape, clf.TableBytes())
	for id, m := range minterms {
		if id == 0 {
			fmt.Printf("  %3d: default (%d units)\n", id, m.Count())
			continue
		}
		fmt.Printf("  %3d: %s\n", id, m)
	}

	if flag.NArg() == 2 {
		classifyFile(flag.Arg(1), clf)
	}
}

// classifyFile histograms the file's UTF-16 code units by class.
func classifyFile(path string, clf *minterm.Classifier) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading %s: %v\n", path, err)
		os.Exit(1)
	}

	units := utf16.Encode([]rune(string(data)))
	counts := make([]int, clf.AlphabetLen())
	for _, u := range units {
		counts[clf.Classify(u)]++
	}

	fmt.Printf("\n%s: %d code units\n", path, len(units))
	for id, n := range counts {
		if n == 0 {
			continue
		}
		fmt.Printf("  %3d: %8d (%.1f%%)\n", id, n, 100*float64(n)/float64(len(units)))
	}
}
