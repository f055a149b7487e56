package main

import (
	"flag"
	"fmt"
	"os"

	stdregexp "regexp"

	"github.com/coregx/coregex"
	gore2 "github.com/wasilibs/go-re2"

	"github.com/ieviev/runtime/classfile"
	"github.com/ieviev/runtime/cmd/internal"
	"github.com/ieviev/runtime/minterm"
	"github.com/ieviev/runtime/parser"
)

type matcher interface {
	Match(b []byte) bool
}

type compileFunc func(pattern string) (matcher, error)

var engines = map[string]compileFunc{
	"regexp": func(s string) (matcher, error) {
		return stdregexp.Compile(s)
	},
	"go-re2": func(s string) (matcher, error) {
		return gore2.Compile(s)
	},
	"coregex": func(s string) (matcher, error) {
		return coregex.Compile(s)
	},
}

var order = []string{"regexp", "go-re2", "coregex"}

func main() {
	classPath := flag.String("classes", "", "path to class definition file")
	stride := flag.Int("stride", 1, "probe every nth code unit")
	flag.Parse()

	if *classPath == "" || *stride < 1 {
		fmt.Fprintf(os.Stderr, "Usage: engine-diff -classes <classes.yaml> [-stride n]\n")
		os.Exit(1)
	}

	f, err := classfile.LoadFile(*classPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading classes: %v\n", err)
		os.Exit(1)
	}
	resolved, err := f.Resolve(parser.New())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving classes: %v\n", err)
		os.Exit(1)
	}

	tableDiffs := checkClassifier(resolved)

	perEngine := make(map[string]int)
	for i, c := range f.Classes {
		checkEngines(c.Name, c.Expr, resolved[i], *stride, perEngine)
	}

	if engineDiffs := internal.SumValues(perEngine); engineDiffs > 0 {
		fmt.Printf("\nper-engine disagreements:\n")
		for _, name := range internal.SortByCount(perEngine) {
			fmt.Printf("  %-8s %d\n", name, perEngine[name])
		}
	}

	total := tableDiffs + internal.SumValues(perEngine)
	if total > 0 {
		fmt.Printf("\n*** %d disagreements\n", total)
		os.Exit(1)
	}
	fmt.Printf("\nall engines agree on %d classes\n", len(f.Classes))
}

// checkClassifier verifies the built table against the resolved sets: a
// unit maps to the default class exactly when no set claims it, and every
// other unit is a member of the minterm it maps to.
func checkClassifier(resolved []classfile.Resolved) int {
	minterms, err := minterm.Partition(classfile.Sets(resolved))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error partitioning: %v\n", err)
		os.Exit(1)
	}
	clf := minterm.NewClassifier(minterms)

	diffs := 0
	for u := 0; u <= 0xFFFF; u++ {
		id := clf.Classify(uint16(u))
		if member := memberOfAny(resolved, uint16(u)); member == (id == 0) {
			diffs++
			continue
		}
		if id != 0 && !minterms[id].Contains(uint16(u)) {
			diffs++
		}
	}
	if diffs > 0 {
		fmt.Printf("classifier: %d units disagree with the resolved sets\n", diffs)
	} else {
		fmt.Printf("classifier: consistent over the full domain (%d minterms)\n", clf.AlphabetLen())
	}
	return diffs
}

func memberOfAny(resolved []classfile.Resolved, u uint16) bool {
	for _, r := range resolved {
		if r.Set.Contains(u) {
			return true
		}
	}
	return false
}

// checkEngines compiles the class expression as an anchored single-rune
// pattern in every engine and probes the unit domain against the resolved
// set. Surrogate units are skipped: they cannot be encoded for an engine
// that matches UTF-8 text.
func checkEngines(name, expr string, r classfile.Resolved, stride int, tally map[string]int) {
	pattern := "(?s)^(?:" + expr + ")$"
	before := internal.SumValues(tally)

	for _, engine := range order {
		m, err := engines[engine](pattern)
		if err != nil {
			fmt.Printf("class %s: %s rejects %q: %v\n", name, engine, pattern, err)
			tally[engine]++
			continue
		}

		diffs := 0
		example := -1
		for u := 0; u <= 0xFFFF; u += stride {
			if u >= 0xD800 && u <= 0xDFFF {
				continue
			}
			got := m.Match([]byte(string(rune(u))))
			if got != r.Set.Contains(uint16(u)) {
				diffs++
				if example < 0 {
					example = u
				}
			}
		}
		if diffs > 0 {
			fmt.Printf("class %s: %s disagrees on %d units (e.g. %#04x)\n", name, engine, diffs, example)
			tally[engine] += diffs
		}
	}

	if internal.SumValues(tally) == before {
		fmt.Printf("class %s: ok\n", name)
	}
}
