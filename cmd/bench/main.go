package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"
	"unicode/utf16"

	"github.com/ieviev/runtime/charset"
	"github.com/ieviev/runtime/cmd/internal"
	"github.com/ieviev/runtime/minterm"
)

func main() {
	classPath := flag.String("classes", "classes.yaml", "path to class definition file")
	scanPath := flag.String("scan", "", "file to classify (default: sweep the whole unit domain)")
	iterations := flag.Int("n", 100, "number of iterations")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file (table lookup only)")
	flag.Parse()

	resolved, err := internal.LoadClasses(*classPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load classes: %v\n", err)
		os.Exit(1)
	}

	minterms, clf, err := internal.BuildClassifier(resolved)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build classifier: %v\n", err)
		os.Exit(1)
	}

	units := workload(*scanPath)
	fmt.Printf("Classifying %d code units, %d minterms, %d iterations\n\n",
		len(units), clf.AlphabetLen(), *iterations)

	tableTime, tableSum := benchTable(clf, units, *iterations, *cpuprofile)
	scanTime, scanSum := benchScan(minterms, units, *iterations)

	if tableSum != scanSum {
		fmt.Fprintf(os.Stderr, "checksum mismatch: table=%d scan=%d\n", tableSum, scanSum)
		os.Exit(1)
	}

	fmt.Printf("table:  %v  (%.2f Munits/s)\n", tableTime, rate(len(units), tableTime))
	fmt.Printf("scan:   %v  (%.2f Munits/s)\n", scanTime, rate(len(units), scanTime))
	fmt.Printf("ratio:  %.2fx\n", float64(scanTime)/float64(tableTime))
}

// workload returns the code units to classify: the file's text as UTF-16,
// or one pass over the entire unit domain when no file is given.
func workload(path string) []uint16 {
	if path == "" {
		units := make([]uint16, charset.MaxCode+1)
		for i := range units {
			units[i] = uint16(i)
		}
		return units
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read scan file: %v\n", err)
		os.Exit(1)
	}
	return utf16.Encode([]rune(string(data)))
}

func benchTable(clf *minterm.Classifier, units []uint16, iterations int, cpuprofile string) (time.Duration, int) {
	// Warm up
	sum := 0
	for i := 0; i < 3; i++ {
		for _, u := range units {
			sum += clf.Classify(u)
		}
	}

	if cpuprofile != "" {
		f, err := os.Create(cpuprofile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "failed to start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	sum = 0
	start := time.Now()
	for i := 0; i < iterations; i++ {
		for _, u := range units {
			sum += clf.Classify(u)
		}
	}
	elapsed := time.Since(start)

	return elapsed / time.Duration(iterations), sum / iterations
}

// benchScan is the naive alternative the table replaces: a linear walk over
// the minterm sets for every unit.
func benchScan(minterms []*charset.Set, units []uint16, iterations int) (time.Duration, int) {
	classify := func(u uint16) int {
		for id := 1; id < len(minterms); id++ {
			if minterms[id].Contains(u) {
				return id
			}
		}
		return 0
	}

	sum := 0
	start := time.Now()
	for i := 0; i < iterations; i++ {
		for _, u := range units {
			sum += classify(u)
		}
	}
	elapsed := time.Since(start)

	return elapsed / time.Duration(iterations), sum / iterations
}

func rate(units int, d time.Duration) float64 {
	return float64(units) / d.Seconds() / 1e6
}
