package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ieviev/runtime/charset"
	"github.com/ieviev/runtime/classfile"
	"github.com/ieviev/runtime/cmd/internal"
)

var (
	pkgName = flag.String("package", "classes", "package name for the generated file")
	varName = flag.String("var", "minterms", "variable name for the generated partition")
)

func main() {
	flag.Parse()
	path := flag.Arg(0)
	if path == "" {
		fmt.Fprintf(os.Stderr, "usage: table-gen [-package name] [-var name] <classes.yaml>\n")
		os.Exit(1)
	}

	resolved, err := internal.LoadClasses(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading classes: %v\n", err)
		os.Exit(1)
	}

	minterms, clf, err := internal.BuildClassifier(resolved)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error partitioning: %v\n", err)
		os.Exit(1)
	}

	printPartition(minterms, resolved)

	fmt.Fprintf(os.Stderr, "%d classes, %d minterms, %d table bytes\n",
		len(resolved), clf.AlphabetLen(), clf.TableBytes())
}

func printPartition(minterms []*charset.Set, resolved []classfile.Resolved) {
	fmt.Printf("package %s\n", *pkgName)
	fmt.Println()
	fmt.Println(`import "github.com/ieviev/runtime/charset"`)
	fmt.Println()
	fmt.Printf("var %s = []*charset.Set{\n", *varName)
	for id, m := range minterms {
		comment := "default"
		if id > 0 {
			comment = mintermComment(m, resolved)
		}
		ranges := m.Ranges()
		if len(ranges) == 0 {
			fmt.Printf("\tcharset.New(), // %d: %s\n", id, comment)
			continue
		}
		fmt.Printf("\tcharset.New( // %d: %s\n", id, comment)
		for _, r := range ranges {
			fmt.Printf("\t\tcharset.Range{Lo: %#04x, Hi: %#04x},\n", r.Lo, r.Hi)
		}
		fmt.Println("\t),")
	}
	fmt.Println("}")
}

// mintermComment names the input classes the minterm lies inside. Every
// unit of a minterm belongs to the same classes, so probing the lowest
// member is enough.
func mintermComment(m *charset.Set, resolved []classfile.Resolved) string {
	lo, ok := m.Min()
	if !ok {
		return "empty"
	}
	var names []string
	for _, r := range resolved {
		if r.Set.Contains(lo) {
			names = append(names, r.Name)
		}
	}
	return strings.Join(names, "+")
}
