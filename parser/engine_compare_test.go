package parser

import (
	"regexp"
	"strings"
	"testing"

	"github.com/ieviev/runtime/charset"
	"github.com/ieviev/runtime/minterm"
	re2 "github.com/wasilibs/go-re2"
)

// The expression language is the class subset of RE2 syntax, so a parsed
// set must agree with what real engines match when the same expression is
// compiled as an anchored single-character pattern. Patterns here avoid
// the few places the languages intentionally differ (bare anchors and
// other metacharacters are literals for us, operators for an engine).
var enginePatterns = []string{
	`x`,
	`中`,
	`\.`,
	`\[`,
	`\x41`,
	`\x{b5}`,
	`.`,
	`[a-z]`,
	`[^a-z]`,
	`[0-9a-fA-F]`,
	`[-a]`,
	`[a-]`,
	`[a^]`,
	`[\d-]`,
	`[--a]`,
	`[[]`,
	`[\]]`,
	`[^\n]`,
	`[\x00-\x1f]`,
	`[\x{4e00}-\x{9fff}]`,
	`\d`,
	`\D`,
	`\s`,
	`\S`,
	`\w`,
	`\W`,
	`[\d\s]`,
	`[^\w ]`,
	`\p{L}`,
	`\P{L}`,
	`\p{Lu}`,
	`\pN`,
	`\p{Greek}`,
	`[\p{Lu}\p{Ll}]`,
}

type matcher interface {
	MatchString(s string) bool
}

var engines = map[string]func(pattern string) (matcher, error){
	"stdlib": func(p string) (matcher, error) { return regexp.Compile(p) },
	"re2":    func(p string) (matcher, error) { return re2.Compile(p) },
}

// engineProbes samples the unit domain: all of latin-1, boundary codes of
// the patterns above and a coarse stride over the rest. Surrogate units
// are skipped because they cannot round-trip through a UTF-8 string.
func engineProbes() []uint16 {
	var probes []uint16
	for c := 0; c < 256; c++ {
		probes = append(probes, uint16(c))
	}
	probes = append(probes,
		0x0660, 0x2027, 0x2028, 0x2029, 0x3B1,
		0x4DFF, 0x4E00, 0x4E2D, 0x9FFF, 0xA000,
		0xFB00, 0xFFFE, 0xFFFF,
	)
	for c := 0x0100; c <= 0xFFFF; c += 509 {
		if c >= 0xD800 && c <= 0xDFFF {
			continue
		}
		probes = append(probes, uint16(c))
	}
	return probes
}

func TestEngineAgreement(t *testing.T) {
	p := New()
	probes := engineProbes()

	for _, pattern := range enginePatterns {
		t.Run(pattern, func(t *testing.T) {
			set, err := p.Parse(pattern)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", pattern, err)
			}
			anchored := "(?s)^(?:" + pattern + ")$"
			for name, compile := range engines {
				// RE2 bundles its own Unicode tables; category and script
				// boundaries move between Unicode versions, so only the
				// stdlib engine is an oracle for property classes.
				if name == "re2" && (strings.Contains(pattern, `\p`) || strings.Contains(pattern, `\P`)) {
					continue
				}
				m, err := compile(anchored)
				if err != nil {
					t.Fatalf("%s rejects %q: %v", name, anchored, err)
				}
				for _, c := range probes {
					want := set.Contains(c)
					if got := m.MatchString(string(rune(c))); got != want {
						t.Errorf("%s disagrees at %#04x: engine=%v, set=%v", name, c, got, want)
						break
					}
				}
			}
		})
	}
}

// A parsed set fed through partitioning must classify exactly its own
// members as non-default.
func TestClassifierAgreesWithParse(t *testing.T) {
	p := New()
	probes := engineProbes()

	for _, pattern := range enginePatterns {
		t.Run(pattern, func(t *testing.T) {
			set, err := p.Parse(pattern)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", pattern, err)
			}
			minterms, err := minterm.Partition([]*charset.Set{set})
			if err != nil {
				t.Fatal(err)
			}
			clf := minterm.NewClassifier(minterms)
			for _, c := range probes {
				want := set.Contains(c)
				if got := clf.Classify(c) != 0; got != want {
					t.Errorf("classifier disagrees at %#04x: classify=%v, set=%v", c, got, want)
					break
				}
			}
		})
	}
}
