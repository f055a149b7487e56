package parser

import "testing"

func FuzzParse(f *testing.F) {
	seeds := []string{
		`a`,
		`.`,
		`\n`,
		`\x41`,
		`\x{4E00}`,
		`\d`,
		`\p{L}`,
		`\P{Greek}`,
		`[a-z]`,
		`[^a-z]`,
		`[0-9a-fA-F_]`,
		`[-a^]`,
		`[\d\s,.]`,
		`[\x00-\x{ffff}]`,
		`[\p{Lu}\p{Ll}]`,
		`[z-a]`,
		`[\d-z]`,
		`\x{110000}`,
		`\q`,
		`[`,
	}

	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		p := New()
		set, err := p.Parse(input)
		if err != nil {
			return
		}

		// A successful parse must produce a normalized set: sorted,
		// non-overlapping, non-adjacent ranges inside the unit domain.
		ranges := set.Ranges()
		for i, r := range ranges {
			if r.Lo > r.Hi {
				t.Fatalf("inverted range %d in %v from %q", i, set, input)
			}
			if i > 0 && int(r.Lo) <= int(ranges[i-1].Hi)+1 {
				t.Fatalf("ranges %d and %d not normalized in %v from %q", i-1, i, set, input)
			}
		}

		// Parsing is deterministic.
		again, err := p.Parse(input)
		if err != nil {
			t.Fatalf("second parse of %q failed: %v", input, err)
		}
		if !set.Equal(again) {
			t.Fatalf("parse of %q not deterministic: %v vs %v", input, set, again)
		}
	})
}
