package charset

import (
	"testing"
)

func TestNewNormalizes(t *testing.T) {
	tests := []struct {
		name string
		in   []Range
		want []Range
	}{
		{
			name: "sorted disjoint kept as is",
			in:   []Range{{10, 20}, {30, 40}},
			want: []Range{{10, 20}, {30, 40}},
		},
		{
			name: "unsorted input sorted",
			in:   []Range{{30, 40}, {10, 20}},
			want: []Range{{10, 20}, {30, 40}},
		},
		{
			name: "overlapping merged",
			in:   []Range{{10, 25}, {20, 40}},
			want: []Range{{10, 40}},
		},
		{
			name: "adjacent merged",
			in:   []Range{{10, 19}, {20, 40}},
			want: []Range{{10, 40}},
		},
		{
			name: "contained absorbed",
			in:   []Range{{10, 40}, {15, 20}},
			want: []Range{{10, 40}},
		},
		{
			name: "duplicates collapse",
			in:   []Range{{5, 5}, {5, 5}},
			want: []Range{{5, 5}},
		},
		{
			name: "gap of one stays split",
			in:   []Range{{10, 20}, {22, 30}},
			want: []Range{{10, 20}, {22, 30}},
		},
		{
			name: "merge at domain top",
			in:   []Range{{0xFFF0, 0xFFFF}, {0xFFE0, 0xFFF1}},
			want: []Range{{0xFFE0, 0xFFFF}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.in...).Ranges()
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d ranges, got %v", len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("range %d: expected %v, got %v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestNewPanicsOnInvertedRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for inverted range")
		}
	}()
	New(Range{10, 5})
}

func TestContains(t *testing.T) {
	s := New(Range{10, 20}, Range{40, 50}, Range{0x4E00, 0x9FFF})

	tests := []struct {
		code uint16
		want bool
	}{
		{0, false},
		{9, false},
		{10, true},
		{15, true},
		{20, true},
		{21, false},
		{39, false},
		{40, true},
		{50, true},
		{51, false},
		{0x4DFF, false},
		{0x4E00, true},
		{0x4E2D, true},
		{0x9FFF, true},
		{0xA000, false},
		{0xFFFF, false},
	}
	for _, tt := range tests {
		if got := s.Contains(tt.code); got != tt.want {
			t.Errorf("Contains(%#x): expected %v, got %v", tt.code, tt.want, got)
		}
	}

	if (&Set{}).Contains(0) {
		t.Error("empty set must not contain anything")
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		name string
		set  *Set
		want int
	}{
		{"empty", New(), 0},
		{"single code", Single('a'), 1},
		{"digits", Span('0', '9'), 10},
		{"two ranges", New(Range{0, 9}, Range{20, 29}), 20},
		{"full domain", Span(0, MaxCode), 65536},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.Count(); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	s := New(Range{40, 50}, Range{10, 20})
	if min, ok := s.Min(); !ok || min != 10 {
		t.Errorf("expected Min 10, got %d (ok=%v)", min, ok)
	}
	if max, ok := s.Max(); !ok || max != 50 {
		t.Errorf("expected Max 50, got %d (ok=%v)", max, ok)
	}

	if _, ok := New().Min(); ok {
		t.Error("empty set must have no Min")
	}
	if _, ok := New().Max(); ok {
		t.Error("empty set must have no Max")
	}
}

func TestComplement(t *testing.T) {
	tests := []struct {
		name string
		set  *Set
		want []Range
	}{
		{
			name: "empty to full",
			set:  New(),
			want: []Range{{0, MaxCode}},
		},
		{
			name: "full to empty",
			set:  Span(0, MaxCode),
			want: nil,
		},
		{
			name: "interior range",
			set:  Span(10, 20),
			want: []Range{{0, 9}, {21, MaxCode}},
		},
		{
			name: "touching zero",
			set:  Span(0, 20),
			want: []Range{{21, MaxCode}},
		},
		{
			name: "touching top",
			set:  Span(0xFF00, MaxCode),
			want: []Range{{0, 0xFEFF}},
		},
		{
			name: "two ranges",
			set:  New(Range{10, 20}, Range{30, 40}),
			want: []Range{{0, 9}, {21, 29}, {41, MaxCode}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.set.Complement().Ranges()
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("range %d: expected %v, got %v", i, tt.want[i], got[i])
				}
			}
			if !tt.set.Complement().Complement().Equal(tt.set) {
				t.Error("double complement must return the original set")
			}
		})
	}
}

func TestBuilder(t *testing.T) {
	var b Builder
	b.Add('_')
	b.AddRange('a', 'z')
	b.AddRange('A', 'Z')
	b.AddSet(Span('0', '9'))

	s := b.Build()
	for _, code := range []uint16{'_', 'a', 'z', 'A', 'Z', '0', '9'} {
		if !s.Contains(code) {
			t.Errorf("expected %q in set", rune(code))
		}
	}
	if s.Contains(' ') || s.Contains('@') {
		t.Error("unexpected members in set")
	}
	if got := s.Count(); got != 63 {
		t.Errorf("expected 63 members, got %d", got)
	}

	// The builder keeps accumulating; earlier sets stay independent.
	b.AddRange(0x100, 0x1FF)
	s2 := b.Build()
	if s.Contains(0x100) {
		t.Error("first set must be unaffected by later additions")
	}
	if !s2.Contains(0x100) {
		t.Error("second set must include the new range")
	}
}

func TestEqual(t *testing.T) {
	a := New(Range{10, 20}, Range{21, 30})
	b := Span(10, 30)
	if !a.Equal(b) {
		t.Error("normalized equal sets must compare equal")
	}
	if a.Equal(Span(10, 31)) {
		t.Error("different sets must not compare equal")
	}
	if !New().Equal(&Set{}) {
		t.Error("empty sets must compare equal")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		set  *Set
		want string
	}{
		{New(), "[]"},
		{Span('0', '9'), "[0-9]"},
		{New(Range{'a', 'z'}, Range{'0', '9'}), "[0-9a-z]"},
		{Single(']'), `[\]]`},
		{Span(0x4E00, 0x9FFF), `[\x{4e00}-\x{9fff}]`},
		{New(Range{0, 0x1F}), `[\x{0000}-\x{001f}]`},
	}
	for _, tt := range tests {
		if got := tt.set.String(); got != tt.want {
			t.Errorf("expected %s, got %s", tt.want, got)
		}
	}
}
