package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ieviev/runtime/charset"
)

// Perl class definitions matching RE2 and Go regexp, which keep them
// ASCII-only even in Unicode patterns.
var (
	perlDigit = charset.Span('0', '9')
	perlSpace = charset.New(
		charset.Range{Lo: '\t', Hi: '\n'},
		charset.Range{Lo: '\f', Hi: '\r'},
		charset.Range{Lo: ' ', Hi: ' '},
	)
	perlWord = charset.New(
		charset.Range{Lo: '0', Hi: '9'},
		charset.Range{Lo: 'A', Hi: 'Z'},
		charset.Range{Lo: '_', Hi: '_'},
		charset.Range{Lo: 'a', Hi: 'z'},
	)
)

// escapeSet resolves an escape token to the set of code units it matches.
// Class escapes yield multi-member sets; everything else is a singleton.
func escapeSet(esc string) (*charset.Set, error) {
	switch esc[1:] {
	case "d":
		return perlDigit, nil
	case "D":
		return perlDigit.Complement(), nil
	case "s":
		return perlSpace, nil
	case "S":
		return perlSpace.Complement(), nil
	case "w":
		return perlWord, nil
	case "W":
		return perlWord.Complement(), nil
	}
	if esc[1] == 'p' || esc[1] == 'P' {
		return unicodeClass(esc)
	}
	code, err := escapeCode(esc)
	if err != nil {
		return nil, err
	}
	return charset.Single(code), nil
}

// escapeCode resolves an escape token that must denote a single code unit.
func escapeCode(esc string) (uint16, error) {
	body := esc[1:]
	switch body {
	case "a":
		return '\a', nil
	case "f":
		return '\f', nil
	case "n":
		return '\n', nil
	case "r":
		return '\r', nil
	case "t":
		return '\t', nil
	case "v":
		return '\v', nil
	case "d", "D", "s", "S", "w", "W":
		return 0, fmt.Errorf("%s is a class escape, not a single character", esc)
	}
	if body[0] == 'p' || body[0] == 'P' {
		return 0, fmt.Errorf("%s is a class escape, not a single character", esc)
	}
	if body[0] == 'x' {
		return hexEscape(esc)
	}
	r, size := utf8.DecodeRuneInString(body)
	if r == utf8.RuneError && size <= 1 {
		return 0, fmt.Errorf("invalid escape %q", esc)
	}
	if size < len(body) {
		return 0, fmt.Errorf("invalid escape %q", esc)
	}
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return 0, fmt.Errorf("unknown escape %s", esc)
	}
	if r > charset.MaxCode {
		return 0, fmt.Errorf("escaped character %q is outside the 16-bit unit domain", r)
	}
	return uint16(r), nil
}

func hexEscape(esc string) (uint16, error) {
	digits := esc[2:]
	if digits == "" {
		return 0, fmt.Errorf("truncated hex escape %s", esc)
	}
	if digits[0] == '{' {
		digits = digits[1 : len(digits)-1]
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("hex escape %s: %w", esc, err)
	}
	if v > charset.MaxCode {
		return 0, fmt.Errorf("hex escape %s is outside the 16-bit unit domain", esc)
	}
	return uint16(v), nil
}

// unicodeClass resolves \p{Name}, \P{Name} and the one-letter \pN forms
// against the category and script tables shipped with the runtime,
// clipped to the 16-bit unit domain.
func unicodeClass(esc string) (*charset.Set, error) {
	negate := esc[1] == 'P'
	name := esc[2:]
	if strings.HasPrefix(name, "{") {
		name = name[1 : len(name)-1]
	}
	if name == "" {
		return nil, fmt.Errorf("missing name in unicode class %s", esc)
	}
	rt, ok := unicode.Categories[name]
	if !ok {
		rt, ok = unicode.Scripts[name]
	}
	if !ok {
		return nil, fmt.Errorf("unknown unicode class %q", name)
	}
	set := rangeTableSet(rt)
	if negate {
		set = set.Complement()
	}
	return set, nil
}

func rangeTableSet(rt *unicode.RangeTable) *charset.Set {
	var b charset.Builder
	for _, r := range rt.R16 {
		if r.Stride == 1 {
			b.AddRange(r.Lo, r.Hi)
			continue
		}
		for c := int(r.Lo); c <= int(r.Hi); c += int(r.Stride) {
			b.Add(uint16(c))
		}
	}
	// R32 holds the supplementary planes, outside the unit domain.
	return b.Build()
}

// charCode resolves a literal character token. Tokens are single runes;
// anything beyond the basic multilingual plane occupies two units and
// cannot be a set member.
func charCode(tok string) (uint16, error) {
	r, _ := utf8.DecodeRuneInString(tok)
	if r > charset.MaxCode {
		return 0, fmt.Errorf("character %q is outside the 16-bit unit domain; use an escape for each surrogate unit", r)
	}
	return uint16(r), nil
}
