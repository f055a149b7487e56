// Package parser parses character-class expressions into charset sets.
//
// The expression language covers the class subset of RE2 syntax: bracket
// expressions with ranges and negation, escape sequences including \xNN,
// \x{...}, Perl classes (\d \s \w and their negations) and Unicode
// categories and scripts (\p{L}, \pN, \P{Greek}), the dot wildcard and
// single literal characters. An input is one class, not a full pattern,
// so characters that only carry meaning in a larger regex (quantifiers,
// anchors, parentheses) are ordinary literals here.
//
// Sets are built over 16-bit code units. Literals beyond U+FFFF are
// rejected rather than silently split into surrogates; unit-level escapes
// such as \x{d800} are accepted because lone surrogate units are valid
// set members.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/ieviev/runtime/charset"
)

const escapePattern = `\\x\{[0-9A-Fa-f]+\}|\\x[0-9A-Fa-f]{2}|\\[pP]\{[^}]*\}|\\[pP][A-Za-z]|\\.`

// Parser parses class expressions. It is safe for concurrent use.
type Parser struct {
	parser *participle.Parser[classExpr]
}

// New creates a class-expression parser.
func New() *Parser {
	lex := lexer.MustStateful(lexer.Rules{
		"Root": {
			{Name: "LBracket", Pattern: `\[`, Action: lexer.Push("Class")},
			{Name: "Escape", Pattern: escapePattern},
			{Name: "Dot", Pattern: `\.`},
			{Name: "Char", Pattern: `[^\\\[\]]`},
		},
		"Class": {
			{Name: "RBracket", Pattern: `\]`, Action: lexer.Pop()},
			{Name: "Escape", Pattern: escapePattern},
			{Name: "Caret", Pattern: `\^`},
			{Name: "Dash", Pattern: `-`},
			{Name: "ClassChar", Pattern: `[^\\\]]`},
		},
	})

	return &Parser{
		parser: participle.MustBuild[classExpr](
			participle.Lexer(lex),
			participle.UseLookahead(4),
		),
	}
}

// Parse converts a class expression into the set of code units it matches.
// Leading and trailing whitespace around the expression is ignored;
// whitespace inside a bracket expression is a literal member.
func (p *Parser) Parse(input string) (*charset.Set, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, errors.New("empty class expression")
	}
	expr, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, err
	}
	return convert(expr)
}

func convert(e *classExpr) (*charset.Set, error) {
	switch {
	case e.Bracket != nil:
		return convertBracket(e.Bracket)
	case e.Escape != nil:
		return escapeSet(*e.Escape)
	case e.Any:
		return charset.Span(0, charset.MaxCode), nil
	case e.Char != nil:
		code, err := charCode(*e.Char)
		if err != nil {
			return nil, err
		}
		return charset.Single(code), nil
	}
	return nil, errors.New("unknown expression form")
}

func convertBracket(b *bracketGrammar) (*charset.Set, error) {
	var members charset.Builder
	for _, item := range b.Items {
		if item.Hi != nil {
			lo, err := atomCode(item.Lo)
			if err != nil {
				return nil, err
			}
			hi, err := atomCode(item.Hi)
			if err != nil {
				return nil, err
			}
			if lo > hi {
				return nil, fmt.Errorf("inverted range %#04x-%#04x", lo, hi)
			}
			members.AddRange(lo, hi)
			continue
		}
		if esc := item.Lo.Escape; esc != nil {
			s, err := escapeSet(*esc)
			if err != nil {
				return nil, err
			}
			members.AddSet(s)
			continue
		}
		code, err := atomCode(item.Lo)
		if err != nil {
			return nil, err
		}
		members.Add(code)
	}
	set := members.Build()
	if b.Negated {
		set = set.Complement()
	}
	return set, nil
}

// atomCode resolves an atom to a single code unit. Class escapes such as
// \d or \p{L} have no single-unit value and are only legal as standalone
// bracket members, never as range endpoints.
func atomCode(a *atomGrammar) (uint16, error) {
	if a.Escape != nil {
		return escapeCode(*a.Escape)
	}
	return charCode(*a.Literal)
}
