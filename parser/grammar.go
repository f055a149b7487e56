package parser

// Grammar structs for the participle parser. An input is exactly one
// class: a bracket expression, an escape, a dot or a literal character.

type classExpr struct {
	Bracket *bracketGrammar `parser:"( @@"`
	Escape  *string         `parser:"| @Escape"`
	Any     bool            `parser:"| @Dot"`
	Char    *string         `parser:"| @Char )"`
}

type bracketGrammar struct {
	Negated bool           `parser:"LBracket @Caret?"`
	Items   []*itemGrammar `parser:"@@+ RBracket"`
}

// itemGrammar is one bracket member: a single atom or an inclusive range.
// A dash that cannot form a range (leading, trailing or bare) parses as a
// literal atom instead.
type itemGrammar struct {
	Lo *atomGrammar `parser:"@@"`
	Hi *atomGrammar `parser:"('-' @@)?"`
}

type atomGrammar struct {
	Escape  *string `parser:"( @Escape"`
	Literal *string `parser:"| @(Caret | Dash | ClassChar) )"`
}
