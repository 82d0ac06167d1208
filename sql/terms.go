package sql

import (
	"github.com/ava12/minipeg/grammar"
	"github.com/ava12/minipeg/pattern"
)

// Token types. Values are indexes in terminal table, table order is lexer priority:
// keywords precede identifiers since identifier pattern matches keywords too.
const (
	Create = iota
	Table
	Comma
	ParenL
	ParenR
	ID
	Skip
)

var (
	letter = pattern.Choice{pattern.Range{Lo: 'a', Hi: 'z'}, pattern.Range{Lo: 'A', Hi: 'Z'}}
	digit  = pattern.Range{Lo: '0', Hi: '9'}

	// IdentifierPattern matches [A-Za-z][A-Za-z0-9_]*
	IdentifierPattern = pattern.Seq{
		letter,
		pattern.ZeroOrMore{Body: pattern.Choice{letter, digit, pattern.Char('_')}},
	}

	// SpacePattern matches a run of spaces, tabs, and line breaks.
	SpacePattern = pattern.OneOrMore{Body: pattern.Chars(" \t\r\n")}
)

var terms = []grammar.Term{
	Create: {Name: "CREATE", Pattern: pattern.Literal("CREATE")},
	Table:  {Name: "TABLE", Pattern: pattern.Literal("TABLE")},
	Comma:  {Name: "COMMA", Pattern: pattern.Char(',')},
	ParenL: {Name: "LEFT PAREN", Pattern: pattern.Char('(')},
	ParenR: {Name: "RIGHT PAREN", Pattern: pattern.Char(')')},
	ID:     {Name: "ID", Pattern: IdentifierPattern},
	Skip:   {Name: "SKIP", Pattern: SpacePattern, Flags: grammar.AsideTerm},
}
