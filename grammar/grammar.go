// Package grammar defines grammar patterns and the static tables of terminals and nonterminals.
package grammar

import (
	"github.com/ava12/minipeg/lexer"
	"github.com/ava12/minipeg/pattern"
	"github.com/ava12/minipeg/tree"
)

// RootNonTerm is the index of default root nonterminal.
const RootNonTerm = 0

// TermFlags is a bit set of terminal properties.
type TermFlags int

const (
	// AsideTerm marks insignificant tokens (e.g. whitespace), parser drops them before matching.
	AsideTerm TermFlags = 1 << iota
)

// Term describes a terminal symbol. Term index in Grammar.Terms is used as token type.
type Term struct {
	Name    string
	Pattern pattern.Pattern
	Flags   TermFlags
}

// Pattern is a grammar pattern matched against token stream.
// Variants are TermRef, NonTermRef, Seq, and ZeroOrMore.
type Pattern interface {
	grammarPattern()
}

// TermRef matches exactly one token of referenced terminal.
type TermRef int

func (TermRef) grammarPattern() {}

// NonTermRef matches referenced nonterminal pattern and reduces the result.
type NonTermRef int

func (NonTermRef) grammarPattern() {}

// Seq matches patterns in order.
type Seq []Pattern

func (Seq) grammarPattern() {}

// ZeroOrMore matches Body as many times as possible, it never fails.
type ZeroOrMore struct {
	Body Pattern
}

func (ZeroOrMore) grammarPattern() {}

// ReduceFunc converts flattened child nodes matched by nonterminal pattern to nonterminal payload.
// Returned error means that children do not satisfy nonterminal structure.
type ReduceFunc = func(children []tree.Node) (any, error)

// NonTerm describes a nonterminal symbol.
type NonTerm struct {
	Name    string
	Pattern Pattern
	Reduce  ReduceFunc
}

// Grammar contains terminal and nonterminal tables.
// Terms order defines lexer rule priority.
// Grammar is not modified by parser and may be shared.
type Grammar struct {
	Terms    []Term
	NonTerms []NonTerm
}

// LexerRules returns lexer rules for all terminals in table order.
func (g *Grammar) LexerRules() []lexer.Rule {
	rules := make([]lexer.Rule, len(g.Terms))
	for i, t := range g.Terms {
		rules[i] = lexer.Rule{Type: i, TypeName: t.Name, Pattern: t.Pattern}
	}
	return rules
}

// IsAside reports whether tokens of given type are insignificant.
func (g *Grammar) IsAside(tokenType int) bool {
	return tokenType >= 0 && tokenType < len(g.Terms) && g.Terms[tokenType].Flags&AsideTerm != 0
}

// TermName returns terminal name or empty string for unknown terminal.
func (g *Grammar) TermName(index int) string {
	if index < 0 || index >= len(g.Terms) {
		return ""
	}
	return g.Terms[index].Name
}

// NonTermName returns nonterminal name or empty string for unknown nonterminal.
func (g *Grammar) NonTermName(index int) string {
	if index < 0 || index >= len(g.NonTerms) {
		return ""
	}
	return g.NonTerms[index].Name
}

// NonTermIndex returns index of nonterminal with given name.
func (g *Grammar) NonTermIndex(name string) (int, bool) {
	for i, nt := range g.NonTerms {
		if nt.Name == name {
			return i, true
		}
	}
	return -1, false
}
