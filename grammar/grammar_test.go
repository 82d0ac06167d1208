package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava12/minipeg/internal/test"
	"github.com/ava12/minipeg/pattern"
	"github.com/ava12/minipeg/tree"
)

const (
	nameTerm = iota
	commaTerm
	spaceTerm
)

var terms = []Term{
	{Name: "name", Pattern: pattern.OneOrMore{Body: pattern.Range{Lo: 'a', Hi: 'z'}}},
	{Name: "comma", Pattern: pattern.Char(',')},
	{Name: "space", Pattern: pattern.OneOrMore{Body: pattern.Chars(" \n")}, Flags: AsideTerm},
}

func pass(children []tree.Node) (any, error) {
	return len(children), nil
}

func nt(name string, p Pattern) NonTerm {
	return NonTerm{Name: name, Pattern: p, Reduce: pass}
}

func newGrammar(nts ...NonTerm) *Grammar {
	return &Grammar{Terms: terms, NonTerms: nts}
}

func TestValidGrammar(t *testing.T) {
	g := newGrammar(
		nt("list", Seq{NonTermRef(1), ZeroOrMore{Seq{TermRef(commaTerm), NonTermRef(1)}}}),
		nt("item", TermRef(nameTerm)),
	)
	require.NoError(t, g.Validate())
	assert.True(t, g.Nullable().IsEmpty())
}

func TestGrammarErrors(t *testing.T) {
	samples := []struct {
		name string
		g    *Grammar
		code int
	}{
		{"empty", newGrammar(), EmptyGrammarError},
		{"unknown term", newGrammar(nt("a", TermRef(10))), UnknownTermError},
		{"negative term", newGrammar(nt("a", Seq{TermRef(-1)})), UnknownTermError},
		{"unknown nonterm", newGrammar(nt("a", ZeroOrMore{NonTermRef(1)})), UnknownNonTermError},
		{"nil pattern", newGrammar(nt("a", nil)), NilPatternError},
		{"nil repeat body", newGrammar(nt("a", ZeroOrMore{})), NilPatternError},
		{"nil term pattern", &Grammar{Terms: []Term{{Name: "x"}}, NonTerms: []NonTerm{nt("a", TermRef(0))}}, NilPatternError},
		{"missing reduce", newGrammar(NonTerm{Name: "a", Pattern: TermRef(nameTerm)}), MissingReduceError},
		{"nested repeat", newGrammar(nt("a", ZeroOrMore{ZeroOrMore{TermRef(nameTerm)}})), ZeroWidthRepeatError},
		{"empty seq repeat", newGrammar(nt("a", ZeroOrMore{Seq{}})), ZeroWidthRepeatError},
		{
			"nullable nonterm repeat",
			newGrammar(nt("a", Seq{ZeroOrMore{NonTermRef(1)}, TermRef(nameTerm)}), nt("b", Seq{ZeroOrMore{TermRef(commaTerm)}})),
			ZeroWidthRepeatError,
		},
		{"direct left recursion", newGrammar(nt("a", Seq{NonTermRef(0), TermRef(nameTerm)})), LeftRecursionError},
		{
			"indirect left recursion",
			newGrammar(nt("a", Seq{NonTermRef(1), TermRef(nameTerm)}), nt("b", Seq{NonTermRef(2)}), nt("c", NonTermRef(0))),
			LeftRecursionError,
		},
		{
			"left recursion after nullable",
			newGrammar(nt("a", Seq{NonTermRef(1), NonTermRef(0), TermRef(commaTerm)}), nt("b", Seq{})),
			LeftRecursionError,
		},
	}

	for _, s := range samples {
		t.Run(s.name, func(t *testing.T) {
			test.ExpectErrorCode(t, s.code, s.g.Validate())
		})
	}
}

func TestRightRecursionIsAllowed(t *testing.T) {
	g := newGrammar(
		nt("list", Seq{TermRef(nameTerm), ZeroOrMore{Seq{TermRef(commaTerm), NonTermRef(0)}}}),
	)
	assert.NoError(t, g.Validate())
}

func TestNullable(t *testing.T) {
	g := newGrammar(
		nt("a", Seq{NonTermRef(1), NonTermRef(2)}),
		nt("b", ZeroOrMore{TermRef(nameTerm)}),
		nt("c", Seq{}),
		nt("d", Seq{NonTermRef(1), TermRef(commaTerm)}),
	)
	assert.Equal(t, []int{0, 1, 2}, g.Nullable().ToSlice())
}

func TestLexerRules(t *testing.T) {
	g := newGrammar(nt("a", TermRef(nameTerm)))
	rules := g.LexerRules()
	require.Len(t, rules, len(terms))
	for i, r := range rules {
		assert.Equal(t, i, r.Type)
		assert.Equal(t, terms[i].Name, r.TypeName)
	}

	assert.True(t, g.IsAside(spaceTerm))
	assert.False(t, g.IsAside(nameTerm))
	assert.False(t, g.IsAside(100))
	assert.Equal(t, "comma", g.TermName(commaTerm))
	assert.Equal(t, "", g.TermName(-1))
	assert.Equal(t, "a", g.NonTermName(0))
	assert.Equal(t, "", g.NonTermName(1))

	i, found := g.NonTermIndex("a")
	assert.True(t, found)
	assert.Equal(t, 0, i)
	_, found = g.NonTermIndex("b")
	assert.False(t, found)
}
