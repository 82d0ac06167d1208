package grammar

import (
	"github.com/ava12/minipeg/internal/ints"
	"github.com/ava12/minipeg/internal/queue"
)

// Validate checks that grammar can be used by parser:
// grammar has nonterminals, every pattern is set, references point to existing table entries,
// every nonterminal has reduction function, no repetition body may match empty input,
// and no nonterminal is left-recursive.
func (g *Grammar) Validate() error {
	if len(g.NonTerms) == 0 {
		return emptyGrammarError()
	}

	for _, t := range g.Terms {
		if t.Pattern == nil {
			return nilTermPatternError(t.Name)
		}
	}

	for _, nt := range g.NonTerms {
		if e := g.checkRefs(nt.Pattern, nt.Name); e != nil {
			return e
		}
		if nt.Reduce == nil {
			return missingReduceError(nt.Name)
		}
	}

	nullable := g.Nullable()
	for _, nt := range g.NonTerms {
		if e := g.checkRepeats(nt.Pattern, nt.Name, nullable); e != nil {
			return e
		}
	}

	return g.checkLeftRecursion(nullable)
}

func (g *Grammar) checkRefs(p Pattern, name string) error {
	switch p := p.(type) {
	case nil:
		return nilPatternError(name)
	case TermRef:
		if int(p) < 0 || int(p) >= len(g.Terms) {
			return unknownTermError(int(p), name)
		}
	case NonTermRef:
		if int(p) < 0 || int(p) >= len(g.NonTerms) {
			return unknownNonTermError(int(p), name)
		}
	case Seq:
		for _, item := range p {
			if e := g.checkRefs(item, name); e != nil {
				return e
			}
		}
	case ZeroOrMore:
		return g.checkRefs(p.Body, name)
	}
	return nil
}

// Nullable returns indexes of nonterminals that may match without consuming tokens.
// Grammar references must be valid.
func (g *Grammar) Nullable() *ints.Set {
	result := ints.NewSet()
	for changed := true; changed; {
		changed = false
		for i, nt := range g.NonTerms {
			if !result.Contains(i) && isNullable(nt.Pattern, result) {
				result.Add(i)
				changed = true
			}
		}
	}
	return result
}

func isNullable(p Pattern, nullable *ints.Set) bool {
	switch p := p.(type) {
	case TermRef:
		return false
	case NonTermRef:
		return nullable.Contains(int(p))
	case Seq:
		for _, item := range p {
			if !isNullable(item, nullable) {
				return false
			}
		}
		return true
	case ZeroOrMore:
		return true
	}
	return false
}

func (g *Grammar) checkRepeats(p Pattern, name string, nullable *ints.Set) error {
	switch p := p.(type) {
	case Seq:
		for _, item := range p {
			if e := g.checkRepeats(item, name, nullable); e != nil {
				return e
			}
		}
	case ZeroOrMore:
		if isNullable(p.Body, nullable) {
			return zeroWidthRepeatError(name)
		}
		return g.checkRepeats(p.Body, name, nullable)
	}
	return nil
}

// leftRefs adds to refs nonterminals that p may invoke before consuming any token.
// Returns true if p is nullable.
func leftRefs(p Pattern, nullable, refs *ints.Set) bool {
	switch p := p.(type) {
	case TermRef:
		return false
	case NonTermRef:
		refs.Add(int(p))
		return nullable.Contains(int(p))
	case Seq:
		for _, item := range p {
			if !leftRefs(item, nullable, refs) {
				return false
			}
		}
		return true
	case ZeroOrMore:
		leftRefs(p.Body, nullable, refs)
		return true
	}
	return false
}

func (g *Grammar) checkLeftRecursion(nullable *ints.Set) error {
	edges := make([]*ints.Set, len(g.NonTerms))
	for i, nt := range g.NonTerms {
		edges[i] = ints.NewSet()
		leftRefs(nt.Pattern, nullable, edges[i])
	}

	for i, nt := range g.NonTerms {
		visited := ints.NewSet()
		pending := queue.New(edges[i].ToSlice()...)
		for !pending.IsEmpty() {
			j, _ := pending.Head()
			if j == i {
				return leftRecursionError(nt.Name)
			}
			if visited.Contains(j) {
				continue
			}

			visited.Add(j)
			pending.Append(edges[j].ToSlice()...)
		}
	}
	return nil
}
