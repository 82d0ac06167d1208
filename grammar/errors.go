package grammar

import (
	"github.com/ava12/minipeg"
)

// Error codes used by grammar validation:
const (
	// UnknownTermError indicates reference to a terminal missing in terminal table.
	UnknownTermError = minipeg.GrammarErrors + iota

	// UnknownNonTermError indicates reference to a nonterminal missing in nonterminal table.
	UnknownNonTermError

	// MissingReduceError indicates nonterminal without reduction function.
	MissingReduceError

	// ZeroWidthRepeatError indicates repetition whose body may match without consuming tokens.
	ZeroWidthRepeatError

	// LeftRecursionError indicates nonterminal that may invoke itself without consuming tokens.
	LeftRecursionError

	// EmptyGrammarError indicates grammar with no nonterminals.
	EmptyGrammarError

	// NilPatternError indicates terminal or nonterminal with no pattern.
	NilPatternError
)

func unknownTermError(index int, nonTerm string) *minipeg.Error {
	return minipeg.FormatError(UnknownTermError, "unknown terminal #%d in %q", index, nonTerm)
}

func unknownNonTermError(index int, nonTerm string) *minipeg.Error {
	return minipeg.FormatError(UnknownNonTermError, "unknown nonterminal #%d in %q", index, nonTerm)
}

func missingReduceError(nonTerm string) *minipeg.Error {
	return minipeg.FormatError(MissingReduceError, "no reduction function for %q", nonTerm)
}

func zeroWidthRepeatError(nonTerm string) *minipeg.Error {
	return minipeg.FormatError(ZeroWidthRepeatError, "repetition in %q may match empty input", nonTerm)
}

func leftRecursionError(nonTerm string) *minipeg.Error {
	return minipeg.FormatError(LeftRecursionError, "left recursion in %q", nonTerm)
}

func emptyGrammarError() *minipeg.Error {
	return minipeg.FormatError(EmptyGrammarError, "grammar has no nonterminals")
}

func nilTermPatternError(term string) *minipeg.Error {
	return minipeg.FormatError(NilPatternError, "no pattern for terminal %q", term)
}

func nilPatternError(nonTerm string) *minipeg.Error {
	return minipeg.FormatError(NilPatternError, "nil pattern in %q", nonTerm)
}
