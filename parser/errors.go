package parser

import (
	"github.com/ava12/minipeg"
	"github.com/ava12/minipeg/grammar"
	"github.com/ava12/minipeg/source"
)

// Error codes used by parser:
const (
	// MissingSymbolError indicates that expected terminal is missing or token stream is exhausted.
	// Error.Expected contains expected terminal name.
	MissingSymbolError = minipeg.SyntaxErrors + iota

	// UnexpectedInputError indicates tokens left after root nonterminal is matched.
	UnexpectedInputError
)

const (
	// ReductionError indicates that nonterminal reduction function has rejected matched nodes.
	// Error wraps the error returned by reduction function.
	ReductionError = minipeg.ReductionErrors + iota
)

func missingSymbolError(src *source.Source, pos int, name string) *minipeg.Error {
	e := minipeg.FormatErrorPos(source.NewPos(src, pos), MissingSymbolError, "missing '%s'", name)
	e.Expected = name
	return e
}

func unexpectedInputError(src *source.Source, pos int) *minipeg.Error {
	return minipeg.FormatErrorPos(source.NewPos(src, pos), UnexpectedInputError, "syntax error")
}

func reductionError(src *source.Source, pos int, nonTerm string, err error) *minipeg.Error {
	e := minipeg.FormatErrorPos(source.NewPos(src, pos), ReductionError, "cannot reduce %s: %s", nonTerm, err)
	return e.Wrap(err)
}

func unknownRootError(index int) *minipeg.Error {
	return minipeg.FormatError(grammar.UnknownNonTermError, "unknown root nonterminal #%d", index)
}
