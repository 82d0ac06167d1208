/*
Package minipeg is a small PEG-style parsing engine: a character-level lexical matcher
and a token-level grammar matcher with speculative repetition and semantic actions.

Consists of subpackages:
  - source: source text, spans, and offset to line/column conversion;
  - pattern: composable character patterns used to describe lexemes;
  - lexer: turns source text into tokens using a priority-ordered rule table;
  - tree: parse nodes produced while matching;
  - grammar: grammar patterns, terminal and nonterminal tables, grammar validation;
  - parser: backtracking matcher reducing matched patterns into typed syntax nodes;
  - sql: demonstration grammar for a single CREATE TABLE statement.

Typical usage is:

1. Describe terminals as character patterns, order matters: the first matching rule wins.

2. Describe nonterminals as grammar patterns, each one with a reduction function
converting matched child nodes into a typed payload.

3. Create a parser for the grammar and feed it source text.
*/
package minipeg

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	LexicalErrors   = 101 // used by lexer
	SyntaxErrors    = 201 // used by parser
	GrammarErrors   = 301 // used by grammar
	ReductionErrors = 401 // used by parser
)

// Error is the error type used by minipeg subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Offset contains character offset in source text or 0.
	Offset int

	// Line contains line number in source text or 0.
	Line int

	// Col contains column number in source text or 0.
	Col int

	// Expected contains the name of expected symbol for missing symbol errors or empty string.
	Expected string

	// Err contains wrapped error or nil.
	Err error
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Pos and lexer.Token implement this interface.
type SourcePos interface {
	// SourceName returns source name or empty string.
	SourceName() string
	// Offset returns character offset.
	Offset() int
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// Position information is added to error message if pos is not nil and has non-zero line.
func NewError(code int, msg string, pos SourcePos) *Error {
	e := &Error{Code: code}
	if pos != nil {
		e.SourceName = pos.SourceName()
		e.Offset = pos.Offset()
		e.Line = pos.Line()
		e.Col = pos.Col()
	}
	e.Message = render(msg, e.SourceName, e.Line, e.Col)
	return e
}

func render(msg, name string, line, col int) string {
	if line == 0 || col == 0 {
		return msg
	}

	if name != "" {
		return fmt.Sprintf("%s in %s at %d, %d", msg, name, line, col)
	}
	return fmt.Sprintf("%s at %d, %d", msg, line, col)
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap sets wrapped error and returns e.
func (e *Error) Wrap(err error) *Error {
	e.Err = err
	return e
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, nil)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos)
}

// HasCode reports whether err is (or wraps) an *Error with given code.
func HasCode(err error, code int) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Code == code {
			return true
		}

		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
