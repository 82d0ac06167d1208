// Package lexer defines lexical analyzer.
package lexer

import (
	"github.com/ava12/minipeg"
	"github.com/ava12/minipeg/pattern"
	"github.com/ava12/minipeg/source"
)

// Error codes used by lexer:
const (
	// WrongCharError indicates that lexer cannot fetch any token at current position.
	WrongCharError = minipeg.LexicalErrors + iota
)

// Rule describes token type and the character pattern matching its lexemes.
type Rule struct {
	// Type contains token type, may be any value.
	Type int

	// TypeName contains token type name, may be any value.
	TypeName string

	// Pattern matches token text.
	Pattern pattern.Pattern
}

// Lexer splits source text into tokens using a priority-ordered list of rules.
// At each position rules are tried in order and the first matching one wins,
// so keyword rules must precede generic identifier rule.
// Lexer is immutable and safe for concurrent use.
// Every character of source text must belong to some token, insignificant lexemes (e.g. whitespace)
// are returned as ordinary tokens, filtering them out is up to caller.
type Lexer struct {
	rules []Rule
}

// New creates new Lexer. rules are copied.
func New(rules []Rule) *Lexer {
	rs := make([]Rule, len(rules))
	copy(rs, rules)
	return &Lexer{rules: rs}
}

func wrongCharError(src *source.Source, pos int) *minipeg.Error {
	return minipeg.FormatErrorPos(source.NewPos(src, pos), WrongCharError, "syntax error")
}

// Next fetches token starting at pos.
// Returns false if pos is at (or beyond) the end of source.
// A match of zero length is not a match.
// Returns minipeg.Error if no rule matches at pos.
func (l *Lexer) Next(src *source.Source, pos int) (Token, bool, error) {
	content := src.Content()
	if pos >= len(content) {
		return Token{}, false, nil
	}

	for _, r := range l.rules {
		matched, end := r.Pattern.Match(content, pos)
		if matched && end > pos {
			return NewToken(r.Type, r.TypeName, source.Span{Start: pos, End: end}, src), true, nil
		}
	}

	return Token{}, false, wrongCharError(src, pos)
}

// Tokenize splits the whole source into tokens.
// Returns no tokens and minipeg.Error at the first position where no rule matches.
func (l *Lexer) Tokenize(src *source.Source) ([]Token, error) {
	var tokens []Token
	pos := 0
	for {
		t, found, e := l.Next(src, pos)
		if e != nil {
			return nil, e
		}
		if !found {
			return tokens, nil
		}

		tokens = append(tokens, t)
		pos = t.End()
	}
}

// Filter returns tokens for which keep returns true, in original order.
func Filter(tokens []Token, keep func(Token) bool) []Token {
	result := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if keep(t) {
			result = append(result, t)
		}
	}
	return result
}
