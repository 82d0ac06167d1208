package parser

import (
	"github.com/ava12/minipeg/lexer"
)

// Cursor is a read position in a token buffer.
// Cursor is a value: copying it yields an independent position over the same buffer,
// which is how speculative matches are made.
type Cursor struct {
	tokens []lexer.Token
	index  int
	pos    int
}

// NewCursor creates cursor pointing to the first token.
func NewCursor(tokens []lexer.Token) Cursor {
	return Cursor{tokens: tokens}
}

// Index returns index of the next token.
func (c Cursor) Index() int {
	return c.index
}

// Pos returns character offset right after the last consumed token or 0 if no tokens are consumed.
func (c Cursor) Pos() int {
	return c.pos
}

// IsEnd reports whether all tokens are consumed.
func (c Cursor) IsEnd() bool {
	return c.index >= len(c.tokens)
}

// Peek returns the next token without consuming it.
func (c Cursor) Peek() (lexer.Token, bool) {
	if c.IsEnd() {
		return lexer.Token{}, false
	}
	return c.tokens[c.index], true
}

// Next returns the next token and the cursor advanced past it.
// Returns false and unchanged cursor if all tokens are consumed.
func (c Cursor) Next() (lexer.Token, Cursor, bool) {
	t, found := c.Peek()
	if !found {
		return t, c, false
	}

	c.index++
	c.pos = t.End()
	return t, c, true
}
