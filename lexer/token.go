package lexer

import (
	"github.com/ava12/minipeg/source"
)

// Token is an immutable lexeme: token type, covered span, and literal text.
type Token struct {
	tokenType int
	typeName  string
	span      source.Span
	text      string
	source    *source.Source
}

// NewToken creates new token covering span of src. src may be nil, text is taken from src otherwise.
func NewToken(tokenType int, typeName string, sp source.Span, src *source.Source) Token {
	t := Token{tokenType: tokenType, typeName: typeName, span: sp, source: src}
	if src != nil {
		t.text = src.Text(sp)
	}
	return t
}

// Type returns token type.
func (t Token) Type() int {
	return t.tokenType
}

// TypeName returns token type name.
func (t Token) TypeName() string {
	return t.typeName
}

// Is reports whether token is of given type.
func (t Token) Is(tokenType int) bool {
	return t.tokenType == tokenType
}

// Text returns literal text covered by token.
func (t Token) Text() string {
	return t.text
}

// Span returns character range covered by token.
func (t Token) Span() source.Span {
	return t.span
}

// Start returns offset of the first token character.
func (t Token) Start() int {
	return t.span.Start
}

// End returns offset right after the last token character.
func (t Token) End() int {
	return t.span.End
}

// SourceName returns source name or empty string.
func (t Token) SourceName() string {
	if t.source == nil {
		return ""
	}
	return t.source.Name()
}

// Offset returns offset of the first token character.
func (t Token) Offset() int {
	return t.span.Start
}

// Line returns line number of the first token character or 0 if source is not set.
func (t Token) Line() int {
	if t.source == nil {
		return 0
	}
	line, _ := t.source.LineCol(t.span.Start)
	return line
}

// Col returns column number of the first token character or 0 if source is not set.
func (t Token) Col() int {
	if t.source == nil {
		return 0
	}
	_, col := t.source.LineCol(t.span.Start)
	return col
}
