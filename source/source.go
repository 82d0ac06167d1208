// Package source defines source text, character spans, and source positions.
// All offsets are character (rune) offsets, not byte offsets.
package source

import (
	"sort"
)

// Source contains source name and text split into characters.
// Source is immutable and safe for concurrent use.
type Source struct {
	name       string
	content    []rune
	lineStarts []int
}

// New creates new Source. name may be empty.
func New(name, text string) *Source {
	s := &Source{name: name, content: []rune(text), lineStarts: []int{0}}
	for i, r := range s.content {
		if r == '\n' {
			s.lineStarts = append(s.lineStarts, i+1)
		}
	}
	return s
}

// Name returns source name.
func (s *Source) Name() string {
	return s.name
}

// Content returns source characters. The slice must not be modified.
func (s *Source) Content() []rune {
	return s.content
}

// Len returns source length in characters.
func (s *Source) Len() int {
	return len(s.content)
}

// Text returns source text covered by span; span bounds are clamped to source length.
func (s *Source) Text(sp Span) string {
	start, end := s.clamp(sp.Start), s.clamp(sp.End)
	if end <= start {
		return ""
	}
	return string(s.content[start:end])
}

func (s *Source) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(s.content) {
		return len(s.content)
	}
	return pos
}

// LineCol converts character offset to 1-based line and column numbers.
// Line is incremented after each newline character, column is reset to 1 after it.
// Offsets outside of source text are clamped.
func (s *Source) LineCol(pos int) (line, col int) {
	pos = s.clamp(pos)
	lineIndex := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > pos
	}) - 1
	return lineIndex + 1, pos - s.lineStarts[lineIndex] + 1
}

// Span is a half-open character range [Start, End).
type Span struct {
	Start, End int
}

// Len returns span length.
func (sp Span) Len() int {
	return sp.End - sp.Start
}

// IsEmpty reports whether span covers no characters.
func (sp Span) IsEmpty() bool {
	return sp.End <= sp.Start
}

// Union returns the smallest span covering both sp and other.
func (sp Span) Union(other Span) Span {
	if other.Start < sp.Start {
		sp.Start = other.Start
	}
	if other.End > sp.End {
		sp.End = other.End
	}
	return sp
}

// Pos is a position in source, implements minipeg.SourcePos.
type Pos struct {
	src            *Source
	pos, line, col int
}

// NewPos creates position for given offset, src may be nil.
func NewPos(src *Source, pos int) Pos {
	result := Pos{src: src, pos: pos}
	if src != nil {
		result.pos = src.clamp(pos)
		result.line, result.col = src.LineCol(pos)
	}
	return result
}

// SourceName returns source name or empty string.
func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.name
}

// Offset returns character offset.
func (p Pos) Offset() int {
	return p.pos
}

// Line returns line number or 0 if source is not set.
func (p Pos) Line() int {
	return p.line
}

// Col returns column number or 0 if source is not set.
func (p Pos) Col() int {
	return p.col
}
