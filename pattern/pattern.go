// Package pattern defines composable character patterns used to describe lexemes.
//
// Every pattern is a pure value. Match never consumes characters on failure:
// a failed match always returns the original offset.
package pattern

import (
	"sync"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Pattern matches characters of text starting at offset.
// It returns match flag and the offset right after matched characters,
// or false and unchanged offset if there is no match.
type Pattern interface {
	Match(text []rune, offset int) (matched bool, end int)
	pattern()
}

func at(text []rune, offset int) (rune, bool) {
	if offset < 0 || offset >= len(text) {
		return 0, false
	}
	return text[offset], true
}

var (
	folderMu sync.Mutex
	folder   = cases.Fold()
)

// fold returns case-folded form of non-ASCII character.
func fold(r rune) string {
	folderMu.Lock()
	defer folderMu.Unlock()
	return folder.String(string(r))
}

func lowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// equalFold compares characters case-insensitively.
// ASCII characters are compared without allocations.
func equalFold(a, b rune) bool {
	if a == b {
		return true
	}
	if a < utf8.RuneSelf && b < utf8.RuneSelf {
		return lowerASCII(a) == lowerASCII(b)
	}
	return fold(a) == fold(b)
}

// Char matches a single character, case-insensitively.
type Char rune

func (p Char) pattern() {}

// Match implements Pattern.
func (p Char) Match(text []rune, offset int) (bool, int) {
	c, ok := at(text, offset)
	if ok && equalFold(c, rune(p)) {
		return true, offset + 1
	}
	return false, offset
}

// Set matches any single character of the set, case-insensitively.
type Set []rune

// Chars creates Set containing characters of s.
func Chars(s string) Set {
	return Set(s)
}

func (p Set) pattern() {}

// Match implements Pattern.
func (p Set) Match(text []rune, offset int) (bool, int) {
	c, ok := at(text, offset)
	if !ok {
		return false, offset
	}

	for _, r := range p {
		if equalFold(c, r) {
			return true, offset + 1
		}
	}
	return false, offset
}

// Literal matches a string, case-insensitively.
// Match is atomic: partial match consumes nothing.
type Literal string

func (p Literal) pattern() {}

// Match implements Pattern.
func (p Literal) Match(text []rune, offset int) (bool, int) {
	i := offset
	for _, r := range p {
		c, ok := at(text, i)
		if !ok || !equalFold(c, r) {
			return false, offset
		}
		i++
	}
	return true, i
}

// Range matches a single character within inclusive bounds, case-sensitively.
type Range struct {
	Lo, Hi rune
}

func (p Range) pattern() {}

// Match implements Pattern.
func (p Range) Match(text []rune, offset int) (bool, int) {
	c, ok := at(text, offset)
	if ok && c >= p.Lo && c <= p.Hi {
		return true, offset + 1
	}
	return false, offset
}

// Seq matches all patterns in order.
// Failure of any pattern fails the whole sequence at the original offset.
type Seq []Pattern

func (p Seq) pattern() {}

// Match implements Pattern.
func (p Seq) Match(text []rune, offset int) (bool, int) {
	i := offset
	for _, sub := range p {
		matched, end := sub.Match(text, i)
		if !matched {
			return false, offset
		}
		i = end
	}
	return true, i
}

// Choice tries patterns in order at the same offset, the first match wins.
type Choice []Pattern

func (p Choice) pattern() {}

// Match implements Pattern.
func (p Choice) Match(text []rune, offset int) (bool, int) {
	for _, sub := range p {
		if matched, end := sub.Match(text, offset); matched {
			return true, end
		}
	}
	return false, offset
}

// ZeroOrMore repeats Body greedily. It never fails.
// Repetition stops when Body matches without consuming characters.
type ZeroOrMore struct {
	Body Pattern
}

func (p ZeroOrMore) pattern() {}

// Match implements Pattern.
func (p ZeroOrMore) Match(text []rune, offset int) (bool, int) {
	return true, repeat(p.Body, text, offset)
}

// OneOrMore repeats Body greedily, at least once.
type OneOrMore struct {
	Body Pattern
}

func (p OneOrMore) pattern() {}

// Match implements Pattern.
func (p OneOrMore) Match(text []rune, offset int) (bool, int) {
	matched, end := p.Body.Match(text, offset)
	if !matched {
		return false, offset
	}
	return true, repeat(p.Body, text, end)
}

func repeat(body Pattern, text []rune, offset int) int {
	for {
		matched, end := body.Match(text, offset)
		if !matched || end <= offset {
			return offset
		}
		offset = end
	}
}
