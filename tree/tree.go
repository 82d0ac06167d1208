// Package tree defines parse nodes produced by parser.
//
// There are three node kinds: TokenNode wraps a single token, SeqNode groups nodes matched
// by a sequence or repetition, NonTermNode holds a reduced nonterminal payload.
// Sequence nodes are never nested: NewSeq splices children of nested sequences into the new one.
package tree

import (
	"fmt"
	"strings"

	"github.com/ava12/minipeg/lexer"
	"github.com/ava12/minipeg/source"
)

// Node is a parse node.
type Node interface {
	// Span returns character range covered by node.
	Span() source.Span
	node()
}

// TokenNode is a terminal node.
type TokenNode struct {
	Token lexer.Token
}

// Span implements Node.
func (n *TokenNode) Span() source.Span {
	return n.Token.Span()
}

func (n *TokenNode) node() {}

// SeqNode is a flattened list of nodes.
type SeqNode struct {
	span     source.Span
	children []Node
}

// NewSeq creates flattened sequence node. pos is used as node span if there are no children.
func NewSeq(pos int, children ...Node) *SeqNode {
	result := &SeqNode{span: source.Span{Start: pos, End: pos}}
	for _, c := range children {
		if s, ok := c.(*SeqNode); ok {
			result.children = append(result.children, s.children...)
		} else {
			result.children = append(result.children, c)
		}
	}
	if len(result.children) > 0 {
		first := result.children[0].Span()
		last := result.children[len(result.children)-1].Span()
		result.span = first.Union(last)
	}
	return result
}

// Span implements Node.
func (n *SeqNode) Span() source.Span {
	return n.span
}

// Children returns sequence children. The slice must not be modified.
func (n *SeqNode) Children() []Node {
	return n.children
}

// Len returns number of children.
func (n *SeqNode) Len() int {
	return len(n.children)
}

func (n *SeqNode) node() {}

// NonTermNode is a reduced nonterminal node.
type NonTermNode struct {
	// Index contains nonterminal index in grammar.
	Index int

	// Name contains nonterminal name.
	Name string

	// Value contains payload created by nonterminal reduction function.
	Value any

	span source.Span
}

// NewNonTerm creates nonterminal node.
func NewNonTerm(index int, name string, sp source.Span, value any) *NonTermNode {
	return &NonTermNode{Index: index, Name: name, Value: value, span: sp}
}

// Span implements Node.
func (n *NonTermNode) Span() source.Span {
	return n.span
}

func (n *NonTermNode) node() {}

// Children returns children of a sequence node or a single-element list containing n otherwise.
func Children(n Node) []Node {
	if s, ok := n.(*SeqNode); ok {
		return s.children
	}
	return []Node{n}
}

// Values collects payloads of type T of nonterminal nodes, in order.
func Values[T any](nodes []Node) []T {
	var result []T
	for _, n := range nodes {
		if nt, ok := n.(*NonTermNode); ok {
			if v, ok := nt.Value.(T); ok {
				result = append(result, v)
			}
		}
	}
	return result
}

// First returns the first payload of type T of nonterminal nodes.
func First[T any](nodes []Node) (result T, found bool) {
	for _, n := range nodes {
		if nt, ok := n.(*NonTermNode); ok {
			if v, ok := nt.Value.(T); ok {
				return v, true
			}
		}
	}
	return
}

// Tokens collects tokens of terminal nodes, in order.
func Tokens(nodes []Node) []lexer.Token {
	var result []lexer.Token
	for _, n := range nodes {
		if t, ok := n.(*TokenNode); ok {
			result = append(result, t.Token)
		}
	}
	return result
}

// Format returns compact textual representation of node, mostly useful for debugging and tests:
// terminals are written as their text, sequences as [...], nonterminals as name(...) or name{value}.
func Format(n Node) string {
	sb := &strings.Builder{}
	format(sb, n)
	return sb.String()
}

func format(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case *TokenNode:
		sb.WriteString(n.Token.Text())
	case *SeqNode:
		sb.WriteByte('[')
		for i, c := range n.children {
			if i > 0 {
				sb.WriteByte(' ')
			}
			format(sb, c)
		}
		sb.WriteByte(']')
	case *NonTermNode:
		if c, ok := n.Value.(Node); ok {
			sb.WriteString(n.Name)
			sb.WriteByte('(')
			format(sb, c)
			sb.WriteByte(')')
		} else {
			fmt.Fprintf(sb, "%s{%v}", n.Name, n.Value)
		}
	case nil:
		sb.WriteString("<nil>")
	}
}
