package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava12/minipeg/lexer"
	"github.com/ava12/minipeg/source"
)

var src = source.New("", "foo bar baz qux")

func token(start, end int) *TokenNode {
	return &TokenNode{Token: lexer.NewToken(0, "name", source.Span{Start: start, End: end}, src)}
}

func TestNewSeqFlattens(t *testing.T) {
	foo, bar, baz, qux := token(0, 3), token(4, 7), token(8, 11), token(12, 15)
	inner := NewSeq(4, bar, NewSeq(8, baz))
	seq := NewSeq(0, foo, inner, NewSeq(11), qux)

	require.Equal(t, 4, seq.Len())
	assert.Equal(t, []Node{foo, bar, baz, qux}, seq.Children())
	for _, c := range seq.Children() {
		_, nested := c.(*SeqNode)
		assert.False(t, nested)
	}
	assert.Equal(t, source.Span{Start: 0, End: 15}, seq.Span())
	assert.Equal(t, "[foo bar baz qux]", Format(seq))
}

func TestEmptySeqSpan(t *testing.T) {
	seq := NewSeq(7)
	assert.Equal(t, 0, seq.Len())
	assert.Equal(t, source.Span{Start: 7, End: 7}, seq.Span())
	assert.Equal(t, source.Span{Start: 7, End: 7}, NewSeq(7, NewSeq(3)).Span())
}

func TestChildren(t *testing.T) {
	foo, bar := token(0, 3), token(4, 7)
	assert.Equal(t, []Node{foo}, Children(foo))
	assert.Equal(t, []Node{foo, bar}, Children(NewSeq(0, foo, bar)))
}

type pair struct{ a, b string }

func TestValues(t *testing.T) {
	nodes := []Node{
		token(0, 3),
		NewNonTerm(1, "id", source.Span{Start: 4, End: 7}, "bar"),
		NewNonTerm(2, "pair", source.Span{Start: 8, End: 15}, pair{"baz", "qux"}),
		NewNonTerm(1, "id", source.Span{Start: 12, End: 15}, "qux"),
	}

	assert.Equal(t, []string{"bar", "qux"}, Values[string](nodes))
	assert.Equal(t, []pair{{"baz", "qux"}}, Values[pair](nodes))
	assert.Empty(t, Values[int](nodes))

	s, found := First[string](nodes)
	assert.True(t, found)
	assert.Equal(t, "bar", s)
	_, found = First[int](nodes)
	assert.False(t, found)

	tokens := Tokens(nodes)
	require.Len(t, tokens, 1)
	assert.Equal(t, "foo", tokens[0].Text())
}

func TestFormat(t *testing.T) {
	id := NewNonTerm(1, "id", source.Span{Start: 4, End: 7}, "bar")
	wrapped := NewNonTerm(2, "group", source.Span{Start: 0, End: 7}, NewSeq(0, token(0, 3), id))
	assert.Equal(t, "id{bar}", Format(id))
	assert.Equal(t, "group([foo id{bar}])", Format(wrapped))
	assert.Equal(t, "<nil>", Format(nil))
}
