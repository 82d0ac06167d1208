// Package parser defines backtracking parser matching grammar patterns against token stream
// and reducing matched nonterminals into typed payloads.
//
// Sequences do not backtrack: the first failed element fails the whole sequence.
// Repetition is the only speculative construct: each iteration is tried on a copy of cursor,
// a failed iteration ends the repetition and its error is discarded.
package parser

import (
	"log/slog"

	"github.com/ava12/minipeg"
	"github.com/ava12/minipeg/grammar"
	"github.com/ava12/minipeg/lexer"
	"github.com/ava12/minipeg/source"
	"github.com/ava12/minipeg/tree"
)

// Option configures Parser.
type Option func(*Parser)

// WithLogger sets logger for debug tracing. Nil logger discards messages.
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		p.logger = l
	}
}

// WithRoot sets index of root nonterminal, grammar.RootNonTerm is used by default.
func WithRoot(index int) Option {
	return func(p *Parser) {
		p.root = index
	}
}

// Parser matches source text against grammar.
// Parser is immutable and safe for concurrent use.
type Parser struct {
	grammar *grammar.Grammar
	lexer   *lexer.Lexer
	root    int
	logger  *slog.Logger
}

// New validates grammar and creates new Parser.
func New(g *grammar.Grammar, opts ...Option) (*Parser, error) {
	p := &Parser{
		grammar: g,
		root:    grammar.RootNonTerm,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}

	if e := g.Validate(); e != nil {
		return nil, e
	}
	if p.root < 0 || p.root >= len(g.NonTerms) {
		return nil, unknownRootError(p.root)
	}

	p.lexer = lexer.New(g.LexerRules())
	return p, nil
}

// Grammar returns parser grammar.
func (p *Parser) Grammar() *grammar.Grammar {
	return p.grammar
}

// Tokenize splits source into tokens and drops aside tokens.
func (p *Parser) Tokenize(src *source.Source) ([]lexer.Token, error) {
	tokens, e := p.lexer.Tokenize(src)
	if e != nil {
		return nil, e
	}

	return lexer.Filter(tokens, func(t lexer.Token) bool {
		return !p.grammar.IsAside(t.Type())
	}), nil
}

// Parse matches the whole source against root nonterminal.
// Returns minipeg.Error if source cannot be tokenized, does not match root nonterminal,
// contains tokens after root nonterminal, or if some reduction function fails.
// Trailing tokens are reported right after the last consumed token.
func (p *Parser) Parse(src *source.Source) (*tree.NonTermNode, error) {
	tokens, e := p.Tokenize(src)
	if e != nil {
		return nil, e
	}

	rootName := p.grammar.NonTermName(p.root)
	p.logger.Debug("parsing", "source", src.Name(), "tokens", len(tokens), "root", rootName)
	m := &matcher{grammar: p.grammar, src: src, logger: p.logger}
	node, c, e := m.match(grammar.NonTermRef(p.root), NewCursor(tokens))
	if e != nil {
		p.logger.Debug("parsing failed", "source", src.Name(), "error", e)
		return nil, e
	}

	if t, found := c.Peek(); found {
		p.logger.Debug("unexpected input", "source", src.Name(), "token", t.TypeName(), "offset", c.Pos())
		return nil, unexpectedInputError(src, c.Pos())
	}

	p.logger.Debug("parsed", "source", src.Name(), "root", rootName)
	return node.(*tree.NonTermNode), nil
}

// ParseString matches text against root nonterminal, name is used in error messages and may be empty.
func (p *Parser) ParseString(name, text string) (*tree.NonTermNode, error) {
	return p.Parse(source.New(name, text))
}

type matcher struct {
	grammar *grammar.Grammar
	src     *source.Source
	logger  *slog.Logger
}

// match applies pattern at cursor position.
// Returns matched node and advanced cursor, or error and unchanged cursor.
func (m *matcher) match(p grammar.Pattern, c Cursor) (tree.Node, Cursor, error) {
	switch p := p.(type) {
	case grammar.TermRef:
		return m.matchTerm(int(p), c)
	case grammar.NonTermRef:
		return m.matchNonTerm(int(p), c)
	case grammar.Seq:
		return m.matchSeq(p, c)
	case grammar.ZeroOrMore:
		return m.matchRepeat(p.Body, c)
	}

	panic("unexpected grammar pattern type")
}

func (m *matcher) matchTerm(index int, c Cursor) (tree.Node, Cursor, error) {
	t, next, found := c.Next()
	if !found || !t.Is(index) {
		return nil, c, missingSymbolError(m.src, c.Pos(), m.grammar.TermName(index))
	}

	return &tree.TokenNode{Token: t}, next, nil
}

func (m *matcher) matchNonTerm(index int, c Cursor) (tree.Node, Cursor, error) {
	nt := &m.grammar.NonTerms[index]
	node, next, e := m.match(nt.Pattern, c)
	if e != nil {
		return nil, c, e
	}

	sp := node.Span()
	value, e := nt.Reduce(tree.Children(node))
	if e != nil {
		return nil, c, reductionError(m.src, sp.Start, nt.Name, e)
	}

	return tree.NewNonTerm(index, nt.Name, sp, value), next, nil
}

func (m *matcher) matchSeq(items grammar.Seq, c Cursor) (tree.Node, Cursor, error) {
	nodes := make([]tree.Node, 0, len(items))
	next := c
	for _, item := range items {
		node, nc, e := m.match(item, next)
		if e != nil {
			return nil, c, e
		}

		nodes = append(nodes, node)
		next = nc
	}

	return tree.NewSeq(c.Pos(), nodes...), next, nil
}

// matchRepeat does not fail on mismatch. Each iteration is matched on a copy of cursor;
// on success the copy becomes the current cursor, on failure the iteration is dropped.
// An iteration that consumes no tokens ends the repetition.
// Reduction errors are not discarded.
func (m *matcher) matchRepeat(body grammar.Pattern, c Cursor) (tree.Node, Cursor, error) {
	var nodes []tree.Node
	current := c
	for {
		node, next, e := m.match(body, current)
		if e != nil {
			if minipeg.HasCode(e, ReductionError) {
				return nil, c, e
			}

			m.logger.Debug("repetition stopped", "offset", current.Pos(), "iterations", len(nodes), "reason", e)
			break
		}
		if next.Index() == current.Index() {
			break
		}

		nodes = append(nodes, node)
		current = next
	}

	return tree.NewSeq(c.Pos(), nodes...), current, nil
}
