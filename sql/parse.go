package sql

import (
	"github.com/ava12/minipeg/parser"
	"github.com/ava12/minipeg/source"
	"github.com/ava12/minipeg/tree"
)

// Parser parses CREATE TABLE statements. Parser is safe for concurrent use.
type Parser struct {
	parser *parser.Parser
}

// New creates CREATE TABLE parser. opts are passed to underlying parser.
func New(opts ...parser.Option) (*Parser, error) {
	p, e := parser.New(createTableGrammar, opts...)
	if e != nil {
		return nil, e
	}
	return &Parser{p}, nil
}

var defaultParser *Parser

func init() {
	p, e := New()
	if e != nil {
		panic(e)
	}
	defaultParser = p
}

// ParseNode parses text and returns root node holding CreateTableStmt value.
// name is used in error messages and may be empty.
func (p *Parser) ParseNode(name, text string) (*tree.NonTermNode, error) {
	return p.parser.Parse(source.New(name, text))
}

// Parse parses text containing a single CREATE TABLE statement.
// name is used in error messages and may be empty.
func (p *Parser) Parse(name, text string) (CreateTableStmt, error) {
	n, e := p.ParseNode(name, text)
	if e != nil {
		return CreateTableStmt{}, e
	}
	return n.Value.(CreateTableStmt), nil
}

// Parse parses text containing a single CREATE TABLE statement using default parser.
func Parse(text string) (CreateTableStmt, error) {
	return defaultParser.Parse("", text)
}
