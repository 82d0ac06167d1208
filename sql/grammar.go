package sql

import (
	"github.com/ava12/minipeg/grammar"
	"github.com/ava12/minipeg/tree"
)

// Nonterminal indexes.
const (
	CreateTableNonTerm = iota
	ColumnClauseNonTerm
	IdentifierNonTerm
)

var nonTerms = []grammar.NonTerm{
	CreateTableNonTerm: {
		Name: "create table statement",
		Pattern: grammar.Seq{
			grammar.TermRef(Create),
			grammar.TermRef(Table),
			grammar.NonTermRef(IdentifierNonTerm),
			grammar.TermRef(ParenL),
			grammar.ZeroOrMore{Body: grammar.Seq{
				grammar.NonTermRef(ColumnClauseNonTerm),
				grammar.TermRef(Comma),
			}},
			grammar.NonTermRef(ColumnClauseNonTerm),
			grammar.TermRef(ParenR),
		},
		Reduce: reduceCreateTable,
	},
	ColumnClauseNonTerm: {
		Name: "column clause",
		Pattern: grammar.Seq{
			grammar.NonTermRef(IdentifierNonTerm),
			grammar.NonTermRef(IdentifierNonTerm),
		},
		Reduce: reduceColumnClause,
	},
	IdentifierNonTerm: {
		Name:    "identifier",
		Pattern: grammar.TermRef(ID),
		Reduce:  reduceIdentifier,
	},
}

var createTableGrammar = &grammar.Grammar{Terms: terms, NonTerms: nonTerms}

// Grammar returns CREATE TABLE grammar. The grammar must not be modified.
func Grammar() *grammar.Grammar {
	return createTableGrammar
}

func reduceIdentifier(children []tree.Node) (any, error) {
	for _, t := range tree.Tokens(children) {
		if t.Is(ID) {
			return Identifier{Name: t.Text()}, nil
		}
	}
	return nil, ErrMissingIdentifier
}

func reduceColumnClause(children []tree.Node) (any, error) {
	ids := tree.Values[Identifier](children)
	switch len(ids) {
	case 0:
		return nil, ErrMissingColumnName
	case 1:
		return nil, ErrMissingDataType
	}
	return ColumnClause{Name: ids[0], DataType: ids[1]}, nil
}

func reduceCreateTable(children []tree.Node) (any, error) {
	name, found := tree.First[Identifier](children)
	if !found {
		return nil, ErrMissingTableName
	}
	return CreateTableStmt{Name: name, Columns: tree.Values[ColumnClause](children)}, nil
}
