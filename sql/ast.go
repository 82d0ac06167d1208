// Package sql contains demonstration grammar for a single CREATE TABLE statement:
//
//	CREATE TABLE <identifier> ( <identifier> <identifier> {, <identifier> <identifier>} )
//
// Keywords are case-insensitive, identifiers match [A-Za-z][A-Za-z0-9_]*,
// whitespace separates tokens and is ignored.
package sql

import (
	"strings"
)

// Statement is a parsed SQL statement.
type Statement interface {
	String() string
	statement()
}

// Identifier is a table, column, or data type name.
type Identifier struct {
	Name string
}

func (id Identifier) String() string {
	return id.Name
}

// ColumnClause is a column definition: column name followed by data type name.
type ColumnClause struct {
	Name     Identifier
	DataType Identifier
}

func (c ColumnClause) String() string {
	return c.Name.Name + " " + c.DataType.Name
}

// CreateTableStmt is a CREATE TABLE statement.
type CreateTableStmt struct {
	Name    Identifier
	Columns []ColumnClause
}

func (CreateTableStmt) statement() {}

// String returns canonical statement text.
func (s CreateTableStmt) String() string {
	sb := &strings.Builder{}
	sb.WriteString("CREATE TABLE ")
	sb.WriteString(s.Name.Name)
	sb.WriteString(" (")
	for i, c := range s.Columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
