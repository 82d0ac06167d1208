package sql

import "errors"

// Reduction errors, wrapped by parser.ReductionError.
var (
	// ErrMissingIdentifier is returned when identifier node has no identifier token.
	ErrMissingIdentifier = errors.New("missing identifier")
	// ErrMissingColumnName is returned when column clause has no identifiers.
	ErrMissingColumnName = errors.New("missing column name")
	// ErrMissingDataType is returned when column clause has a single identifier.
	ErrMissingDataType = errors.New("missing data type")
	// ErrMissingTableName is returned when create table statement has no identifier.
	ErrMissingTableName = errors.New("missing table name")
)
