package snowflow

import "errors"

// Common errors shared across the translation pipeline.
var (
	// ErrContextMalformed indicates a Schema Context JSON/YAML payload failed to decode.
	ErrContextMalformed = errors.New("schema context payload is malformed")
	// ErrDanglingRelationship indicates a relationship endpoint names an unknown table or column.
	ErrDanglingRelationship = errors.New("relationship references an unknown table or column")
	// ErrDuplicateActiveRelationship indicates more than one active relationship between a table pair.
	ErrDuplicateActiveRelationship = errors.New("more than one active relationship between the same tables")
	// ErrUnknownTable indicates a table name not present in the Schema Context.
	ErrUnknownTable = errors.New("unknown table")
	// ErrNeedAtLeastTwoTables indicates join generation was requested for fewer than two tables.
	ErrNeedAtLeastTwoTables = errors.New("join generation requires at least two tables")
)
