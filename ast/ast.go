// Package ast defines the FL abstract syntax tree: a tagged-variant tree of
// expression nodes produced by the parser and consumed read-only by the
// analyzer and generator visitors.
package ast

import "github.com/shopspring/decimal"

// Node is implemented by every AST node kind. It carries no behavior of its
// own — traversal is a type switch in the visitor, not a virtual dispatch —
// but the marker method keeps arbitrary values from satisfying the interface.
type Node interface {
	node()
}

// LiteralType enumerates the kinds of value a Literal node can hold.
type LiteralType int

const (
	LiteralNumber LiteralType = iota
	LiteralString
	LiteralBoolean
	LiteralBlank
)

// Literal is a constant value: a number, string, boolean, or BLANK.
type Literal struct {
	Type   LiteralType
	Number decimal.Decimal // valid when Type == LiteralNumber
	String string          // valid when Type == LiteralString
	Bool   bool            // valid when Type == LiteralBoolean
}

func (*Literal) node() {}

// Column is a (possibly table-qualified) column reference, e.g. Sales[Amount]
// or the unqualified [Amount].
type Column struct {
	TableName  string // empty when unqualified
	ColumnName string
}

func (*Column) node() {}

// Table is a bare table reference, as used by functions like COUNTROWS(Sales)
// or VALUES(Sales).
type Table struct {
	TableName string
}

func (*Table) node() {}

// MeasureRef is a reference to another named measure, e.g. [Total Sales].
// Syntactically indistinguishable from an unqualified Column until resolved
// against a model; the parser always produces Column and callers that know a
// bracketed name refers to a measure may reinterpret it.
type MeasureRef struct {
	MeasureName string
}

func (*MeasureRef) node() {}

// FunctionCall is a call to an FL function with an ordered argument list.
type FunctionCall struct {
	FunctionName string
	Arguments    []Node
}

func (*FunctionCall) node() {}

// BinaryOperator enumerates the binary operators in §3.
type BinaryOperator int

const (
	ADD BinaryOperator = iota
	SUB
	MUL
	DIV
	POWER
	EQ
	NE
	LT
	LE
	GT
	GE
	AND
	OR
	AMPERSAND
)

// BinaryOp is a binary expression `left OP right`.
type BinaryOp struct {
	Op    BinaryOperator
	Left  Node
	Right Node
}

func (*BinaryOp) node() {}

// UnaryOperator enumerates the unary operators in §3.
type UnaryOperator int

const (
	NEGATE UnaryOperator = iota
	NOT
)

// UnaryOp is a unary expression `OP operand`.
type UnaryOp struct {
	Op      UnaryOperator
	Operand Node
}

func (*UnaryOp) node() {}

// MeasureDef is a named measure definition: `[Name] = expression`.
type MeasureDef struct {
	Name       string
	Expression Node
}

func (*MeasureDef) node() {}
