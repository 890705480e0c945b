// Package generator walks an FL AST and produces the equivalent SQL string,
// consulting the Pattern Library for function translation rules and an
// optional Schema Context for identifier mapping. It is a pure syntactic
// walk: it performs no semantic reasoning about filter or row context, and
// several functions are deliberately rendered as commented approximations
// rather than faithfully reproduced (see the per-function rules in
// functions.go).
package generator

import (
	"fmt"
	"strings"

	"github.com/abhisnowflakedev/snowflow/ast"
	"github.com/abhisnowflakedev/snowflow/schemacontext"
)

// Result is the SQL string plus the bookkeeping the translator and
// confidence assessor need: which patterns fired, what warnings were
// raised along the way, and which tables were touched.
type Result struct {
	SQL             string
	PatternsApplied []string
	Warnings        []string
	TablesUsed      []string
}

// Generate renders node as SQL. ctx may be nil, in which case every
// identifier falls back to its snake_case spelling.
func Generate(node ast.Node, ctx *schemacontext.Context) Result {
	g := &generation{ctx: ctx, tableSeen: make(map[string]bool)}
	sql := g.emit(node)

	return Result{
		SQL:             sql,
		PatternsApplied: g.patternsApplied,
		Warnings:        g.warnings,
		TablesUsed:      g.tablesUsed,
	}
}

type generation struct {
	ctx             *schemacontext.Context
	patternsApplied []string
	warnings        []string
	tablesUsed      []string
	tableSeen       map[string]bool
}

func (g *generation) warn(format string, args ...any) {
	g.warnings = append(g.warnings, fmt.Sprintf(format, args...))
}

func (g *generation) applied(name string) {
	g.patternsApplied = append(g.patternsApplied, strings.ToUpper(name))
}

func (g *generation) useTable(name string) {
	if name == "" || g.tableSeen[name] {
		return
	}

	g.tableSeen[name] = true
	g.tablesUsed = append(g.tablesUsed, name)
}

func (g *generation) emit(node ast.Node) string {
	switch n := node.(type) {
	case *ast.Literal:
		return g.emitLiteral(n)
	case *ast.Column:
		return g.emitColumn(n)
	case *ast.Table:
		g.useTable(n.TableName)
		if sqlName, ok := g.lookupTable(n.TableName); ok {
			return sqlName
		}

		return snakeCase(n.TableName)
	case *ast.MeasureRef:
		return snakeCase(n.MeasureName)
	case *ast.FunctionCall:
		return g.emitFunctionCall(n)
	case *ast.BinaryOp:
		return g.emitBinaryOp(n)
	case *ast.UnaryOp:
		return g.emitUnaryOp(n)
	case *ast.MeasureDef:
		return g.emit(n.Expression)
	default:
		return ""
	}
}

func (g *generation) emitLiteral(lit *ast.Literal) string {
	switch lit.Type {
	case ast.LiteralString:
		return quoteString(lit.String)
	case ast.LiteralBoolean:
		if lit.Bool {
			return "TRUE"
		}

		return "FALSE"
	case ast.LiteralBlank:
		return "NULL"
	default:
		return lit.Number.String()
	}
}

func (g *generation) lookupTable(flTable string) (string, bool) {
	if g.ctx == nil {
		return "", false
	}

	return g.ctx.GetSQLTableName(flTable)
}

func (g *generation) lookupColumn(flTable, flCol string) (string, bool) {
	if g.ctx == nil {
		return "", false
	}

	return g.ctx.GetSQLColumnName(flTable, flCol)
}

func (g *generation) emitColumn(col *ast.Column) string {
	if col.TableName == "" {
		return snakeCase(col.ColumnName)
	}

	g.useTable(col.TableName)

	if sqlCol, ok := g.lookupColumn(col.TableName, col.ColumnName); ok {
		sqlTable, _ := g.lookupTable(col.TableName)

		return sqlTable + "." + sqlCol
	}

	return snakeCase(col.TableName) + "." + snakeCase(col.ColumnName)
}

var binaryOperatorText = map[ast.BinaryOperator]string{
	ast.ADD:       "+",
	ast.SUB:       "-",
	ast.MUL:       "*",
	ast.DIV:       "/",
	ast.EQ:        "=",
	ast.NE:        "<>",
	ast.LT:        "<",
	ast.LE:        "<=",
	ast.GT:        ">",
	ast.GE:        ">=",
	ast.AND:       "AND",
	ast.OR:        "OR",
	ast.AMPERSAND: "||",
}

func (g *generation) emitBinaryOp(op *ast.BinaryOp) string {
	left := g.emit(op.Left)
	right := g.emit(op.Right)

	if op.Op == ast.POWER {
		return fmt.Sprintf("POWER(%s, %s)", left, right)
	}

	sym, ok := binaryOperatorText[op.Op]
	if !ok {
		sym = "?"
	}

	return fmt.Sprintf("(%s %s %s)", left, sym, right)
}

func (g *generation) emitUnaryOp(op *ast.UnaryOp) string {
	operand := g.emit(op.Operand)

	if op.Op == ast.NOT {
		return "NOT " + operand
	}

	return "-" + operand
}
