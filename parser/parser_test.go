package parser_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/abhisnowflakedev/snowflow/ast"
	"github.com/abhisnowflakedev/snowflow/parser"
)

func TestParseSimpleFunctionCall(t *testing.T) {
	result := parser.Parse(`SUM(Sales[Amount])`)
	assert.True(t, result.Success)
	assert.Equal(t, 0, len(result.Errors))

	fn, ok := result.AST.(*ast.FunctionCall)
	assert.True(t, ok)
	assert.Equal(t, "SUM", fn.FunctionName)
	assert.Equal(t, 1, len(fn.Arguments))

	col, ok := fn.Arguments[0].(*ast.Column)
	assert.True(t, ok)
	assert.Equal(t, "Sales", col.TableName)
	assert.Equal(t, "Amount", col.ColumnName)
}

func TestParseUnqualifiedColumn(t *testing.T) {
	result := parser.Parse(`[Amount]`)
	assert.True(t, result.Success)

	col, ok := result.AST.(*ast.Column)
	assert.True(t, ok)
	assert.Equal(t, "", col.TableName)
	assert.Equal(t, "Amount", col.ColumnName)
}

func TestParseQuotedTableName(t *testing.T) {
	result := parser.Parse(`'Date'[Date]`)
	assert.True(t, result.Success)

	col, ok := result.AST.(*ast.Column)
	assert.True(t, ok)
	assert.Equal(t, "Date", col.TableName)
}

func TestParsePowerIsRightAssociative(t *testing.T) {
	result := parser.Parse(`2 ^ 3 ^ 2`)
	assert.True(t, result.Success)

	top, ok := result.AST.(*ast.BinaryOp)
	assert.True(t, ok)
	assert.Equal(t, ast.POWER, top.Op)

	right, ok := top.Right.(*ast.BinaryOp)
	assert.True(t, ok, "right operand of outer ^ should itself be a ^ (right associativity)")
	assert.Equal(t, ast.POWER, right.Op)

	_, leftIsLiteral := top.Left.(*ast.Literal)
	assert.True(t, leftIsLiteral)
}

func TestParseOperatorPrecedence(t *testing.T) {
	// 1 + 2 * 3 should parse as 1 + (2 * 3)
	result := parser.Parse(`1 + 2 * 3`)
	assert.True(t, result.Success)

	top, ok := result.AST.(*ast.BinaryOp)
	assert.True(t, ok)
	assert.Equal(t, ast.ADD, top.Op)

	right, ok := top.Right.(*ast.BinaryOp)
	assert.True(t, ok)
	assert.Equal(t, ast.MUL, right.Op)
}

func TestParseAndOrPrecedence(t *testing.T) {
	// a OR b AND c == a OR (b AND c)
	result := parser.Parse(`TRUE || FALSE && TRUE`)
	assert.True(t, result.Success)

	top, ok := result.AST.(*ast.BinaryOp)
	assert.True(t, ok)
	assert.Equal(t, ast.OR, top.Op)

	right, ok := top.Right.(*ast.BinaryOp)
	assert.True(t, ok)
	assert.Equal(t, ast.AND, right.Op)
}

func TestParseIf(t *testing.T) {
	result := parser.Parse(`IF([Amount] > 100, "big", "small")`)
	assert.True(t, result.Success)

	fn := result.AST.(*ast.FunctionCall)
	assert.Equal(t, "IF", fn.FunctionName)
	assert.Equal(t, 3, len(fn.Arguments))
}

func TestParseMeasureDefinition(t *testing.T) {
	result := parser.ParseMeasure(`[Total Sales] = SUM(Sales[Amount])`)
	assert.True(t, result.Success)

	def, ok := result.AST.(*ast.MeasureDef)
	assert.True(t, ok)
	assert.Equal(t, "Total Sales", def.Name)

	_, ok = def.Expression.(*ast.FunctionCall)
	assert.True(t, ok)
}

func TestParseErrorReportsPositionAndMessage(t *testing.T) {
	result := parser.Parse(`SUM(Sales[Amount]`) // missing ')'
	assert.False(t, result.Success)
	assert.True(t, len(result.Errors) > 0)
}

func TestParseBareTableReference(t *testing.T) {
	result := parser.Parse(`COUNTROWS(Sales)`)
	assert.True(t, result.Success)

	fn := result.AST.(*ast.FunctionCall)
	tbl, ok := fn.Arguments[0].(*ast.Table)
	assert.True(t, ok)
	assert.Equal(t, "Sales", tbl.TableName)
}

func TestParseNegation(t *testing.T) {
	result := parser.Parse(`-[Amount]`)
	assert.True(t, result.Success)

	un, ok := result.AST.(*ast.UnaryOp)
	assert.True(t, ok)
	assert.Equal(t, ast.NEGATE, un.Op)
}

func TestParseCaseInsensitiveKeywords(t *testing.T) {
	result := parser.Parse(`true && not false`)
	assert.True(t, result.Success)

	top, ok := result.AST.(*ast.BinaryOp)
	assert.True(t, ok)
	assert.Equal(t, ast.AND, top.Op)
}
