// Package analyzer walks an FL AST and collects metadata about it: which
// functions and columns it references, which tables it touches, and
// whether it exercises time-intelligence or filter-modification functions.
// It never produces SQL; that is the generator's job, run as an
// independent visitor over the same tree.
package analyzer

import (
	"strings"

	"github.com/abhisnowflakedev/snowflow/ast"
)

// ColumnRef is a single column reference observed during the walk. Table is
// empty for unqualified columns.
type ColumnRef struct {
	Table  string
	Column string
}

// Result is the metadata collected from a single AST walk.
type Result struct {
	Functions    []string
	Columns      []ColumnRef
	Tables       []string
	HasTimeIntel bool
	HasFilterMod bool
	Complexity   int
}

var timeIntelFunctions = map[string]bool{
	"SAMEPERIODLASTYEAR": true,
	"DATEADD":            true,
	"DATESYTD":           true,
	"PREVIOUSYEAR":       true,
	"TOTALYTD":           true,
	"PARALLELPERIOD":     true,
	"PREVIOUSMONTH":      true,
	"DATESBETWEEN":       true,
}

var filterModFunctions = map[string]bool{
	"CALCULATE":      true,
	"CALCULATETABLE": true,
	"ALL":            true,
	"ALLEXCEPT":      true,
	"FILTER":         true,
}

// Analyze performs a depth-first walk of node, collecting the metadata
// described by Result.
func Analyze(node ast.Node) Result {
	a := &analysis{tableSeen: make(map[string]bool)}
	a.visit(node)

	return Result{
		Functions:    a.functions,
		Columns:      a.columns,
		Tables:       a.tables,
		HasTimeIntel: a.hasTimeIntel,
		HasFilterMod: a.hasFilterMod,
		Complexity:   a.complexity,
	}
}

type analysis struct {
	functions    []string
	columns      []ColumnRef
	tables       []string
	tableSeen    map[string]bool
	hasTimeIntel bool
	hasFilterMod bool
	complexity   int
}

func (a *analysis) addTable(name string) {
	if name == "" || a.tableSeen[name] {
		return
	}

	a.tableSeen[name] = true
	a.tables = append(a.tables, name)
}

func (a *analysis) visit(node ast.Node) {
	if node == nil {
		return
	}

	a.complexity++

	switch n := node.(type) {
	case *ast.Literal:
		// leaf, nothing to collect

	case *ast.Column:
		a.columns = append(a.columns, ColumnRef{Table: n.TableName, Column: n.ColumnName})
		a.addTable(n.TableName)

	case *ast.Table:
		a.addTable(n.TableName)

	case *ast.MeasureRef:
		// measure references name no table/column pair directly

	case *ast.FunctionCall:
		name := strings.ToUpper(n.FunctionName)
		a.functions = append(a.functions, name)

		if timeIntelFunctions[name] {
			a.hasTimeIntel = true
		}

		if filterModFunctions[name] {
			a.hasFilterMod = true
		}

		for _, arg := range n.Arguments {
			a.visit(arg)
		}

	case *ast.BinaryOp:
		a.visit(n.Left)
		a.visit(n.Right)

	case *ast.UnaryOp:
		a.visit(n.Operand)

	case *ast.MeasureDef:
		a.visit(n.Expression)
	}
}
