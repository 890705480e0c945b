package analyzer_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/abhisnowflakedev/snowflow/analyzer"
	"github.com/abhisnowflakedev/snowflow/parser"
)

func TestAnalyzeCollectsFunctionsAndColumns(t *testing.T) {
	result := parser.Parse(`SUM(Sales[Amount]) + AVERAGE(Sales[Amount])`)
	assert.True(t, result.Success)

	r := analyzer.Analyze(result.AST)
	assert.Equal(t, []string{"SUM", "AVERAGE"}, r.Functions)
	assert.Equal(t, 2, len(r.Columns))
	assert.Equal(t, []string{"Sales"}, r.Tables)
}

func TestAnalyzeDetectsTimeIntelligence(t *testing.T) {
	result := parser.Parse(`SAMEPERIODLASTYEAR(Sales[Date])`)
	assert.True(t, result.Success)

	r := analyzer.Analyze(result.AST)
	assert.True(t, r.HasTimeIntel)
	assert.False(t, r.HasFilterMod)
}

func TestAnalyzeDetectsFilterModification(t *testing.T) {
	result := parser.Parse(`CALCULATE(SUM(Sales[Amount]), Sales[Region] = "West")`)
	assert.True(t, result.Success)

	r := analyzer.Analyze(result.AST)
	assert.True(t, r.HasFilterMod)
}

func TestAnalyzeRetainsDuplicateFunctionNames(t *testing.T) {
	result := parser.Parse(`SUM(Sales[Amount]) + SUM(Sales[Quantity])`)
	assert.True(t, result.Success)

	r := analyzer.Analyze(result.AST)
	assert.Equal(t, []string{"SUM", "SUM"}, r.Functions)
}

func TestAnalyzeComplexityCountsNodes(t *testing.T) {
	result := parser.Parse(`1 + 2`)
	assert.True(t, result.Success)

	r := analyzer.Analyze(result.AST)
	assert.Equal(t, 3, r.Complexity) // BinaryOp + two Literals
}
