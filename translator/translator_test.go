package translator_test

import (
	"context"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/abhisnowflakedev/snowflow/confidence"
	"github.com/abhisnowflakedev/snowflow/schemacontext"
	"github.com/abhisnowflakedev/snowflow/translator"
)

func TestTranslateSimpleExpressionIsHighConfidence(t *testing.T) {
	tr := translator.New(schemacontext.Sample())

	r := tr.Translate(context.Background(), `SUM(Sales[Amount])`)
	assert.True(t, r.Success)
	assert.Equal(t, confidence.High, r.Confidence)
	assert.Equal(t, "SUM(FACT_SALES.AMOUNT)", r.SQL)
}

func TestTranslateMultiTableExpressionComputesJoins(t *testing.T) {
	tr := translator.New(schemacontext.Sample())

	r := tr.Translate(context.Background(), `SUM(Sales[Amount]) + SUM(Product[ProductID])`)
	assert.True(t, r.Success)
	assert.True(t, len(r.JoinsNeeded) > 0)
}

func TestTranslateParseFailureReturnsErrors(t *testing.T) {
	tr := translator.New(nil)

	r := tr.Translate(context.Background(), `SUM(Sales[Amount]`)
	assert.False(t, r.Success)
	assert.Equal(t, confidence.Unknown, r.Confidence)
	assert.True(t, len(r.Errors) > 0)
}

func TestTranslateVarReturnUsesFallbackSynthesizer(t *testing.T) {
	tr := translator.New(nil)

	src := "VAR x = SUM(Sales[Amount])\nRETURN x"
	r := tr.Translate(context.Background(), src)

	assert.True(t, r.Success)
	assert.Equal(t, confidence.Low, r.Confidence)
	assert.Equal(t, []string{"VAR_RETURN_FALLBACK"}, r.PatternsApplied)
	assert.True(t, len(r.Warnings) == 1)
}

func TestTranslateMeasureDelegatesThroughTranslate(t *testing.T) {
	tr := translator.New(schemacontext.Sample())

	r := tr.TranslateMeasure(context.Background(), `[Total Sales] = SUM(Sales[Amount])`)
	assert.True(t, r.Success)
	assert.Equal(t, "SUM(FACT_SALES.AMOUNT)", r.SQL)
}

type fakeClient struct {
	reply string
}

func (f fakeClient) Complete(ctx context.Context, prompt string) (string, error) {
	return f.reply, nil
}

func TestTranslateEscalatesConfidenceWhenLLMEnhances(t *testing.T) {
	tr := translator.New(nil)
	tr.EnableLLM(fakeClient{reply: "SELECT 1"})

	r := tr.Translate(context.Background(), `SOMEUNKNOWNFUNC(Sales[Amount])`)
	assert.True(t, r.Success)

	if r.Confidence == confidence.Low {
		t.Fatalf("expected LLM enhancement to escalate confidence, got LOW")
	}

	assert.True(t, r.LLMUsed)
	assert.Equal(t, "SELECT 1", r.SQL)
}
