package llm_test

import (
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/abhisnowflakedev/snowflow/llm"
	"github.com/abhisnowflakedev/snowflow/schemacontext"
)

type stubClient struct {
	reply string
	err   error
}

func (s stubClient) Complete(ctx context.Context, prompt string) (string, error) {
	return s.reply, s.err
}

func TestBuildPromptIncludesSourceAndPatterns(t *testing.T) {
	prompt := llm.BuildPrompt(`SUM(Sales[Amount])`, "SUM(sales.amount)", nil)

	assert.True(t, strings.Contains(prompt, "SUM(Sales[Amount])"))
	assert.True(t, strings.Contains(prompt, "SUM(sales.amount)"))
	assert.True(t, strings.Contains(prompt, "Reference patterns"))
	assert.True(t, strings.HasSuffix(prompt, "Provide ONLY the corrected SQL, no explanations."))
}

func TestBuildPromptIncludesSchemaContextWhenPresent(t *testing.T) {
	prompt := llm.BuildPrompt(`SUM(Sales[Amount])`, "SUM(sales.amount)", schemacontext.Sample())

	assert.True(t, strings.Contains(prompt, "Schema:"))
}

func TestStubClientSatisfiesInterface(t *testing.T) {
	var c llm.Client = stubClient{reply: "SELECT 1"}

	reply, err := c.Complete(context.Background(), "anything")
	assert.NoError(t, err)
	assert.Equal(t, "SELECT 1", reply)
}
