// Package llm defines the boundary the translator calls through when a
// translation's confidence is LOW: an optional rewrite pass backed by
// Snowflake Cortex or any other completion endpoint the embedding
// application wires up. The core never talks to a model directly.
package llm

import (
	"context"
	"strings"

	"github.com/abhisnowflakedev/snowflow/patterns"
	"github.com/abhisnowflakedev/snowflow/schemacontext"
)

// Client completes a single prompt and returns the model's reply. A Client
// implementation is expected to wrap something like a Snowflake Cortex
// endpoint; none is bundled here, as talking to a live model is outside the
// translation core's scope.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// BuildPrompt assembles the single text prompt sent to the client: the FL
// source, the pattern-based SQL attempt, the Pattern Library reference
// card, and (if present) the Schema Context prompt rendering, ending with
// a directive to return only SQL.
func BuildPrompt(flSource, initialSQL string, schemaCtx *schemacontext.Context) string {
	var b strings.Builder

	b.WriteString("You are an FL to Snowflake SQL translator.\n\n")
	b.WriteString("Convert the following FL expression to Snowflake SQL.\n\n")
	b.WriteString("FL: ")
	b.WriteString(flSource)
	b.WriteString("\n\nInitial SQL attempt (may need fixes):\n")
	b.WriteString(initialSQL)
	b.WriteString("\n\nReference patterns:\n")
	b.WriteString(patterns.ToPromptContext())

	if schemaCtx != nil {
		b.WriteString("\n")
		b.WriteString(schemaCtx.ToPromptContext())
	}

	b.WriteString("\nProvide ONLY the corrected SQL, no explanations.")

	return b.String()
}
