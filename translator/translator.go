// Package translator is the top-level façade: it orchestrates parsing,
// analysis, SQL generation, join planning, confidence assessment, and the
// optional LLM-enhancement pass into a single Result per call.
package translator

import (
	"context"
	"fmt"

	"github.com/abhisnowflakedev/snowflow/analyzer"
	"github.com/abhisnowflakedev/snowflow/ast"
	"github.com/abhisnowflakedev/snowflow/confidence"
	"github.com/abhisnowflakedev/snowflow/generator"
	"github.com/abhisnowflakedev/snowflow/llm"
	"github.com/abhisnowflakedev/snowflow/parser"
	"github.com/abhisnowflakedev/snowflow/schemacontext"
)

// Result is the outcome of a single translation call.
type Result struct {
	SQL             string
	Success         bool
	Confidence      confidence.Level
	FLSource        string
	TablesUsed      []string
	JoinsNeeded     string
	Warnings        []string
	Errors          []string
	LLMUsed         bool
	PatternsApplied []string
}

// Translator bundles an immutable Schema Context and an optional LLM
// client. It holds no mutable state of its own: translate performs no
// writes to the receiver, so a single instance is safe to share across
// concurrent callers as long as neither the context nor the Pattern
// Library singleton is mutated out from under it.
type Translator struct {
	Context  *schemacontext.Context
	UseLLM   bool
	LLMClient llm.Client
}

// New constructs a Translator over an optional Schema Context. The LLM hook
// is disabled until EnableLLM is called.
func New(ctx *schemacontext.Context) *Translator {
	return &Translator{Context: ctx}
}

// EnableLLM wires an LLM client into the translator; it will be consulted
// only when a translation's confidence comes out LOW.
func (t *Translator) EnableLLM(client llm.Client) {
	t.LLMClient = client
	t.UseLLM = client != nil
}

// Translate runs the full pipeline over a single FL expression.
func (t *Translator) Translate(ctx context.Context, flSource string) Result {
	parseResult := parser.Parse(flSource)
	if !parseResult.Success {
		if looksLikeVarReturn(flSource) {
			return Result{
				SQL:             generateComplexFallback(flSource),
				Success:         true,
				Confidence:      confidence.Low,
				FLSource:        flSource,
				Warnings:        []string{"Complex VAR/RETURN syntax detected - using simplified translation"},
				PatternsApplied: []string{"VAR_RETURN_FALLBACK"},
			}
		}

		return Result{
			Success:    false,
			Confidence: confidence.Unknown,
			FLSource:   flSource,
			Errors:     formatParseErrors(parseResult.Errors),
		}
	}

	return t.translateNode(ctx, flSource, parseResult.AST)
}

// TranslateMeasure parses a `[Name] = expression` measure definition and
// translates the inner expression. Measure delegation feeds the
// already-parsed expression subtree directly into the same pipeline
// Translate uses, rather than re-stringifying and re-parsing it.
func (t *Translator) TranslateMeasure(ctx context.Context, measureSource string) Result {
	parseResult := parser.ParseMeasure(measureSource)
	if !parseResult.Success {
		if looksLikeVarReturn(measureSource) {
			return Result{
				SQL:             generateComplexFallback(measureSource),
				Success:         true,
				Confidence:      confidence.Low,
				FLSource:        measureSource,
				Warnings:        []string{"Complex VAR/RETURN syntax detected - using simplified translation"},
				PatternsApplied: []string{"VAR_RETURN_FALLBACK"},
			}
		}

		return Result{
			Success:    false,
			Confidence: confidence.Unknown,
			FLSource:   measureSource,
			Errors:     formatParseErrors(parseResult.Errors),
		}
	}

	def := parseResult.AST.(*ast.MeasureDef)

	return t.translateNode(ctx, measureSource, def.Expression)
}

func (t *Translator) translateNode(ctx context.Context, flSource string, node ast.Node) Result {
	analysis := analyzer.Analyze(node)

	genResult := generator.Generate(node, t.Context)

	joins := ""
	if t.Context != nil && len(genResult.TablesUsed) > 1 {
		joinSQL, joinWarnings, err := t.Context.GenerateJoins(genResult.TablesUsed)
		if err == nil {
			joins = joinSQL
			genResult.Warnings = append(genResult.Warnings, joinWarnings...)
		}
	}

	level := confidence.Assess(analysis, len(genResult.Warnings))

	llmUsed := false

	if level == confidence.Low && t.UseLLM && t.LLMClient != nil {
		prompt := llm.BuildPrompt(flSource, genResult.SQL, t.Context)

		reply, err := t.LLMClient.Complete(ctx, prompt)
		if err != nil {
			genResult.Warnings = append(genResult.Warnings, fmt.Sprintf("LLM enhancement failed: %v", err))
		} else if reply != "" {
			genResult.SQL = reply
			llmUsed = true
			level = confidence.Medium
		}
	}

	return Result{
		SQL:             genResult.SQL,
		Success:         true,
		Confidence:      level,
		FLSource:        flSource,
		TablesUsed:      genResult.TablesUsed,
		JoinsNeeded:      joins,
		Warnings:        genResult.Warnings,
		LLMUsed:         llmUsed,
		PatternsApplied: genResult.PatternsApplied,
	}
}

func formatParseErrors(errs []parser.ParseError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.String())
	}

	return out
}
