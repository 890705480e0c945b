// Package tmdl extracts measure definitions from TMDL (Tabular Model
// Definition Language) source text and translates each one, emitting the
// result as YAML. Extraction is a deliberately simple regex scan over
// `measure NAME = EXPR` blocks, not a structural TMDL parser: the format
// has a much larger grammar than this boundary needs to understand.
package tmdl

import (
	"context"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/abhisnowflakedev/snowflow/translator"
)

// measureLine matches a `measure Name = expression` declaration, with the
// name optionally wrapped in single quotes (TMDL's convention for names
// containing spaces) and the expression running to the end of the line.
var measureLine = regexp.MustCompile(`(?im)^\s*measure\s+('[^']+'|\S+)\s*=\s*(.+?)\s*$`)

// Measure is one extracted `measure NAME = EXPR` declaration.
type Measure struct {
	Name       string `yaml:"name"`
	Expression string `yaml:"expression"`
}

// TranslatedMeasure is a single measure's translation outcome.
type TranslatedMeasure struct {
	Name       string   `yaml:"name"`
	SQL        string   `yaml:"sql"`
	Confidence string   `yaml:"confidence"`
	Warnings   []string `yaml:"warnings,omitempty"`
}

// Document is the top-level shape emitted as YAML.
type Document struct {
	Measures []TranslatedMeasure `yaml:"measures"`
}

// Result is the outcome of translating an entire TMDL document.
type Result struct {
	Success            bool
	YAML               string
	MeasuresTranslated int
	MeasuresFailed     int
	Errors             []string
}

// ExtractMeasures scans tmdlContent for `measure NAME = EXPR` declarations.
func ExtractMeasures(tmdlContent string) []Measure {
	var out []Measure

	for _, m := range measureLine.FindAllStringSubmatch(tmdlContent, -1) {
		name := strings.Trim(m[1], "'")
		out = append(out, Measure{Name: name, Expression: m[2]})
	}

	return out
}

// Translate extracts every measure from tmdlContent and translates its
// expression through tr, then renders the successful translations as YAML.
func Translate(ctx context.Context, tr *translator.Translator, tmdlContent string) Result {
	measures := ExtractMeasures(tmdlContent)

	doc := Document{}

	var errs []string

	translated, failed := 0, 0

	for _, m := range measures {
		r := tr.Translate(ctx, m.Expression)
		if !r.Success {
			failed++
			errs = append(errs, m.Name+": "+strings.Join(r.Errors, "; "))

			continue
		}

		translated++
		doc.Measures = append(doc.Measures, TranslatedMeasure{
			Name:       m.Name,
			SQL:        r.SQL,
			Confidence: string(r.Confidence),
			Warnings:   r.Warnings,
		})
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		errs = append(errs, "yaml encoding failed: "+err.Error())
	}

	return Result{
		Success:            failed == 0,
		YAML:               string(out),
		MeasuresTranslated: translated,
		MeasuresFailed:     failed,
		Errors:             errs,
	}
}
