package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/abhisnowflakedev/snowflow"
	"github.com/abhisnowflakedev/snowflow/httpapi"
	"github.com/abhisnowflakedev/snowflow/patterns"
	"github.com/abhisnowflakedev/snowflow/schemacontext"
	"github.com/abhisnowflakedev/snowflow/translator"
)

// Context carries global flags into every subcommand's Run method.
type Context struct {
	Config  string
	Verbose bool
}

// TranslateCmd translates a single FL expression.
type TranslateCmd struct {
	Expression string `arg:"" help:"FL expression to translate"`
	ContextFile string `help:"Path to a Schema Context JSON file" short:"c"`
}

func (cmd *TranslateCmd) Run(appCtx *Context) error {
	tr, err := translatorFromFile(cmd.ContextFile)
	if err != nil {
		return err
	}

	result := tr.Translate(context.Background(), cmd.Expression)
	printResult(appCtx, result.SQL, result.Confidence, result.Warnings, result.Errors)

	if !result.Success {
		return fmt.Errorf("translation failed")
	}

	return nil
}

// MeasureCmd translates a `[Name] = expression` measure definition.
type MeasureCmd struct {
	Measure     string `arg:"" help:"Measure definition, e.g. [Total Sales] = SUM(Sales[Amount])"`
	ContextFile string `help:"Path to a Schema Context JSON file" short:"c"`
}

func (cmd *MeasureCmd) Run(appCtx *Context) error {
	tr, err := translatorFromFile(cmd.ContextFile)
	if err != nil {
		return err
	}

	result := tr.TranslateMeasure(context.Background(), cmd.Measure)
	printResult(appCtx, result.SQL, result.Confidence, result.Warnings, result.Errors)

	if !result.Success {
		return fmt.Errorf("translation failed")
	}

	return nil
}

// BatchCmd translates a list of expressions read from a file, one per line.
type BatchCmd struct {
	Path        string `arg:"" help:"Path to a file of FL expressions, one per line"`
	ContextFile string `help:"Path to a Schema Context JSON file" short:"c"`
}

func (cmd *BatchCmd) Run(appCtx *Context) error {
	data, err := os.ReadFile(cmd.Path)
	if err != nil {
		return fmt.Errorf("reading batch file: %w", err)
	}

	tr, err := translatorFromFile(cmd.ContextFile)
	if err != nil {
		return err
	}

	successful := 0

	for _, line := range strings.Split(string(data), "\n") {
		expr := strings.TrimSpace(line)
		if expr == "" {
			continue
		}

		result := tr.Translate(context.Background(), expr)
		if result.Success {
			successful++
		}

		printResult(appCtx, result.SQL, result.Confidence, result.Warnings, result.Errors)
	}

	color.Cyan("%d expressions translated successfully", successful)

	return nil
}

// PatternsCmd lists or displays Pattern Library entries.
type PatternsCmd struct {
	Function string `arg:"" optional:"" help:"Show a single function's pattern; omit to list all"`
}

func (cmd *PatternsCmd) Run(appCtx *Context) error {
	if cmd.Function != "" {
		p, ok := patterns.GetPattern(cmd.Function)
		if !ok {
			return fmt.Errorf("no pattern registered for %s", cmd.Function)
		}

		b, _ := json.MarshalIndent(p, "", "  ")
		fmt.Println(string(b))

		return nil
	}

	for _, p := range patterns.ListPatterns() {
		fmt.Printf("%-20s %s\n", p.FLFunction, p.SQLTemplate)
	}

	return nil
}

// ServeCmd starts the HTTP translation API.
type ServeCmd struct {
	ListenAddr  string `help:"Address to listen on, overrides the config file"`
	ContextFile string `help:"Path to a Schema Context JSON file, overrides the config file" short:"c"`
}

func (cmd *ServeCmd) Run(appCtx *Context) error {
	cfg, err := snowflow.LoadConfig(appCtx.Config)
	if err != nil {
		color.Yellow("using default configuration: %v", err)
	}

	listenAddr := cfg.ListenAddr
	if cmd.ListenAddr != "" {
		listenAddr = cmd.ListenAddr
	}

	contextFile := cfg.ContextFile
	if cmd.ContextFile != "" {
		contextFile = cmd.ContextFile
	}

	var schemaCtx *schemacontext.Context

	if contextFile != "" {
		c, err := loadContextFile(contextFile)
		if err != nil {
			return err
		}

		schemaCtx = c
	} else {
		schemaCtx = schemacontext.Sample()
	}

	api := httpapi.New(schemaCtx)

	mux := http.NewServeMux()
	api.Register(mux)

	color.Green("snowflow listening on %s", listenAddr)

	return http.ListenAndServe(listenAddr, mux)
}

var CLI struct {
	Config    string      `help:"Configuration file path" default:"snowflow.yaml"`
	Verbose   bool        `help:"Enable verbose output" short:"v"`
	Translate TranslateCmd `cmd:"" help:"Translate a single FL expression to SQL"`
	Measure   MeasureCmd  `cmd:"" help:"Translate a measure definition to SQL"`
	Batch     BatchCmd    `cmd:"" help:"Translate a file of FL expressions"`
	Patterns  PatternsCmd `cmd:"" help:"List or inspect Pattern Library entries"`
	Serve     ServeCmd    `cmd:"" help:"Run the translation HTTP API"`
}

func main() {
	ctx := kong.Parse(&CLI)

	appCtx := &Context{Config: CLI.Config, Verbose: CLI.Verbose}

	err := ctx.Run(appCtx)
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func translatorFromFile(path string) (*translator.Translator, error) {
	if path == "" {
		return translator.New(nil), nil
	}

	ctx, err := loadContextFile(path)
	if err != nil {
		return nil, err
	}

	return translator.New(ctx), nil
}

func loadContextFile(path string) (*schemacontext.Context, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading context file: %w", err)
	}

	ctx, err := schemacontext.FromJSON(data)
	if err != nil {
		return nil, err
	}

	return ctx, nil
}

func printResult(appCtx *Context, sql string, level any, warnings, errs []string) {
	fmt.Println(sql)

	if appCtx.Verbose {
		color.Cyan("confidence: %v", level)

		for _, w := range warnings {
			color.Yellow("warning: %s", w)
		}

		for _, e := range errs {
			color.Red("error: %s", e)
		}
	}
}
