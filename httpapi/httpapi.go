// Package httpapi wires the translation core up behind the thin HTTP layer
// described as the system's external interface: a set of JSON routes over
// expression, measure, batch and TMDL translation, plus read-only views
// over the Pattern Library and a sample Schema Context. None of the
// translation logic lives here — handlers decode, delegate to translator,
// patterns or tmdl, and encode.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/abhisnowflakedev/snowflow/llm"
	"github.com/abhisnowflakedev/snowflow/patterns"
	"github.com/abhisnowflakedev/snowflow/schemacontext"
	"github.com/abhisnowflakedev/snowflow/tmdl"
	"github.com/abhisnowflakedev/snowflow/translator"
)

const RoutePrefix = "/translate"

// API wraps a Translator with HTTP handlers.
type API struct {
	Translator *translator.Translator
	LLMClient  llm.Client
}

// New returns an API backed by a fresh Translator over ctx. ctx may be nil.
func New(ctx *schemacontext.Context) *API {
	return &API{Translator: translator.New(ctx)}
}

// Register binds every route onto mux.
func (a *API) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST "+RoutePrefix+"/expression", a.handleExpression)
	mux.HandleFunc("POST "+RoutePrefix+"/measure", a.handleMeasure)
	mux.HandleFunc("POST "+RoutePrefix+"/batch", a.handleBatch)
	mux.HandleFunc("POST "+RoutePrefix+"/tmdl", a.handleTMDL)
	mux.HandleFunc("GET "+RoutePrefix+"/patterns", a.handleListPatterns)
	mux.HandleFunc("GET "+RoutePrefix+"/patterns/{fn}", a.handleGetPattern)
	mux.HandleFunc("GET "+RoutePrefix+"/context/sample", a.handleSampleContext)
	mux.HandleFunc("POST "+RoutePrefix+"/validate", a.handleValidate)
	mux.HandleFunc("POST "+RoutePrefix+"/cortex", a.handleCortex)
	mux.HandleFunc("GET "+RoutePrefix+"/cortex/status", a.handleCortexStatus)
}

// -----------------------------------------------------------------------------
// request / response payloads

type expressionRequest struct {
	FL             string  `json:"fl"`
	ContextJSON    *string `json:"context_json,omitempty"`
	ValidateOutput bool    `json:"validate_output,omitempty"`
}

type measureRequest struct {
	Measure     string  `json:"measure"`
	ContextJSON *string `json:"context_json,omitempty"`
}

type batchRequest struct {
	Expressions []string `json:"expressions"`
	ContextJSON *string  `json:"context_json,omitempty"`
}

type batchResponse struct {
	Total      int                  `json:"total"`
	Successful int                  `json:"successful"`
	Failed     int                  `json:"failed"`
	Results    []translationResponse `json:"results"`
}

type tmdlRequest struct {
	TMDLContent string  `json:"tmdl_content"`
	ContextJSON *string `json:"context_json,omitempty"`
}

type tmdlResponse struct {
	Success            bool     `json:"success"`
	YAML               string   `json:"yaml"`
	MeasuresTranslated int      `json:"measures_translated"`
	MeasuresFailed     int      `json:"measures_failed"`
	Errors             []string `json:"errors"`
	Timestamp          string   `json:"timestamp"`
}

// translationResponse mirrors translator.Result in the wire shape returned
// by the expression, measure, batch and cortex routes.
type translationResponse struct {
	RequestID       string   `json:"request_id"`
	SQL             string   `json:"sql"`
	Success         bool     `json:"success"`
	Confidence      string   `json:"confidence"`
	FLSource        string   `json:"fl_source"`
	TablesUsed      []string `json:"tables_used,omitempty"`
	JoinsNeeded     string   `json:"joins_needed,omitempty"`
	Warnings        []string `json:"warnings,omitempty"`
	Errors          []string `json:"errors,omitempty"`
	LLMUsed         bool     `json:"llm_used"`
	PatternsApplied []string `json:"patterns_applied,omitempty"`
	Timestamp       string   `json:"timestamp"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// -----------------------------------------------------------------------------
// handlers

func (a *API) handleExpression(w http.ResponseWriter, r *http.Request) {
	var req expressionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	tr, err := a.translatorFor(req.ContextJSON)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	result := tr.Translate(r.Context(), req.FL)
	writeJSON(w, http.StatusOK, toResponse(result))
}

func (a *API) handleMeasure(w http.ResponseWriter, r *http.Request) {
	var req measureRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	tr, err := a.translatorFor(req.ContextJSON)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	result := tr.TranslateMeasure(r.Context(), req.Measure)
	writeJSON(w, http.StatusOK, toResponse(result))
}

func (a *API) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	tr, err := a.translatorFor(req.ContextJSON)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	results := make([]translationResponse, len(req.Expressions))
	successful := 0

	for i, expr := range req.Expressions {
		r := tr.Translate(r.Context(), expr)
		results[i] = toResponse(r)

		if r.Success {
			successful++
		}
	}

	writeJSON(w, http.StatusOK, batchResponse{
		Total:      len(req.Expressions),
		Successful: successful,
		Failed:     len(req.Expressions) - successful,
		Results:    results,
	})
}

func (a *API) handleTMDL(w http.ResponseWriter, r *http.Request) {
	var req tmdlRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	tr, err := a.translatorFor(req.ContextJSON)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	result := tmdl.Translate(r.Context(), tr, req.TMDLContent)

	writeJSON(w, http.StatusOK, tmdlResponse{
		Success:            result.Success,
		YAML:               result.YAML,
		MeasuresTranslated: result.MeasuresTranslated,
		MeasuresFailed:     result.MeasuresFailed,
		Errors:             result.Errors,
		Timestamp:          nowUTC(),
	})
}

func (a *API) handleListPatterns(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, patterns.ListPatterns())
}

func (a *API) handleGetPattern(w http.ResponseWriter, r *http.Request) {
	fn := r.PathValue("fn")

	p, ok := patterns.GetPattern(fn)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no pattern registered for " + fn})
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (a *API) handleSampleContext(w http.ResponseWriter, r *http.Request) {
	data, err := schemacontext.Sample().ToJSON()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// handleValidate is a boundary stub: SQL validation against a live
// warehouse is out of the translation core's scope.
func (a *API) handleValidate(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotImplemented, errorResponse{Error: "SQL validation is outside the translation core"})
}

func (a *API) handleCortex(w http.ResponseWriter, r *http.Request) {
	if a.LLMClient == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "no Cortex client configured"})
		return
	}

	var req expressionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	tr, err := a.translatorFor(req.ContextJSON)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	tr.EnableLLM(a.LLMClient)

	result := tr.Translate(r.Context(), req.FL)
	writeJSON(w, http.StatusOK, toResponse(result))
}

func (a *API) handleCortexStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"configured": a.LLMClient != nil})
}

// -----------------------------------------------------------------------------
// helpers

func (a *API) translatorFor(contextJSON *string) (*translator.Translator, error) {
	if contextJSON == nil || *contextJSON == "" {
		return a.Translator, nil
	}

	ctx, err := schemacontext.FromJSON([]byte(*contextJSON))
	if err != nil {
		return nil, fmt.Errorf("invalid context_json: %w", err)
	}

	tr := translator.New(ctx)
	if a.LLMClient != nil {
		tr.EnableLLM(a.LLMClient)
	}

	return tr, nil
}

func toResponse(r translator.Result) translationResponse {
	return translationResponse{
		RequestID:       uuid.NewString(),
		SQL:             r.SQL,
		Success:         r.Success,
		Confidence:      string(r.Confidence),
		FLSource:        r.FLSource,
		TablesUsed:      r.TablesUsed,
		JoinsNeeded:     r.JoinsNeeded,
		Warnings:        r.Warnings,
		Errors:          r.Errors,
		LLMUsed:         r.LLMUsed,
		PatternsApplied: r.PatternsApplied,
		Timestamp:       nowUTC(),
	}
}

func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("request body is empty")
		}

		return fmt.Errorf("invalid request body: %w", err)
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("write response failed: %v", err)
		}
	}
}
