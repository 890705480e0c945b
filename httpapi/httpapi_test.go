package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/abhisnowflakedev/snowflow/httpapi"
	"github.com/abhisnowflakedev/snowflow/schemacontext"
)

func newTestServer() *httptest.Server {
	api := httpapi.New(schemacontext.Sample())

	mux := http.NewServeMux()
	api.Register(mux)

	return httptest.NewServer(mux)
}

func TestHandleExpressionReturnsSQL(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	body := strings.NewReader(`{"fl": "SUM(Sales[Amount])"}`)
	resp, err := http.Post(srv.URL+"/translate/expression", "application/json", body)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var payload map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "SUM(FACT_SALES.AMOUNT)", payload["sql"])
	assert.Equal(t, true, payload["success"])
}

func TestHandleListPatternsReturnsArray(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/translate/patterns")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var payload []map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.True(t, len(payload) > 20)
}

func TestHandleSampleContextReturnsTables(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/translate/context/sample")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var payload map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.True(t, len(payload["tables"].([]any)) == 5)
}

func TestHandleValidateReturnsNotImplemented(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/translate/validate", "application/json", strings.NewReader(`{}`))
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
}

func TestHandleCortexStatusReportsUnconfigured(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/translate/cortex/status")
	assert.NoError(t, err)
	defer resp.Body.Close()

	var payload map[string]bool
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.False(t, payload["configured"])
}

func TestHandleBatchPreservesOrder(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	body := strings.NewReader(`{"expressions": ["SUM(Sales[Amount])", "SUM(Sales[Amount]"]}`)
	resp, err := http.Post(srv.URL+"/translate/batch", "application/json", body)
	assert.NoError(t, err)
	defer resp.Body.Close()

	var payload map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, float64(2), payload["total"])
	assert.Equal(t, float64(1), payload["successful"])
	assert.Equal(t, float64(1), payload["failed"])
}
