package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Showshin/dev-utils-plus/pkg/registry"
)

func serve(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestGetHealth(t *testing.T) {
	handler := NewHandler(registry.Builtin(), WithVersion("1.2.3"))

	rr := serve(t, handler, "GET", "/healthz", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "1.2.3", resp["version"])
}

func TestListOps(t *testing.T) {
	handler := NewHandler(registry.Builtin())

	rr := serve(t, handler, "GET", "/v1/ops", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var ops []opView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ops))
	require.NotEmpty(t, ops)

	names := map[string]opView{}
	for _, op := range ops {
		names[op.Name] = op
	}
	slug, ok := names["slugify"]
	require.True(t, ok, "slugify should be listed")
	assert.Equal(t, "strings", slug.Group)
	require.Len(t, slug.Args, 1)
	assert.True(t, slug.Args[0].Required)
}

func TestExecuteOp(t *testing.T) {
	handler := NewHandler(registry.Builtin())

	rr := serve(t, handler, "POST", "/v1/ops/slugify", `{"text": "Hello World"}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Op     string `json:"op"`
		Result string `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "slugify", resp.Op)
	assert.Equal(t, "hello-world", resp.Result)
}

func TestExecuteOpUnknown(t *testing.T) {
	handler := NewHandler(registry.Builtin())

	rr := serve(t, handler, "POST", "/v1/ops/launch-rockets", `{}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "launch-rockets")
}

func TestExecuteOpBadInput(t *testing.T) {
	handler := NewHandler(registry.Builtin())

	t.Run("malformed body", func(t *testing.T) {
		rr := serve(t, handler, "POST", "/v1/ops/slugify", `{broken`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp["error"])
	})

	t.Run("missing required argument", func(t *testing.T) {
		rr := serve(t, handler, "POST", "/v1/ops/slugify", `{}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Contains(t, resp["error"], "text")
	})

	t.Run("operation error", func(t *testing.T) {
		rr := serve(t, handler, "POST", "/v1/ops/primes", `{"limit": -5}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	handler := NewHandler(registry.Builtin())

	// Drive one request so the counters have something to report.
	serve(t, handler, "POST", "/v1/ops/slugify", `{"text": "x"}`)

	rr := serve(t, handler, "GET", "/metrics", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "devutils_http_requests_total")
}

func TestHandlersDoNotShareMetricState(t *testing.T) {
	// Each handler registers its collectors on a private registry; building
	// two in one process must not panic with a duplicate registration.
	a := NewHandler(registry.Builtin())
	b := NewHandler(registry.Builtin())

	assert.Equal(t, http.StatusOK, serve(t, a, "GET", "/healthz", "").Code)
	assert.Equal(t, http.StatusOK, serve(t, b, "GET", "/healthz", "").Code)
}

func TestCORSPreflight(t *testing.T) {
	handler := NewHandler(registry.Builtin())

	rr := serve(t, handler, "OPTIONS", "/v1/ops/slugify", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
