package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/worksheetz/internal/config"
	"github.com/abhisek/worksheetz/internal/problem"
	"github.com/abhisek/worksheetz/internal/worksheet"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer() *Server {
	d := worksheet.NewDispatcher(worksheet.DefaultLimits(), nil)
	return New(config.ServerConfig{Addr: ":0"}, d, nil, "test")
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := do(t, newTestServer(), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
	assert.Contains(t, w.Body.String(), `"version":"test"`)
}

func TestRequestIDPassThrough(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestModules(t *testing.T) {
	w := do(t, newTestServer(), http.MethodGet, "/api/modules", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Modules []worksheet.ModuleInfo `json:"modules"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Modules, len(worksheet.Modules()))
}

func TestGenerateWorksheet(t *testing.T) {
	w := do(t, newTestServer(), http.MethodPost, "/api/worksheets", map[string]any{
		"module": "arithmetic",
		"count":  4,
		"seed":   11,
		"arithmetic": map[string]any{
			"operation":    "subtraction",
			"digits1":      3,
			"digits2":      2,
			"carryBorrow":  "with",
			"format":       "vertical",
			"divisionType": "no-remainder",
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp batchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "arithmetic", resp.Module)
	assert.Equal(t, uint64(11), resp.Seed)
	assert.Len(t, resp.Problems, 4)
	assert.Equal(t, "Çıkarma İşlemi", resp.Title)
	assert.Empty(t, resp.Error)
	for _, p := range resp.Problems {
		assert.Equal(t, problem.DisplayVertical, p.Display)
	}
}

func TestGenerateReportsFailureInBody(t *testing.T) {
	w := do(t, newTestServer(), http.MethodPost, "/api/worksheets", map[string]any{
		"module": "rhythmic-counting",
		"count":  2,
		"rhythm": map[string]any{"step": 0, "direction": "forward", "digits": 2, "layout": "continuation", "boxes": 6},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp batchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, problem.KindInvalidSettings, resp.ErrorKind)
	assert.NotEmpty(t, resp.Error)
	require.Len(t, resp.Problems, 2)
	assert.Equal(t, problem.FailureAnswer, resp.Problems[0].Answer)
}

func TestGenerateRejectsBadInput(t *testing.T) {
	s := newTestServer()

	w := do(t, s, http.MethodPost, "/api/worksheets", map[string]any{"module": "alchemy"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/worksheets", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBundle(t *testing.T) {
	w := do(t, newTestServer(), http.MethodPost, "/api/worksheets/bundle", map[string]any{
		"seed": 99,
		"sections": []map[string]any{
			{"module": "place-value", "count": 3},
			{"module": "time", "count": 2},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp bundleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint64(99), resp.Seed)
	require.Len(t, resp.Sections, 2)
	assert.Equal(t, "place-value", resp.Sections[0].Module)
	assert.Len(t, resp.Sections[0].Problems, 3)
	assert.Equal(t, "time", resp.Sections[1].Module)
	assert.Len(t, resp.Sections[1].Problems, 2)
}

func TestBundleLimits(t *testing.T) {
	s := newTestServer()
	w := do(t, s, http.MethodPost, "/api/worksheets/bundle", map[string]any{"sections": []any{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, http.MethodPost, "/api/worksheets/bundle", map[string]any{
		"sections": []map[string]any{{"module": "time"}, {"module": "nope"}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "section 2")
}

func TestRecoverWithSentry(t *testing.T) {
	s := newTestServer()
	s.engine.GET("/boom", func(*gin.Context) { panic("kaboom") })

	w := do(t, s, http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}
