package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (http.Handler, *bytes.Buffer) {
	t.Helper()

	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, nil))
	static := fstest.MapFS{
		"styles.css":         {Data: []byte("body{}")},
		"js/viewer.wasm":     {Data: []byte("\x00asm")},
		"images/favicon.svg": {Data: []byte("<svg/>")},
	}

	r := newRouter(log, static)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	r.Get("/page", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hello"))
	})

	return r, &logs
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestStaticAssets(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := get(r, "/static/styles.css")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{}", rec.Body.String())
	assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))

	wasm := get(r, "/static/js/viewer.wasm")
	assert.Equal(t, "application/wasm", wasm.Header().Get("Content-Type"))
}

func TestNotFoundIsJSON(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := get(r, "/nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not_found", body["error"]["code"])
}

func TestMethodNotAllowed(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/page", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "method_not_allowed")
}

func TestRequestLogger(t *testing.T) {
	r, logs := newTestRouter(t)

	get(r, "/page")
	assert.Contains(t, logs.String(), "msg=request")
	assert.Contains(t, logs.String(), "uri=/page")
	assert.Contains(t, logs.String(), "status=200")
	assert.Contains(t, logs.String(), "scope=http")

	logs.Reset()
	get(r, "/health")
	get(r, "/static/styles.css")
	assert.Empty(t, logs.String(), "health, metrics and asset requests are not logged")
}

func TestRecoverer(t *testing.T) {
	r, logs := newTestRouter(t)

	rec := get(r, "/boom")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, logs.String(), "request failed")
}

func TestRequestIDHeader(t *testing.T) {
	r, logs := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/page", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, logs.String(), "request_id=abc-123")
}
