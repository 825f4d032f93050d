package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"a11ytree/internal/config"
	"a11ytree/internal/extractor"
	"a11ytree/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const page = `<html><body><div><div class="wrap"><button aria-label="Go">Go</button></div></div></body></html>`

func newTestServer(cfg extractor.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := &logger.Zap{Logger: zap.NewNop()}
	return New(&config.Cfg{}, log, extractor.New(cfg, log.Logger)).Router()
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := do(newTestServer(extractor.DefaultConfig()), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestTree_Text(t *testing.T) {
	w := do(newTestServer(extractor.DefaultConfig()), http.MethodPost, "/api/tree", page)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "false", w.Header().Get("X-Tree-Truncated"))
	assert.Equal(t,
		"type: element\ntagName: button\naria-label: Go\ntextContent: Go\nchildren:\n  - type: text\n    content: Go",
		w.Body.String())
}

func TestTree_TextTruncated(t *testing.T) {
	cfg := extractor.DefaultConfig()
	cfg.MaxChars = 10

	w := do(newTestServer(cfg), http.MethodPost, "/api/tree?format=text", page)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Header().Get("X-Tree-Truncated"))
	assert.Equal(t, "type: elem\n...", w.Body.String())
}

func TestTree_YAML(t *testing.T) {
	w := do(newTestServer(extractor.DefaultConfig()), http.MethodPost, "/api/tree?format=yaml", page)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/yaml")

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "button", doc["tagName"])
	assert.Equal(t, "Go", doc["aria-label"])
}

func TestTree_UnknownFormat(t *testing.T) {
	w := do(newTestServer(extractor.DefaultConfig()), http.MethodPost, "/api/tree?format=xml", page)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "format")
}
