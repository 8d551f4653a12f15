package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedErrors "github.com/venda-inc/venda/internal/shared/errors"
)

func newMiddlewareTestRouter(handler gin.HandlerFunc, route gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(handler)
	engine.GET("/resource", route)
	return engine
}

func doGet(t *testing.T, engine *gin.Engine) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestErrorHandler_UsesAppErrorStatus(t *testing.T) {
	engine := newMiddlewareTestRouter(ErrorHandler(), func(c *gin.Context) {
		_ = c.Error(sharedErrors.NewNotFoundError("sale not found"))
	})

	rec, body := doGet(t, engine)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
	errInfo, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "sale not found", errInfo["message"])
}

func TestErrorHandler_UnclassifiedErrorIsOpaque(t *testing.T) {
	engine := newMiddlewareTestRouter(ErrorHandler(), func(c *gin.Context) {
		_ = c.Error(fmt.Errorf("dsn user=venda password=hunter2"))
	})

	rec, body := doGet(t, engine)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	errInfo, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Internal server error occurred", errInfo["message"])
	assert.NotContains(t, rec.Body.String(), "hunter2", "internal error details stay server-side")
}

func TestRecovery_PanicBecomes500(t *testing.T) {
	engine := newMiddlewareTestRouter(Recovery(), func(c *gin.Context) {
		panic("unreachable branch reached")
	})

	rec, body := doGet(t, engine)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, false, body["success"])
}

func TestMaskedHeaders_HidesCredentials(t *testing.T) {
	header := http.Header{}
	header.Set("Authorization", "Bearer secret-token")
	header.Set("Content-Type", "application/json")

	masked := maskedHeaders(header)

	assert.Contains(t, masked, "Authorization: *")
	assert.Contains(t, masked, "Content-Type: application/json")
	for _, h := range masked {
		assert.NotContains(t, h, "secret-token")
	}
}
