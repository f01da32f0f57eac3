package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/concierge_backoffice/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestEventName(t *testing.T) {
	tests := []struct {
		method string
		route  string
		want   string
	}{
		{"POST", "/api/v1/documents/:documentID/status/cycle", "post_documents_status_cycle"},
		{"GET", "/api/v1/prestation-categories", "get_prestation_categories"},
		{"DELETE", "/api/v1/documents/:documentID/categories/:name", "delete_documents_categories"},
		{"POST", "/api/v1/contact", "post_contact"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, eventName(tt.method, tt.route))
	}
}

func TestPosthogMiddlewareWithoutClientPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(PosthogMiddleware(utils.InitializePosthogClient("", discardLogger())))
	r.GET("/api/v1/settings", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
