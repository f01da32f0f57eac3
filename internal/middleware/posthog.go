package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/concierge_backoffice/internal/utils"
	"github.com/gin-gonic/gin"
)

// untracked routes never reach PostHog.
var untracked = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// contactDistinctID groups anonymous contact-form submissions under one id.
const contactDistinctID = "public-contact-form"

// PosthogMiddleware records one event per successful request. Admin calls are
// attributed to the JWT subject; the public contact form is attributed to
// contactDistinctID. Everything else unauthenticated is ignored.
func PosthogMiddleware(client *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if !client.IsInitialized() {
			return
		}
		route := c.FullPath()
		status := c.Writer.Status()
		if route == "" || untracked[route] || status >= http.StatusBadRequest {
			return
		}

		distinctID, ok := GetUserIDFromContext(c)
		if !ok {
			if !strings.HasSuffix(route, "/contact") {
				return
			}
			distinctID = contactDistinctID
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"route":       route,
			"status_code": status,
		}
		// ids only; free-text params such as category names stay out
		for _, p := range c.Params {
			if strings.HasSuffix(p.Key, "ID") {
				props[p.Key] = p.Value
			}
		}
		client.Enqueue(distinctID, eventName(c.Request.Method, route), props)
	}
}

// eventName turns "POST /api/v1/documents/:documentID/status/cycle" into
// "post_documents_status_cycle".
func eventName(method, route string) string {
	parts := []string{strings.ToLower(method)}
	for _, seg := range strings.Split(strings.TrimPrefix(route, "/api/v1"), "/") {
		if seg == "" || strings.HasPrefix(seg, ":") {
			continue
		}
		parts = append(parts, strings.ReplaceAll(seg, "-", "_"))
	}
	return strings.Join(parts, "_")
}
