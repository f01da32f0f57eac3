package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// adminSubjectKey stores the authenticated admin's subject in the request context.
const adminSubjectKey = contextKey("adminSubject")

// WithAdminSubject returns a copy of ctx carrying the authenticated admin subject.
func WithAdminSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, adminSubjectKey, subject)
}

// GetUserIDFromContext retrieves the authenticated admin subject from the Gin context.
// It returns the subject and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	subject, ok := c.Request.Context().Value(adminSubjectKey).(string)
	if !ok || subject == "" {
		return "", false
	}
	return subject, true
}
