package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DOCUMENT_STORE", "FIRESTORE")
	t.Setenv("FIRESTORE_PROJECT_ID", "concierge-test")
	t.Setenv("ADMIN_EMAILS", " owner@example.com, ,helper@example.com ")
	t.Setenv("JWT_EXPIRY_DURATION", "30m")
	t.Setenv("DEFAULT_TIMEZONE", "Europe/Paris")
	t.Setenv("MAIL_TEMPLATE_ID", "tpl_main")
	t.Setenv("MAIL_REPLY_TEMPLATE_ID", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StoreFirestore, cfg.DocumentStore)
	assert.Equal(t, "concierge-test", cfg.FirestoreProjectID)
	assert.Equal(t, []string{"owner@example.com", "helper@example.com"}, cfg.AdminEmails)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiryDuration)
	assert.Equal(t, "Europe/Paris", cfg.DefaultTimezone.String())
	assert.Equal(t, "tpl_main", cfg.MailReplyTemplateID)
}

func TestLoadConfigFallbacks(t *testing.T) {
	t.Setenv("DOCUMENT_STORE", "mongo")
	t.Setenv("JWT_EXPIRY_DURATION", "soon")
	t.Setenv("DEFAULT_TIMEZONE", "Mars/Olympus")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("FRONTEND_BASE_URL", "https://admin.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StorePostgres, cfg.DocumentStore)
	assert.Equal(t, 12*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, time.UTC, cfg.DefaultTimezone)
	assert.Equal(t, []string{"https://admin.example.com"}, cfg.CORSAllowedOrigins)
}
