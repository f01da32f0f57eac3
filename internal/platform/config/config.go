package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Document store backends.
const (
	StorePostgres  = "postgres"
	StoreFirestore = "firestore"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Persistence
	DocumentStore            string
	DatabaseURL              string
	MigrationsPath           string
	FirestoreProjectID       string
	FirestoreCredentialsFile string

	// Admin authentication
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	AdminUsername     string
	AdminPasswordHash string
	AdminEmails       []string

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`
	FrontendBaseURL    string `mapstructure:"FRONTEND_BASE_URL"`
	CORSAllowedOrigins []string

	// Outbound mail (EmailJS-compatible endpoint)
	MailEndpoint        string
	MailServiceID       string
	MailTemplateID      string
	MailReplyTemplateID string
	MailPublicKey       string
	MailPrivateKey      string
	OwnerName           string
	OwnerEmail          string

	// Rate limits, in ulule/limiter formatted form ("5-M" = 5 per minute)
	LoginRateLimit   string
	ContactRateLimit string

	PosthogAPIKey   string
	DefaultTimezone *time.Location
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("DOCUMENT_STORE", StorePostgres)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("FIRESTORE_PROJECT_ID", "")
	viper.SetDefault("FIRESTORE_CREDENTIALS_FILE", "")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "concierge-backoffice")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("ADMIN_EMAILS", "")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")
	viper.SetDefault("MAIL_ENDPOINT", "https://api.emailjs.com/api/v1.0/email/send")
	viper.SetDefault("MAIL_SERVICE_ID", "")
	viper.SetDefault("MAIL_TEMPLATE_ID", "")
	viper.SetDefault("MAIL_REPLY_TEMPLATE_ID", "")
	viper.SetDefault("MAIL_PUBLIC_KEY", "")
	viper.SetDefault("MAIL_PRIVATE_KEY", "")
	viper.SetDefault("OWNER_NAME", "")
	viper.SetDefault("OWNER_EMAIL", "")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("CONTACT_RATE_LIMIT", "3-H")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("DEFAULT_TIMEZONE", "Europe/Paris")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.DocumentStore = strings.ToLower(viper.GetString("DOCUMENT_STORE"))
	if cfg.DocumentStore != StorePostgres && cfg.DocumentStore != StoreFirestore {
		log.Printf("Warning: unknown DOCUMENT_STORE %q. Defaulting to %s.\n", cfg.DocumentStore, StorePostgres)
		cfg.DocumentStore = StorePostgres
	}
	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DocumentStore == StorePostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.FirestoreProjectID = viper.GetString("FIRESTORE_PROJECT_ID")
	cfg.FirestoreCredentialsFile = viper.GetString("FIRESTORE_CREDENTIALS_FILE")
	if cfg.DocumentStore == StoreFirestore && cfg.FirestoreProjectID == "" {
		log.Println("Warning: FIRESTORE_PROJECT_ID not set. The Firestore store will not connect.")
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AdminUsername = viper.GetString("ADMIN_USERNAME")
	cfg.AdminPasswordHash = viper.GetString("ADMIN_PASSWORD_HASH")
	if cfg.AdminPasswordHash == "" {
		log.Println("Warning: ADMIN_PASSWORD_HASH not set. Password login is disabled.")
	}
	cfg.AdminEmails = splitList(viper.GetString("ADMIN_EMAILS"))

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google sign-in will not function.")
	}
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{cfg.FrontendBaseURL}
	}

	cfg.MailEndpoint = viper.GetString("MAIL_ENDPOINT")
	cfg.MailServiceID = viper.GetString("MAIL_SERVICE_ID")
	cfg.MailTemplateID = viper.GetString("MAIL_TEMPLATE_ID")
	cfg.MailReplyTemplateID = viper.GetString("MAIL_REPLY_TEMPLATE_ID")
	if cfg.MailReplyTemplateID == "" {
		cfg.MailReplyTemplateID = cfg.MailTemplateID
	}
	cfg.MailPublicKey = viper.GetString("MAIL_PUBLIC_KEY")
	cfg.MailPrivateKey = viper.GetString("MAIL_PRIVATE_KEY")
	if cfg.MailServiceID == "" || cfg.MailTemplateID == "" {
		log.Println("Warning: MAIL_SERVICE_ID or MAIL_TEMPLATE_ID not set. Notifications will fail.")
	}
	cfg.OwnerName = viper.GetString("OWNER_NAME")
	cfg.OwnerEmail = viper.GetString("OWNER_EMAIL")

	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")
	cfg.ContactRateLimit = viper.GetString("CONTACT_RATE_LIMIT")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	tz := viper.GetString("DEFAULT_TIMEZONE")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("Warning: invalid DEFAULT_TIMEZONE %q. Defaulting to UTC.\n", tz)
		loc = time.UTC
	}
	cfg.DefaultTimezone = loc

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
