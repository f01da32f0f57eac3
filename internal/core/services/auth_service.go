package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/concierge_backoffice/internal/apperrors"
	portssvc "github.com/SscSPs/concierge_backoffice/internal/core/ports/services"
	"github.com/SscSPs/concierge_backoffice/internal/platform/config"
	"github.com/SscSPs/concierge_backoffice/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// tokenService authenticates the single admin account and issues access tokens.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, opts ...ServiceOption) portssvc.TokenSvcFacade {
	return &tokenService{
		BaseService: newBaseService(opts),
		cfg:         cfg,
	}
}

// Authenticate checks the username and the bcrypt password hash from configuration.
func (s *tokenService) Authenticate(ctx context.Context, username, password string) (string, error) {
	if s.cfg.AdminPasswordHash == "" {
		s.LogDebug(ctx, "Password login attempted but no admin password hash is configured")
		return "", apperrors.ErrUnauthorized
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1
	passOK := utils.CheckPasswordHash(password, s.cfg.AdminPasswordHash)
	if !userOK || !passOK {
		s.LogInfo(ctx, "Rejected admin login", slog.String("username", username))
		return "", apperrors.ErrUnauthorized
	}
	return s.cfg.AdminUsername, nil
}

// GenerateAccessToken creates a new JWT access token for the given admin subject.
func (s *tokenService) GenerateAccessToken(ctx context.Context, subject string) (string, time.Time, error) {
	if subject == "" {
		return "", time.Time{}, errors.New("token subject is required")
	}
	token, expiresAt, err := utils.GenerateJWT(subject, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("subject", subject))
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// --- GoogleOAuthHandlerSvcFacade Implementation ---

// googleOAuthHandlerService implements the GoogleOAuthHandlerSvcFacade.
type googleOAuthHandlerService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
	allowed      []string
}

// NewGoogleOAuthHandlerService creates a new instance of googleOAuthHandlerService.
func NewGoogleOAuthHandlerService(cfg *config.Config) portssvc.GoogleOAuthHandlerSvcFacade {
	allowed := make([]string, 0, len(cfg.AdminEmails))
	for _, e := range cfg.AdminEmails {
		allowed = append(allowed, strings.ToLower(strings.TrimSpace(e)))
	}
	return &googleOAuthHandlerService{
		cfg:     cfg,
		allowed: allowed,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "https://www.googleapis.com/auth/userinfo.email"},
			Endpoint:     google.Endpoint,
		},
	}
}

// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
func (s *googleOAuthHandlerService) GenerateStateString(ctx context.Context) (string, error) {
	state, err := utils.NewOAuthState(24)
	if err != nil {
		return "", fmt.Errorf("failed to generate state string for OAuth: %w", err)
	}
	return state, nil
}

// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
func (s *googleOAuthHandlerService) GetGoogleLoginURL(ctx context.Context, state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
func (s *googleOAuthHandlerService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	return token, nil
}

// ValidateGoogleIDToken validates an ID token received from Google and returns the payload if valid.
func (s *googleOAuthHandlerService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured in the application")
	}
	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}
	return payload, nil
}

// AdminSubjectForEmail admits only the e-mails listed in ADMIN_EMAILS.
func (s *googleOAuthHandlerService) AdminSubjectForEmail(ctx context.Context, email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" || !slices.Contains(s.allowed, normalized) {
		return "", fmt.Errorf("%w: %s is not an admin account", apperrors.ErrUnauthorized, email)
	}
	return normalized, nil
}
