package handlers

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/concierge_backoffice/internal/apperrors"
	portssvc "github.com/SscSPs/concierge_backoffice/internal/core/ports/services"
	"github.com/SscSPs/concierge_backoffice/internal/dto"
	"github.com/SscSPs/concierge_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	oauthStateCookie = "oauth_state"
	oauthStateMaxAge = 600
)

// authHandler handles password and Google sign-in for the admin.
type authHandler struct {
	tokenService       portssvc.TokenSvcFacade
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	secureCookies      bool
}

func newAuthHandler(ts portssvc.TokenSvcFacade, gs portssvc.GoogleOAuthHandlerSvcFacade, secureCookies bool) *authHandler {
	return &authHandler{tokenService: ts, googleOAuthService: gs, secureCookies: secureCookies}
}

// registerAuthRoutes sets up the public authentication routes. login is rate limited.
func registerAuthRoutes(rg *gin.RouterGroup, h *authHandler, limit gin.HandlerFunc) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", limit, h.login)
		auth.GET("/google/login", h.googleLogin)
		auth.POST("/google/callback", limit, h.googleCallback)
	}
}

// login godoc
// @Summary Admin login
// @Description Checks the admin credentials and returns a JWT access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	subject, err := h.tokenService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		logger.Warn("Login rejected", slog.String("username", req.Username))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
		return
	}

	h.issueToken(c, logger, subject)
}

// googleLogin godoc
// @Summary Start Google sign-in
// @Description Returns the Google consent URL and sets a short-lived state cookie checked by the callback.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.GoogleLoginResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login [get]
func (h *authHandler) googleLogin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ctx := c.Request.Context()

	state, err := h.googleOAuthService.GenerateStateString(ctx)
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start Google sign-in"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, oauthStateMaxAge, "/", "", h.secureCookies, true)
	c.JSON(http.StatusOK, dto.GoogleLoginResponse{
		URL:   h.googleOAuthService.GetGoogleLoginURL(ctx, state),
		State: state,
	})
}

// googleCallback godoc
// @Summary Finish Google sign-in
// @Description Exchanges the authorization code, checks the ID token and issues an access token for allow-listed admin e-mails.
// @Tags auth
// @Accept json
// @Produce json
// @Param callback body dto.GoogleCallbackRequest true "Authorization code and state"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /auth/google/callback [post]
func (h *authHandler) googleCallback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ctx := c.Request.Context()

	var req dto.GoogleCallbackRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	expected, err := c.Cookie(oauthStateCookie)
	if err != nil || subtle.ConstantTimeCompare([]byte(expected), []byte(req.State)) != 1 {
		logger.Warn("OAuth state mismatch")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", h.secureCookies, true)

	oauthToken, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		lower := strings.ToLower(err.Error())
		if strings.Contains(lower, "invalid_grant") || strings.Contains(lower, "bad request") {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired authorization code"})
			return
		}
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to communicate with Google"})
		return
	}

	idToken, ok := oauthToken.Extra("id_token").(string)
	if !ok || idToken == "" {
		logger.Error("ID token not found in Google's token response")
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Google did not return an ID token"})
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idToken)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google ID token"})
		return
	}
	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || !verified {
		logger.Warn("Google account has no verified e-mail", slog.String("google_user_id", payload.Subject))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "A verified e-mail is required"})
		return
	}

	subject, err := h.googleOAuthService.AdminSubjectForEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("Google account is not an admin", slog.String("email", email))
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "This account is not allowed to sign in"})
			return
		}
		respondServiceError(c, logger, err, "Admin", "sign in with Google")
		return
	}

	h.issueToken(c, logger, subject)
}

func (h *authHandler) issueToken(c *gin.Context, logger *slog.Logger, subject string) {
	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), subject)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	logger.Info("Admin signed in", slog.String("subject", subject))
	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Subject:     subject,
	})
}
