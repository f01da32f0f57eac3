package dto

import "time"

// LoginRequest holds the admin credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// GoogleCallbackRequest carries the authorization code returned by Google.
type GoogleCallbackRequest struct {
	Code  string `json:"code" binding:"required"`
	State string `json:"state" binding:"required"`
}

// GoogleLoginResponse points the browser at Google's consent screen.
type GoogleLoginResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// LoginResponse holds the access token issued after a successful login.
type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
	Subject     string    `json:"subject"`
}
