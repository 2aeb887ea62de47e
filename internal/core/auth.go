package core

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Error codes returned by authentication providers. Only CodeUserAlreadyExists
// changes what the user is told; every other code is reported generically.
const (
	CodeUserAlreadyExists       = "USER_ALREADY_EXISTS"
	CodeInvalidEmailOrPassword  = "INVALID_EMAIL_OR_PASSWORD"
	CodeFailedToCreateUser      = "FAILED_TO_CREATE_USER"
	CodeProviderNotFound        = "PROVIDER_NOT_FOUND"
	CodeFailedToGetUserInfo     = "FAILED_TO_GET_USER_INFO"
	CodeInvalidOAuthCode        = "INVALID_OAUTH_CODE"
	CodeProviderUnavailable     = "PROVIDER_UNAVAILABLE"
	CodeSessionNotFound         = "SESSION_NOT_FOUND"
	CodeSocialSignInUnsupported = "SOCIAL_SIGN_IN_UNSUPPORTED"
)

// User is the account a session belongs to.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"` // empty when the user has no picture
}

// Session is issued by a provider after a successful sign-in or sign-up.
// Token is opaque to everything outside the provider.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}

// SignInRequest carries already validated sign-in credentials.
type SignInRequest struct {
	Email    string
	Password string
}

// SignUpRequest carries already validated sign-up input.
type SignUpRequest struct {
	Name     string
	Email    string
	Password string
}

// AuthProvider is the capability this application needs from an
// authentication backend. GetSession returns (nil, nil) when the request
// carries no valid session.
type AuthProvider interface {
	SignInEmail(ctx context.Context, req SignInRequest) (*Session, error)
	SignUpEmail(ctx context.Context, req SignUpRequest) (*Session, error)
	SignOut(ctx context.Context, headers http.Header) error
	GetSession(ctx context.Context, headers http.Header) (*Session, error)
	SocialSignInURL(ctx context.Context, provider, state string) (string, error)
	SocialCallback(ctx context.Context, provider, code string) (*Session, error)
	Name() string
}

// AuthError is a provider failure with a machine readable code.
type AuthError struct {
	Code    string
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError builds an AuthError wrapping an optional cause.
func NewAuthError(code, message string, err error) *AuthError {
	return &AuthError{Code: code, Message: message, Err: err}
}

// ErrorCode returns the provider code carried by err, or "" when err is not
// an AuthError.
func ErrorCode(err error) string {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Code
	}
	return ""
}
