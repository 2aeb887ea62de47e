package auth

import "errors"

var (
	// HTTP API errors
	ErrHTTPAPIConnection  = errors.New("failed to connect to authentication API")
	ErrHTTPAPIInvalidResp = errors.New("invalid response from authentication API")

	// OAuth errors
	ErrOAuthNoEmail = errors.New("oauth account has no email address")

	errSessionNotFound = errors.New("session not found")
)
