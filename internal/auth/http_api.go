package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/devFelipeMarcos/login-vittaSystem/internal/core"

	retry "github.com/appleboy/go-httpretry"
)

var _ core.AuthProvider = (*HTTPAPIProvider)(nil)

// HTTPAPIProvider delegates authentication to an external service speaking
// a better-auth compatible JSON API.
type HTTPAPIProvider struct {
	baseURL     string
	cookieName  string
	sessionTTL  time.Duration
	callbackURL string
	retryClient *retry.Client // idempotent calls
	onceClient  *retry.Client // calls that must not be replayed
}

// HTTPAPIConfig configures NewHTTPAPIProvider.
type HTTPAPIConfig struct {
	BaseURL     string
	CookieName  string
	SessionTTL  time.Duration // used when the API omits expiresAt
	CallbackURL string        // where the OAuth provider sends the browser back
}

// NewHTTPAPIProvider creates a provider calling cfg.BaseURL. Only session
// lookups and sign-out go through retryClient. Every other call goes through
// onceClient so a lost response never replays a consumed request.
func NewHTTPAPIProvider(cfg HTTPAPIConfig, retryClient, onceClient *retry.Client) *HTTPAPIProvider {
	return &HTTPAPIProvider{
		baseURL:     cfg.BaseURL,
		cookieName:  cfg.CookieName,
		sessionTTL:  cfg.SessionTTL,
		callbackURL: cfg.CallbackURL,
		retryClient: retryClient,
		onceClient:  onceClient,
	}
}

// Name returns provider name for logging
func (p *HTTPAPIProvider) Name() string {
	return "http_api"
}

type apiUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
}

type apiSessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      *apiUser  `json:"user"`
}

type apiGetSessionResponse struct {
	Session *struct {
		ExpiresAt time.Time `json:"expiresAt"`
	} `json:"session"`
	User *apiUser `json:"user"`
}

type apiErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiSocialResponse struct {
	URL string `json:"url"`
}

// SignInEmail posts the credentials to /sign-in/email.
func (p *HTTPAPIProvider) SignInEmail(
	ctx context.Context,
	req core.SignInRequest,
) (*core.Session, error) {
	body, err := p.post(ctx, p.onceClient, "/sign-in/email", map[string]string{
		"email":    req.Email,
		"password": req.Password,
	})
	if err != nil {
		return nil, err
	}
	return p.parseSession(body)
}

// SignUpEmail posts the new account to /sign-up/email.
func (p *HTTPAPIProvider) SignUpEmail(
	ctx context.Context,
	req core.SignUpRequest,
) (*core.Session, error) {
	body, err := p.post(ctx, p.onceClient, "/sign-up/email", map[string]string{
		"name":     req.Name,
		"email":    req.Email,
		"password": req.Password,
	})
	if err != nil {
		return nil, err
	}
	return p.parseSession(body)
}

// SignOut revokes the session named by the request cookie.
func (p *HTTPAPIProvider) SignOut(ctx context.Context, headers http.Header) error {
	token := SessionTokenFromHeader(headers, p.cookieName)
	if token == "" {
		return nil
	}
	_, err := p.post(ctx, p.retryClient, "/sign-out", map[string]string{"token": token})
	return err
}

// GetSession asks the API whether the request cookie names a live session.
func (p *HTTPAPIProvider) GetSession(ctx context.Context, headers http.Header) (*core.Session, error) {
	token := SessionTokenFromHeader(headers, p.cookieName)
	if token == "" {
		return nil, nil
	}

	body, err := p.post(ctx, p.retryClient, "/get-session", map[string]string{"token": token})
	if err != nil {
		if core.ErrorCode(err) == core.CodeSessionNotFound {
			return nil, nil
		}
		return nil, err
	}

	var resp apiGetSessionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, core.NewAuthError(
			core.CodeProviderUnavailable, "",
			fmt.Errorf("%w: %v", ErrHTTPAPIInvalidResp, err),
		)
	}
	// better-auth answers "null" for an unknown token.
	if resp.Session == nil || resp.User == nil {
		return nil, nil
	}
	if !time.Now().Before(resp.Session.ExpiresAt) {
		return nil, nil
	}

	return &core.Session{
		Token:     token,
		ExpiresAt: resp.Session.ExpiresAt,
		User:      core.User(*resp.User),
	}, nil
}

// SocialSignInURL asks the API for the provider's authorize URL.
func (p *HTTPAPIProvider) SocialSignInURL(ctx context.Context, provider, state string) (string, error) {
	body, err := p.post(ctx, p.onceClient, "/sign-in/social", map[string]string{
		"provider":    provider,
		"state":       state,
		"callbackURL": p.callbackURL,
	})
	if err != nil {
		return "", err
	}

	var resp apiSocialResponse
	if err := json.Unmarshal(body, &resp); err != nil || resp.URL == "" {
		return "", core.NewAuthError(
			core.CodeProviderUnavailable, "",
			fmt.Errorf("%w: missing url", ErrHTTPAPIInvalidResp),
		)
	}
	return resp.URL, nil
}

// SocialCallback hands the authorization code to the API.
func (p *HTTPAPIProvider) SocialCallback(
	ctx context.Context,
	provider, code string,
) (*core.Session, error) {
	body, err := p.post(ctx, p.onceClient, "/callback/social", map[string]string{
		"provider":    provider,
		"code":        code,
		"callbackURL": p.callbackURL,
	})
	if err != nil {
		return nil, err
	}
	return p.parseSession(body)
}

// post sends a JSON body and returns the response body of a 2xx answer.
// Non-2xx answers become *core.AuthError carrying the API's code.
func (p *HTTPAPIProvider) post(
	ctx context.Context,
	c *retry.Client,
	endpoint string,
	reqBody any,
) ([]byte, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.Post(
		ctx,
		p.baseURL+endpoint,
		retry.WithBody("application/json", bytes.NewBuffer(jsonData)),
	)
	if err != nil {
		return nil, core.NewAuthError(
			core.CodeProviderUnavailable, "",
			fmt.Errorf("%w: %v", ErrHTTPAPIConnection, err),
		)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, core.NewAuthError(
			core.CodeProviderUnavailable, "",
			fmt.Errorf("%w: failed to read response", ErrHTTPAPIInvalidResp),
		)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}
	return nil, apiError(resp.StatusCode, body)
}

func apiError(status int, body []byte) error {
	var apiResp apiErrorResponse
	if err := json.Unmarshal(body, &apiResp); err == nil && apiResp.Code != "" {
		return core.NewAuthError(apiResp.Code, apiResp.Message, nil)
	}

	if status == http.StatusUnauthorized || status == http.StatusNotFound {
		return core.NewAuthError(core.CodeSessionNotFound, "", nil)
	}

	// Limit body preview to 200 characters to avoid overwhelming logs
	bodyPreview := string(body)
	if len(bodyPreview) > 200 {
		bodyPreview = bodyPreview[:200] + "..."
	}
	return core.NewAuthError(
		core.CodeProviderUnavailable, "",
		fmt.Errorf("%w: HTTP %d - %s", ErrHTTPAPIInvalidResp, status, bodyPreview),
	)
}

func (p *HTTPAPIProvider) parseSession(body []byte) (*core.Session, error) {
	var resp apiSessionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, core.NewAuthError(
			core.CodeProviderUnavailable, "",
			fmt.Errorf("%w: %v", ErrHTTPAPIInvalidResp, err),
		)
	}
	if resp.Token == "" || resp.User == nil {
		return nil, core.NewAuthError(
			core.CodeProviderUnavailable, "",
			fmt.Errorf("%w: missing token or user", ErrHTTPAPIInvalidResp),
		)
	}

	expiresAt := resp.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(p.sessionTTL)
	}

	return &core.Session{
		Token:     resp.Token,
		ExpiresAt: expiresAt,
		User:      core.User(*resp.User),
	}, nil
}
