package client

import (
	"fmt"
	"net/http"
	"time"

	httpclient "github.com/appleboy/go-httpclient"
	retry "github.com/appleboy/go-httpretry"
)

// RetryOptions configures CreateRetryClient.
type RetryOptions struct {
	AuthMode           string // "none", "simple" or "hmac"
	AuthSecret         string
	AuthHeader         string
	Timeout            time.Duration
	InsecureSkipVerify bool
	MaxRetries         int
	RetryDelay         time.Duration
	MaxRetryDelay      time.Duration
}

// CreateRetryClient creates an HTTP client that signs requests for the
// configured auth mode and retries transient failures with backoff.
// Only use it for requests that are safe to repeat.
func CreateRetryClient(opts RetryOptions) (*retry.Client, error) {
	return newClient(opts,
		retry.WithMaxRetries(opts.MaxRetries),
		retry.WithInitialRetryDelay(opts.RetryDelay),
		retry.WithMaxRetryDelay(opts.MaxRetryDelay),
	)
}

// CreateSingleAttemptClient creates a client with the same signing as
// CreateRetryClient that sends every request exactly once. Used for calls
// that consume state on the server (account creation, OAuth codes).
func CreateSingleAttemptClient(opts RetryOptions) (*retry.Client, error) {
	return newClient(opts,
		retry.WithMaxRetries(0),
		retry.WithRetryableChecker(neverRetry),
	)
}

func neverRetry(error, *http.Response) bool { return false }

func newClient(opts RetryOptions, retryOpts ...retry.Option) (*retry.Client, error) {
	authMode := opts.AuthMode
	if authMode == "" {
		authMode = httpclient.AuthModeNone
	}

	client, err := httpclient.NewAuthClient(
		authMode,
		opts.AuthSecret,
		httpclient.WithTimeout(opts.Timeout),
		httpclient.WithHeaderName(opts.AuthHeader),
		httpclient.WithInsecureSkipVerify(opts.InsecureSkipVerify),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth client: %w", err)
	}

	retryClient, err := retry.NewRealtimeClient(
		append([]retry.Option{retry.WithHTTPClient(client)}, retryOpts...)...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create retry client: %w", err)
	}

	return retryClient, nil
}
