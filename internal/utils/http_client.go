package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions tunes the client returned by [NewHTTPClient].
type HTTPClientOptions struct {
	// Timeout bounds a single request; zero disables it.
	Timeout time.Duration
	// UserAgent is sent with every request when non-empty.
	UserAgent string
}

// NewHTTPClient creates an independent HTTPClient with its own connection
// pool. Retries are disabled: every request is a single attempt.
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New().
		SetRetryCount(0).
		SetTimeout(opts.Timeout)

	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}

	return &HTTPClient{Client: client}
}
