package oura

import (
	"log/slog"
	"net/http"
	"time"
)

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client used for requests.
// If this is not provided, a default http.Client with a 60-second timeout is used.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithToken sets the personal access token used for authentication.
// This will automatically set the Authorization: Bearer <token> header on all requests.
func WithToken(token string) Option {
	return func(client *Client) {
		client.token = token
	}
}

// WithBaseURL overrides the default Oura API base URL.
// This is primarily useful for testing or connecting to a proxy.
func WithBaseURL(url string) Option {
	return func(client *Client) {
		client.baseURL = url
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(client *Client) {
		client.userAgent = ua
	}
}

// WithRateLimiting enables or disables client-side rate limiting.
// This is primarily used for testing and benchmarking.
func WithRateLimiting(enabled bool) Option {
	return func(client *Client) {
		client.rateLimiter.SetAutoLimiting(enabled)
	}
}

// WithPageLimit caps how many pages a single List call may fetch before
// giving up with ErrTooManyPages. Zero, the default, places no bound and
// trusts the API to terminate pagination.
func WithPageLimit(n int) Option {
	return func(client *Client) {
		client.pageLimit = n
	}
}

// WithClock overrides the time source used when defaulting absent date
// bounds to "today". Intended for tests that need a fixed clock.
func WithClock(now func() time.Time) Option {
	return func(client *Client) {
		client.now = now
	}
}

// WithLogger sets the slog logger used for request-level debug logging.
// By default all logs are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(client *Client) {
		client.logger = l
	}
}
