package oura

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"
)

// Version is the library version reported in the User-Agent header.
const Version = "1.0.0"

const (
	defaultBaseURL = "https://api.ouraring.com"
	apiVersion     = "v2"

	userAgent = "oura-go/" + Version

	// requestTimeout is the fixed per-request timeout carried by the
	// default HTTP client.
	requestTimeout = 60 * time.Second
)

// Client is the core Oura API client.
//
// A Client is safe for concurrent use by multiple goroutines. It holds the
// transport and credential for its lifetime; release it with Close when done.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	userAgent  string

	rateLimiter *rateLimiter
	pageLimit   int
	now         func() time.Time
	logger      *slog.Logger

	closeOnce sync.Once
	closed    atomic.Bool

	// Services used for communicating with the Oura API endpoints.
	PersonalInfo      *PersonalInfoService
	DailyActivity     *Service[DailyActivity]
	DailyReadiness    *Service[DailyReadiness]
	DailySleep        *Service[DailySleep]
	DailySpo2         *Service[DailySpo2]
	DailyStress       *Service[DailyStress]
	EnhancedTag       *Service[EnhancedTag]
	HeartRate         *Service[HeartRateSample]
	RestModePeriod    *Service[RestModePeriod]
	RingConfiguration *Service[RingConfiguration]
	Session           *Service[Session]
	Sleep             *Service[Sleep]
	SleepTime         *Service[SleepTime]
	Tag               *Service[Tag]
	Workout           *Service[Workout]
}

// NewClient creates a new Oura API client with the given options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: requestTimeout},
		baseURL:     defaultBaseURL,
		userAgent:   userAgent,
		rateLimiter: newRateLimiter(),
		now:         time.Now,
		logger:      slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.PersonalInfo = &PersonalInfoService{client: c}
	c.DailyActivity = newService[DailyActivity](c, resourceDailyActivity)
	c.DailyReadiness = newService[DailyReadiness](c, resourceDailyReadiness)
	c.DailySleep = newService[DailySleep](c, resourceDailySleep)
	c.DailySpo2 = newService[DailySpo2](c, resourceDailySpo2)
	c.DailyStress = newService[DailyStress](c, resourceDailyStress)
	c.EnhancedTag = newService[EnhancedTag](c, resourceEnhancedTag)
	c.HeartRate = newService[HeartRateSample](c, resourceHeartRate)
	c.RestModePeriod = newService[RestModePeriod](c, resourceRestModePeriod)
	c.RingConfiguration = newService[RingConfiguration](c, resourceRingConfiguration)
	c.Session = newService[Session](c, resourceSession)
	c.Sleep = newService[Sleep](c, resourceSleep)
	c.SleepTime = newService[SleepTime](c, resourceSleepTime)
	c.Tag = newService[Tag](c, resourceTag)
	c.Workout = newService[Workout](c, resourceWorkout)

	return c
}

// Do executes an HTTP request with context, authentication, and client-side
// rate limiting. Responses with an error status are drained, closed, and
// mapped to typed errors; the caller owns the body otherwise.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.closed.Load() {
		return nil, ErrClientClosed
	}

	// Clone so header injection never mutates the caller's request.
	req = req.Clone(ctx)

	// Inject authentication header if available.
	if c.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	}

	// Set standard headers.
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if req.Header.Get("Content-Type") == "" && req.Method != http.MethodGet {
		req.Header.Set("Content-Type", "application/json")
	}

	// Enforce local rate limit before executing the request.
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("local rate limit wait interrupted: %w", err)
	}

	c.logger.Debug("api request", "method", req.Method, "url", req.URL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// If context is canceled or deadline exceeded, return immediately.
		if ctx.Err() != nil {
			return nil, fmt.Errorf("request aborted by context: %w", ctx.Err())
		}
		return nil, fmt.Errorf("http execute request failed: %w", err)
	}

	c.logger.Debug("api response", "status", resp.StatusCode, "url", req.URL.String())

	// Handle HTTP errors (4xx, 5xx). No retries: a 429 surfaces to the
	// caller as a RateLimitError immediately.
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		return nil, mapHTTPError(resp, body)
	}

	return resp, nil
}

// get issues a GET request against path with the given query parameters and
// decodes the JSON response body into v.
func (c *Client) get(ctx context.Context, path string, params url.Values, v any) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return err
	}
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}

	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &DecodeError{URL: u.String(), Err: err}
	}

	return nil
}

// Close releases the transport resources held by the client. Only the first
// call performs the release; later calls are no-ops. Requests issued after
// Close fail with ErrClientClosed.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		c.httpClient.CloseIdleConnections()
	})
	return nil
}

// String implements fmt.Stringer without exposing the access token.
func (c *Client) String() string {
	return fmt.Sprintf("oura.Client{baseURL:%s token:<REDACTED>}", c.baseURL)
}

// GoString implements fmt.GoStringer so %#v formatting does not leak the
// token either.
func (c *Client) GoString() string {
	return c.String()
}
