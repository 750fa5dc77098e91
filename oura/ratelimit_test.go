package oura

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/time/rate"
)

func TestRateLimiter_Defaults(t *testing.T) {
	rl := newRateLimiter()

	if !rl.isAutoLimiting.Load() {
		t.Error("expected auto limiting on by default")
	}
	if got := rl.limiter.Burst(); got != 5000 {
		t.Errorf("expected burst 5000, got %d", got)
	}
	want := rate.Limit(5000.0 / 300.0)
	if got := rl.limiter.Limit(); got != want {
		t.Errorf("expected limit %v, got %v", want, got)
	}
}

func TestRateLimiter_WaitSkipsWhenDisabled(t *testing.T) {
	rl := newRateLimiter()
	rl.SetAutoLimiting(false)

	// A canceled context fails Wait whenever the limiter is consulted, so a
	// nil return proves the disabled path short-circuits.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := rl.Wait(ctx); err != nil {
		t.Errorf("expected no wait when disabled, got %v", err)
	}
}

func TestRateLimiter_WaitWithBurstAvailable(t *testing.T) {
	rl := newRateLimiter()

	if err := rl.Wait(context.Background()); err != nil {
		t.Errorf("unexpected wait error: %v", err)
	}
}

func TestClient_NoRetryOn429(t *testing.T) {
	var requests int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client := newMockClient(ts)

	var v struct{}
	err := client.get(context.Background(), "/v2/usercollection/sleep", nil, &v)

	var rateErr *RateLimitError
	if !errors.As(err, &rateErr) {
		t.Fatalf("expected RateLimitError, got %T: %v", err, err)
	}
	if rateErr.RetryAfter != 30 {
		t.Errorf("expected RetryAfter 30, got %d", rateErr.RetryAfter)
	}
	if requests != 1 {
		t.Errorf("expected a single request with no retries, got %d", requests)
	}
}
