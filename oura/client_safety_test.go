package oura

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
)

// Do works on a clone of the caller's request. The injected headers
// (Authorization, User-Agent, Accept) must show up on the wire and must
// never appear on the request the caller still holds.
func TestDo_DoesNotMutateCallerRequest(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "https://api.ouraring.com/v2/usercollection/daily_sleep", nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("X-Request-Id", "caller-owned")

	wire := &capturingTransport{}
	client := NewClient(
		WithToken("oura-personal-token"),
		WithHTTPClient(&http.Client{Transport: wire}),
	)
	defer client.Close()

	resp, err := client.Do(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body.Close()

	if got := wire.header.Get("Authorization"); got != "Bearer oura-personal-token" {
		t.Errorf("wire Authorization: expected bearer token, got %q", got)
	}
	if got := wire.header.Get("User-Agent"); got != userAgent {
		t.Errorf("wire User-Agent: expected %q, got %q", userAgent, got)
	}
	if got := wire.header.Get("X-Request-Id"); got != "caller-owned" {
		t.Errorf("wire X-Request-Id: expected caller's header to survive, got %q", got)
	}

	if got := req.Header.Get("Authorization"); got != "" {
		t.Errorf("caller's request gained Authorization: %q", got)
	}
	if got := req.Header.Get("User-Agent"); got != "" {
		t.Errorf("caller's request gained User-Agent: %q", got)
	}
	if got := req.Header.Get("X-Request-Id"); got != "caller-owned" {
		t.Errorf("caller's header changed: %q", got)
	}
}

// capturingTransport records the headers of the request it receives and
// returns an empty collection page without touching the network.
type capturingTransport struct {
	header http.Header
}

func (ct *capturingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ct.header = req.Header.Clone()
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(`{"data": [], "next_token": null}`)),
	}, nil
}
