package oura

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// testNow is the fixed "today" used by mock clients, so defaulted date
// ranges are deterministic: 2023-06-14 through 2023-06-15.
var testNow = time.Date(2023, 6, 15, 10, 30, 0, 0, time.UTC)

// newMockServer creates an httptest.Server configured to respond dynamically
// to specific Oura API routes with literal mock JSON payloads.
func newMockServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	// 1. Personal Info Mock (single record, no parameters)
	mux.HandleFunc("/v2/usercollection/personal_info", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"id": "8f9a5221-639e-4a85-81cb-4065ef23f979",
			"age": 31,
			"weight": 74.8,
			"height": 1.8,
			"biological_sex": "male",
			"email": "user@example.com"
		}`))
	})

	// 2. Daily Sleep - List Mock (Paginated)
	mux.HandleFunc("/v2/usercollection/daily_sleep", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Query().Get("start_date") == "" || r.URL.Query().Get("end_date") == "" {
			t.Errorf("expected start_date and end_date on list request, got %q", r.URL.RawQuery)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		token := r.URL.Query().Get("next_token")
		switch token {
		case "":
			_, _ = w.Write([]byte(`{
				"data": [
					{
						"id": "sleep-day-1",
						"contributors": {
							"deep_sleep": 97,
							"efficiency": 98,
							"latency": 81,
							"rem_sleep": 95,
							"restfulness": 54,
							"timing": 84,
							"total_sleep": 94
						},
						"day": "2023-06-14",
						"score": 87,
						"timestamp": "2023-06-14T00:00:00+00:00"
					},
					{
						"id": "sleep-day-2",
						"contributors": {
							"deep_sleep": 90,
							"efficiency": 91,
							"latency": 99,
							"rem_sleep": 70,
							"restfulness": 61,
							"timing": 82,
							"total_sleep": 88
						},
						"day": "2023-06-15",
						"score": 82,
						"timestamp": "2023-06-15T00:00:00+00:00"
					}
				],
				"next_token": "sleep-p2"
			}`))
		case "sleep-p2":
			_, _ = w.Write([]byte(`{
				"data": [
					{
						"id": "sleep-day-3",
						"contributors": {
							"deep_sleep": 70,
							"efficiency": 80,
							"latency": 90,
							"rem_sleep": 60,
							"restfulness": 50,
							"timing": 40,
							"total_sleep": 75
						},
						"day": "2023-06-15",
						"score": 68,
						"timestamp": "2023-06-15T00:00:00+00:00"
					}
				],
				"next_token": null
			}`))
		default:
			t.Fatalf("unexpected token requested: %s", token)
		}
	})

	// 3. Daily Sleep - GetByID Mock
	mux.HandleFunc("/v2/usercollection/daily_sleep/sleep-day-1", func(w http.ResponseWriter, r *http.Request) {
		if q := r.URL.RawQuery; q != "" {
			t.Errorf("expected no query parameters on document fetch, got %q", q)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"id": "sleep-day-1",
			"contributors": {
				"deep_sleep": 97,
				"efficiency": 98,
				"latency": 81,
				"rem_sleep": 95,
				"restfulness": 54,
				"timing": 84,
				"total_sleep": 94
			},
			"day": "2023-06-14",
			"score": 87,
			"timestamp": "2023-06-14T00:00:00+00:00"
		}`))
	})

	// 4. Sleep Period - GetByID Mock (nullable series items)
	mux.HandleFunc("/v2/usercollection/sleep/period-1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"id": "period-1",
			"average_breath": 12.625,
			"average_heart_rate": 52.25,
			"average_hrv": 117,
			"awake_time": 4800,
			"bedtime_end": "2023-06-14T09:25:14-07:00",
			"bedtime_start": "2023-06-14T01:05:14-07:00",
			"day": "2023-06-14",
			"deep_sleep_duration": 4170,
			"efficiency": 84,
			"heart_rate": {
				"interval": 300,
				"items": [null, 50, 46],
				"timestamp": "2023-06-14T01:05:14.000-07:00"
			},
			"hrv": {
				"interval": 300,
				"items": [null, -102, -122],
				"timestamp": "2023-06-14T01:05:14.000-07:00"
			},
			"latency": 540,
			"light_sleep_duration": 18750,
			"low_battery_alert": false,
			"lowest_heart_rate": 48,
			"movement_30_sec": "112",
			"period": 0,
			"readiness_score_delta": 0,
			"rem_sleep_duration": 2280,
			"restless_periods": 415,
			"sleep_phase_5_min": "123",
			"sleep_score_delta": 0,
			"time_in_bed": 30000,
			"total_sleep_duration": null,
			"type": "long_sleep"
		}`))
	})

	// 5. Workout - List Mock (single page, label null)
	mux.HandleFunc("/v2/usercollection/workout", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"data": [
				{
					"id": "workout-1",
					"activity": "cycling",
					"calories": 300.5,
					"day": "2023-06-14",
					"distance": 13500.5,
					"end_datetime": "2023-06-14T01:00:00.000000+00:00",
					"intensity": "moderate",
					"label": null,
					"source": "manual",
					"start_datetime": "2023-06-14T00:00:00.000000+00:00"
				}
			],
			"next_token": null
		}`))
	})

	// 6. Session - List Mock (null biometric series)
	mux.HandleFunc("/v2/usercollection/session", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"data": [
				{
					"id": "session-1",
					"day": "2023-06-14",
					"start_datetime": "2023-06-14T12:32:09-08:00",
					"end_datetime": "2023-06-14T12:40:49-08:00",
					"type": "rest",
					"heart_rate": null,
					"heart_rate_variability": null,
					"mood": null,
					"motion_count": {
						"interval": 5,
						"items": [0],
						"timestamp": "2023-06-14T12:32:09.000-08:00"
					}
				}
			],
			"next_token": null
		}`))
	})

	// 7. Heart Rate - List Mock (datetime filtered)
	mux.HandleFunc("/v2/usercollection/heartrate", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("start_datetime") == "" || q.Get("end_datetime") == "" {
			t.Errorf("expected start_datetime and end_datetime on heartrate request, got %q", r.URL.RawQuery)
		}
		if q.Get("start_date") != "" || q.Get("end_date") != "" {
			t.Errorf("heartrate must not carry date keys, got %q", r.URL.RawQuery)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"data": [
				{"bpm": 60, "source": "sleep", "timestamp": "2023-06-14T01:02:03+00:00"},
				{"bpm": 63, "source": "awake", "timestamp": "2023-06-14T01:07:03+00:00"}
			],
			"next_token": null
		}`))
	})

	// 8. Rate Limit Explicit Mock (always 429)
	mux.HandleFunc("/429-generator", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": "Too Many Requests"}`))
	})

	// 9. Broken Endpoint Mock (Auth Error)
	mux.HandleFunc("/403-generator", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": "Forbidden"}`))
	})

	// 10. Context Cancellation Delay Mock
	mux.HandleFunc("/delay", func(w http.ResponseWriter, r *http.Request) {
		// Select blocks until the handler context is canceled
		<-r.Context().Done()
	})

	// 11. Malformed JSON Mock
	mux.HandleFunc("/v2/usercollection/tag", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data": [{"id": "tag-1"`))
	})

	return httptest.NewServer(mux)
}

func newMockClient(ts *httptest.Server, opts ...Option) *Client {
	defaultOpts := []Option{
		WithBaseURL(ts.URL),
		WithToken("test-token"),
		// Deterministic "today" for defaulted date ranges
		WithClock(func() time.Time { return testNow }),
	}
	defaultOpts = append(defaultOpts, opts...)
	return NewClient(defaultOpts...)
}
