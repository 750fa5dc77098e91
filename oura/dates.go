package oura

import (
	"fmt"
	"time"
)

const (
	dateLayout     = "2006-01-02"
	datetimeLayout = "2006-01-02T15:04:05"
)

// datetimeLayouts are the accepted datetime input forms, tried in order from
// most to least specific. Offset-carrying layouts are flagged so canonical
// output can preserve the offset. Fractional seconds are accepted by
// time.Parse on any of these without a dedicated layout.
var datetimeLayouts = []struct {
	layout    string
	hasOffset bool
}{
	{time.RFC3339, true},
	{"2006-01-02 15:04:05Z07:00", true},
	{"2006-01-02T15:04Z07:00", true},
	{"2006-01-02 15:04Z07:00", true},
	{datetimeLayout, false},
	{"2006-01-02 15:04:05", false},
	{"2006-01-02T15:04", false},
	{"2006-01-02 15:04", false},
	{dateLayout, false},
}

// normalizeDateRange applies the defaulting and ordering rules shared by all
// date-filtered endpoints: an absent end becomes today, an absent start
// becomes the day before end, and start must not fall after end. Both values
// come back in canonical YYYY-MM-DD form, ready for query parameters.
//
// The now func supplies "today" so the defaults stay testable.
func normalizeDateRange(start, end string, now func() time.Time) (string, string, error) {
	var endDay time.Time
	if end == "" {
		y, m, d := now().Date()
		endDay = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	} else {
		t, err := time.Parse(dateLayout, end)
		if err != nil {
			return "", "", &RangeError{Start: start, End: end, Err: err}
		}
		endDay = t
	}

	var startDay time.Time
	if start == "" {
		// Calendar-day arithmetic, not 24 hour.
		startDay = endDay.AddDate(0, 0, -1)
	} else {
		t, err := time.Parse(dateLayout, start)
		if err != nil {
			return "", "", &RangeError{Start: start, End: end, Err: err}
		}
		startDay = t
	}

	if startDay.After(endDay) {
		return "", "", &RangeError{
			Start: startDay.Format(dateLayout),
			End:   endDay.Format(dateLayout),
		}
	}

	return startDay.Format(dateLayout), endDay.Format(dateLayout), nil
}

// datetimeValue pairs a parsed datetime with whether its source carried a
// UTC offset, which decides the canonical serialization.
type datetimeValue struct {
	t         time.Time
	hasOffset bool
}

// canonical serializes the value for a query parameter: RFC 3339 when the
// source carried an offset, a naive YYYY-MM-DDTHH:MM:SS otherwise.
func (v datetimeValue) canonical() string {
	if v.hasOffset {
		return v.t.Format(time.RFC3339)
	}
	return v.t.Format(datetimeLayout)
}

func parseDatetime(s string) (datetimeValue, error) {
	for _, l := range datetimeLayouts {
		if t, err := time.Parse(l.layout, s); err == nil {
			return datetimeValue{t: t, hasOffset: l.hasOffset}, nil
		}
	}
	return datetimeValue{}, fmt.Errorf("cannot parse %q as an ISO 8601 datetime", s)
}

// normalizeDatetimeRange is the datetime counterpart of normalizeDateRange,
// used by resources filtered on start_datetime/end_datetime. Inputs may be
// bare dates, naive datetimes, or datetimes with an offset; T and space
// separators are both accepted. An absent end defaults to the current local
// time (serialized with its offset), an absent start to 24 hours before end.
func normalizeDatetimeRange(start, end string, now func() time.Time) (string, string, error) {
	var endAt datetimeValue
	if end == "" {
		endAt = datetimeValue{t: now(), hasOffset: true}
	} else {
		v, err := parseDatetime(end)
		if err != nil {
			return "", "", &RangeError{Start: start, End: end, Datetime: true, Err: err}
		}
		endAt = v
	}

	var startAt datetimeValue
	if start == "" {
		startAt = datetimeValue{t: endAt.t.Add(-24 * time.Hour), hasOffset: endAt.hasOffset}
	} else {
		v, err := parseDatetime(start)
		if err != nil {
			return "", "", &RangeError{Start: start, End: end, Datetime: true, Err: err}
		}
		startAt = v
	}

	// Naive values parse as UTC, so mixed naive/offset pairs compare on
	// the UTC instant.
	if startAt.t.After(endAt.t) {
		return "", "", &RangeError{
			Start:    startAt.canonical(),
			End:      endAt.canonical(),
			Datetime: true,
		}
	}

	return startAt.canonical(), endAt.canonical(), nil
}
