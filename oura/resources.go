package oura

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// filterMode selects which query parameter pair a resource is filtered on.
type filterMode int

const (
	// filterDate filters on start_date/end_date calendar days.
	filterDate filterMode = iota
	// filterDatetime filters on start_datetime/end_datetime instants.
	filterDatetime
	// filterNone takes no range parameters at all.
	filterNone
)

// resource describes one Oura user-collection endpoint: its path element,
// how its range filter is spelled, and whether individual documents can be
// fetched by ID.
type resource struct {
	name     string
	filter   filterMode
	document bool
}

// Every v2 user-collection endpoint the API exposes. Heart rate is the one
// datetime-filtered collection and has no per-document route; personal info
// is unfiltered and always a single record.
var (
	resourceDailyActivity     = resource{name: "daily_activity", filter: filterDate, document: true}
	resourceDailyReadiness    = resource{name: "daily_readiness", filter: filterDate, document: true}
	resourceDailySleep        = resource{name: "daily_sleep", filter: filterDate, document: true}
	resourceDailySpo2         = resource{name: "daily_spo2", filter: filterDate, document: true}
	resourceDailyStress       = resource{name: "daily_stress", filter: filterDate, document: true}
	resourceEnhancedTag       = resource{name: "enhanced_tag", filter: filterDate, document: true}
	resourceHeartRate         = resource{name: "heartrate", filter: filterDatetime}
	resourcePersonalInfo      = resource{name: "personal_info", filter: filterNone}
	resourceRestModePeriod    = resource{name: "rest_mode_period", filter: filterDate, document: true}
	resourceRingConfiguration = resource{name: "ring_configuration", filter: filterDate, document: true}
	resourceSession           = resource{name: "session", filter: filterDate, document: true}
	resourceSleep             = resource{name: "sleep", filter: filterDate, document: true}
	resourceSleepTime         = resource{name: "sleep_time", filter: filterDate, document: true}
	resourceTag               = resource{name: "tag", filter: filterDate, document: true}
	resourceWorkout           = resource{name: "workout", filter: filterDate, document: true}
)

// path returns the versioned URL path of the resource collection.
func (r resource) path() string {
	return "/" + apiVersion + "/usercollection/" + r.name
}

// query normalizes the caller's bounds into the parameter pair the
// resource's filter mode expects. A nil opts defaults both bounds.
func (r resource) query(opts *ListOptions, now func() time.Time) (url.Values, error) {
	params := url.Values{}
	if r.filter == filterNone {
		return params, nil
	}

	var start, end string
	if opts != nil {
		start, end = opts.Start, opts.End
	}

	switch r.filter {
	case filterDatetime:
		s, e, err := normalizeDatetimeRange(start, end, now)
		if err != nil {
			return nil, err
		}
		params.Set("start_datetime", s)
		params.Set("end_datetime", e)
	default:
		s, e, err := normalizeDateRange(start, end, now)
		if err != nil {
			return nil, err
		}
		params.Set("start_date", s)
		params.Set("end_date", e)
	}

	return params, nil
}

// Service exposes the two operations every collection resource shares. One
// generic implementation, driven by the resource table, replaces a method
// body per endpoint.
type Service[T any] struct {
	client *Client
	res    resource
}

func newService[T any](c *Client, res resource) *Service[T] {
	return &Service[T]{client: c, res: res}
}

// List fetches every record within the inclusive date range, following
// pagination until the API reports no further pages. A nil opts applies the
// default range: yesterday through today.
func (s *Service[T]) List(ctx context.Context, opts *ListOptions) ([]T, error) {
	params, err := s.res.query(opts, s.client.now)
	if err != nil {
		return nil, err
	}
	return fetchAll[T](ctx, s.client, s.res.path(), params)
}

// GetByID fetches a single document by its ID. Date bounds never apply to
// document lookups. Resources without a per-document route return
// ErrDocumentNotSupported without issuing a request.
func (s *Service[T]) GetByID(ctx context.Context, documentID string) (*T, error) {
	if !s.res.document {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotSupported, s.res.name)
	}

	var item T
	if err := s.client.get(ctx, s.res.path()+"/"+url.PathEscape(documentID), nil, &item); err != nil {
		return nil, err
	}

	return &item, nil
}
