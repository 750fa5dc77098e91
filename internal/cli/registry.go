package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/arvarik/oura-go/oura"
)

// record is one fetched document flattened for display and archival.
// The typed API structs marshal to JSON and the fields used in table
// output are pulled back out, so one shape covers every resource.
type record struct {
	ID        string   `json:"id"`
	Day       string   `json:"day"`
	Timestamp string   `json:"timestamp"`
	Score     *float64 `json:"score"`
	Bpm       *int     `json:"bpm"`
	Source    string   `json:"source"`

	Body json.RawMessage `json:"-"`
}

// toRecord marshals an API record and extracts its display fields.
// Records without an id (heart rate samples) use their timestamp as
// the archive key.
func toRecord(v any) (record, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return record{}, fmt.Errorf("marshal record: %w", err)
	}
	var rec record
	if err := json.Unmarshal(body, &rec); err != nil {
		return record{}, fmt.Errorf("unmarshal record: %w", err)
	}
	rec.Body = body
	if rec.ID == "" {
		rec.ID = rec.Timestamp
	}
	return rec, nil
}

func toRecords[T any](items []T) ([]record, error) {
	recs := make([]record, 0, len(items))
	for _, item := range items {
		rec, err := toRecord(item)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// entry wires one API resource name to its typed service.
type entry struct {
	name     string
	filter   string // date, datetime, or none
	document bool
	list     func(ctx context.Context, c *oura.Client, opts *oura.ListOptions) ([]record, error)
	get      func(ctx context.Context, c *oura.Client, id string) (record, error)
}

// typed builds a registry entry around one Service field of the client.
func typed[T any](name, filter string, document bool, pick func(*oura.Client) *oura.Service[T]) entry {
	e := entry{name: name, filter: filter, document: document}
	e.list = func(ctx context.Context, c *oura.Client, opts *oura.ListOptions) ([]record, error) {
		items, err := pick(c).List(ctx, opts)
		if err != nil {
			return nil, err
		}
		return toRecords(items)
	}
	if document {
		e.get = func(ctx context.Context, c *oura.Client, id string) (record, error) {
			item, err := pick(c).GetByID(ctx, id)
			if err != nil {
				return record{}, err
			}
			return toRecord(item)
		}
	}
	return e
}

func personalInfoList(ctx context.Context, c *oura.Client, _ *oura.ListOptions) ([]record, error) {
	info, err := c.PersonalInfo.Get(ctx)
	if err != nil {
		return nil, err
	}
	rec, err := toRecord(info)
	if err != nil {
		return nil, err
	}
	return []record{rec}, nil
}

var registry = []entry{
	typed("daily_activity", "date", true, func(c *oura.Client) *oura.Service[oura.DailyActivity] { return c.DailyActivity }),
	typed("daily_readiness", "date", true, func(c *oura.Client) *oura.Service[oura.DailyReadiness] { return c.DailyReadiness }),
	typed("daily_sleep", "date", true, func(c *oura.Client) *oura.Service[oura.DailySleep] { return c.DailySleep }),
	typed("daily_spo2", "date", true, func(c *oura.Client) *oura.Service[oura.DailySpo2] { return c.DailySpo2 }),
	typed("daily_stress", "date", true, func(c *oura.Client) *oura.Service[oura.DailyStress] { return c.DailyStress }),
	typed("enhanced_tag", "date", true, func(c *oura.Client) *oura.Service[oura.EnhancedTag] { return c.EnhancedTag }),
	typed("heartrate", "datetime", false, func(c *oura.Client) *oura.Service[oura.HeartRateSample] { return c.HeartRate }),
	{name: "personal_info", filter: "none", list: personalInfoList},
	typed("rest_mode_period", "date", true, func(c *oura.Client) *oura.Service[oura.RestModePeriod] { return c.RestModePeriod }),
	typed("ring_configuration", "date", true, func(c *oura.Client) *oura.Service[oura.RingConfiguration] { return c.RingConfiguration }),
	typed("session", "date", true, func(c *oura.Client) *oura.Service[oura.Session] { return c.Session }),
	typed("sleep", "date", true, func(c *oura.Client) *oura.Service[oura.Sleep] { return c.Sleep }),
	typed("sleep_time", "date", true, func(c *oura.Client) *oura.Service[oura.SleepTime] { return c.SleepTime }),
	typed("tag", "date", true, func(c *oura.Client) *oura.Service[oura.Tag] { return c.Tag }),
	typed("workout", "date", true, func(c *oura.Client) *oura.Service[oura.Workout] { return c.Workout }),
}

// lookup finds a registry entry by resource name.
func lookup(name string) (entry, error) {
	for _, e := range registry {
		if e.name == name {
			return e, nil
		}
	}
	return entry{}, fmt.Errorf("unknown resource %q (run \"oura resources\" for the full list)", name)
}
