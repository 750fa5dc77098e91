package oura

import (
	"context"
	"fmt"
	"net/url"
)

// ListOptions specifies the optional date bounds accepted by List methods.
type ListOptions struct {
	// Start is the earliest day of data to fetch (inclusive), in ISO 8601
	// YYYY-MM-DD form. Datetime-filtered resources (heart rate) also accept
	// a full datetime with optional offset. Empty means one day before End.
	Start string

	// End is the latest day of data to fetch (inclusive), same forms as
	// Start. Empty means today.
	End string
}

// page represents the raw JSON envelope wrapping an Oura collection array.
// A null or absent next_token decodes to the empty string, marking the
// final page.
type page[T any] struct {
	Data      []T    `json:"data"`
	NextToken string `json:"next_token"`
}

// fetchAll walks a paginated collection, carrying next_token forward until
// the API stops returning one, and flattens every page's data array into a
// single slice. Any failure aborts the walk; the partial accumulation is
// never returned.
func fetchAll[T any](ctx context.Context, c *Client, path string, params url.Values) ([]T, error) {
	var records []T
	for pages := 1; ; pages++ {
		var p page[T]
		if err := c.get(ctx, path, params, &p); err != nil {
			return nil, err
		}

		records = append(records, p.Data...)

		if p.NextToken == "" {
			return records, nil
		}
		if c.pageLimit > 0 && pages >= c.pageLimit {
			return nil, fmt.Errorf("%w: %d pages fetched from %s", ErrTooManyPages, pages, path)
		}

		params.Set("next_token", p.NextToken)
	}
}
