package oura

import "time"

// Tag represents a tag the user entered in the Oura app.
//
// Deprecated by the API in favor of enhanced tags; the endpoint still
// responds for historical data.
type Tag struct {
	ID        string    `json:"id"`
	Day       string    `json:"day"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Tags      []string  `json:"tags"`
}

// EnhancedTag represents an enhanced tag: any lifestyle choice, habit, mood
// change, or environmental factor the user tracks, with start/end context
// and an optional comment.
type EnhancedTag struct {
	ID          string    `json:"id"`
	TagTypeCode string    `json:"tag_type_code"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	StartDay    string    `json:"start_day"`
	EndDay      string    `json:"end_day"`
	Comment     string    `json:"comment"`
}
