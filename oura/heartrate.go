package oura

import "time"

// HeartRateSample is a single time-series heart rate reading. Readings are
// recorded at 5-minute increments throughout the day and night.
type HeartRateSample struct {
	Bpm       int       `json:"bpm"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
}
