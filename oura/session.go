package oura

import "time"

// Session represents a guided or unguided session in the Oura app, with the
// user's biometric trends while it ran. The series and mood fields are null
// when the session recorded no biometrics.
type Session struct {
	ID                   string      `json:"id"`
	Day                  string      `json:"day"`
	StartDatetime        time.Time   `json:"start_datetime"`
	EndDatetime          time.Time   `json:"end_datetime"`
	Type                 string      `json:"type"`
	HeartRate            *TimeSeries `json:"heart_rate"`
	HeartRateVariability *TimeSeries `json:"heart_rate_variability"`
	Mood                 *string     `json:"mood"`
	MotionCount          *TimeSeries `json:"motion_count"`
}
