package oura

import "time"

// DailyReadiness represents a daily readiness summary: how ready the user
// is for the day.
type DailyReadiness struct {
	ID                        string                `json:"id"`
	Contributors              ReadinessContributors `json:"contributors"`
	Day                       string                `json:"day"`
	Score                     int                   `json:"score"`
	TemperatureDeviation      float64               `json:"temperature_deviation"`
	TemperatureTrendDeviation float64               `json:"temperature_trend_deviation"`
	Timestamp                 time.Time             `json:"timestamp"`
}

// ReadinessContributors breaks a readiness score into its component scores.
// PreviousDayActivity is null when the ring has no data for that day.
type ReadinessContributors struct {
	ActivityBalance     int  `json:"activity_balance"`
	BodyTemperature     int  `json:"body_temperature"`
	HrvBalance          int  `json:"hrv_balance"`
	PreviousDayActivity *int `json:"previous_day_activity"`
	PreviousNight       int  `json:"previous_night"`
	RecoveryIndex       int  `json:"recovery_index"`
	RestingHeartRate    int  `json:"resting_heart_rate"`
	SleepBalance        int  `json:"sleep_balance"`
}
