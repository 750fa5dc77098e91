package oura

import "time"

// DailySleep represents a daily sleep summary score and its contributors.
type DailySleep struct {
	ID           string            `json:"id"`
	Contributors SleepContributors `json:"contributors"`
	Day          string            `json:"day"`
	Score        int               `json:"score"`
	Timestamp    time.Time         `json:"timestamp"`
}

// SleepContributors breaks a sleep score into its component scores.
type SleepContributors struct {
	DeepSleep   int `json:"deep_sleep"`
	Efficiency  int `json:"efficiency"`
	Latency     int `json:"latency"`
	RemSleep    int `json:"rem_sleep"`
	Restfulness int `json:"restfulness"`
	Timing      int `json:"timing"`
	TotalSleep  int `json:"total_sleep"`
}

// Sleep represents a single sleep period. A user can have multiple sleep
// periods per day. Durations are in seconds.
type Sleep struct {
	ID                  string      `json:"id"`
	AverageBreath       float64     `json:"average_breath"`
	AverageHeartRate    float64     `json:"average_heart_rate"`
	AverageHrv          int         `json:"average_hrv"`
	AwakeTime           int         `json:"awake_time"`
	BedtimeEnd          time.Time   `json:"bedtime_end"`
	BedtimeStart        time.Time   `json:"bedtime_start"`
	Day                 string      `json:"day"`
	DeepSleepDuration   int         `json:"deep_sleep_duration"`
	Efficiency          int         `json:"efficiency"`
	HeartRate           *TimeSeries `json:"heart_rate"`
	Hrv                 *TimeSeries `json:"hrv"`
	Latency             int         `json:"latency"`
	LightSleepDuration  int         `json:"light_sleep_duration"`
	LowBatteryAlert     bool        `json:"low_battery_alert"`
	LowestHeartRate     int         `json:"lowest_heart_rate"`
	Movement30Sec       string      `json:"movement_30_sec"`
	Period              int         `json:"period"`
	ReadinessScoreDelta float64     `json:"readiness_score_delta"`
	RemSleepDuration    int         `json:"rem_sleep_duration"`
	RestlessPeriods     int         `json:"restless_periods"`
	SleepPhase5Min      string      `json:"sleep_phase_5_min"`
	SleepScoreDelta     float64     `json:"sleep_score_delta"`
	TimeInBed           int         `json:"time_in_bed"`
	TotalSleepDuration  *int        `json:"total_sleep_duration"`
	Type                string      `json:"type"`
}

// SleepTime represents a recommended bedtime window for a single day.
type SleepTime struct {
	ID             string          `json:"id"`
	Day            string          `json:"day"`
	OptimalBedtime *OptimalBedtime `json:"optimal_bedtime"`
	Recommendation string          `json:"recommendation"`
	Status         string          `json:"status"`
}

// OptimalBedtime describes the recommended bedtime window as second offsets
// from midnight in the day's timezone.
type OptimalBedtime struct {
	DayTz       int `json:"day_tz"`
	EndOffset   int `json:"end_offset"`
	StartOffset int `json:"start_offset"`
}
