package oura

// DailyStress summarizes minutes spent in high stress and high recovery for
// one day. The two are mutually exclusive at any given moment.
type DailyStress struct {
	ID           string `json:"id"`
	Day          string `json:"day"`
	StressHigh   int    `json:"stress_high"`
	RecoveryHigh int    `json:"recovery_high"`
	DaySummary   string `json:"day_summary"`
}
