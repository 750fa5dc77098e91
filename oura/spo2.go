package oura

// DailySpo2 represents a daily blood oxygenation summary. Data is only
// available for Gen 3 rings; Spo2Percentage is null on days without
// enough samples.
type DailySpo2 struct {
	ID             string          `json:"id"`
	Day            string          `json:"day"`
	Spo2Percentage *Spo2Percentage `json:"spo2_percentage"`
}

// Spo2Percentage carries the daily SpO2 average.
type Spo2Percentage struct {
	Average float64 `json:"average"`
}
