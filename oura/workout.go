package oura

import "time"

// Workout represents a single recorded workout. Label is null unless the
// user annotated the workout in the app.
type Workout struct {
	ID            string    `json:"id"`
	Activity      string    `json:"activity"`
	Calories      float64   `json:"calories"`
	Day           string    `json:"day"`
	Distance      float64   `json:"distance"`
	EndDatetime   time.Time `json:"end_datetime"`
	Intensity     string    `json:"intensity"`
	Label         *string   `json:"label"`
	Source        string    `json:"source"`
	StartDatetime time.Time `json:"start_datetime"`
}
