package oura

import "time"

// RingConfiguration describes the user's physical ring: model, color, size,
// and firmware. SetUpAt is null until the ring completes setup.
type RingConfiguration struct {
	ID              string     `json:"id"`
	Color           string     `json:"color"`
	Design          string     `json:"design"`
	FirmwareVersion string     `json:"firmware_version"`
	HardwareType    string     `json:"hardware_type"`
	SetUpAt         *time.Time `json:"set_up_at"`
	Size            int        `json:"size"`
}

// RestModePeriod represents one rest mode period with its episode history.
type RestModePeriod struct {
	ID        string            `json:"id"`
	EndDay    string            `json:"end_day"`
	EndTime   *time.Time        `json:"end_time"`
	Episodes  []RestModeEpisode `json:"episodes"`
	StartDay  string            `json:"start_day"`
	StartTime time.Time         `json:"start_time"`
}

// RestModeEpisode is a single tagged moment within a rest mode period.
type RestModeEpisode struct {
	Tags      []string  `json:"tags"`
	Timestamp time.Time `json:"timestamp"`
}
