// Package types contains common types used across the application
package types

// Point is one entry of a sweep series: the velocity, race duration, and
// training stress that one integer power value produces.
type Point struct {
	Power         int     `json:"power"`
	SpeedKmh      float64 `json:"speed_kmh"`
	DurationHours float64 `json:"duration_hours"`
	DurationText  string  `json:"duration_text"`
	TSS           float64 `json:"tss"`
}

// Zone is a relative-to-FTP training zone band in whole Watts.
type Zone struct {
	Name string `json:"name"`
	From int    `json:"from"`
	To   int    `json:"to"`
}
