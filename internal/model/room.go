package model

import "time"

// RoomReading holds the latest values and recent history for one room.
// Labels, Temperatures and SmokeValues always have equal length; index i in
// each refers to the same sample. Missing samples are NaN.
type RoomReading struct {
	Status             RoomStatus
	Details            string
	TemperatureCurrent *float64 // °C
	SmokeCurrent       *float64 // raw sensor value
	PeopleCount        *int     // -1 from the server means "not counted yet"
	DetectionImageURL  string
	LastUpdate         time.Time // zero when absent or unparseable
	LastUpdateRaw      string    // as received, kept for display when unparseable
	Labels             []string
	Temperatures       []float64
	SmokeValues        []float64
}

// HasLastUpdate reports whether the server sent a last-update timestamp.
func (r RoomReading) HasLastUpdate() bool {
	return r.LastUpdateRaw != ""
}
