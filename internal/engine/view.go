package engine

import "github.com/dm/firewatch/internal/model"

// RoomView is the render state of one room after an update.
type RoomView struct {
	RoomID  string
	Reading model.RoomReading

	PeopleVisible bool
	PeopleCount   int

	ImageVisible bool
	ImageURL     string // currently displayed source; kept while hidden
	ImageReload  bool   // ImageURL changed on this update
}

// DeriveView computes the display values for reading given the previously
// rendered view of the same room and the session's fire-alert flag.
//
// The people count is shown only during a fire alert and only for counts
// >= 0. The detection image is shown only during a fire alert with a
// non-empty URL, and its source is replaced only when the URL differs from
// the one already displayed.
func DeriveView(prev RoomView, fireAlert bool, roomID string, reading model.RoomReading) RoomView {
	v := RoomView{
		RoomID:   roomID,
		Reading:  reading,
		ImageURL: prev.ImageURL,
	}

	if fireAlert && reading.PeopleCount != nil && *reading.PeopleCount >= 0 {
		v.PeopleVisible = true
		v.PeopleCount = *reading.PeopleCount
	}

	if fireAlert && reading.DetectionImageURL != "" {
		v.ImageVisible = true
		if reading.DetectionImageURL != prev.ImageURL {
			v.ImageURL = reading.DetectionImageURL
			v.ImageReload = true
		}
	}
	return v
}
