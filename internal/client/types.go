package client

// LiveData represents the response from /get_live_data.
type LiveData struct {
	FireAlertTriggered bool                `json:"fire_alert_triggered"`
	Rooms              map[string]RoomData `json:"rooms"`
}

// RoomData holds the current readings and recent history for one room.
// Pointer fields are nil when the server sends null or omits the key.
type RoomData struct {
	Status             string     `json:"status"`
	Details            string     `json:"details,omitempty"`
	TemperatureCurrent *float64   `json:"temperature_current"`
	SmokeCurrent       *float64   `json:"smoke_current"`
	PeopleCount        *int       `json:"people_count"`
	DetectionImageURL  *string    `json:"detection_image_url"`
	LastUpdateISO      *string    `json:"last_update_iso"`
	Labels             []string   `json:"labels"`
	Temperatures       []*float64 `json:"temperatures"`
	SmokeValues        []*float64 `json:"smokeValues"`
}
