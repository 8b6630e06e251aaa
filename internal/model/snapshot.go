package model

import (
	"slices"
	"time"
)

// Snapshot holds the result of a single poll of /get_live_data.
// It is never mutated after construction.
type Snapshot struct {
	Seq                uint64 // monotonic per fetcher, assigned when the request is issued
	FireAlertTriggered bool
	Rooms              map[string]RoomReading
	FetchedAt          time.Time
}

// RoomIDs returns the snapshot's room identifiers in lexicographic order.
func (s *Snapshot) RoomIDs() []string {
	ids := make([]string, 0, len(s.Rooms))
	for id := range s.Rooms {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
