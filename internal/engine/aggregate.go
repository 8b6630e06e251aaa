package engine

import "github.com/dm/firewatch/internal/model"

// Aggregate derives the system status from per-room statuses. Rules, first
// match wins:
//
//	no rooms                     → UNKNOWN
//	any ALERT_FIRE               → ALERT_FIRE
//	any ALERT_MISSING or STALE   → ALERT_MISSING
//	otherwise                    → NORMAL
func Aggregate(rooms map[string]model.RoomReading) model.SystemStatus {
	if len(rooms) == 0 {
		return model.SystemUnknown
	}

	missing := false
	for _, r := range rooms {
		switch r.Status {
		case model.RoomAlertFire:
			return model.SystemAlertFire
		case model.RoomAlertMissing, model.RoomStale:
			missing = true
		}
	}
	if missing {
		return model.SystemAlertMissing
	}
	return model.SystemNormal
}

// CountStatuses returns how many rooms are in each status.
func CountStatuses(rooms map[string]model.RoomReading) map[model.RoomStatus]int {
	counts := make(map[model.RoomStatus]int)
	for _, r := range rooms {
		counts[r.Status]++
	}
	return counts
}
