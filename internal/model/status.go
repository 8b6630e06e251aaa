package model

// RoomStatus is the status the server reports for a single room.
type RoomStatus int

const (
	RoomUnknown      RoomStatus = iota // loading placeholder or unrecognised value
	RoomNormal
	RoomAlertFire
	RoomAlertMissing
	RoomStale
)

// ParseRoomStatus maps a wire status string to a RoomStatus.
// Unrecognised strings map to RoomUnknown.
func ParseRoomStatus(s string) RoomStatus {
	switch s {
	case "NORMAL":
		return RoomNormal
	case "ALERT_FIRE":
		return RoomAlertFire
	case "ALERT_MISSING":
		return RoomAlertMissing
	case "STALE":
		return RoomStale
	default:
		return RoomUnknown
	}
}

// String returns the wire form of the status.
func (s RoomStatus) String() string {
	switch s {
	case RoomNormal:
		return "NORMAL"
	case RoomAlertFire:
		return "ALERT_FIRE"
	case RoomAlertMissing:
		return "ALERT_MISSING"
	case RoomStale:
		return "STALE"
	default:
		return "UNKNOWN"
	}
}

// SystemStatus is the single status derived from all rooms.
type SystemStatus int

const (
	SystemUnknown SystemStatus = iota
	SystemNormal
	SystemAlertFire
	SystemAlertMissing
)

func (s SystemStatus) String() string {
	switch s {
	case SystemNormal:
		return "NORMAL"
	case SystemAlertFire:
		return "ALERT_FIRE"
	case SystemAlertMissing:
		return "ALERT_MISSING"
	default:
		return "UNKNOWN"
	}
}
