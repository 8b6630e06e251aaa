package engine

import (
	"time"

	"github.com/dm/firewatch/internal/model"
)

// Sink receives render commands from a Session. The slices inside a
// RoomView are shared with the session and must be treated as read-only.
type Sink interface {
	InitRoom(roomID string)
	UpdateRoom(view RoomView)
	SetOverallStatus(status model.SystemStatus)
	ReportFetchError(err error)
}

// Session holds the render state that persists across poll cycles: the
// known rooms, the last rendered view of each room, the fire-alert flag of
// the latest applied snapshot and the last applied sequence number.
//
// Session is not safe for concurrent use. The driver that owns it must call
// Apply and Fail from a single goroutine.
type Session struct {
	known *KnownRooms
	views map[string]RoomView

	fireAlert bool
	lastSeq   uint64
	loaded    bool

	status      model.SystemStatus
	lastErr     error
	lastUpdated time.Time
	current     *model.Snapshot
}

// NewSession returns an empty session with status UNKNOWN.
func NewSession() *Session {
	return &Session{
		known: NewKnownRooms(),
		views: make(map[string]RoomView),
	}
}

// Apply folds snap into the session and pushes the resulting commands to
// sink. A snapshot whose sequence number is not newer than the last applied
// one is discarded and Apply returns false. Seq 0 marks an unsequenced
// snapshot, which is always applied.
func (s *Session) Apply(snap *model.Snapshot, sink Sink) bool {
	if snap.Seq != 0 {
		if snap.Seq <= s.lastSeq {
			return false
		}
		s.lastSeq = snap.Seq
	}

	s.fireAlert = snap.FireAlertTriggered
	s.loaded = true
	s.lastErr = nil
	s.lastUpdated = snap.FetchedAt
	s.current = snap

	for _, cmd := range Reconcile(s.known, snap) {
		switch cmd.Kind {
		case CommandInit:
			sink.InitRoom(cmd.RoomID)
		case CommandUpdate:
			v := DeriveView(s.views[cmd.RoomID], s.fireAlert, cmd.RoomID, cmd.Reading)
			s.views[cmd.RoomID] = v
			sink.UpdateRoom(v)
		}
	}

	s.status = Aggregate(snap.Rooms)
	sink.SetOverallStatus(s.status)
	return true
}

// Fail records a failed fetch. The error is reported to sink and the
// overall status is forced to ALERT_MISSING. Room state and the fire-alert
// flag are left as they were.
func (s *Session) Fail(err error, sink Sink) {
	s.lastErr = err
	s.status = model.SystemAlertMissing
	sink.ReportFetchError(err)
	sink.SetOverallStatus(s.status)
}

// Known returns the session's room set. Callers may read it but only
// Apply adds to it.
func (s *Session) Known() *KnownRooms { return s.known }

// View returns the last rendered view of a room.
func (s *Session) View(roomID string) (RoomView, bool) {
	v, ok := s.views[roomID]
	return v, ok
}

// FireAlert returns the fire-alert flag of the latest applied snapshot.
func (s *Session) FireAlert() bool { return s.fireAlert }

// Status returns the last overall status pushed to the sink.
func (s *Session) Status() model.SystemStatus { return s.status }

// LastError returns the error of the latest cycle, or nil after a success.
func (s *Session) LastError() error { return s.lastErr }

// LastUpdated returns the FetchedAt time of the latest applied snapshot.
func (s *Session) LastUpdated() time.Time { return s.lastUpdated }

// Loaded reports whether at least one snapshot has been applied.
func (s *Session) Loaded() bool { return s.loaded }

// Current returns the latest applied snapshot, or nil.
func (s *Session) Current() *model.Snapshot { return s.current }
