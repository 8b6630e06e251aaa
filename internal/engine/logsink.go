package engine

import (
	"github.com/dm/firewatch/internal/client"
	"github.com/dm/firewatch/internal/logger"
	"github.com/dm/firewatch/internal/model"
)

// LogSink renders session commands as structured log lines. It only logs
// changes: new rooms, room status transitions, new detection images and
// overall status transitions. Every fetch error is logged.
type LogSink struct {
	log      *logger.Logger
	statuses map[string]model.RoomStatus
	overall  model.SystemStatus
	started  bool
}

// NewLogSink returns a LogSink writing to log.
func NewLogSink(log *logger.Logger) *LogSink {
	return &LogSink{
		log:      log,
		statuses: make(map[string]model.RoomStatus),
	}
}

func (s *LogSink) InitRoom(roomID string) {
	s.log.Infow("room_added", "room", roomID)
}

func (s *LogSink) UpdateRoom(v RoomView) {
	prev, seen := s.statuses[v.RoomID]
	s.statuses[v.RoomID] = v.Reading.Status

	if !seen || prev != v.Reading.Status {
		fields := []any{"room", v.RoomID, "status", v.Reading.Status.String()}
		if v.Reading.Details != "" {
			fields = append(fields, "details", v.Reading.Details)
		}
		switch v.Reading.Status {
		case model.RoomAlertFire:
			s.log.Errorw("room_status", fields...)
		case model.RoomAlertMissing, model.RoomStale:
			s.log.Warnw("room_status", fields...)
		default:
			s.log.Infow("room_status", fields...)
		}
	}

	if v.ImageReload {
		fields := []any{"room", v.RoomID, "url", v.ImageURL}
		if v.PeopleVisible {
			fields = append(fields, "people", v.PeopleCount)
		}
		s.log.Infow("detection_image", fields...)
	}
}

func (s *LogSink) SetOverallStatus(status model.SystemStatus) {
	if s.started && status == s.overall {
		return
	}
	s.started = true
	s.overall = status

	switch status {
	case model.SystemAlertFire:
		s.log.Errorw("system_status", "status", status.String())
	case model.SystemAlertMissing:
		s.log.Warnw("system_status", "status", status.String())
	default:
		s.log.Infow("system_status", "status", status.String())
	}
}

func (s *LogSink) ReportFetchError(err error) {
	kind := "unknown"
	if k, ok := client.KindOf(err); ok {
		kind = k.String()
	}
	s.log.Errorw("fetch_failed", "kind", kind, "err", err)
}
