package metrics

import (
	"github.com/dm/firewatch/internal/engine"
	"github.com/dm/firewatch/internal/model"
)

// Sink forwards every call to next and keeps the status gauges current.
type Sink struct {
	next     engine.Sink
	m        *Metrics
	statuses map[string]model.RoomStatus
}

// NewSink wraps next.
func NewSink(next engine.Sink, m *Metrics) *Sink {
	return &Sink{
		next:     next,
		m:        m,
		statuses: make(map[string]model.RoomStatus),
	}
}

func (s *Sink) InitRoom(roomID string) {
	s.statuses[roomID] = model.RoomUnknown
	s.next.InitRoom(roomID)
}

func (s *Sink) UpdateRoom(v engine.RoomView) {
	s.statuses[v.RoomID] = v.Reading.Status
	s.next.UpdateRoom(v)
}

// SetOverallStatus is called once per cycle after all room updates, so the
// room gauges are refreshed here rather than per room.
func (s *Sink) SetOverallStatus(status model.SystemStatus) {
	s.m.setRoomCounts(s.statuses)
	s.m.setSystemStatus(status)
	s.next.SetOverallStatus(status)
}

func (s *Sink) ReportFetchError(err error) {
	s.m.FetchErrors.Inc()
	s.next.ReportFetchError(err)
}
