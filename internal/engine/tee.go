package engine

import "github.com/dm/firewatch/internal/model"

type teeSink []Sink

// Tee returns a Sink that forwards every call to each of sinks in order.
// Nil entries are skipped.
func Tee(sinks ...Sink) Sink {
	var out teeSink
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	if len(out) == 1 {
		return out[0]
	}
	return out
}

func (t teeSink) InitRoom(roomID string) {
	for _, s := range t {
		s.InitRoom(roomID)
	}
}

func (t teeSink) UpdateRoom(v RoomView) {
	for _, s := range t {
		s.UpdateRoom(v)
	}
}

func (t teeSink) SetOverallStatus(status model.SystemStatus) {
	for _, s := range t {
		s.SetOverallStatus(status)
	}
}

func (t teeSink) ReportFetchError(err error) {
	for _, s := range t {
		s.ReportFetchError(err)
	}
}
