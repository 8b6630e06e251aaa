package engine

import (
	"context"
	"errors"
	"sync"

	"github.com/dm/firewatch/internal/client"
	"github.com/dm/firewatch/internal/model"
)

// MockLiveDataClient implements client.LiveDataClient for testing.
type MockLiveDataClient struct {
	LiveDataFn func(ctx context.Context) (*client.LiveData, error)

	mu    sync.Mutex
	calls int
}

func (m *MockLiveDataClient) GetLiveData(ctx context.Context) (*client.LiveData, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.LiveDataFn != nil {
		return m.LiveDataFn(ctx)
	}
	return &client.LiveData{Rooms: map[string]client.RoomData{
		"R101": {Status: "NORMAL"},
	}}, nil
}

func (m *MockLiveDataClient) Ping(ctx context.Context) error {
	return nil
}

func (m *MockLiveDataClient) BaseURL() string {
	return "http://mock:5000"
}

// Calls returns how many times GetLiveData has been called.
func (m *MockLiveDataClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// errOnce returns a LiveDataFn that fails with err on the first call and
// returns data afterwards. Useful for simulating transient errors.
func errOnce(err error, data *client.LiveData) func(ctx context.Context) (*client.LiveData, error) {
	var (
		mu     sync.Mutex
		called bool
	)
	return func(_ context.Context) (*client.LiveData, error) {
		mu.Lock()
		defer mu.Unlock()
		if !called {
			called = true
			return nil, err
		}
		return data, nil
	}
}

var errMockFailure = errors.New("mock failure")

// recordingSink captures every sink call as a string, in call order.
type recordingSink struct {
	events []string
	views  []RoomView
	status []model.SystemStatus
	errs   []error
}

func (s *recordingSink) InitRoom(roomID string) {
	s.events = append(s.events, "Init("+roomID+")")
}

func (s *recordingSink) UpdateRoom(v RoomView) {
	s.events = append(s.events, "Update("+v.RoomID+")")
	s.views = append(s.views, v)
}

func (s *recordingSink) SetOverallStatus(status model.SystemStatus) {
	s.events = append(s.events, "Status("+status.String()+")")
	s.status = append(s.status, status)
}

func (s *recordingSink) ReportFetchError(err error) {
	s.events = append(s.events, "Error")
	s.errs = append(s.errs, err)
}

func (s *recordingSink) reset() {
	*s = recordingSink{}
}

func ptr[T any](v T) *T { return &v }

func reading(status model.RoomStatus) model.RoomReading {
	return model.RoomReading{Status: status}
}

func snapshotOf(seq uint64, fire bool, rooms map[string]model.RoomReading) *model.Snapshot {
	return &model.Snapshot{Seq: seq, FireAlertTriggered: fire, Rooms: rooms}
}
