package engine

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm/firewatch/internal/client"
	"github.com/dm/firewatch/internal/model"
)

func TestFetch_ConvertsLiveData(t *testing.T) {
	mc := &MockLiveDataClient{
		LiveDataFn: func(_ context.Context) (*client.LiveData, error) {
			return &client.LiveData{
				FireAlertTriggered: true,
				Rooms: map[string]client.RoomData{
					"R101": {
						Status:             "ALERT_FIRE",
						Details:            "FIRE! Smoke Detected",
						TemperatureCurrent: ptr(41.5),
						SmokeCurrent:       ptr(512.0),
						PeopleCount:        ptr(2),
						DetectionImageURL:  ptr("/img/R101.jpg"),
						LastUpdateISO:      ptr("2026-10-18T09:15:02.123456+00:00"),
						Labels:             []string{"09:15:00", "09:15:01"},
						Temperatures:       []*float64{ptr(30.0), nil},
						SmokeValues:        []*float64{ptr(100.0), ptr(512.0)},
					},
					"B001": {Status: "bogus"},
				},
			}, nil
		},
	}

	snap, err := NewFetcher(mc).Fetch(context.Background())
	require.NoError(t, err)
	require.NotNil(t, snap)

	assert.Equal(t, uint64(1), snap.Seq)
	assert.True(t, snap.FireAlertTriggered)
	assert.False(t, snap.FetchedAt.IsZero())
	require.Len(t, snap.Rooms, 2)

	r := snap.Rooms["R101"]
	assert.Equal(t, model.RoomAlertFire, r.Status)
	assert.Equal(t, "FIRE! Smoke Detected", r.Details)
	assert.Equal(t, 41.5, *r.TemperatureCurrent)
	assert.Equal(t, 2, *r.PeopleCount)
	assert.Equal(t, "/img/R101.jpg", r.DetectionImageURL)
	assert.True(t, time.Date(2026, 10, 18, 9, 15, 2, 123456000, time.UTC).Equal(r.LastUpdate), "LastUpdate = %v", r.LastUpdate)
	assert.Equal(t, []string{"09:15:00", "09:15:01"}, r.Labels)
	assert.Equal(t, 30.0, r.Temperatures[0])
	assert.True(t, math.IsNaN(r.Temperatures[1]), "null sample should be NaN")
	assert.Equal(t, []float64{100, 512}, r.SmokeValues)

	b := snap.Rooms["B001"]
	assert.Equal(t, model.RoomUnknown, b.Status)
	assert.Nil(t, b.TemperatureCurrent)
	assert.Empty(t, b.DetectionImageURL)
	assert.False(t, b.HasLastUpdate())
	assert.Empty(t, b.Labels)
}

func TestFetch_TruncatesMisalignedSeries(t *testing.T) {
	mc := &MockLiveDataClient{
		LiveDataFn: func(_ context.Context) (*client.LiveData, error) {
			return &client.LiveData{Rooms: map[string]client.RoomData{
				"X": {
					Labels:       []string{"a", "b", "c"},
					Temperatures: []*float64{ptr(1.0), ptr(2.0)},
					SmokeValues:  []*float64{ptr(1.0), ptr(2.0), ptr(3.0), ptr(4.0)},
				},
			}}, nil
		},
	}

	snap, err := NewFetcher(mc).Fetch(context.Background())
	require.NoError(t, err)
	r := snap.Rooms["X"]
	assert.Len(t, r.Labels, 2)
	assert.Len(t, r.Temperatures, 2)
	assert.Len(t, r.SmokeValues, 2)
}

func TestFetch_SequenceIncreases(t *testing.T) {
	f := NewFetcher(&MockLiveDataClient{})
	a, err := f.Fetch(context.Background())
	require.NoError(t, err)
	b, err := f.Fetch(context.Background())
	require.NoError(t, err)
	assert.Less(t, a.Seq, b.Seq)
}

func TestFetch_ErrorPassedThrough(t *testing.T) {
	fe := &client.FetchError{Kind: client.KindHTTPStatus, StatusCode: 500, Err: errMockFailure}
	mc := &MockLiveDataClient{
		LiveDataFn: func(_ context.Context) (*client.LiveData, error) { return nil, fe },
	}

	snap, err := NewFetcher(mc).Fetch(context.Background())
	assert.Nil(t, snap)
	var got *client.FetchError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, 500, got.StatusCode)
}

type observerFunc func(time.Duration, error)

func (f observerFunc) ObserveFetch(d time.Duration, err error) { f(d, err) }

func TestFetch_NotifiesObserver(t *testing.T) {
	var errs []error
	obs := observerFunc(func(_ time.Duration, err error) { errs = append(errs, err) })

	mc := &MockLiveDataClient{LiveDataFn: errOnce(errMockFailure, &client.LiveData{})}
	f := NewFetcher(mc).WithObserver(obs)

	_, _ = f.Fetch(context.Background())
	_, _ = f.Fetch(context.Background())

	require.Len(t, errs, 2)
	assert.Equal(t, errMockFailure, errs[0])
	assert.NoError(t, errs[1])
}

func TestParseISO(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2026-10-18T09:15:02Z", time.Date(2026, 10, 18, 9, 15, 2, 0, time.UTC)},
		{"2026-10-18T09:15:02.5+00:00", time.Date(2026, 10, 18, 9, 15, 2, 500000000, time.UTC)},
		{"2026-10-18T09:15:02.123456", time.Date(2026, 10, 18, 9, 15, 2, 123456000, time.UTC)},
		{"yesterday", time.Time{}},
	}
	for _, tc := range cases {
		got := parseISO(tc.in)
		assert.True(t, tc.want.Equal(got), "parseISO(%q) = %v, want %v", tc.in, got, tc.want)
	}
}

func TestFetchTimeout(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, FetchTimeout(2*time.Second))
	assert.Equal(t, 500*time.Millisecond, FetchTimeout(time.Second))
	assert.Equal(t, 500*time.Millisecond, FetchTimeout(100*time.Millisecond))
	assert.Equal(t, 9500*time.Millisecond, FetchTimeout(10*time.Second))
}

func TestPollOnce_SuccessAndFailure(t *testing.T) {
	mc := &MockLiveDataClient{LiveDataFn: errOnce(errMockFailure, &client.LiveData{
		Rooms: map[string]client.RoomData{"X": {Status: "NORMAL"}},
	})}
	sink := &recordingSink{}
	p := &Poller{Fetcher: NewFetcher(mc), Session: NewSession(), Sink: sink, Interval: 2 * time.Second}

	err := p.PollOnce(context.Background())
	assert.ErrorIs(t, err, errMockFailure)
	assert.Equal(t, []string{"Error", "Status(ALERT_MISSING)"}, sink.events)

	sink.reset()
	require.NoError(t, p.PollOnce(context.Background()))
	assert.Equal(t, []string{"Init(X)", "Update(X)", "Status(NORMAL)"}, sink.events)
	assert.NoError(t, p.Session.LastError())
}

func TestPollOnce_AppliesTimeout(t *testing.T) {
	var deadline time.Time
	mc := &MockLiveDataClient{LiveDataFn: func(ctx context.Context) (*client.LiveData, error) {
		deadline, _ = ctx.Deadline()
		return &client.LiveData{}, nil
	}}
	p := &Poller{Fetcher: NewFetcher(mc), Session: NewSession(), Sink: &recordingSink{}, Interval: 10 * time.Second, Timeout: 3 * time.Second}

	start := time.Now()
	require.NoError(t, p.PollOnce(context.Background()))
	require.False(t, deadline.IsZero())
	assert.WithinDuration(t, start.Add(3*time.Second), deadline, time.Second)
}

func TestPollOnce_CancelledContextNotReported(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mc := &MockLiveDataClient{LiveDataFn: func(ctx context.Context) (*client.LiveData, error) {
		return nil, &client.FetchError{Kind: client.KindNetwork, Err: ctx.Err()}
	}}
	sink := &recordingSink{}
	p := &Poller{Fetcher: NewFetcher(mc), Session: NewSession(), Sink: sink, Interval: time.Second}

	err := p.PollOnce(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, sink.events)
}

// syncSink guards a recordingSink so the test goroutine can read it while
// Run is writing from another goroutine.
type syncSink struct {
	mu sync.Mutex
	recordingSink
}

func (s *syncSink) InitRoom(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recordingSink.InitRoom(id)
}

func (s *syncSink) UpdateRoom(v RoomView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recordingSink.UpdateRoom(v)
}

func (s *syncSink) SetOverallStatus(st model.SystemStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recordingSink.SetOverallStatus(st)
}

func (s *syncSink) ReportFetchError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recordingSink.ReportFetchError(err)
}

func (s *syncSink) statuses() []model.SystemStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.SystemStatus(nil), s.status...)
}

func TestRun_SelfHealsAfterFailure(t *testing.T) {
	mc := &MockLiveDataClient{LiveDataFn: errOnce(errMockFailure, &client.LiveData{
		Rooms: map[string]client.RoomData{"X": {Status: "NORMAL"}},
	})}
	sink := &syncSink{}
	p := &Poller{Fetcher: NewFetcher(mc), Session: NewSession(), Sink: sink, Interval: 20 * time.Millisecond}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	require.Eventually(t, func() bool {
		st := sink.statuses()
		return len(st) >= 2 && st[len(st)-1] == model.SystemNormal
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	st := sink.statuses()
	assert.Equal(t, model.SystemAlertMissing, st[0], "first cycle failed")
	assert.GreaterOrEqual(t, mc.Calls(), 2)
}

func TestRun_RejectsNonPositiveInterval(t *testing.T) {
	p := &Poller{Fetcher: NewFetcher(&MockLiveDataClient{}), Session: NewSession(), Sink: &recordingSink{}}
	assert.Error(t, p.Run(context.Background()))
}
