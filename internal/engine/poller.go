package engine

import (
	"context"
	"math"
	"sync/atomic"
	"time"

	"github.com/dm/firewatch/internal/client"
	"github.com/dm/firewatch/internal/model"
)

// FetchObserver is notified after every fetch attempt.
type FetchObserver interface {
	ObserveFetch(elapsed time.Duration, err error)
}

// Fetcher issues live-data requests and converts responses into snapshots.
// Every call to Fetch takes the next sequence number, so a caller that
// receives responses out of order can tell which request is newer.
type Fetcher struct {
	client   client.LiveDataClient
	observer FetchObserver
	seq      atomic.Uint64
}

// NewFetcher returns a Fetcher reading from c.
func NewFetcher(c client.LiveDataClient) *Fetcher {
	return &Fetcher{client: c}
}

// WithObserver sets the observer notified after each fetch and returns f.
func (f *Fetcher) WithObserver(o FetchObserver) *Fetcher {
	f.observer = o
	return f
}

// BaseURL returns the server the fetcher polls.
func (f *Fetcher) BaseURL() string {
	if f.client == nil {
		return ""
	}
	return f.client.BaseURL()
}

// Fetch performs one GET /get_live_data. No retries: the caller's tick is
// the retry mechanism. Errors are *client.FetchError.
func (f *Fetcher) Fetch(ctx context.Context) (*model.Snapshot, error) {
	seq := f.seq.Add(1)
	start := time.Now()

	data, err := f.client.GetLiveData(ctx)
	if f.observer != nil {
		f.observer.ObserveFetch(time.Since(start), err)
	}
	if err != nil {
		return nil, err
	}
	return toSnapshot(data, seq, time.Now()), nil
}

// FetchTimeout returns the per-fetch deadline for a poll interval: half a
// second less than the interval, never below half a second.
func FetchTimeout(interval time.Duration) time.Duration {
	timeout := interval - 500*time.Millisecond
	if timeout < 500*time.Millisecond {
		timeout = 500 * time.Millisecond
	}
	return timeout
}

func toSnapshot(data *client.LiveData, seq uint64, fetchedAt time.Time) *model.Snapshot {
	rooms := make(map[string]model.RoomReading, len(data.Rooms))
	for id, rd := range data.Rooms {
		rooms[id] = toReading(rd)
	}
	return &model.Snapshot{
		Seq:                seq,
		FireAlertTriggered: data.FireAlertTriggered,
		Rooms:              rooms,
		FetchedAt:          fetchedAt,
	}
}

func toReading(rd client.RoomData) model.RoomReading {
	r := model.RoomReading{
		Status:             model.ParseRoomStatus(rd.Status),
		Details:            rd.Details,
		TemperatureCurrent: rd.TemperatureCurrent,
		SmokeCurrent:       rd.SmokeCurrent,
		PeopleCount:        rd.PeopleCount,
	}
	if rd.DetectionImageURL != nil {
		r.DetectionImageURL = *rd.DetectionImageURL
	}
	if rd.LastUpdateISO != nil && *rd.LastUpdateISO != "" {
		r.LastUpdateRaw = *rd.LastUpdateISO
		r.LastUpdate = parseISO(*rd.LastUpdateISO)
	}

	// Keep the three series aligned sample-for-sample.
	n := min(len(rd.Labels), len(rd.Temperatures), len(rd.SmokeValues))
	r.Labels = make([]string, n)
	copy(r.Labels, rd.Labels)
	r.Temperatures = samples(rd.Temperatures[:n])
	r.SmokeValues = samples(rd.SmokeValues[:n])
	return r
}

// samples converts nullable wire samples to floats, using NaN for gaps.
func samples(in []*float64) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		if v == nil {
			out[i] = math.NaN()
			continue
		}
		out[i] = *v
	}
	return out
}

// parseISO accepts RFC 3339 timestamps and the offset-less form Python's
// isoformat produces for naive datetimes (read as UTC).
func parseISO(s string) time.Time {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02T15:04:05.999999999", s); err == nil {
		return t.UTC()
	}
	return time.Time{}
}
