package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dm/firewatch/internal/client"
	"github.com/dm/firewatch/internal/model"
)

const (
	metricPrefix = "firewatch_"

	resultSuccess = "success"
)

var roomStatuses = []model.RoomStatus{
	model.RoomUnknown,
	model.RoomNormal,
	model.RoomAlertFire,
	model.RoomAlertMissing,
	model.RoomStale,
}

var systemStatuses = []model.SystemStatus{
	model.SystemUnknown,
	model.SystemNormal,
	model.SystemAlertFire,
	model.SystemAlertMissing,
}

// Metrics bundles the dashboard's poll and status metrics.
type Metrics struct {
	FetchTotal    *prometheus.CounterVec
	FetchDuration prometheus.Histogram
	RoomsKnown    prometheus.Gauge
	RoomsByStatus *prometheus.GaugeVec
	SystemStatus  *prometheus.GaugeVec
	FetchErrors   prometheus.Counter
}

// New constructs the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		FetchTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "fetch_total",
				Help: "Live-data fetches by result (success, network, http_status, parse)",
			},
			[]string{"result"},
		),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    metricPrefix + "fetch_duration_seconds",
			Help:    "Live-data fetch latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		RoomsKnown: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: metricPrefix + "rooms_known",
			Help: "Rooms seen since start",
		}),
		RoomsByStatus: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: metricPrefix + "rooms",
				Help: "Rooms by last reported status",
			},
			[]string{"status"},
		),
		SystemStatus: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: metricPrefix + "system_status",
				Help: "1 for the current overall status, 0 otherwise",
			},
			[]string{"status"},
		),
		FetchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricPrefix + "fetch_errors_reported_total",
			Help: "Fetch errors surfaced to the dashboard",
		}),
	}
	reg.MustRegister(
		m.FetchTotal,
		m.FetchDuration,
		m.RoomsKnown,
		m.RoomsByStatus,
		m.SystemStatus,
		m.FetchErrors,
	)
	for _, s := range roomStatuses {
		m.RoomsByStatus.WithLabelValues(s.String()).Set(0)
	}
	for _, s := range systemStatuses {
		m.SystemStatus.WithLabelValues(s.String()).Set(0)
	}
	m.SystemStatus.WithLabelValues(model.SystemUnknown.String()).Set(1)
	return m
}

// ObserveFetch records one fetch attempt. It satisfies engine.FetchObserver.
func (m *Metrics) ObserveFetch(elapsed time.Duration, err error) {
	m.FetchDuration.Observe(elapsed.Seconds())
	result := resultSuccess
	if err != nil {
		result = client.KindNetwork.String()
		if k, ok := client.KindOf(err); ok {
			result = k.String()
		}
	}
	m.FetchTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) setSystemStatus(status model.SystemStatus) {
	for _, s := range systemStatuses {
		v := 0.0
		if s == status {
			v = 1
		}
		m.SystemStatus.WithLabelValues(s.String()).Set(v)
	}
}

func (m *Metrics) setRoomCounts(statuses map[string]model.RoomStatus) {
	counts := make(map[model.RoomStatus]int, len(roomStatuses))
	for _, s := range statuses {
		counts[s]++
	}
	for _, s := range roomStatuses {
		m.RoomsByStatus.WithLabelValues(s.String()).Set(float64(counts[s]))
	}
	m.RoomsKnown.Set(float64(len(statuses)))
}
