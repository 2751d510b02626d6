// Package metrics holds the Prometheus instrumentation shared by handlers.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles all application metrics.
type Metrics struct {
	SearchTotal      *prometheus.CounterVec
	AnnotationWrites *prometheus.CounterVec
	BookmarkToggles  prometheus.Counter
	UploadOutcomes   *prometheus.CounterVec
	UploadDuration   prometheus.Histogram
}

var (
	global *Metrics
	mu     sync.Mutex
)

// New creates (or returns the already-registered) metrics set.
func New() *Metrics {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return global
	}

	m := &Metrics{
		SearchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "studyshare_searches_total",
			Help: "Total discovery feed queries, by sort key",
		}, []string{"sort"}),
		AnnotationWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "studyshare_annotation_writes_total",
			Help: "Total note/comment write operations, by kind and status",
		}, []string{"kind", "status"}),
		BookmarkToggles: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "studyshare_bookmark_toggles_total",
			Help: "Total bookmark toggle operations",
		}),
		UploadOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "studyshare_upload_outcomes_total",
			Help: "Terminal states of simulated uploads",
		}, []string{"outcome"}),
		UploadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "studyshare_upload_duration_seconds",
			Help:    "Wall-clock duration of simulated uploads",
			Buckets: prometheus.DefBuckets,
		}),
	}

	registerOrGet(m.SearchTotal)
	registerOrGet(m.AnnotationWrites)
	registerOrGet(m.BookmarkToggles)
	registerOrGet(m.UploadOutcomes)
	registerOrGet(m.UploadDuration)

	global = m
	return m
}

// registerOrGet tries to register a metric, keeping the existing one if already registered.
func registerOrGet(c prometheus.Collector) prometheus.Collector {
	if err := prometheus.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector
		}
	}
	return c
}
