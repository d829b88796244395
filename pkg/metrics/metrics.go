// Package metrics holds the Prometheus collectors of the catalog service.
//
// Naming follows the Prometheus conventions:
//   - counters end in _total (books_created_total)
//   - histograms end in their unit (http_request_duration_seconds)
//   - gauges describe a current state (http_requests_in_progress)
//
// Label values must stay low-cardinality: the HTTP collectors are labelled
// with the route template (/api/books/:id), never the raw path.
//
// Usage:
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	metrics.IncCounter(metrics.BooksCreatedTotal)
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	initOnce sync.Once

	// HTTP

	// HTTPRequestsTotal labels: method, path, status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration labels: method, path
	HTTPRequestDuration *prometheus.HistogramVec

	HTTPRequestsInProgress prometheus.Gauge

	// Catalog

	BooksCreatedTotal   prometheus.Counter
	BooksUpdatedTotal   prometheus.Counter
	CoversUploadedTotal prometheus.Counter

	// CoverUploadBytes observes the size of stored cover files.
	CoverUploadBytes prometheus.Histogram

	// CatalogSeedsTotal counts reset-and-seed runs; CatalogSeedBooks is the size of the last one.
	CatalogSeedsTotal prometheus.Counter
	CatalogSeedBooks  prometheus.Gauge

	// Cache

	// CacheRequestsTotal labels: kind (book|categories), result (hit|miss|error)
	CacheRequestsTotal *prometheus.CounterVec

	// Events

	// EventsPublishedTotal labels: type, result (success|failure)
	EventsPublishedTotal *prometheus.CounterVec
)

// InitMetrics registers every collector with the default registry.
// Safe to call more than once.
func InitMetrics() {
	initOnce.Do(register)
}

func register() {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "HTTP requests currently being served.",
		},
	)

	BooksCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "books_created_total",
			Help: "Books created through the API.",
		},
	)

	BooksUpdatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "books_updated_total",
			Help: "Partial updates that wrote at least one field.",
		},
	)

	CoversUploadedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "covers_uploaded_total",
			Help: "Cover images stored.",
		},
	)

	CoverUploadBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cover_upload_bytes",
			Help:    "Size of stored cover images in bytes.",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
		},
	)

	CatalogSeedsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_seeds_total",
			Help: "Reset-and-seed runs.",
		},
	)

	CatalogSeedBooks = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_seed_books",
			Help: "Number of books inserted by the last reset-and-seed run.",
		},
	)

	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_requests_total",
			Help: "Cache lookups by kind and result.",
		},
		[]string{"kind", "result"},
	)

	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Catalog events handed to the broker.",
		},
		[]string{"type", "result"},
	)
}

// The helpers below are no-ops until InitMetrics has run, so packages can
// record metrics without caring whether the process exposes them.

// IncCounter increments a counter.
func IncCounter(counter prometheus.Counter) {
	if counter != nil {
		counter.Inc()
	}
}

// IncCounterVec increments the labelled child of a CounterVec.
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	if counter != nil {
		counter.With(labels).Inc()
	}
}

func IncGauge(gauge prometheus.Gauge) {
	if gauge != nil {
		gauge.Inc()
	}
}

func DecGauge(gauge prometheus.Gauge) {
	if gauge != nil {
		gauge.Dec()
	}
}

func SetGauge(gauge prometheus.Gauge, value float64) {
	if gauge != nil {
		gauge.Set(value)
	}
}

// ObserveHistogram records a value on a histogram.
func ObserveHistogram(histogram prometheus.Histogram, value float64) {
	if histogram != nil {
		histogram.Observe(value)
	}
}

// ObserveHistogramVec records a value on the labelled child of a HistogramVec.
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	if histogram != nil {
		histogram.With(labels).Observe(value)
	}
}
