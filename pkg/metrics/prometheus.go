// Package metrics provides Prometheus metrics for the cycling calculator
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default histogram buckets, in milliseconds.
var defaultLatencyBuckets = []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500}

// Bisection iteration buckets. The solver caps at 101 evaluations.
var defaultIterationBuckets = []float64{1, 5, 10, 20, 30, 40, 50, 75, 100}

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace      string
	latencyBuckets []float64
	enabled        bool
	registry       prometheus.Registerer

	// Sweep metrics
	sweepsComputed prometheus.Counter
	sweepsFailed   prometheus.Counter
	sweepDuration  prometheus.Histogram

	// Solver metrics
	solverIterations    prometheus.Histogram
	solverNonConverged  prometheus.Counter

	// Job metrics
	jobsSubmitted prometheus.Counter
	jobsDuplicate prometheus.Counter

	// Queue metrics
	queueSize        prometheus.Gauge
	queueCapacity    prometheus.Gauge
	queueUtilization prometheus.Gauge
	queueEnqueues    prometheus.Counter
	queueDrops       prometheus.Counter

	// Worker metrics
	workerCount   prometheus.Gauge
	workerLatency prometheus.Histogram
	workerErrors  prometheus.Counter

	// Result store metrics
	storeRecords   prometheus.Gauge
	storeEvictions prometheus.Counter

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System metrics
	systemMemoryBytes prometheus.Gauge
	systemGoroutines  prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers all metrics.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:      "cyclecalc",
		latencyBuckets: defaultLatencyBuckets,
		enabled:        true,
		registry:       prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}

	factory := promauto.With(m.registry)

	m.sweepsComputed = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "sweeps_computed_total",
		Help:      "Number of sweep series computed successfully.",
	})
	m.sweepsFailed = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "sweeps_failed_total",
		Help:      "Number of sweep computations that returned an error.",
	})
	m.sweepDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "sweep_duration_ms",
		Help:      "Wall time of one full sweep computation in milliseconds.",
		Buckets:   m.latencyBuckets,
	})

	m.solverIterations = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "solver_iterations",
		Help:      "Bisection refinements per velocity solve.",
		Buckets:   defaultIterationBuckets,
	})
	m.solverNonConverged = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "solver_nonconverged_total",
		Help:      "Velocity solves that hit the iteration cap without converging.",
	})

	m.jobsSubmitted = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "jobs_submitted_total",
		Help:      "Sweep jobs accepted for asynchronous computation.",
	})
	m.jobsDuplicate = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "jobs_duplicate_total",
		Help:      "Submissions collapsed onto an existing job by fingerprint.",
	})

	m.queueSize = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "queue_size",
		Help:      "Jobs currently waiting in the queue.",
	})
	m.queueCapacity = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "queue_capacity",
		Help:      "Maximum queue capacity.",
	})
	m.queueUtilization = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "queue_utilization",
		Help:      "Fraction of queue capacity in use.",
	})
	m.queueEnqueues = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "queue_enqueues_total",
		Help:      "Jobs successfully enqueued.",
	})
	m.queueDrops = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "queue_drops_total",
		Help:      "Jobs rejected because the queue was full or closed.",
	})

	m.workerCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "worker_count",
		Help:      "Number of sweep workers running.",
	})
	m.workerLatency = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "worker_processing_ms",
		Help:      "Per-job processing latency in milliseconds.",
		Buckets:   m.latencyBuckets,
	})
	m.workerErrors = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "worker_errors_total",
		Help:      "Jobs whose sweep computation failed.",
	})

	m.storeRecords = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "store_records",
		Help:      "Sweep results currently held in the store.",
	})
	m.storeEvictions = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "store_evictions_total",
		Help:      "Results evicted to make room for newer ones.",
	})

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method, and status.",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   m.latencyBuckets,
	}, []string{"endpoint", "method", "status"})

	m.systemMemoryBytes = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "system_memory_bytes",
		Help:      "Heap bytes currently allocated.",
	})
	m.systemGoroutines = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "system_goroutines",
		Help:      "Number of live goroutines.",
	})

	return m
}

// GetRegistry returns the registry backing the global manager, for serving
// via promhttp.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level recording helpers delegating to the global manager.

func RecordSweepComputed() {
	if globalManager.enabled {
		globalManager.sweepsComputed.Inc()
	}
}

func RecordSweepFailed() {
	if globalManager.enabled {
		globalManager.sweepsFailed.Inc()
	}
}

func RecordSweepDuration(ms float64) {
	if globalManager.enabled {
		globalManager.sweepDuration.Observe(ms)
	}
}

func RecordSolverIterations(n float64) {
	if globalManager.enabled {
		globalManager.solverIterations.Observe(n)
	}
}

func RecordSolverNonConvergence() {
	if globalManager.enabled {
		globalManager.solverNonConverged.Inc()
	}
}

func RecordJobSubmitted() {
	if globalManager.enabled {
		globalManager.jobsSubmitted.Inc()
	}
}

func RecordJobDuplicate() {
	if globalManager.enabled {
		globalManager.jobsDuplicate.Inc()
	}
}

func UpdateQueueSize(n int) {
	if globalManager.enabled {
		globalManager.queueSize.Set(float64(n))
	}
}

func UpdateQueueCapacity(n int) {
	if globalManager.enabled {
		globalManager.queueCapacity.Set(float64(n))
	}
}

func UpdateQueueUtilization(fraction float64) {
	if globalManager.enabled {
		globalManager.queueUtilization.Set(fraction)
	}
}

func RecordQueueEnqueue() {
	if globalManager.enabled {
		globalManager.queueEnqueues.Inc()
	}
}

func RecordQueueDrop() {
	if globalManager.enabled {
		globalManager.queueDrops.Inc()
	}
}

func UpdateWorkerCount(n int) {
	if globalManager.enabled {
		globalManager.workerCount.Set(float64(n))
	}
}

func RecordWorkerProcessingLatency(ms float64) {
	if globalManager.enabled {
		globalManager.workerLatency.Observe(ms)
	}
}

func RecordWorkerError() {
	if globalManager.enabled {
		globalManager.workerErrors.Inc()
	}
}

func UpdateStoreRecords(n int) {
	if globalManager.enabled {
		globalManager.storeRecords.Set(float64(n))
	}
}

func RecordStoreEviction() {
	if globalManager.enabled {
		globalManager.storeEvictions.Inc()
	}
}

func RecordHTTPRequest(endpoint, method, status string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
	}
}

func RecordHTTPRequestDuration(endpoint, method, status string, ms float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(ms)
	}
}

func UpdateSystemMemoryUsage(bytes uint64) {
	if globalManager.enabled {
		globalManager.systemMemoryBytes.Set(float64(bytes))
	}
}

func UpdateSystemGoroutineCount(n int) {
	if globalManager.enabled {
		globalManager.systemGoroutines.Set(float64(n))
	}
}
