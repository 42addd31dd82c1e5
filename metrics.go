package etherscan

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector exposes Prometheus metrics for the request pipeline.
// Labels use the remote API's module/action vocabulary rather than URLs so
// cardinality stays bounded. Safe for concurrent use.
type MetricsCollector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	retriesTotal *prometheus.CounterVec

	cacheHits   *prometheus.CounterVec
	cacheMisses *prometheus.CounterVec
	cacheSize   prometheus.Gauge

	dedupHits *prometheus.CounterVec

	limiterWait      prometheus.Histogram
	limiterReservoir prometheus.Gauge

	errorsTotal *prometheus.CounterVec
}

// NewMetricsCollector creates a collector on the default registerer.
func NewMetricsCollector() *MetricsCollector {
	return NewMetricsCollectorWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsCollectorWithRegistry creates a collector using the supplied
// registerer (tests pass a fresh prometheus.NewRegistry).
func NewMetricsCollectorWithRegistry(registry prometheus.Registerer) *MetricsCollector {
	return &MetricsCollector{
		requestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "etherscan_requests_total",
				Help: "Total number of API requests made",
			},
			[]string{"module", "action", "status_code"},
		),
		requestDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "etherscan_request_duration_seconds",
				Help:    "Duration of API requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"module", "action"},
		),
		retriesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "etherscan_retries_total",
				Help: "Total number of retry attempts",
			},
			[]string{"module", "action"},
		),
		cacheHits: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "etherscan_cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"module", "action"},
		),
		cacheMisses: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "etherscan_cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"module", "action"},
		),
		cacheSize: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "etherscan_cache_size",
				Help: "Current number of cached entries",
			},
		),
		dedupHits: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "etherscan_deduplication_hits_total",
				Help: "Total number of requests coalesced onto an in-flight call",
			},
			[]string{"module", "action"},
		),
		limiterWait: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "etherscan_rate_limiter_wait_seconds",
				Help:    "Time spent waiting for rate limiter capacity",
				Buckets: prometheus.DefBuckets,
			},
		),
		limiterReservoir: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "etherscan_rate_limiter_reservoir",
				Help: "Remaining daily credit reservoir",
			},
		),
		errorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "etherscan_errors_total",
				Help: "Total number of errors by kind",
			},
			[]string{"kind", "module", "action"},
		),
	}
}

func (mc *MetricsCollector) recordRequest(module, action string, statusCode int, duration time.Duration) {
	if mc == nil {
		return
	}
	mc.requestsTotal.WithLabelValues(module, action, strconv.Itoa(statusCode)).Inc()
	mc.requestDuration.WithLabelValues(module, action).Observe(duration.Seconds())
}

func (mc *MetricsCollector) recordRetry(module, action string) {
	if mc == nil {
		return
	}
	mc.retriesTotal.WithLabelValues(module, action).Inc()
}

func (mc *MetricsCollector) recordCacheHit(module, action string) {
	if mc == nil {
		return
	}
	mc.cacheHits.WithLabelValues(module, action).Inc()
}

func (mc *MetricsCollector) recordCacheMiss(module, action string) {
	if mc == nil {
		return
	}
	mc.cacheMisses.WithLabelValues(module, action).Inc()
}

func (mc *MetricsCollector) recordCacheSize(n int) {
	if mc == nil {
		return
	}
	mc.cacheSize.Set(float64(n))
}

func (mc *MetricsCollector) recordDedupHit(module, action string) {
	if mc == nil {
		return
	}
	mc.dedupHits.WithLabelValues(module, action).Inc()
}

func (mc *MetricsCollector) recordLimiterWait(d time.Duration) {
	if mc == nil {
		return
	}
	mc.limiterWait.Observe(d.Seconds())
}

func (mc *MetricsCollector) recordReservoir(n int) {
	if mc == nil {
		return
	}
	mc.limiterReservoir.Set(float64(n))
}

func (mc *MetricsCollector) recordError(kind ErrorKind, module, action string) {
	if mc == nil {
		return
	}
	mc.errorsTotal.WithLabelValues(string(kind), module, action).Inc()
}
