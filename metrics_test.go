package etherscan

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsCollectorCounters(t *testing.T) {
	mc := NewMetricsCollectorWithRegistry(prometheus.NewRegistry())

	mc.recordRequest("account", "balance", 200, 120*time.Millisecond)
	mc.recordRequest("account", "balance", 200, 80*time.Millisecond)
	mc.recordRetry("account", "balance")
	mc.recordCacheHit("account", "balance")
	mc.recordCacheMiss("account", "balance")
	mc.recordCacheSize(3)
	mc.recordDedupHit("account", "balance")
	mc.recordReservoir(99999)
	mc.recordError(ErrorKindRateLimit, "account", "balance")

	if got := testutil.ToFloat64(mc.requestsTotal.WithLabelValues("account", "balance", "200")); got != 2 {
		t.Errorf("requests_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(mc.retriesTotal.WithLabelValues("account", "balance")); got != 1 {
		t.Errorf("retries_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(mc.cacheHits.WithLabelValues("account", "balance")); got != 1 {
		t.Errorf("cache_hits_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(mc.cacheMisses.WithLabelValues("account", "balance")); got != 1 {
		t.Errorf("cache_misses_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(mc.cacheSize); got != 3 {
		t.Errorf("cache_size = %v, want 3", got)
	}
	if got := testutil.ToFloat64(mc.dedupHits.WithLabelValues("account", "balance")); got != 1 {
		t.Errorf("deduplication_hits_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(mc.limiterReservoir); got != 99999 {
		t.Errorf("rate_limiter_reservoir = %v, want 99999", got)
	}
	if got := testutil.ToFloat64(mc.errorsTotal.WithLabelValues("rate_limit", "account", "balance")); got != 1 {
		t.Errorf("errors_total = %v, want 1", got)
	}
}

func TestMetricsNilCollectorSafe(t *testing.T) {
	var mc *MetricsCollector
	mc.recordRequest("account", "balance", 200, time.Millisecond)
	mc.recordRetry("account", "balance")
	mc.recordCacheHit("account", "balance")
	mc.recordCacheMiss("account", "balance")
	mc.recordCacheSize(0)
	mc.recordDedupHit("account", "balance")
	mc.recordLimiterWait(time.Millisecond)
	mc.recordReservoir(0)
	mc.recordError(ErrorKindNetwork, "account", "balance")
}
