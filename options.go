package etherscan

import (
	"net/http"
	"time"

	"github.com/royphilip/etherscan-v2-sdk/internal/backoff"
)

// Option configures a Client at construction time.
type Option func(*Client)

// WithChain selects the routing identifier (chain id) for every canonical
// request. Defaults to Ethereum mainnet.
func WithChain(chainID int64) Option {
	return func(c *Client) {
		c.chainID = chainID
	}
}

// WithAPIURL overrides the canonical endpoint URL. Its host is added to
// the allowlist automatically.
func WithAPIURL(u string) Option {
	return func(c *Client) {
		c.apiURL = u
	}
}

// WithChainListURL overrides the static chain directory endpoint.
func WithChainListURL(u string) Option {
	return func(c *Client) {
		c.chainListURL = u
	}
}

// WithHTTPClient sets a custom HTTP client (custom transports, proxies,
// test TLS configs).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout bounds each network attempt; on expiry the attempt is
// aborted and retried as a transient failure.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithRetry sets the retry budget and the base backoff delay. A budget of
// n means at most 1+n attempts per request.
func WithRetry(maxRetries int, baseDelay time.Duration) Option {
	return func(c *Client) {
		c.maxRetries = maxRetries
		c.retryBaseDelay = baseDelay
	}
}

// WithMaxRetryDelay caps the computed backoff delay.
func WithMaxRetryDelay(d time.Duration) Option {
	return func(c *Client) {
		c.maxRetryDelay = d
	}
}

// WithExponentialBackoff switches retry delays from attempt-scaled to
// doubling.
func WithExponentialBackoff() Option {
	return func(c *Client) {
		c.backoff = backoff.Exponential{}
	}
}

// WithRateLimit configures the shared per-credential limiter: sustained
// requests per second, the daily credit quota (0 disables the reservoir)
// and its refill interval. The first client constructed for a credential
// fixes these; later clients share the existing limiter.
func WithRateLimit(rps float64, dailyQuota int, refillInterval time.Duration) Option {
	return func(c *Client) {
		c.rps = rps
		c.dailyQuota = dailyQuota
		c.refillInterval = refillInterval
	}
}

// WithLimiterRegistry injects an isolated limiter registry instead of the
// process-wide default. Mainly for tests.
func WithLimiterRegistry(r *LimiterRegistry) Option {
	return func(c *Client) {
		c.registry = r
	}
}

// WithCache configures and enables the validated-result cache. The Enabled
// field of cfg is ignored; use WithCacheDisabled to turn caching off.
func WithCache(cfg CacheConfig) Option {
	return func(c *Client) {
		cfg.Enabled = true
		c.cache = newResultCache(cfg)
	}
}

// WithCacheDisabled turns caching off entirely.
func WithCacheDisabled() Option {
	return func(c *Client) {
		cfg := DefaultCacheConfig()
		cfg.Enabled = false
		c.cache = newResultCache(cfg)
	}
}

// WithMaxResponseBytes bounds how large a response the client will read.
func WithMaxResponseBytes(n int64) Option {
	return func(c *Client) {
		c.maxBodyBytes = n
	}
}

// WithMetrics enables Prometheus metrics on the default registerer.
func WithMetrics() Option {
	return func(c *Client) {
		c.metrics = NewMetricsCollector()
	}
}

// WithMetricsCollector sets a custom metrics collector.
func WithMetricsCollector(mc *MetricsCollector) Option {
	return func(c *Client) {
		c.metrics = mc
	}
}

// WithLogger sets the structured logger for debug output.
func WithLogger(l Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithDebug enables debug logging and diagnostic detail on errors.
func WithDebug() Option {
	return func(c *Client) {
		if c.debug == nil {
			c.debug = DefaultDebugConfig()
		}
		c.debug.Enabled = true
	}
}

// WithDebugConfig sets a custom debug configuration.
func WithDebugConfig(cfg *DebugConfig) Option {
	return func(c *Client) {
		c.debug = cfg
	}
}

// WithRequestInterceptor registers a request interceptor at construction.
func WithRequestInterceptor(fn RequestInterceptor) Option {
	return func(c *Client) {
		c.interceptors.addRequest(fn)
	}
}

// WithResponseInterceptor registers a response interceptor at
// construction.
func WithResponseInterceptor(fn ResponseInterceptor) Option {
	return func(c *Client) {
		c.interceptors.addResponse(fn)
	}
}
