package etherscan

import (
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/royphilip/etherscan-v2-sdk/internal/backoff"
	"github.com/royphilip/etherscan-v2-sdk/internal/singleflight"
)

// Client is a typed Etherscan V2 client. One instance is safe for
// concurrent use; the cache and deduplication registry are private to it,
// while the rate limiter is shared with every other client constructed
// with the same API key.
type Client struct {
	httpClient *http.Client
	apiKey     credential
	credHash   string
	chainID    int64

	apiURL       string
	chainListURL string
	allowedHosts map[string]struct{}

	timeout        time.Duration
	maxRetries     int
	retryBaseDelay time.Duration
	maxRetryDelay  time.Duration
	backoff        backoff.Strategy
	maxBodyBytes   int64

	rps            float64
	dailyQuota     int
	refillInterval time.Duration
	registry       *LimiterRegistry
	limiter        *creditLimiter

	cache        *resultCache
	inflight     *singleflight.Group
	interceptors *interceptorChain

	metrics *MetricsCollector
	debug   *DebugConfig
	logger  Logger

	closed atomic.Bool

	Accounts     *AccountsService
	Blocks       *BlocksService
	Contracts    *ContractsService
	Transactions *TransactionsService
	Tokens       *TokensService
	Logs         *LogsService
	Proxy        *ProxyService
	Stats        *StatsService
	GasTracker   *GasTrackerService
	Nametags     *NametagsService
	L2           *L2Service
	Usage        *UsageService
}

// New constructs a Client for the given API key, applying functional
// options over the defaults (Ethereum mainnet, 5 rps, 100k daily credits,
// 256-entry cache with 10s TTL).
func New(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, validationError("missing_api_key", "an API key is required")
	}

	c := &Client{
		httpClient:     &http.Client{},
		apiKey:         newCredential(apiKey),
		chainID:        ChainEthereum,
		apiURL:         defaultAPIURL,
		chainListURL:   defaultChainListURL,
		allowedHosts:   make(map[string]struct{}),
		timeout:        30 * time.Second,
		maxRetries:     3,
		retryBaseDelay: 250 * time.Millisecond,
		maxRetryDelay:  10 * time.Second,
		backoff:        backoff.AttemptScaled{},
		maxBodyBytes:   10 << 20,
		rps:            5,
		dailyQuota:     100000,
		refillInterval: 24 * time.Hour,
		registry:       defaultLimiterRegistry,
		cache:          newResultCache(DefaultCacheConfig()),
		inflight:       singleflight.New(),
		interceptors:   newInterceptorChain(),
		debug:          DefaultDebugConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.validateConfig(); err != nil {
		return nil, err
	}
	for _, raw := range []string{c.apiURL, c.chainListURL} {
		u, _ := url.Parse(raw)
		c.allowedHosts[u.Host] = struct{}{}
	}

	c.credHash = credentialHash(apiKey)
	c.limiter = c.registry.acquire(c.credHash, c.rps, c.dailyQuota, c.refillInterval)

	c.Accounts = &AccountsService{client: c}
	c.Blocks = &BlocksService{client: c}
	c.Contracts = &ContractsService{client: c}
	c.Transactions = &TransactionsService{client: c}
	c.Tokens = &TokensService{client: c}
	c.Logs = &LogsService{client: c}
	c.Proxy = &ProxyService{client: c}
	c.Stats = &StatsService{client: c}
	c.GasTracker = &GasTrackerService{client: c}
	c.Nametags = &NametagsService{client: c}
	c.L2 = &L2Service{client: c}
	c.Usage = &UsageService{client: c}

	return c, nil
}

func (c *Client) validateConfig() error {
	if c.chainID <= 0 {
		return validationError("invalid_chain", "chain id must be positive")
	}
	if c.maxRetries < 0 {
		return validationError("invalid_retries", "max retries must be non-negative")
	}
	if c.timeout <= 0 {
		return validationError("invalid_timeout", "timeout must be positive")
	}
	if c.rps <= 0 {
		return validationError("invalid_rate", "requests per second must be positive")
	}
	if c.maxBodyBytes <= 0 {
		return validationError("invalid_body_budget", "response byte budget must be positive")
	}
	for _, raw := range []string{c.apiURL, c.chainListURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme != "https" || u.Host == "" {
			return validationError("invalid_endpoint", "endpoint URLs must be absolute https URLs")
		}
	}
	return nil
}

// guard is the fail-fast disposal check at the boundary of every public
// method.
func (c *Client) guard() error {
	if c.closed.Load() {
		return ErrClosed
	}
	return nil
}

func (c *Client) debugEnabled() bool {
	return c.debug != nil && c.debug.Enabled
}

// ChainID returns the configured routing identifier.
func (c *Client) ChainID() int64 {
	return c.chainID
}

// Close releases this client's reference on the shared rate limiter
// (tearing it down only if no other client holds the same credential),
// clears the private cache and deduplication registry, and makes every
// further call on the client fail with ErrClosed. Idempotent.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	c.registry.release(c.credHash)
	c.cache.clear()
	c.inflight.Clear()
	c.interceptors.clear()
	return nil
}

// CacheStats reports the current cache size and configuration.
func (c *Client) CacheStats() (CacheStats, error) {
	if err := c.guard(); err != nil {
		return CacheStats{}, err
	}
	return c.cache.stats(), nil
}

// UpdateCacheConfig applies a new cache configuration. Shrinking MaxSize
// evicts immediately; disabling empties the cache.
func (c *Client) UpdateCacheConfig(cfg CacheConfig) error {
	if err := c.guard(); err != nil {
		return err
	}
	c.cache.updateConfig(cfg)
	return nil
}

// ClearCache drops all cached results.
func (c *Client) ClearCache() error {
	if err := c.guard(); err != nil {
		return err
	}
	c.cache.clear()
	return nil
}

// AddRequestInterceptor appends a request-param transformer. It runs
// before the cache/dedup signature is computed, so interceptors that
// change parameters partition the cache.
func (c *Client) AddRequestInterceptor(fn RequestInterceptor) error {
	if err := c.guard(); err != nil {
		return err
	}
	c.interceptors.addRequest(fn)
	return nil
}

// AddResponseInterceptor appends a response-value transformer. It runs on
// every serve, cache hits included, and must therefore be idempotent.
func (c *Client) AddResponseInterceptor(fn ResponseInterceptor) error {
	if err := c.guard(); err != nil {
		return err
	}
	c.interceptors.addResponse(fn)
	return nil
}

// ClearInterceptors removes all registered interceptors.
func (c *Client) ClearInterceptors() error {
	if err := c.guard(); err != nil {
		return err
	}
	c.interceptors.clear()
	return nil
}

func (c *Client) canonicalEndpoint() endpoint {
	return endpoint{url: c.apiURL, canonical: true}
}

func (c *Client) chainListEndpoint() endpoint {
	return endpoint{url: c.chainListURL}
}
