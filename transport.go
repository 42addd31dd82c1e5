package etherscan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// endpoint identifies a remote URL and whether it is the canonical unified
// endpoint (which gets chainid and apikey injected) or a one-off static
// endpoint (which does not, but still flows through the same pipeline).
type endpoint struct {
	url       string
	canonical bool
}

// envelope is the remote wrapper around most responses. Proxy actions come
// back JSON-RPC shaped instead; both forms share this struct.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
	JSONRPC string          `json:"jsonrpc"`
	Error   *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// A status-failure with one of these exact messages is the remote's way of
// saying "valid query, zero rows" and is not an error.
var emptyResultMessages = map[string]struct{}{
	"No transactions found":          {},
	"No records found":               {},
	"No internal transactions found": {},
	"No token transfers found":       {},
	"No logs found":                  {},
	"No data found":                  {},
}

var upgradePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)upgrade.{0,60}plan`),
	regexp.MustCompile(`(?i)free.{0,60}not supported`),
}

// Transient failure classification matches error text by substring. This
// mirrors the classification the remote-facing stack actually produces and
// is not assumed exhaustive for every network stack.
var transientSignatures = []string{
	"connection reset",
	"connection refused",
	"no such host",
	"broken pipe",
	"unexpected EOF",
	"i/o timeout",
	"TLS handshake timeout",
}

type httpResult struct {
	status      int
	contentType string
	body        []byte
}

// call runs one request through the full pipeline: endpoint precondition,
// request interceptors, signature, cache, dedup, rate limiting, network
// with retry, envelope handling, schema validation, cache store, response
// interceptors. It is the only path to the network.
func call[T any](ctx context.Context, c *Client, ep endpoint, p Params, schema Schema[T]) (T, error) {
	var zero T
	if err := c.guard(); err != nil {
		return zero, err
	}
	if err := c.checkEndpoint(ep.url); err != nil {
		return zero, err
	}
	module, action := p["module"], p["action"]

	var requestID string
	if c.debugEnabled() && c.debug.RequestIDGen != nil {
		requestID = c.debug.RequestIDGen()
	}

	params := c.interceptors.applyRequest(p.clone())
	if ep.canonical {
		params["chainid"] = strconv.FormatInt(c.chainID, 10)
		params["apikey"] = c.apiKey.reveal()
	}
	sig := requestSignature(ep.url, params)

	if v, ok := c.cache.get(sig); ok {
		c.metrics.recordCacheHit(module, action)
		if c.debugEnabled() && c.debug.LogCache && c.logger != nil {
			c.logger.Debug("cache hit", "requestID", requestID, "module", module, "action", action)
		}
		return finishResult[T](c, v)
	}
	c.metrics.recordCacheMiss(module, action)

	start := time.Now()
	owner := false
	v, err := c.inflight.Do(ctx, sig, func() (interface{}, error) {
		owner = true
		res, err := c.fetch(ctx, params.values(), ep, requestID, module, action)
		if err != nil {
			return nil, err
		}
		c.metrics.recordRequest(module, action, res.status, time.Since(start))
		val, err := decodePayload(c, ep, res, schema)
		if err != nil {
			return nil, err
		}
		c.cache.set(sig, val, 0)
		c.metrics.recordCacheSize(c.cache.len())
		return val, nil
	})
	if !owner {
		c.metrics.recordDedupHit(module, action)
	}
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			c.metrics.recordError(apiErr.Kind, module, action)
		}
		return zero, err
	}
	return finishResult[T](c, v)
}

// finishResult applies response interceptors and re-types the value. Runs
// on every serve, cache hits included, so interceptors see each caller.
func finishResult[T any](c *Client, v interface{}) (T, error) {
	var zero T
	out := c.interceptors.applyResponse(v)
	t, ok := out.(T)
	if !ok {
		return zero, validationError("interceptor_result",
			fmt.Sprintf("response interceptor produced %T, want %T", out, zero))
	}
	return t, nil
}

func (c *Client) checkEndpoint(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return newError(ErrorKindEndpoint, "invalid_endpoint", 0, "endpoint URL is not parseable").withCause(err)
	}
	if u.Scheme != "https" {
		return newError(ErrorKindEndpoint, "insecure_protocol", 0,
			fmt.Sprintf("endpoint scheme %q rejected, only https is allowed", u.Scheme))
	}
	if _, ok := c.allowedHosts[u.Host]; !ok {
		return newError(ErrorKindEndpoint, "host_not_allowed", 0,
			fmt.Sprintf("endpoint host %q is not in the allowlist", u.Host))
	}
	return nil
}

// fetch performs the rate-limited network call with the retry loop. Only
// transport-level transient failures are retried; any typed error from an
// attempt (oversized response) and every post-network check is terminal.
func (c *Client) fetch(ctx context.Context, query url.Values, ep endpoint, requestID, module, action string) (*httpResult, error) {
	if c.limiter != nil {
		waitStart := time.Now()
		if err := c.limiter.Acquire(ctx); err != nil {
			return nil, newError(ErrorKindNetwork, "limiter_wait", 0,
				"request canceled while waiting for rate limiter capacity").withCause(err)
		}
		defer c.limiter.Release()
		waited := time.Since(waitStart)
		c.metrics.recordLimiterWait(waited)
		c.metrics.recordReservoir(c.limiter.remaining())
		if c.debugEnabled() && c.debug.LogRateLimit && c.logger != nil && waited > 50*time.Millisecond {
			c.logger.Debug("rate limiter delay", "requestID", requestID, "waited", waited)
		}
	}

	fullURL := ep.url
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}
	if c.debugEnabled() && c.debug.LogRequests && c.logger != nil {
		c.logger.Debug("dispatching request", "requestID", requestID, "module", module, "action", action)
	}

	for attempt := 0; ; attempt++ {
		res, err := c.attempt(ctx, fullURL)
		if err == nil {
			return res, nil
		}
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return nil, apiErr
		}
		if ctx.Err() != nil {
			return nil, newError(ErrorKindNetwork, "canceled", 0, "request canceled").withCause(ctx.Err())
		}
		if !isTransientNetError(err) || attempt >= c.maxRetries {
			code := "network_error"
			if isTimeoutError(err) {
				code = "timeout"
			}
			return nil, newError(ErrorKindNetwork, code, 0,
				fmt.Sprintf("network request failed after %d attempt(s)", attempt+1)).withCause(err)
		}
		c.metrics.recordRetry(module, action)
		delay := c.backoff.Delay(attempt+1, c.retryBaseDelay, c.maxRetryDelay)
		if c.debugEnabled() && c.debug.LogRetries && c.logger != nil {
			c.logger.Info("scheduling retry", "requestID", requestID, "attempt", attempt+1, "backoff", delay)
		}
		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil, newError(ErrorKindNetwork, "canceled", 0,
				"request canceled during retry backoff").withCause(ctx.Err())
		}
	}
}

// attempt performs one HTTP round trip bounded by the configured timeout
// and the response byte budget. The byte budget is enforced both from the
// declared length header and the actually-read body.
func (c *Client) attempt(parent context.Context, fullURL string) (*httpResult, error) {
	ctx, cancel := context.WithTimeout(parent, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json, text/csv;q=0.9, text/plain;q=0.8")
	req.Header.Set("User-Agent", UserAgent())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.ContentLength > c.maxBodyBytes {
		return nil, newError(ErrorKindResponseTooLarge, "response_too_large", resp.StatusCode,
			fmt.Sprintf("declared response length %d exceeds budget %d", resp.ContentLength, c.maxBodyBytes))
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > c.maxBodyBytes {
		return nil, newError(ErrorKindResponseTooLarge, "response_too_large", resp.StatusCode,
			fmt.Sprintf("response body exceeds budget %d", c.maxBodyBytes))
	}
	return &httpResult{
		status:      resp.StatusCode,
		contentType: resp.Header.Get("Content-Type"),
		body:        body,
	}, nil
}

// decodePayload applies the transport-level response checks and the
// envelope semantics, then hands the result payload to the schema.
func decodePayload[T any](c *Client, ep endpoint, res *httpResult, schema Schema[T]) (T, error) {
	var zero T
	if res.status < 200 || res.status >= 300 {
		return zero, newError(ErrorKindHTTP, "http_status", res.status,
			fmt.Sprintf("remote service returned HTTP %d", res.status)).
			withDetail(truncateDetail(string(res.body)), c.debugEnabled())
	}
	ctype := res.contentType
	if mt, _, err := mime.ParseMediaType(ctype); err == nil {
		ctype = mt
	}

	if schema.text {
		switch ctype {
		case "text/csv", "text/plain", "application/json", "application/octet-stream":
		default:
			return zero, newError(ErrorKindContentType, "invalid_content_type", res.status,
				fmt.Sprintf("unexpected content type %q for text payload", ctype))
		}
		return schema.decode(res.body)
	}

	if ctype != "application/json" {
		return zero, newError(ErrorKindContentType, "invalid_content_type", res.status,
			fmt.Sprintf("expected application/json, got %q", ctype))
	}

	if !ep.canonical {
		return schema.decode(res.body)
	}

	var env envelope
	if err := json.Unmarshal(res.body, &env); err != nil {
		return zero, validationError("malformed_envelope", "response envelope is not valid JSON").
			withCause(err).
			withDetail(truncateDetail(string(res.body)), c.debugEnabled())
	}

	if env.JSONRPC != "" {
		if env.Error != nil {
			return zero, newError(ErrorKindAPI, "rpc_error", res.status, sanitizeMessage(env.Error.Message)).
				withDetail(truncateDetail(string(res.body)), c.debugEnabled())
		}
		return schema.decode(env.Result)
	}

	if env.Status != "1" {
		resultText := envelopeResultText(env.Result)

		if _, ok := emptyResultMessages[env.Message]; ok {
			if v, accepts := schema.empty(); accepts {
				return v, nil
			}
			return schema.decode([]byte("null"))
		}

		combined := strings.TrimSpace(env.Message + " " + resultText)
		lower := strings.ToLower(combined)
		if strings.Contains(lower, "rate limit") {
			return zero, newError(ErrorKindRateLimit, "rate_limited", res.status, sanitizeMessage(combined))
		}
		for _, re := range upgradePatterns {
			if re.MatchString(combined) {
				return zero, newError(ErrorKindUpgradeRequired, "upgrade_required", res.status, sanitizeMessage(combined))
			}
		}
		return zero, newError(ErrorKindAPI, "api_error", res.status, sanitizeMessage(combined)).
			withDetail(truncateDetail(string(res.body)), c.debugEnabled())
	}

	return schema.decode(env.Result)
}

func envelopeResultText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

func isTransientNetError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	msg := err.Error()
	for _, sig := range transientSignatures {
		if strings.Contains(msg, sig) {
			return true
		}
	}
	return false
}

func isTimeoutError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

const maxDetailBytes = 2048

func truncateDetail(s string) string {
	if len(s) > maxDetailBytes {
		return s[:maxDetailBytes] + "..."
	}
	return s
}
