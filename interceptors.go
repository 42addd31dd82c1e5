package etherscan

import "sync"

// RequestInterceptor transforms request parameters before the cache/dedup
// signature and the outbound URL are built. Adding or changing a parameter
// therefore changes cache identity, which is intended: it lets callers
// partition the cache by injected context.
type RequestInterceptor func(Params) Params

// ResponseInterceptor transforms the validated result on every call path,
// including cache hits. It must be a pure, idempotent function of its
// input because it is reapplied each time a cached value is served.
type ResponseInterceptor func(interface{}) interface{}

// interceptorChain holds the two ordered transformer sequences. Guarded by
// an RWMutex so registration is safe while requests are in flight.
type interceptorChain struct {
	mu       sync.RWMutex
	request  []RequestInterceptor
	response []ResponseInterceptor
}

func newInterceptorChain() *interceptorChain {
	return &interceptorChain{}
}

func (ic *interceptorChain) addRequest(fn RequestInterceptor) {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	ic.request = append(ic.request, fn)
}

func (ic *interceptorChain) addResponse(fn ResponseInterceptor) {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	ic.response = append(ic.response, fn)
}

// applyRequest runs request interceptors in registration order, each
// receiving the previous one's output.
func (ic *interceptorChain) applyRequest(p Params) Params {
	ic.mu.RLock()
	defer ic.mu.RUnlock()
	for _, fn := range ic.request {
		p = fn(p)
	}
	return p
}

func (ic *interceptorChain) applyResponse(v interface{}) interface{} {
	ic.mu.RLock()
	defer ic.mu.RUnlock()
	for _, fn := range ic.response {
		v = fn(v)
	}
	return v
}

func (ic *interceptorChain) clear() {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	ic.request = nil
	ic.response = nil
}
