package etherscan

import "testing"

func TestInterceptorChainRequestOrder(t *testing.T) {
	ic := newInterceptorChain()
	ic.addRequest(func(p Params) Params {
		p["trace"] = p["trace"] + "a"
		return p
	})
	ic.addRequest(func(p Params) Params {
		p["trace"] = p["trace"] + "b"
		return p
	})

	got := ic.applyRequest(Params{})
	if got["trace"] != "ab" {
		t.Errorf("request interceptors ran as %q, want ab (registration order)", got["trace"])
	}
}

func TestInterceptorChainResponseOrder(t *testing.T) {
	ic := newInterceptorChain()
	ic.addResponse(func(v interface{}) interface{} {
		return v.(string) + "a"
	})
	ic.addResponse(func(v interface{}) interface{} {
		return v.(string) + "b"
	})

	got := ic.applyResponse("")
	if got != "ab" {
		t.Errorf("response interceptors ran as %q, want ab (registration order)", got)
	}
}

func TestInterceptorChainEmpty(t *testing.T) {
	ic := newInterceptorChain()
	p := Params{"k": "v"}
	if got := ic.applyRequest(p); got["k"] != "v" {
		t.Errorf("applyRequest with no interceptors = %v, want input", got)
	}
	if got := ic.applyResponse(42); got != 42 {
		t.Errorf("applyResponse with no interceptors = %v, want 42", got)
	}
}

func TestInterceptorChainClear(t *testing.T) {
	ic := newInterceptorChain()
	ic.addRequest(func(p Params) Params {
		p["injected"] = "yes"
		return p
	})
	ic.addResponse(func(v interface{}) interface{} {
		return nil
	})
	ic.clear()

	if got := ic.applyRequest(Params{}); len(got) != 0 {
		t.Errorf("cleared chain still transformed request: %v", got)
	}
	if got := ic.applyResponse("x"); got != "x" {
		t.Errorf("cleared chain still transformed response: %v", got)
	}
}
