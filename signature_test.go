package etherscan

import (
	"regexp"
	"testing"
)

func TestRequestSignatureDeterministic(t *testing.T) {
	p := Params{"module": "account", "action": "balance", "address": testAddress}
	a := requestSignature(defaultAPIURL, p)
	b := requestSignature(defaultAPIURL, p.clone())
	if a != b {
		t.Errorf("identical requests produced different signatures: %s vs %s", a, b)
	}
	if !regexp.MustCompile(`^[0-9a-f]+$`).MatchString(a) {
		t.Errorf("signature %q is not lowercase hex", a)
	}
}

func TestRequestSignatureDistinguishesParams(t *testing.T) {
	base := Params{"module": "account", "action": "balance", "address": testAddress}

	changed := base.clone()
	changed["address"] = testAddress2
	if requestSignature(defaultAPIURL, base) == requestSignature(defaultAPIURL, changed) {
		t.Error("different parameter values produced the same signature")
	}

	extra := base.clone()
	extra["tag"] = "latest"
	if requestSignature(defaultAPIURL, base) == requestSignature(defaultAPIURL, extra) {
		t.Error("extra parameter produced the same signature")
	}
}

func TestRequestSignatureDistinguishesEndpoints(t *testing.T) {
	p := Params{"module": "account", "action": "balance"}
	a := requestSignature("https://api.etherscan.io/v2/api", p)
	b := requestSignature("https://api.example.org/v2/api", p)
	if a == b {
		t.Error("different endpoints produced the same signature")
	}
}

func TestParamsClone(t *testing.T) {
	p := Params{"a": "1"}
	q := p.clone()
	q["a"] = "2"
	q["b"] = "3"
	if p["a"] != "1" || len(p) != 1 {
		t.Errorf("mutating clone changed original: %v", p)
	}
}

func TestParamsValues(t *testing.T) {
	p := Params{"b": "2", "a": "1"}
	got := p.values().Encode()
	// url.Values.Encode sorts by key, giving a canonical form.
	if got != "a=1&b=2" {
		t.Errorf("values().Encode() = %q, want a=1&b=2", got)
	}
}
