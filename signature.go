package etherscan

import (
	"hash/fnv"
	"net/url"
	"strconv"
)

// Params is a flat set of query parameters for one API call. Namespace
// methods assemble these from caller input; the transport injects routing
// and credential fields before building the final URL.
type Params map[string]string

func (p Params) clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

func (p Params) values() url.Values {
	v := make(url.Values, len(p))
	for key, val := range p {
		v.Set(key, val)
	}
	return v
}

// requestSignature derives the cache and dedup key for a request: endpoint
// URL plus the canonical (key-sorted) query encoding, FNV-64a hashed so
// injected credentials never appear in cache keys. Two logically identical
// requests hash identically regardless of parameter insertion order.
func requestSignature(endpointURL string, p Params) string {
	h := fnv.New64a()
	h.Write([]byte(endpointURL))
	h.Write([]byte{'?'})
	h.Write([]byte(p.values().Encode()))
	return strconv.FormatUint(h.Sum64(), 16)
}
