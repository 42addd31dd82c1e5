package etherscan

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync/atomic"
	"testing"
)

func TestChainListStaticEndpoint(t *testing.T) {
	var gotPath, gotQuery atomic.Value
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath.Store(r.URL.Path)
		gotQuery.Store(r.URL.Query())
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"totalcount":2,
			"result":[
				{"chainname":"Ethereum Mainnet","chainid":"1","blockexplorer":"https://etherscan.io","apiurl":"https://api.etherscan.io/v2/api?chainid=1","status":1},
				{"chainname":"Polygon Mainnet","chainid":"137","blockexplorer":"https://polygonscan.com","apiurl":"https://api.etherscan.io/v2/api?chainid=137","status":1}
			]
		}`)
	})
	c, _ := newTestClient(t, handler)

	got, err := c.Usage.ChainList(context.Background())
	if err != nil {
		t.Fatalf("ChainList() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ChainList() returned %d chains, want 2", len(got))
	}
	if got[0].ChainName != "Ethereum Mainnet" || got[0].ChainID != "1" {
		t.Errorf("chain[0] = %+v, want Ethereum Mainnet / 1", got[0])
	}

	if path := gotPath.Load(); path != "/v2/chainlist" {
		t.Errorf("request path = %v, want /v2/chainlist", path)
	}
	// The directory endpoint is static: no routing id and no credential in
	// the query.
	q := gotQuery.Load().(url.Values)
	if q.Has("apikey") || q.Has("chainid") {
		t.Errorf("static endpoint received injected params: %v", q)
	}
}

func TestLimits(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, "1", "OK", `{
			"creditsUsed":207,
			"creditsAvailable":499793,
			"creditLimit":500000,
			"limitInterval":"daily",
			"intervalExpiryTimespan":"07:20:05"
		}`)
	})
	c, _ := newTestClient(t, handler)

	got, err := c.Usage.Limits(context.Background())
	if err != nil {
		t.Fatalf("Limits() error = %v", err)
	}
	if got.CreditsUsed != 207 || got.CreditLimit != 500000 {
		t.Errorf("Limits() = %+v, want creditsUsed 207 and creditLimit 500000", got)
	}
}
