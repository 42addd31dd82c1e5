// Package etherscan is a typed client for the Etherscan V2 multi-chain
// block explorer API with a reliability layer built in:
//
//   - Shared per-API-key rate limiting (requests/second pacing, bounded
//     concurrency and a refillable daily credit reservoir), enforced across
//     every client constructed with the same key
//   - In-memory LRU+TTL caching of validated results
//   - De-duplication of concurrent identical requests (one network call,
//     many callers)
//   - Retries with backoff for transient network failures
//   - Request/response interceptor chains
//   - A typed error taxonomy covering network, HTTP, envelope and
//     validation failures, with secret-redacting message sanitization
//   - Prometheus metrics and lightweight structured debug logging
//
// Design goals:
//   - Small surface area – functional options configure everything
//   - Financial-grade numerics – monetary strings decode to *big.Int and
//     malformed values fail loudly, never silently truncate
//   - Safe concurrent use of a single *Client instance
//
// Typical usage:
//
//	client, err := etherscan.New("YourApiKey",
//	    etherscan.WithChain(etherscan.ChainEthereum),
//	    etherscan.WithRateLimit(5, 100000, 24*time.Hour),
//	    etherscan.WithCache(etherscan.CacheConfig{MaxSize: 512, DefaultTTL: 10 * time.Second, Enabled: true}),
//	)
//	if err != nil { ... }
//	defer client.Close()
//
//	balance, err := client.Accounts.Balance(ctx, "0xde0b295669a9fd93d5f28d9ec85e40f4cb697bae")
//
// Method namespaces (client.Accounts, client.Blocks, client.Proxy, ...)
// map one-to-one onto the remote API's module/action pairs. All of them
// validate parameters locally before touching the network and route
// through the same transport pipeline.
package etherscan
