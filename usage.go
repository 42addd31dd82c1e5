package etherscan

import "context"

// UsageService wraps API plan/quota introspection and the static chain
// directory.
type UsageService struct {
	client *Client
}

// APILimits reports the remote view of the key's credit budget.
type APILimits struct {
	CreditsUsed      int64  `json:"creditsUsed"`
	CreditsAvailable int64  `json:"creditsAvailable"`
	CreditLimit      int64  `json:"creditLimit"`
	LimitInterval    string `json:"limitInterval"`
	IntervalExpiry   string `json:"intervalExpiryTimespan"`
}

// SupportedChain is one entry of the chain directory.
type SupportedChain struct {
	ChainName     string `json:"chainname"`
	ChainID       string `json:"chainid"`
	BlockExplorer string `json:"blockexplorer"`
	APIURL        string `json:"apiurl"`
	Status        int    `json:"status"`
}

// chainDirectory is the full (non-enveloped) chain directory document.
type chainDirectory struct {
	TotalCount int              `json:"totalcount"`
	Result     []SupportedChain `json:"result"`
}

// Limits returns the key's current credit usage.
func (s *UsageService) Limits(ctx context.Context) (*APILimits, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	p := Params{"module": "getapilimit", "action": "getapilimit"}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, JSONSchema[*APILimits]())
}

// ChainList returns the directory of chains the unified endpoint routes
// to. It uses the static endpoint: no chainid/apikey injection and no
// envelope, but the same cache/dedup/retry pipeline.
func (s *UsageService) ChainList(ctx context.Context) ([]SupportedChain, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	dir, err := call(ctx, s.client, s.client.chainListEndpoint(), Params{}, JSONSchema[chainDirectory]())
	if err != nil {
		return nil, err
	}
	return dir.Result, nil
}
