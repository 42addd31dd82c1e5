package etherscan

import (
	"context"
	"math/big"
)

// StatsService wraps the "stats" module (network-wide figures).
type StatsService struct {
	client *Client
}

// SupplyBreakdown itemizes total supply including staking flows.
type SupplyBreakdown struct {
	EthSupply      *BigInt `json:"EthSupply"`
	Eth2Staking    *BigInt `json:"Eth2Staking"`
	BurntFees      *BigInt `json:"BurntFees"`
	WithdrawnTotal *BigInt `json:"WithdrawnTotal"`
}

// EthPrice is the explorer's last price quote.
type EthPrice struct {
	EthBTC          string `json:"ethbtc"`
	EthBTCTimestamp string `json:"ethbtc_timestamp"`
	EthUSD          string `json:"ethusd"`
	EthUSDTimestamp string `json:"ethusd_timestamp"`
}

// NodeCount is the explorer's node census.
type NodeCount struct {
	UTCDate        string `json:"UTCDate"`
	TotalNodeCount string `json:"TotalNodeCount"`
}

// DailyCount is one day of a counted series.
type DailyCount struct {
	UTCDate       string `json:"UTCDate"`
	UnixTimeStamp string `json:"unixTimeStamp"`
	Value         string `json:"transactionCount"`
}

// DailyFee is one day of collected network fees.
type DailyFee struct {
	UTCDate       string `json:"UTCDate"`
	UnixTimeStamp string `json:"unixTimeStamp"`
	NetworkFeeETH string `json:"transactionFee_Eth"`
}

// EthSupply returns the total native token supply in wei.
func (s *StatsService) EthSupply(ctx context.Context) (*big.Int, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	p := Params{"module": "stats", "action": "ethsupply"}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, BigIntSchema())
}

// EthSupply2 returns the itemized supply breakdown.
func (s *StatsService) EthSupply2(ctx context.Context) (*SupplyBreakdown, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	p := Params{"module": "stats", "action": "ethsupply2"}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, JSONSchema[*SupplyBreakdown]())
}

// Price returns the last native token price quote.
func (s *StatsService) Price(ctx context.Context) (*EthPrice, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	p := Params{"module": "stats", "action": "ethprice"}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, JSONSchema[*EthPrice]())
}

// NodeCount returns the current node census.
func (s *StatsService) NodeCount(ctx context.Context) (*NodeCount, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	p := Params{"module": "stats", "action": "nodecount"}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, JSONSchema[*NodeCount]())
}

// DailyTxCount returns per-day transaction counts over a date range.
func (s *StatsService) DailyTxCount(ctx context.Context, startDate, endDate, sort string) ([]DailyCount, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	if err := checkDateRange(startDate, endDate); err != nil {
		return nil, err
	}
	if err := checkSort(sort); err != nil {
		return nil, err
	}
	p := Params{
		"module":    "stats",
		"action":    "dailytx",
		"startdate": startDate,
		"enddate":   endDate,
	}
	if sort != "" {
		p["sort"] = sort
	}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, SliceSchema[DailyCount]())
}

// DailyNetworkFees returns per-day total network fees over a date range.
func (s *StatsService) DailyNetworkFees(ctx context.Context, startDate, endDate, sort string) ([]DailyFee, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	if err := checkDateRange(startDate, endDate); err != nil {
		return nil, err
	}
	if err := checkSort(sort); err != nil {
		return nil, err
	}
	p := Params{
		"module":    "stats",
		"action":    "dailytxnfee",
		"startdate": startDate,
		"enddate":   endDate,
	}
	if sort != "" {
		p["sort"] = sort
	}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, SliceSchema[DailyFee]())
}
