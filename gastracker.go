package etherscan

import (
	"context"
	"math/big"
)

// GasTrackerService wraps the "gastracker" module. Only some chains run a
// gas tracker; methods are capability-gated.
type GasTrackerService struct {
	client *Client
}

// GasOracle is the current fee suggestion set.
type GasOracle struct {
	LastBlock       string `json:"LastBlock"`
	SafeGasPrice    string `json:"SafeGasPrice"`
	ProposeGasPrice string `json:"ProposeGasPrice"`
	FastGasPrice    string `json:"FastGasPrice"`
	SuggestBaseFee  string `json:"suggestBaseFee"`
	GasUsedRatio    string `json:"gasUsedRatio"`
}

// DailyGasPrice is one day of average gas price data, in wei.
type DailyGasPrice struct {
	UTCDate       string  `json:"UTCDate"`
	UnixTimeStamp string  `json:"unixTimeStamp"`
	MaxGasPrice   *BigInt `json:"maxGasPrice_Wei"`
	MinGasPrice   *BigInt `json:"minGasPrice_Wei"`
	AvgGasPrice   *BigInt `json:"avgGasPrice_Wei"`
}

// Oracle returns the current gas fee suggestions.
func (s *GasTrackerService) Oracle(ctx context.Context) (*GasOracle, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	if err := s.client.requireCapability("GasTracker.Oracle", CapabilityGasTracker); err != nil {
		return nil, err
	}
	p := Params{"module": "gastracker", "action": "gasoracle"}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, JSONSchema[*GasOracle]())
}

// EstimateConfirmationTime estimates seconds to confirmation for a gas
// price in wei.
func (s *GasTrackerService) EstimateConfirmationTime(ctx context.Context, gasPrice *big.Int) (*big.Int, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	if err := s.client.requireCapability("GasTracker.EstimateConfirmationTime", CapabilityGasTracker); err != nil {
		return nil, err
	}
	if gasPrice == nil || gasPrice.Sign() < 0 {
		return nil, validationError("invalid_gas_price", "gasprice must be a non-negative integer")
	}
	p := Params{"module": "gastracker", "action": "gasestimate", "gasprice": gasPrice.String()}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, BigIntSchema())
}

// DailyAvgGasPrice returns per-day gas price extremes over a date range.
func (s *GasTrackerService) DailyAvgGasPrice(ctx context.Context, startDate, endDate, sort string) ([]DailyGasPrice, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	if err := s.client.requireCapability("GasTracker.DailyAvgGasPrice", CapabilityGasTracker); err != nil {
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
		"action":    "dailyavggasprice",
		"startdate": startDate,
		"enddate":   endDate,
	}
	if sort != "" {
		p["sort"] = sort
	}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, SliceSchema[DailyGasPrice]())
}
