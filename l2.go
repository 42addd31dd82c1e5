package etherscan

import (
	"context"
	"strconv"
)

// L2Service wraps bridge deposit/withdrawal history, available only on
// rollup chains.
type L2Service struct {
	client *Client
}

// BridgeTransfer is one cross-layer deposit or withdrawal.
type BridgeTransfer struct {
	BlockNumber     string  `json:"blockNumber"`
	TimeStamp       string  `json:"timeStamp"`
	Hash            string  `json:"hash"`
	From            string  `json:"from"`
	To              string  `json:"to"`
	Value           *BigInt `json:"value"`
	TokenAddress    string  `json:"tokenAddress"`
	TokenName       string  `json:"tokenName"`
	TokenSymbol     string  `json:"tokenSymbol"`
	L1TxHash        string  `json:"l1TxHash"`
	FinalizedStatus string  `json:"finalizedStatus"`
}

func (s *L2Service) bridgeList(ctx context.Context, action, method, address string, page, offset int) ([]BridgeTransfer, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	if err := s.client.requireCapability(method, CapabilityL2Bridge); err != nil {
		return nil, err
	}
	if err := checkAddress("address", address); err != nil {
		return nil, err
	}
	if page == 0 {
		page = 1
	}
	if offset == 0 {
		offset = 100
	}
	if err := checkPagination(page, offset); err != nil {
		return nil, err
	}
	p := Params{
		"module":  "account",
		"action":  action,
		"address": address,
		"page":    strconv.Itoa(page),
		"offset":  strconv.Itoa(offset),
	}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, SliceSchema[BridgeTransfer]())
}

// Deposits returns L1→L2 deposits credited to an address.
func (s *L2Service) Deposits(ctx context.Context, address string, page, offset int) ([]BridgeTransfer, error) {
	return s.bridgeList(ctx, "getdeposittxs", "L2.Deposits", address, page, offset)
}

// Withdrawals returns L2→L1 withdrawals initiated by an address.
func (s *L2Service) Withdrawals(ctx context.Context, address string, page, offset int) ([]BridgeTransfer, error) {
	return s.bridgeList(ctx, "getwithdrawaltxs", "L2.Withdrawals", address, page, offset)
}
