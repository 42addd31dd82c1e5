package etherscan

import (
	"context"
	"math/big"
	"strconv"
)

// TokensService wraps token supply and holder queries spread across the
// "stats", "account" and "token" modules.
type TokensService struct {
	client *Client
}

// TokenHolder is one entry of a holder list.
type TokenHolder struct {
	Address  string  `json:"TokenHolderAddress"`
	Quantity *BigInt `json:"TokenHolderQuantity"`
}

// TokenInfo is the explorer's metadata listing for a token contract.
type TokenInfo struct {
	ContractAddress string `json:"contractAddress"`
	TokenName       string `json:"tokenName"`
	Symbol          string `json:"symbol"`
	Divisor         string `json:"divisor"`
	TokenType       string `json:"tokenType"`
	TotalSupply     string `json:"totalSupply"`
	BlueCheckmark   string `json:"blueCheckmark"`
	Website         string `json:"website"`
}

// TotalSupply returns the current total supply of an ERC-20 token.
func (s *TokensService) TotalSupply(ctx context.Context, contractAddress string) (*big.Int, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	if err := checkAddress("contractaddress", contractAddress); err != nil {
		return nil, err
	}
	p := Params{"module": "stats", "action": "tokensupply", "contractaddress": contractAddress}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, BigIntSchema())
}

// TotalSupplyAtBlock returns a token's total supply at a block height.
func (s *TokensService) TotalSupplyAtBlock(ctx context.Context, contractAddress string, blockNumber int64) (*big.Int, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	if err := checkAddress("contractaddress", contractAddress); err != nil {
		return nil, err
	}
	if err := checkBlockNumber("blockno", blockNumber); err != nil {
		return nil, err
	}
	p := Params{
		"module":          "stats",
		"action":          "tokensupplyhistory",
		"contractaddress": contractAddress,
		"blockno":         strconv.FormatInt(blockNumber, 10),
	}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, BigIntSchema())
}

// AccountBalance returns an address's balance of an ERC-20 token.
func (s *TokensService) AccountBalance(ctx context.Context, contractAddress, address string) (*big.Int, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	if err := checkAddress("contractaddress", contractAddress); err != nil {
		return nil, err
	}
	if err := checkAddress("address", address); err != nil {
		return nil, err
	}
	p := Params{
		"module":          "account",
		"action":          "tokenbalance",
		"contractaddress": contractAddress,
		"address":         address,
		"tag":             "latest",
	}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, BigIntSchema())
}

// AccountBalanceAtBlock returns a token balance at a block height.
func (s *TokensService) AccountBalanceAtBlock(ctx context.Context, contractAddress, address string, blockNumber int64) (*big.Int, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	if err := checkAddress("contractaddress", contractAddress); err != nil {
		return nil, err
	}
	if err := checkAddress("address", address); err != nil {
		return nil, err
	}
	if err := checkBlockNumber("blockno", blockNumber); err != nil {
		return nil, err
	}
	p := Params{
		"module":          "account",
		"action":          "tokenbalancehistory",
		"contractaddress": contractAddress,
		"address":         address,
		"blockno":         strconv.FormatInt(blockNumber, 10),
	}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, BigIntSchema())
}

// Holders returns the holder list of a token, paginated.
func (s *TokensService) Holders(ctx context.Context, contractAddress string, page, offset int) ([]TokenHolder, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	if err := checkAddress("contractaddress", contractAddress); err != nil {
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
		"module":          "token",
		"action":          "tokenholderlist",
		"contractaddress": contractAddress,
		"page":            strconv.Itoa(page),
		"offset":          strconv.Itoa(offset),
	}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, SliceSchema[TokenHolder]())
}

// Info returns the explorer metadata listing of a token contract.
func (s *TokensService) Info(ctx context.Context, contractAddress string) ([]TokenInfo, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	if err := checkAddress("contractaddress", contractAddress); err != nil {
		return nil, err
	}
	p := Params{"module": "token", "action": "tokeninfo", "contractaddress": contractAddress}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, SliceSchema[TokenInfo]())
}
