package etherscan

import (
	"context"
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ProxyService wraps the "proxy" module, which relays JSON-RPC node
// queries through the explorer. Quantities come back 0x-hex encoded and
// decode through go-ethereum's hexutil types.
type ProxyService struct {
	client *Client
}

// ProxyBlock is a JSON-RPC block as relayed by the explorer. Transactions
// is left raw because its element shape depends on the fullTx flag.
type ProxyBlock struct {
	Number        hexutil.Uint64  `json:"number"`
	Hash          common.Hash     `json:"hash"`
	ParentHash    common.Hash     `json:"parentHash"`
	Miner         common.Address  `json:"miner"`
	GasLimit      hexutil.Uint64  `json:"gasLimit"`
	GasUsed       hexutil.Uint64  `json:"gasUsed"`
	Timestamp     hexutil.Uint64  `json:"timestamp"`
	BaseFeePerGas *hexutil.Big    `json:"baseFeePerGas"`
	Size          hexutil.Uint64  `json:"size"`
	ExtraData     hexutil.Bytes   `json:"extraData"`
	Transactions  json.RawMessage `json:"transactions"`
}

// ProxyTransaction is a JSON-RPC transaction.
type ProxyTransaction struct {
	Hash        common.Hash     `json:"hash"`
	Nonce       hexutil.Uint64  `json:"nonce"`
	BlockHash   *common.Hash    `json:"blockHash"`
	BlockNumber *hexutil.Big    `json:"blockNumber"`
	From        common.Address  `json:"from"`
	To          *common.Address `json:"to"`
	Value       *hexutil.Big    `json:"value"`
	Gas         hexutil.Uint64  `json:"gas"`
	GasPrice    *hexutil.Big    `json:"gasPrice"`
	Input       hexutil.Bytes   `json:"input"`
}

// ProxyReceipt is a JSON-RPC transaction receipt.
type ProxyReceipt struct {
	TransactionHash   common.Hash     `json:"transactionHash"`
	BlockHash         common.Hash     `json:"blockHash"`
	BlockNumber       *hexutil.Big    `json:"blockNumber"`
	ContractAddress   *common.Address `json:"contractAddress"`
	CumulativeGasUsed hexutil.Uint64  `json:"cumulativeGasUsed"`
	GasUsed           hexutil.Uint64  `json:"gasUsed"`
	EffectiveGasPrice *hexutil.Big    `json:"effectiveGasPrice"`
	Status            hexutil.Uint64  `json:"status"`
}

// BlockNumber returns the latest block height.
func (s *ProxyService) BlockNumber(ctx context.Context) (uint64, error) {
	if err := s.client.guard(); err != nil {
		return 0, err
	}
	p := Params{"module": "proxy", "action": "eth_blockNumber"}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, HexUintSchema())
}

// BlockByNumber returns a block; fullTx selects whole transaction objects
// over hashes in the Transactions field.
func (s *ProxyService) BlockByNumber(ctx context.Context, blockNumber int64, fullTx bool) (*ProxyBlock, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	if err := checkBlockNumber("tag", blockNumber); err != nil {
		return nil, err
	}
	p := Params{
		"module":  "proxy",
		"action":  "eth_getBlockByNumber",
		"tag":     hexutil.EncodeUint64(uint64(blockNumber)),
		"boolean": boolString(fullTx),
	}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, JSONSchema[*ProxyBlock]())
}

// TransactionByHash returns a transaction by hash.
func (s *ProxyService) TransactionByHash(ctx context.Context, txHash string) (*ProxyTransaction, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	if err := checkHash("txhash", txHash); err != nil {
		return nil, err
	}
	p := Params{"module": "proxy", "action": "eth_getTransactionByHash", "txhash": txHash}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, JSONSchema[*ProxyTransaction]())
}

// TransactionReceipt returns the receipt of a mined transaction.
func (s *ProxyService) TransactionReceipt(ctx context.Context, txHash string) (*ProxyReceipt, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	if err := checkHash("txhash", txHash); err != nil {
		return nil, err
	}
	p := Params{"module": "proxy", "action": "eth_getTransactionReceipt", "txhash": txHash}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, JSONSchema[*ProxyReceipt]())
}

// TransactionCount returns the nonce of an address at latest.
func (s *ProxyService) TransactionCount(ctx context.Context, address string) (uint64, error) {
	if err := s.client.guard(); err != nil {
		return 0, err
	}
	if err := checkAddress("address", address); err != nil {
		return 0, err
	}
	p := Params{
		"module":  "proxy",
		"action":  "eth_getTransactionCount",
		"address": address,
		"tag":     "latest",
	}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, HexUintSchema())
}

// Call executes a read-only contract call and returns the raw return
// data.
func (s *ProxyService) Call(ctx context.Context, to, data string) (string, error) {
	if err := s.client.guard(); err != nil {
		return "", err
	}
	if err := checkAddress("to", to); err != nil {
		return "", err
	}
	p := Params{
		"module": "proxy",
		"action": "eth_call",
		"to":     to,
		"data":   data,
		"tag":    "latest",
	}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, StringSchema())
}

// Code returns the deployed bytecode at an address.
func (s *ProxyService) Code(ctx context.Context, address string) (string, error) {
	if err := s.client.guard(); err != nil {
		return "", err
	}
	if err := checkAddress("address", address); err != nil {
		return "", err
	}
	p := Params{
		"module":  "proxy",
		"action":  "eth_getCode",
		"address": address,
		"tag":     "latest",
	}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, StringSchema())
}

// StorageAt returns the raw storage word at a position.
func (s *ProxyService) StorageAt(ctx context.Context, address string, position uint64) (string, error) {
	if err := s.client.guard(); err != nil {
		return "", err
	}
	if err := checkAddress("address", address); err != nil {
		return "", err
	}
	p := Params{
		"module":   "proxy",
		"action":   "eth_getStorageAt",
		"address":  address,
		"position": hexutil.EncodeUint64(position),
		"tag":      "latest",
	}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, StringSchema())
}

// GasPrice returns the current gas price in wei.
func (s *ProxyService) GasPrice(ctx context.Context) (*big.Int, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	p := Params{"module": "proxy", "action": "eth_gasPrice"}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, HexBigSchema())
}

// EstimateGas estimates the gas needed for a call.
func (s *ProxyService) EstimateGas(ctx context.Context, to, data string, value *big.Int) (uint64, error) {
	if err := s.client.guard(); err != nil {
		return 0, err
	}
	if err := checkAddress("to", to); err != nil {
		return 0, err
	}
	p := Params{
		"module": "proxy",
		"action": "eth_estimateGas",
		"to":     to,
		"data":   data,
	}
	if value != nil {
		p["value"] = hexutil.EncodeBig(value)
	}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, HexUintSchema())
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
