package etherscan

import (
	"context"
	"math/big"
	"strconv"
	"strings"
)

// AccountsService wraps the "account" module: balances and transaction
// history for externally owned accounts and contracts.
type AccountsService struct {
	client *Client
}

// AccountBalance is one entry of a multi-address balance query.
type AccountBalance struct {
	Account string  `json:"account"`
	Balance *BigInt `json:"balance"`
}

// NormalTransaction is an externally initiated transaction as the explorer
// reports it. Monetary fields decode to arbitrary-precision integers.
type NormalTransaction struct {
	BlockNumber       string  `json:"blockNumber"`
	TimeStamp         string  `json:"timeStamp"`
	Hash              string  `json:"hash"`
	Nonce             string  `json:"nonce"`
	BlockHash         string  `json:"blockHash"`
	TransactionIndex  string  `json:"transactionIndex"`
	From              string  `json:"from"`
	To                string  `json:"to"`
	Value             *BigInt `json:"value"`
	Gas               string  `json:"gas"`
	GasPrice          *BigInt `json:"gasPrice"`
	IsError           string  `json:"isError"`
	TxReceiptStatus   string  `json:"txreceipt_status"`
	Input             string  `json:"input"`
	ContractAddress   string  `json:"contractAddress"`
	CumulativeGasUsed string  `json:"cumulativeGasUsed"`
	GasUsed           string  `json:"gasUsed"`
	Confirmations     string  `json:"confirmations"`
	MethodID          string  `json:"methodId"`
	FunctionName      string  `json:"functionName"`
}

// InternalTransaction is a message call produced during execution.
type InternalTransaction struct {
	BlockNumber     string  `json:"blockNumber"`
	TimeStamp       string  `json:"timeStamp"`
	Hash            string  `json:"hash"`
	From            string  `json:"from"`
	To              string  `json:"to"`
	Value           *BigInt `json:"value"`
	ContractAddress string  `json:"contractAddress"`
	Input           string  `json:"input"`
	Type            string  `json:"type"`
	Gas             string  `json:"gas"`
	GasUsed         string  `json:"gasUsed"`
	TraceID         string  `json:"traceId"`
	IsError         string  `json:"isError"`
	ErrCode         string  `json:"errCode"`
}

// TokenTransfer is an ERC-20 transfer event.
type TokenTransfer struct {
	BlockNumber       string  `json:"blockNumber"`
	TimeStamp         string  `json:"timeStamp"`
	Hash              string  `json:"hash"`
	Nonce             string  `json:"nonce"`
	BlockHash         string  `json:"blockHash"`
	From              string  `json:"from"`
	ContractAddress   string  `json:"contractAddress"`
	To                string  `json:"to"`
	Value             *BigInt `json:"value"`
	TokenName         string  `json:"tokenName"`
	TokenSymbol       string  `json:"tokenSymbol"`
	TokenDecimal      string  `json:"tokenDecimal"`
	TransactionIndex  string  `json:"transactionIndex"`
	Gas               string  `json:"gas"`
	GasPrice          *BigInt `json:"gasPrice"`
	GasUsed           string  `json:"gasUsed"`
	CumulativeGasUsed string  `json:"cumulativeGasUsed"`
	Confirmations     string  `json:"confirmations"`
}

// NFTTransfer is an ERC-721 transfer event.
type NFTTransfer struct {
	BlockNumber     string `json:"blockNumber"`
	TimeStamp       string `json:"timeStamp"`
	Hash            string `json:"hash"`
	From            string `json:"from"`
	ContractAddress string `json:"contractAddress"`
	To              string `json:"to"`
	TokenID         string `json:"tokenID"`
	TokenName       string `json:"tokenName"`
	TokenSymbol     string `json:"tokenSymbol"`
	TokenDecimal    string `json:"tokenDecimal"`
	Confirmations   string `json:"confirmations"`
}

// ERC1155Transfer is an ERC-1155 transfer event.
type ERC1155Transfer struct {
	BlockNumber     string `json:"blockNumber"`
	TimeStamp       string `json:"timeStamp"`
	Hash            string `json:"hash"`
	From            string `json:"from"`
	ContractAddress string `json:"contractAddress"`
	To              string `json:"to"`
	TokenID         string `json:"tokenID"`
	TokenValue      string `json:"tokenValue"`
	TokenName       string `json:"tokenName"`
	TokenSymbol     string `json:"tokenSymbol"`
	Confirmations   string `json:"confirmations"`
}

// MinedBlock is a block credited to a miner/validator address.
type MinedBlock struct {
	BlockNumber string  `json:"blockNumber"`
	TimeStamp   string  `json:"timeStamp"`
	BlockReward *BigInt `json:"blockReward"`
}

// TxListRequest parameterizes transaction history queries. Zero Page and
// Offset default to 1 and 100; a zero EndBlock means latest.
type TxListRequest struct {
	Address    string
	StartBlock int64
	EndBlock   int64
	Page       int
	Offset     int
	Sort       string
}

func (r *TxListRequest) normalize() {
	if r.Page == 0 {
		r.Page = 1
	}
	if r.Offset == 0 {
		r.Offset = 100
	}
	if r.EndBlock == 0 {
		r.EndBlock = 99999999
	}
}

func (r *TxListRequest) validate() error {
	if err := checkAddress("address", r.Address); err != nil {
		return err
	}
	if err := checkBlockRange(r.StartBlock, r.EndBlock); err != nil {
		return err
	}
	if err := checkPagination(r.Page, r.Offset); err != nil {
		return err
	}
	return checkSort(r.Sort)
}

func (r *TxListRequest) params(action string) Params {
	p := Params{
		"module":     "account",
		"action":     action,
		"address":    r.Address,
		"startblock": strconv.FormatInt(r.StartBlock, 10),
		"endblock":   strconv.FormatInt(r.EndBlock, 10),
		"page":       strconv.Itoa(r.Page),
		"offset":     strconv.Itoa(r.Offset),
	}
	if r.Sort != "" {
		p["sort"] = r.Sort
	}
	return p
}

// Balance returns the native-token balance of a single address in wei.
func (s *AccountsService) Balance(ctx context.Context, address string) (*big.Int, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	if err := checkAddress("address", address); err != nil {
		return nil, err
	}
	p := Params{"module": "account", "action": "balance", "address": address, "tag": "latest"}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, BigIntSchema())
}

// BalanceMulti returns balances for up to 20 addresses in one request.
func (s *AccountsService) BalanceMulti(ctx context.Context, addresses []string) ([]AccountBalance, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	if err := checkAddressList("address", addresses); err != nil {
		return nil, err
	}
	p := Params{
		"module":  "account",
		"action":  "balancemulti",
		"address": strings.Join(addresses, ","),
		"tag":     "latest",
	}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, SliceSchema[AccountBalance]())
}

// BalanceAtBlock returns the balance an address held at a specific block.
func (s *AccountsService) BalanceAtBlock(ctx context.Context, address string, blockNumber int64) (*big.Int, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	if err := checkAddress("address", address); err != nil {
		return nil, err
	}
	if err := checkBlockNumber("blockno", blockNumber); err != nil {
		return nil, err
	}
	p := Params{
		"module":  "account",
		"action":  "balancehistory",
		"address": address,
		"blockno": strconv.FormatInt(blockNumber, 10),
	}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, BigIntSchema())
}

// TxList returns externally initiated transactions for an address.
func (s *AccountsService) TxList(ctx context.Context, req TxListRequest) ([]NormalTransaction, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	req.normalize()
	if err := req.validate(); err != nil {
		return nil, err
	}
	return call(ctx, s.client, s.client.canonicalEndpoint(), req.params("txlist"), SliceSchema[NormalTransaction]())
}

// TxListInternal returns internal transactions for an address.
func (s *AccountsService) TxListInternal(ctx context.Context, req TxListRequest) ([]InternalTransaction, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	req.normalize()
	if err := req.validate(); err != nil {
		return nil, err
	}
	return call(ctx, s.client, s.client.canonicalEndpoint(), req.params("txlistinternal"), SliceSchema[InternalTransaction]())
}

// TxListInternalByHash returns internal transactions within one
// transaction.
func (s *AccountsService) TxListInternalByHash(ctx context.Context, txHash string) ([]InternalTransaction, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	if err := checkHash("txhash", txHash); err != nil {
		return nil, err
	}
	p := Params{"module": "account", "action": "txlistinternal", "txhash": txHash}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, SliceSchema[InternalTransaction]())
}

// TokenTransfers returns ERC-20 transfers touching an address, optionally
// filtered to one token contract.
func (s *AccountsService) TokenTransfers(ctx context.Context, req TxListRequest, contractAddress string) ([]TokenTransfer, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	req.normalize()
	if err := req.validate(); err != nil {
		return nil, err
	}
	p := req.params("tokentx")
	if contractAddress != "" {
		if err := checkAddress("contractaddress", contractAddress); err != nil {
			return nil, err
		}
		p["contractaddress"] = contractAddress
	}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, SliceSchema[TokenTransfer]())
}

// NFTTransfers returns ERC-721 transfers touching an address.
func (s *AccountsService) NFTTransfers(ctx context.Context, req TxListRequest, contractAddress string) ([]NFTTransfer, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	req.normalize()
	if err := req.validate(); err != nil {
		return nil, err
	}
	p := req.params("tokennfttx")
	if contractAddress != "" {
		if err := checkAddress("contractaddress", contractAddress); err != nil {
			return nil, err
		}
		p["contractaddress"] = contractAddress
	}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, SliceSchema[NFTTransfer]())
}

// ERC1155Transfers returns ERC-1155 transfers touching an address.
func (s *AccountsService) ERC1155Transfers(ctx context.Context, req TxListRequest, contractAddress string) ([]ERC1155Transfer, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	req.normalize()
	if err := req.validate(); err != nil {
		return nil, err
	}
	p := req.params("token1155tx")
	if contractAddress != "" {
		if err := checkAddress("contractaddress", contractAddress); err != nil {
			return nil, err
		}
		p["contractaddress"] = contractAddress
	}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, SliceSchema[ERC1155Transfer]())
}

// MinedBlocks returns blocks credited to an address.
func (s *AccountsService) MinedBlocks(ctx context.Context, address string, page, offset int) ([]MinedBlock, error) {
	if err := s.client.guard(); err != nil {
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
		"module":    "account",
		"action":    "getminedblocks",
		"address":   address,
		"blocktype": "blocks",
		"page":      strconv.Itoa(page),
		"offset":    strconv.Itoa(offset),
	}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, SliceSchema[MinedBlock]())
}

// TxListCSV returns the transaction history as raw CSV text via the
// export-style endpoint. The payload skips JSON parsing entirely.
func (s *AccountsService) TxListCSV(ctx context.Context, req TxListRequest) (string, error) {
	if err := s.client.guard(); err != nil {
		return "", err
	}
	req.normalize()
	if err := req.validate(); err != nil {
		return "", err
	}
	p := req.params("txlistexport")
	p["format"] = "csv"
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, TextSchema())
}
