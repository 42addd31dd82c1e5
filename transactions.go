package etherscan

import "context"

// TransactionsService wraps the "transaction" module.
type TransactionsService struct {
	client *Client
}

// ExecutionStatus is the contract execution outcome of a transaction.
type ExecutionStatus struct {
	IsError        string `json:"isError"`
	ErrDescription string `json:"errDescription"`
}

// ReceiptStatus is the receipt-level outcome of a transaction.
type ReceiptStatus struct {
	Status string `json:"status"`
}

// Status returns the contract execution status of a transaction.
func (s *TransactionsService) Status(ctx context.Context, txHash string) (*ExecutionStatus, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	if err := checkHash("txhash", txHash); err != nil {
		return nil, err
	}
	p := Params{"module": "transaction", "action": "getstatus", "txhash": txHash}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, JSONSchema[*ExecutionStatus]())
}

// ReceiptStatus returns the receipt status of a post-Byzantium
// transaction.
func (s *TransactionsService) ReceiptStatus(ctx context.Context, txHash string) (*ReceiptStatus, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	if err := checkHash("txhash", txHash); err != nil {
		return nil, err
	}
	p := Params{"module": "transaction", "action": "gettxreceiptstatus", "txhash": txHash}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, JSONSchema[*ReceiptStatus]())
}
