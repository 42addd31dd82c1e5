package etherscan

import (
	"context"
	"fmt"
	"strconv"
)

// LogsService wraps the "logs" module (event log queries).
type LogsService struct {
	client *Client
}

// EventLog is one emitted log entry.
type EventLog struct {
	Address          string   `json:"address"`
	Topics           []string `json:"topics"`
	Data             string   `json:"data"`
	BlockNumber      string   `json:"blockNumber"`
	TimeStamp        string   `json:"timeStamp"`
	GasPrice         *BigInt  `json:"gasPrice"`
	GasUsed          string   `json:"gasUsed"`
	LogIndex         string   `json:"logIndex"`
	TransactionHash  string   `json:"transactionHash"`
	TransactionIndex string   `json:"transactionIndex"`
}

// LogsRequest parameterizes a log query. Topics maps positions ("topic0"
// .. "topic3") to 32-byte hex values; Operators maps joiner keys like
// "topic0_1_opr" to "and"/"or".
type LogsRequest struct {
	Address   string
	FromBlock int64
	ToBlock   int64
	Topics    map[string]string
	Operators map[string]string
	Page      int
	Offset    int
}

func (r *LogsRequest) normalize() {
	if r.Page == 0 {
		r.Page = 1
	}
	if r.Offset == 0 {
		r.Offset = 1000
	}
	if r.ToBlock == 0 {
		r.ToBlock = 99999999
	}
}

func (r *LogsRequest) validate() error {
	if r.Address == "" && len(r.Topics) == 0 {
		return validationError("missing_filter", "either an address or at least one topic is required")
	}
	if r.Address != "" {
		if err := checkAddress("address", r.Address); err != nil {
			return err
		}
	}
	if err := checkBlockRange(r.FromBlock, r.ToBlock); err != nil {
		return err
	}
	if err := checkPagination(r.Page, r.Offset); err != nil {
		return err
	}
	for pos, topic := range r.Topics {
		switch pos {
		case "topic0", "topic1", "topic2", "topic3":
		default:
			return validationError("invalid_topic_position", fmt.Sprintf("unknown topic position %q", pos))
		}
		if err := checkHash(pos, topic); err != nil {
			return err
		}
	}
	for key, op := range r.Operators {
		if op != "and" && op != "or" {
			return validationError("invalid_topic_operator",
				fmt.Sprintf("%s: operator must be \"and\" or \"or\", got %q", key, op))
		}
	}
	return nil
}

func (r *LogsRequest) params() Params {
	p := Params{
		"module":    "logs",
		"action":    "getLogs",
		"fromBlock": strconv.FormatInt(r.FromBlock, 10),
		"toBlock":   strconv.FormatInt(r.ToBlock, 10),
		"page":      strconv.Itoa(r.Page),
		"offset":    strconv.Itoa(r.Offset),
	}
	if r.Address != "" {
		p["address"] = r.Address
	}
	for pos, topic := range r.Topics {
		p[pos] = topic
	}
	for key, op := range r.Operators {
		p[key] = op
	}
	return p
}

// Query returns event logs matching the filter.
func (s *LogsService) Query(ctx context.Context, req LogsRequest) ([]EventLog, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	req.normalize()
	if err := req.validate(); err != nil {
		return nil, err
	}
	return call(ctx, s.client, s.client.canonicalEndpoint(), req.params(), SliceSchema[EventLog]())
}

// ByAddress returns logs emitted by one address over a block range.
func (s *LogsService) ByAddress(ctx context.Context, address string, fromBlock, toBlock int64) ([]EventLog, error) {
	return s.Query(ctx, LogsRequest{Address: address, FromBlock: fromBlock, ToBlock: toBlock})
}

// ByTopic returns logs matching a single topic0 over a block range.
func (s *LogsService) ByTopic(ctx context.Context, topic0 string, fromBlock, toBlock int64) ([]EventLog, error) {
	return s.Query(ctx, LogsRequest{
		FromBlock: fromBlock,
		ToBlock:   toBlock,
		Topics:    map[string]string{"topic0": topic0},
	})
}
