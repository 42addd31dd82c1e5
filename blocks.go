package etherscan

import (
	"context"
	"math/big"
	"strconv"
)

// BlocksService wraps the "block" module.
type BlocksService struct {
	client *Client
}

// BlockReward is the reward breakdown for one block.
type BlockReward struct {
	BlockNumber          string        `json:"blockNumber"`
	TimeStamp            string        `json:"timeStamp"`
	BlockMiner           string        `json:"blockMiner"`
	BlockReward          *BigInt       `json:"blockReward"`
	Uncles               []UncleReward `json:"uncles"`
	UncleInclusionReward *BigInt       `json:"uncleInclusionReward"`
}

// UncleReward is the reward credited for one included uncle.
type UncleReward struct {
	Miner         string  `json:"miner"`
	UnclePosition string  `json:"unclePosition"`
	BlockReward   *BigInt `json:"blockreward"`
}

// BlockCountdown estimates when a future block will be mined.
type BlockCountdown struct {
	CurrentBlock      string `json:"CurrentBlock"`
	CountdownBlock    string `json:"CountdownBlock"`
	RemainingBlock    string `json:"RemainingBlock"`
	EstimateTimeInSec string `json:"EstimateTimeInSec"`
}

// DailyBlockSize is one day of average block size data.
type DailyBlockSize struct {
	UTCDate        string `json:"UTCDate"`
	UnixTimeStamp  string `json:"unixTimeStamp"`
	BlockSizeBytes int64  `json:"blockSize_bytes,string"`
}

// Reward returns the mining reward breakdown for a block.
func (s *BlocksService) Reward(ctx context.Context, blockNumber int64) (*BlockReward, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	if err := checkBlockNumber("blockno", blockNumber); err != nil {
		return nil, err
	}
	p := Params{
		"module":  "block",
		"action":  "getblockreward",
		"blockno": strconv.FormatInt(blockNumber, 10),
	}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, JSONSchema[*BlockReward]())
}

// Countdown estimates the time until a future block.
func (s *BlocksService) Countdown(ctx context.Context, blockNumber int64) (*BlockCountdown, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	if err := checkBlockNumber("blockno", blockNumber); err != nil {
		return nil, err
	}
	p := Params{
		"module":  "block",
		"action":  "getblockcountdown",
		"blockno": strconv.FormatInt(blockNumber, 10),
	}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, JSONSchema[*BlockCountdown]())
}

// NumberByTimestamp returns the block closest to a Unix timestamp.
// closest must be "before" or "after".
func (s *BlocksService) NumberByTimestamp(ctx context.Context, timestamp int64, closest string) (*big.Int, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	if timestamp < 0 {
		return nil, validationError("invalid_timestamp", "timestamp must be non-negative")
	}
	if closest != "before" && closest != "after" {
		return nil, validationError("invalid_closest", `closest must be "before" or "after"`)
	}
	p := Params{
		"module":    "block",
		"action":    "getblocknobytime",
		"timestamp": strconv.FormatInt(timestamp, 10),
		"closest":   closest,
	}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, BigIntSchema())
}

// DailyAvgBlockSize returns per-day average block sizes over a date range.
func (s *BlocksService) DailyAvgBlockSize(ctx context.Context, startDate, endDate, sort string) ([]DailyBlockSize, error) {
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
		"action":    "dailyavgblocksize",
		"startdate": startDate,
		"enddate":   endDate,
	}
	if sort != "" {
		p["sort"] = sort
	}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, SliceSchema[DailyBlockSize]())
}
