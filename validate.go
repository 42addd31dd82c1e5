package etherscan

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Local parameter validation. Every namespace method runs these before
// touching the network so malformed input fails fast with a typed
// validation error and never consumes rate-limit credits.

const (
	maxAddressListLen   = 20
	maxAddressListBytes = 10000
	maxPageOffset       = 10000
)

func checkAddress(field, s string) error {
	if !strings.HasPrefix(s, "0x") || !common.IsHexAddress(s) {
		return validationError("invalid_address",
			fmt.Sprintf("%s: %q is not a 0x-prefixed 20-byte hex address", field, s))
	}
	return nil
}

func checkHash(field, s string) error {
	b, err := hexutil.Decode(s)
	if err != nil || len(b) != common.HashLength {
		return validationError("invalid_hash",
			fmt.Sprintf("%s: %q is not a 0x-prefixed 32-byte hex hash", field, s))
	}
	return nil
}

func checkAddressList(field string, addrs []string) error {
	if len(addrs) == 0 {
		return validationError("empty_address_list", field+": at least one address is required")
	}
	if len(addrs) > maxAddressListLen {
		return validationError("address_list_too_long",
			fmt.Sprintf("%s: %d addresses given, maximum is %d", field, len(addrs), maxAddressListLen))
	}
	total := 0
	for i, a := range addrs {
		if err := checkAddress(fmt.Sprintf("%s[%d]", field, i), a); err != nil {
			return err
		}
		total += len(a) + 1
	}
	if total > maxAddressListBytes {
		return validationError("address_list_too_long",
			fmt.Sprintf("%s: joined list exceeds %d characters", field, maxAddressListBytes))
	}
	return nil
}

func checkPagination(page, offset int) error {
	if page < 1 {
		return validationError("invalid_page", fmt.Sprintf("page must be >= 1, got %d", page))
	}
	if offset < 1 || offset > maxPageOffset {
		return validationError("invalid_offset",
			fmt.Sprintf("offset must be between 1 and %d, got %d", maxPageOffset, offset))
	}
	return nil
}

func checkBlockNumber(field string, n int64) error {
	if n < 0 {
		return validationError("invalid_block_number",
			fmt.Sprintf("%s: block number must be non-negative, got %d", field, n))
	}
	return nil
}

func checkBlockRange(start, end int64) error {
	if err := checkBlockNumber("startblock", start); err != nil {
		return err
	}
	if err := checkBlockNumber("endblock", end); err != nil {
		return err
	}
	if end < start {
		return validationError("invalid_block_range",
			fmt.Sprintf("endblock %d precedes startblock %d", end, start))
	}
	return nil
}

// checkDate enforces strict YYYY-MM-DD with a real calendar date; the
// round-trip comparison rejects unpadded forms like 2024-1-2.
func checkDate(field, s string) error {
	t, err := time.Parse("2006-01-02", s)
	if err != nil || t.Format("2006-01-02") != s {
		return validationError("invalid_date",
			fmt.Sprintf("%s: %q is not a valid YYYY-MM-DD date", field, s))
	}
	return nil
}

func checkDateRange(start, end string) error {
	if err := checkDate("startdate", start); err != nil {
		return err
	}
	if err := checkDate("enddate", end); err != nil {
		return err
	}
	if end < start {
		return validationError("invalid_date_range",
			fmt.Sprintf("enddate %q precedes startdate %q", end, start))
	}
	return nil
}

func checkSort(sort string) error {
	switch sort {
	case "", "asc", "desc":
		return nil
	}
	return validationError("invalid_sort", fmt.Sprintf("sort must be \"asc\" or \"desc\", got %q", sort))
}
