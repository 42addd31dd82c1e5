package etherscan

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sync/atomic"
	"testing"
)

const testTopic = "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"

func TestLogsQueryParams(t *testing.T) {
	var gotQuery atomic.Value
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery.Store(r.URL.Query())
		writeEnvelope(w, "1", "OK", `[]`)
	})
	c, _ := newTestClient(t, handler)

	req := LogsRequest{
		Address:   testAddress,
		FromBlock: 12878196,
		ToBlock:   12879196,
		Topics:    map[string]string{"topic0": testTopic},
		Operators: map[string]string{"topic0_1_opr": "and"},
	}
	if _, err := c.Logs.Query(context.Background(), req); err != nil {
		t.Fatalf("Query() error = %v", err)
	}

	q := gotQuery.Load().(url.Values)
	for key, want := range map[string]string{
		"module":       "logs",
		"action":       "getLogs",
		"address":      testAddress,
		"fromBlock":    "12878196",
		"toBlock":      "12879196",
		"topic0":       testTopic,
		"topic0_1_opr": "and",
		"page":         "1",
		"offset":       "1000",
	} {
		if got := q.Get(key); got != want {
			t.Errorf("query[%s] = %q, want %q", key, got, want)
		}
	}
}

func TestLogsQueryValidation(t *testing.T) {
	c, _ := newTestClient(t, http.NotFoundHandler())
	ctx := context.Background()

	tests := []struct {
		name string
		req  LogsRequest
	}{
		{"no filter at all", LogsRequest{}},
		{"bad topic position", LogsRequest{Topics: map[string]string{"topic9": testTopic}}},
		{"short topic value", LogsRequest{Topics: map[string]string{"topic0": "0xdead"}}},
		{"bad operator", LogsRequest{
			Topics:    map[string]string{"topic0": testTopic},
			Operators: map[string]string{"topic0_1_opr": "xor"},
		}},
		{"inverted range", LogsRequest{Address: testAddress, FromBlock: 100, ToBlock: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := c.Logs.Query(ctx, tt.req); !errors.Is(err, ErrValidation) {
				t.Errorf("Query() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestLogsByTopic(t *testing.T) {
	var gotQuery atomic.Value
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery.Store(r.URL.Query())
		writeEnvelope(w, "0", "No logs found", `[]`)
	})
	c, _ := newTestClient(t, handler)

	got, err := c.Logs.ByTopic(context.Background(), testTopic, 0, 0)
	if err != nil {
		t.Fatalf("ByTopic() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("ByTopic() = %v, want empty non-nil slice", got)
	}
	q := gotQuery.Load().(url.Values)
	if q.Get("topic0") != testTopic {
		t.Errorf("topic0 = %q, want %q", q.Get("topic0"), testTopic)
	}
	if q.Has("address") {
		t.Error("address sent for a topic-only query")
	}
}
