package binance

import (
	"context"
	"testing"

	"github.com/adshao/go-binance/v2/futures"
	scraper "github.com/aumanusorn/exchanges-dashboard"
)

func TestTradeStream_KeepsLatestTickOnly(t *testing.T) {
	stream := &tradeStream{ctx: context.Background()}

	stream.push(&scraper.Tick{Symbol: "BTCUSDT", Price: 35000, Time: 1})
	stream.push(&scraper.Tick{Symbol: "BTCUSDT", Price: 35001, Time: 2})

	tick, exists := stream.Latest()
	if !exists {
		t.Fatalf("expected a tick")
	}

	if tick.Price != 35001 {
		t.Errorf(
			"unexpected tick price\n"+
				"expected: [%v]\n"+
				"actual:   [%v]",
			35001,
			tick.Price,
		)
	}

	// The delivered tick must not be delivered again.
	if _, exists := stream.Latest(); exists {
		t.Errorf("unexpected second delivery of the same tick")
	}
}

func TestTradeStream_Stopping(t *testing.T) {
	ctx, cancelCtx := context.WithCancel(context.Background())

	stream := &tradeStream{ctx: ctx}

	if stream.Stopping() {
		t.Errorf("unexpected stopping state before cancellation")
	}

	cancelCtx()

	if !stream.Stopping() {
		t.Errorf("expected stopping state after cancellation")
	}
}

func TestParseAggTradeEvent(t *testing.T) {
	tick, err := parseAggTradeEvent(&futures.WsAggTradeEvent{
		Symbol:           "BTCUSDT",
		AggregateTradeID: 42,
		Price:            "35000.10",
		Quantity:         "0.25",
		TradeTime:        1610000000000,
	})
	if err != nil {
		t.Fatalf("unexpected error: [%v]", err)
	}

	expectedTick := scraper.Tick{
		Symbol:   "BTCUSDT",
		Price:    35000.10,
		Quantity: 0.25,
		Time:     1610000000000,
	}

	if *tick != expectedTick {
		t.Errorf(
			"unexpected tick\n"+
				"expected: [%+v]\n"+
				"actual:   [%+v]",
			expectedTick,
			*tick,
		)
	}
}

func TestParseAggTradeEvent_MalformedPrice(t *testing.T) {
	_, err := parseAggTradeEvent(&futures.WsAggTradeEvent{
		Symbol:    "BTCUSDT",
		Price:     "not-a-number",
		Quantity:  "0.25",
		TradeTime: 1610000000000,
	})
	if err == nil {
		t.Errorf("expected an error")
	}
}
