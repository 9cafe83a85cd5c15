package inmem

import (
	"testing"

	scraper "github.com/aumanusorn/exchanges-dashboard"
)

func TestTickRepository_SaveTick(t *testing.T) {
	repository := NewTickRepository()

	if _, exists := repository.Tick("BTCUSDT"); exists {
		t.Errorf("unexpected tick before first save")
	}

	err := repository.SaveTick(
		&scraper.Tick{Symbol: "BTCUSDT", Price: 35000, Time: 1},
	)
	if err != nil {
		t.Fatalf("unexpected error: [%v]", err)
	}

	err = repository.SaveTick(
		&scraper.Tick{Symbol: "BTCUSDT", Price: 35001, Time: 2},
	)
	if err != nil {
		t.Fatalf("unexpected error: [%v]", err)
	}

	tick, exists := repository.Tick("BTCUSDT")
	if !exists {
		t.Fatalf("expected a stored tick")
	}

	// Each save overwrites the symbol's previous tick.
	expectedPrice := 35001.0
	if tick.Price != expectedPrice {
		t.Errorf(
			"unexpected tick price\n"+
				"expected: [%v]\n"+
				"actual:   [%v]",
			expectedPrice,
			tick.Price,
		)
	}
}
