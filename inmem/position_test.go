package inmem

import (
	"testing"

	scraper "github.com/aumanusorn/exchanges-dashboard"
)

func TestPositionRepository_ReplacePositions(t *testing.T) {
	repository := NewPositionRepository()

	if positions := repository.Positions(); len(positions) != 0 {
		t.Fatalf("expected no positions before the first sync")
	}

	err := repository.ReplacePositions([]*scraper.Position{
		position("BTCUSDT", scraper.PositionSideLong),
		position("ETHUSDT", scraper.PositionSideShort),
	})
	if err != nil {
		t.Fatalf("unexpected error: [%v]", err)
	}

	// The next sync replaces the whole set; the ETHUSDT position must
	// not survive it.
	err = repository.ReplacePositions([]*scraper.Position{
		position("BTCUSDT", scraper.PositionSideLong),
	})
	if err != nil {
		t.Fatalf("unexpected error: [%v]", err)
	}

	positions := repository.Positions()

	expectedCount := 1
	actualCount := len(positions)

	if actualCount != expectedCount {
		t.Fatalf(
			"unexpected positions count\n"+
				"expected: [%v]\n"+
				"actual:   [%v]",
			expectedCount,
			actualCount,
		)
	}

	expectedSymbol := "BTCUSDT"
	actualSymbol := positions[0].Symbol

	if actualSymbol != expectedSymbol {
		t.Errorf(
			"unexpected position symbol\n"+
				"expected: [%v]\n"+
				"actual:   [%v]",
			expectedSymbol,
			actualSymbol,
		)
	}
}

func TestPositionRepository_ReplacePositionsWithEmptySet(t *testing.T) {
	repository := NewPositionRepository()

	err := repository.ReplacePositions([]*scraper.Position{
		position("BTCUSDT", scraper.PositionSideLong),
	})
	if err != nil {
		t.Fatalf("unexpected error: [%v]", err)
	}

	if err := repository.ReplacePositions(nil); err != nil {
		t.Fatalf("unexpected error: [%v]", err)
	}

	if positions := repository.Positions(); len(positions) != 0 {
		t.Errorf("expected no positions after syncing an empty set")
	}
}

func position(symbol string, side scraper.PositionSide) *scraper.Position {
	return &scraper.Position{
		Symbol:           symbol,
		EntryPrice:       100,
		Size:             1,
		Side:             side,
		UnrealizedProfit: 5,
	}
}
