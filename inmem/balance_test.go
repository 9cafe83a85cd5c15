package inmem

import (
	"testing"

	scraper "github.com/aumanusorn/exchanges-dashboard"
)

func TestBalanceRepository_ReplaceBalance(t *testing.T) {
	repository := NewBalanceRepository()

	if balance := repository.Balance(); balance != nil {
		t.Fatalf("expected no balance before the first sync")
	}

	err := repository.ReplaceBalance(&scraper.Balance{
		TotalBalance:          1000,
		TotalUnrealizedProfit: 10,
		Assets: []*scraper.AssetBalance{
			{Asset: "USDT", Balance: 900, UnrealizedProfit: 10},
			{Asset: "BNB", Balance: 100, UnrealizedProfit: 0},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: [%v]", err)
	}

	// The next sync replaces the whole snapshot; the BNB entry must
	// not survive it.
	err = repository.ReplaceBalance(&scraper.Balance{
		TotalBalance:          1100,
		TotalUnrealizedProfit: 20,
		Assets: []*scraper.AssetBalance{
			{Asset: "USDT", Balance: 1100, UnrealizedProfit: 20},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: [%v]", err)
	}

	balance := repository.Balance()
	if balance == nil {
		t.Fatalf("expected a stored balance")
	}

	expectedTotal := float64(1100)
	if balance.TotalBalance != expectedTotal {
		t.Errorf(
			"unexpected total balance\n"+
				"expected: [%v]\n"+
				"actual:   [%v]",
			expectedTotal,
			balance.TotalBalance,
		)
	}

	expectedAssetsCount := 1
	actualAssetsCount := len(balance.Assets)

	if actualAssetsCount != expectedAssetsCount {
		t.Errorf(
			"unexpected assets count\n"+
				"expected: [%v]\n"+
				"actual:   [%v]",
			expectedAssetsCount,
			actualAssetsCount,
		)
	}
}
