package scraper

type AssetBalance struct {
	Asset            string
	Balance          float64
	UnrealizedProfit float64
}

// Balance is a full-account balance snapshot. Each sync replaces the
// previous snapshot wholesale; there is no merging of asset entries.
type Balance struct {
	TotalBalance          float64
	TotalUnrealizedProfit float64
	Assets                []*AssetBalance
}

type BalanceRepository interface {
	ReplaceBalance(balance *Balance) error
}
