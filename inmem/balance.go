package inmem

import (
	"sync"

	scraper "github.com/aumanusorn/exchanges-dashboard"
)

type BalanceRepository struct {
	balanceMutex sync.RWMutex
	balance      *scraper.Balance
}

func NewBalanceRepository() *BalanceRepository {
	return &BalanceRepository{}
}

func (br *BalanceRepository) ReplaceBalance(balance *scraper.Balance) error {
	br.balanceMutex.Lock()
	defer br.balanceMutex.Unlock()

	br.balance = balance

	return nil
}

// Balance returns the stored snapshot or nil when no sync happened yet.
func (br *BalanceRepository) Balance() *scraper.Balance {
	br.balanceMutex.RLock()
	defer br.balanceMutex.RUnlock()

	return br.balance
}
