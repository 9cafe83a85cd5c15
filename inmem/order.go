package inmem

import (
	"sync"

	scraper "github.com/aumanusorn/exchanges-dashboard"
)

type OrderRepository struct {
	ordersMutex sync.RWMutex
	orders      map[string][]*scraper.Order
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (or *OrderRepository) ReplaceOrders(
	orders map[string][]*scraper.Order,
) error {
	snapshot := make(map[string][]*scraper.Order, len(orders))
	for symbol, symbolOrders := range orders {
		snapshot[symbol] = symbolOrders
	}

	or.ordersMutex.Lock()
	defer or.ordersMutex.Unlock()

	or.orders = snapshot

	return nil
}

// Orders returns the stored snapshot or nil when no sync happened yet. A
// symbol key mapped to an empty slice means the symbol was synced and has
// no open orders.
func (or *OrderRepository) Orders() map[string][]*scraper.Order {
	or.ordersMutex.RLock()
	defer or.ordersMutex.RUnlock()

	if or.orders == nil {
		return nil
	}

	snapshot := make(map[string][]*scraper.Order, len(or.orders))
	for symbol, symbolOrders := range or.orders {
		snapshot[symbol] = symbolOrders
	}

	return snapshot
}
