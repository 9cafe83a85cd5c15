package scraper

type Order struct {
	Symbol       string
	Price        float64
	Quantity     float64
	Side         string
	PositionSide PositionSide
	Type         string
}

type OrderRepository interface {
	// ReplaceOrders atomically replaces the whole orders-by-symbol
	// snapshot. A symbol mapped to an empty slice means "synced, no open
	// orders" and must stay distinguishable from a symbol that is absent
	// from the map.
	ReplaceOrders(orders map[string][]*Order) error
}
