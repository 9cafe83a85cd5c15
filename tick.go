package scraper

// Tick is the most recent aggregated trade observed for a symbol. Each new
// tick supersedes the previous one; no tick history is kept.
type Tick struct {
	Symbol   string
	Price    float64
	Quantity float64
	Time     int64 // exchange trade time, milliseconds
}

type TickRepository interface {
	// SaveTick stores the tick as the latest one for its symbol,
	// overwriting any previously stored tick.
	SaveTick(tick *Tick) error
}
