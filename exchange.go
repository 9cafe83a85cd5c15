package scraper

import "context"

// AccountSnapshot is the full account state as reported by the exchange:
// the balance plus all positions, including one-way mode BOTH entries.
// Filtering is the syncer's job, not the exchange adapter's.
type AccountSnapshot struct {
	Balance   *Balance
	Positions []*Position
}

// TradeStream is a push-based trade subscription bridged into a pull model.
// The underlying buffer keeps only the single most recent undelivered tick;
// older undelivered ticks are dropped.
type TradeStream interface {
	// Latest returns the most recent tick pushed since the previous call,
	// without blocking. The second return value is false when no new tick
	// has arrived.
	Latest() (*Tick, bool)

	// Stopping reports whether the underlying stream manager is shutting
	// down globally.
	Stopping() bool
}

type ExchangeService interface {
	Name() string

	// IncomeHistory returns up to limit income records with time greater
	// than or equal to startTime, ascending by time.
	IncomeHistory(
		ctx context.Context,
		startTime int64,
		limit int,
	) ([]*Income, error)

	AccountSnapshot(ctx context.Context) (*AccountSnapshot, error)

	OpenOrders(ctx context.Context, symbol string) ([]*Order, error)

	SubscribeTrades(ctx context.Context, symbol string) (TradeStream, error)
}
