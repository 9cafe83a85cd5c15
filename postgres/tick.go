package postgres

import (
	"fmt"

	scraper "github.com/aumanusorn/exchanges-dashboard"
	"github.com/jackc/pgtype"
)

type TickRepository struct {
	client *Client
}

func NewTickRepository(client *Client) *TickRepository {
	return &TickRepository{client}
}

// SaveTick upserts the latest tick of its symbol. The store keeps exactly
// one tick per symbol; history is not retained.
func (tr *TickRepository) SaveTick(tick *scraper.Tick) error {
	query := `INSERT INTO tick (symbol, price, quantity, time)
		VALUES (:symbol, :price, :quantity, :time)
		ON CONFLICT (symbol) DO UPDATE SET
			price = EXCLUDED.price,
			quantity = EXCLUDED.quantity,
			time = EXCLUDED.time`

	_, err := tr.client.instance().NamedExec(
		query,
		new(tickRow).wrap(tick),
	)
	if err != nil {
		return fmt.Errorf(
			"could not execute command for tick of symbol [%v]: [%v]",
			tick.Symbol,
			err,
		)
	}

	return nil
}

type tickRow struct {
	Symbol   string
	Price    pgtype.Float8
	Quantity pgtype.Float8
	Time     int64
}

func (tr *tickRow) wrap(tick *scraper.Tick) *tickRow {
	tr.Symbol = tick.Symbol
	tr.Price = toPgFloat(tick.Price)
	tr.Quantity = toPgFloat(tick.Quantity)
	tr.Time = tick.Time

	return tr
}
