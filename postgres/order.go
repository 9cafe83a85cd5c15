package postgres

import (
	"fmt"

	scraper "github.com/aumanusorn/exchanges-dashboard"
	"github.com/jackc/pgtype"
)

type OrderRepository struct {
	client *Client
}

func NewOrderRepository(client *Client) *OrderRepository {
	return &OrderRepository{client}
}

// ReplaceOrders replaces the whole open orders snapshot in a single
// transaction. Covered symbols are recorded separately so a symbol synced
// with zero open orders stays distinguishable from a symbol that has never
// been synced.
func (or *OrderRepository) ReplaceOrders(
	orders map[string][]*scraper.Order,
) error {
	tx, err := or.client.instance().Beginx()
	if err != nil {
		return fmt.Errorf("could not begin transaction: [%v]", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(`DELETE FROM open_order`); err != nil {
		return fmt.Errorf("could not delete open orders: [%v]", err)
	}

	if _, err := tx.Exec(`DELETE FROM open_order_symbol`); err != nil {
		return fmt.Errorf("could not delete open order symbols: [%v]", err)
	}

	rows := make([]*orderRow, 0)
	for symbol, symbolOrders := range orders {
		if _, err := tx.Exec(
			`INSERT INTO open_order_symbol (symbol) VALUES ($1)`,
			symbol,
		); err != nil {
			return fmt.Errorf(
				"could not insert open order symbol [%v]: [%v]",
				symbol,
				err,
			)
		}

		for _, order := range symbolOrders {
			rows = append(rows, new(orderRow).wrap(order))
		}
	}

	if len(rows) > 0 {
		_, err = tx.NamedExec(
			`INSERT INTO
			open_order (symbol, price, quantity, side, position_side, type)
			VALUES (:symbol, :price, :quantity, :side, :position_side, :type)`,
			rows,
		)
		if err != nil {
			return fmt.Errorf("could not insert open orders: [%v]", err)
		}
	}

	return tx.Commit()
}

type orderRow struct {
	Symbol       string
	Price        pgtype.Float8
	Quantity     pgtype.Float8
	Side         string
	PositionSide string `db:"position_side"`
	Type         string
}

func (or *orderRow) wrap(order *scraper.Order) *orderRow {
	or.Symbol = order.Symbol
	or.Price = toPgFloat(order.Price)
	or.Quantity = toPgFloat(order.Quantity)
	or.Side = order.Side
	or.PositionSide = string(order.PositionSide)
	or.Type = order.Type

	return or
}
