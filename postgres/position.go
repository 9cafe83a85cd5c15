package postgres

import (
	"fmt"

	scraper "github.com/aumanusorn/exchanges-dashboard"
	"github.com/jackc/pgtype"
)

type PositionRepository struct {
	client *Client
}

func NewPositionRepository(client *Client) *PositionRepository {
	return &PositionRepository{client}
}

// ReplacePositions replaces the whole stored position snapshot in a single
// transaction.
func (pr *PositionRepository) ReplacePositions(
	positions []*scraper.Position,
) error {
	tx, err := pr.client.instance().Beginx()
	if err != nil {
		return fmt.Errorf("could not begin transaction: [%v]", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(`DELETE FROM position`); err != nil {
		return fmt.Errorf("could not delete positions: [%v]", err)
	}

	if len(positions) > 0 {
		rows := make([]*positionRow, len(positions))
		for index, position := range positions {
			rows[index] = new(positionRow).wrap(position)
		}

		_, err = tx.NamedExec(
			`INSERT INTO
			position (symbol, side, entry_price, size, unrealized_profit)
			VALUES (:symbol, :side, :entry_price, :size, :unrealized_profit)`,
			rows,
		)
		if err != nil {
			return fmt.Errorf("could not insert positions: [%v]", err)
		}
	}

	return tx.Commit()
}

type positionRow struct {
	Symbol           string
	Side             string
	EntryPrice       pgtype.Float8 `db:"entry_price"`
	Size             pgtype.Float8
	UnrealizedProfit pgtype.Float8 `db:"unrealized_profit"`
}

func (pr *positionRow) wrap(position *scraper.Position) *positionRow {
	pr.Symbol = position.Symbol
	pr.Side = string(position.Side)
	pr.EntryPrice = toPgFloat(position.EntryPrice)
	pr.Size = toPgFloat(position.Size)
	pr.UnrealizedProfit = toPgFloat(position.UnrealizedProfit)

	return pr
}
