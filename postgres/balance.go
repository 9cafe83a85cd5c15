package postgres

import (
	"fmt"

	scraper "github.com/aumanusorn/exchanges-dashboard"
	"github.com/jackc/pgtype"
)

type BalanceRepository struct {
	client *Client
}

func NewBalanceRepository(client *Client) *BalanceRepository {
	return &BalanceRepository{client}
}

// ReplaceBalance replaces the whole stored balance snapshot in a single
// transaction. Assets absent from the new snapshot disappear from the
// store; nothing is merged.
func (br *BalanceRepository) ReplaceBalance(balance *scraper.Balance) error {
	tx, err := br.client.instance().Beginx()
	if err != nil {
		return fmt.Errorf("could not begin transaction: [%v]", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(`DELETE FROM balance_asset`); err != nil {
		return fmt.Errorf("could not delete balance assets: [%v]", err)
	}

	if _, err := tx.Exec(`DELETE FROM balance`); err != nil {
		return fmt.Errorf("could not delete balance: [%v]", err)
	}

	_, err = tx.NamedExec(
		`INSERT INTO balance (total_balance, total_unrealized_profit)
		VALUES (:total_balance, :total_unrealized_profit)`,
		new(balanceRow).wrap(balance),
	)
	if err != nil {
		return fmt.Errorf("could not insert balance: [%v]", err)
	}

	if len(balance.Assets) > 0 {
		rows := make([]*assetBalanceRow, len(balance.Assets))
		for index, asset := range balance.Assets {
			rows[index] = new(assetBalanceRow).wrap(asset)
		}

		_, err = tx.NamedExec(
			`INSERT INTO balance_asset (asset, balance, unrealized_profit)
			VALUES (:asset, :balance, :unrealized_profit)`,
			rows,
		)
		if err != nil {
			return fmt.Errorf("could not insert balance assets: [%v]", err)
		}
	}

	return tx.Commit()
}

type balanceRow struct {
	TotalBalance          pgtype.Float8 `db:"total_balance"`
	TotalUnrealizedProfit pgtype.Float8 `db:"total_unrealized_profit"`
}

func (br *balanceRow) wrap(balance *scraper.Balance) *balanceRow {
	br.TotalBalance = toPgFloat(balance.TotalBalance)
	br.TotalUnrealizedProfit = toPgFloat(balance.TotalUnrealizedProfit)

	return br
}

type assetBalanceRow struct {
	Asset            string
	Balance          pgtype.Float8
	UnrealizedProfit pgtype.Float8 `db:"unrealized_profit"`
}

func (abr *assetBalanceRow) wrap(
	asset *scraper.AssetBalance,
) *assetBalanceRow {
	abr.Asset = asset.Asset
	abr.Balance = toPgFloat(asset.Balance)
	abr.UnrealizedProfit = toPgFloat(asset.UnrealizedProfit)

	return abr
}
