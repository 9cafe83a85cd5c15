package postgres

import (
	"database/sql"
	"fmt"

	scraper "github.com/aumanusorn/exchanges-dashboard"
	"github.com/jackc/pgtype"
)

type IncomeRepository struct {
	client *Client
}

func NewIncomeRepository(client *Client) *IncomeRepository {
	return &IncomeRepository{client}
}

// SaveIncomes appends the records to the income ledger. Records whose
// transaction id is already stored are skipped, so overlapping pages can
// be written repeatedly without double-counting.
func (ir *IncomeRepository) SaveIncomes(incomes []*scraper.Income) error {
	if len(incomes) == 0 {
		return nil
	}

	query := `INSERT INTO
		income (transaction_id, symbol, asset, type, income, time)
		VALUES (:transaction_id, :symbol, :asset, :type, :income, :time)
		ON CONFLICT (transaction_id) DO NOTHING`

	rows := make([]*incomeRow, len(incomes))
	for index, income := range incomes {
		rows[index] = new(incomeRow).wrap(income)
	}

	_, err := ir.client.instance().NamedExec(query, rows)
	if err != nil {
		return fmt.Errorf(
			"could not execute command for [%v] income rows: [%v]",
			len(rows),
			err,
		)
	}

	return nil
}

func (ir *IncomeRepository) NewestIncomeTime() (int64, bool, error) {
	var newestTime sql.NullInt64

	err := ir.client.instance().Get(
		&newestTime,
		`SELECT MAX(time) FROM income`,
	)
	if err != nil {
		return 0, false, fmt.Errorf(
			"could not execute newest income time query: [%v]",
			err,
		)
	}

	if !newestTime.Valid {
		return 0, false, nil
	}

	return newestTime.Int64, true, nil
}

type incomeRow struct {
	TransactionID int64 `db:"transaction_id"`
	Symbol        string
	Asset         string
	Type          string
	Income        pgtype.Float8
	Time          int64
}

func (ir *incomeRow) wrap(income *scraper.Income) *incomeRow {
	ir.TransactionID = income.TransactionID
	ir.Symbol = income.Symbol
	ir.Asset = income.Asset
	ir.Type = income.Type
	ir.Income = toPgFloat(income.Income)
	ir.Time = income.Time

	return ir
}
