package binance

import (
	"context"
	"fmt"

	"github.com/adshao/go-binance/v2/futures"
	scraper "github.com/aumanusorn/exchanges-dashboard"
)

func (es *ExchangeService) IncomeHistory(
	ctx context.Context,
	startTime int64,
	limit int,
) ([]*scraper.Income, error) {
	requestCtx, cancelRequestCtx := context.WithTimeout(ctx, requestTimeout)
	defer cancelRequestCtx()

	records, err := es.client.NewGetIncomeHistoryService().
		StartTime(startTime).
		Limit(int64(limit)).
		Do(requestCtx)
	if err != nil {
		return nil, err
	}

	incomes := make([]*scraper.Income, len(records))
	for index, record := range records {
		income, err := parseIncome(record)
		if err != nil {
			return nil, err
		}

		incomes[index] = income
	}

	return incomes, nil
}

func parseIncome(record *futures.IncomeHistory) (*scraper.Income, error) {
	income, err := parseFloat(record.Income)
	if err != nil {
		return nil, fmt.Errorf(
			"could not parse income value [%v] of transaction [%v]: [%v]",
			record.Income,
			record.TranID,
			err,
		)
	}

	return &scraper.Income{
		Symbol:        record.Symbol,
		Asset:         record.Asset,
		Type:          record.IncomeType,
		Income:        income,
		Time:          record.Time,
		TransactionID: record.TranID,
	}, nil
}
