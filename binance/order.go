package binance

import (
	"context"
	"fmt"

	"github.com/adshao/go-binance/v2/futures"
	scraper "github.com/aumanusorn/exchanges-dashboard"
)

func (es *ExchangeService) OpenOrders(
	ctx context.Context,
	symbol string,
) ([]*scraper.Order, error) {
	requestCtx, cancelRequestCtx := context.WithTimeout(ctx, requestTimeout)
	defer cancelRequestCtx()

	openOrders, err := es.client.NewListOpenOrdersService().
		Symbol(symbol).
		Do(requestCtx)
	if err != nil {
		return nil, err
	}

	orders := make([]*scraper.Order, len(openOrders))
	for index, openOrder := range openOrders {
		order, err := parseOrder(openOrder)
		if err != nil {
			return nil, err
		}

		orders[index] = order
	}

	return orders, nil
}

func parseOrder(openOrder *futures.Order) (*scraper.Order, error) {
	price, err := parseFloat(openOrder.Price)
	if err != nil {
		return nil, fmt.Errorf(
			"could not parse price of order [%v]: [%v]",
			openOrder.OrderID,
			err,
		)
	}

	quantity, err := parseFloat(openOrder.OrigQuantity)
	if err != nil {
		return nil, fmt.Errorf(
			"could not parse quantity of order [%v]: [%v]",
			openOrder.OrderID,
			err,
		)
	}

	return &scraper.Order{
		Symbol:       openOrder.Symbol,
		Price:        price,
		Quantity:     quantity,
		Side:         string(openOrder.Side),
		PositionSide: scraper.PositionSide(openOrder.PositionSide),
		Type:         string(openOrder.Type),
	}, nil
}
