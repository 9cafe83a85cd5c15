package binance

import (
	"context"
	"fmt"

	"github.com/adshao/go-binance/v2/futures"
	scraper "github.com/aumanusorn/exchanges-dashboard"
)

func (es *ExchangeService) AccountSnapshot(
	ctx context.Context,
) (*scraper.AccountSnapshot, error) {
	requestCtx, cancelRequestCtx := context.WithTimeout(ctx, requestTimeout)
	defer cancelRequestCtx()

	account, err := es.client.NewGetAccountService().Do(requestCtx)
	if err != nil {
		return nil, err
	}

	balance, err := parseBalance(account)
	if err != nil {
		return nil, err
	}

	positions := make([]*scraper.Position, len(account.Positions))
	for index, accountPosition := range account.Positions {
		position, err := parsePosition(accountPosition)
		if err != nil {
			return nil, err
		}

		positions[index] = position
	}

	return &scraper.AccountSnapshot{
		Balance:   balance,
		Positions: positions,
	}, nil
}

func parseBalance(account *futures.Account) (*scraper.Balance, error) {
	totalBalance, err := parseFloat(account.TotalWalletBalance)
	if err != nil {
		return nil, fmt.Errorf(
			"could not parse total wallet balance [%v]: [%v]",
			account.TotalWalletBalance,
			err,
		)
	}

	totalUnrealizedProfit, err := parseFloat(account.TotalUnrealizedProfit)
	if err != nil {
		return nil, fmt.Errorf(
			"could not parse total unrealized profit [%v]: [%v]",
			account.TotalUnrealizedProfit,
			err,
		)
	}

	assets := make([]*scraper.AssetBalance, len(account.Assets))
	for index, accountAsset := range account.Assets {
		asset, err := parseAssetBalance(accountAsset)
		if err != nil {
			return nil, err
		}

		assets[index] = asset
	}

	return &scraper.Balance{
		TotalBalance:          totalBalance,
		TotalUnrealizedProfit: totalUnrealizedProfit,
		Assets:                assets,
	}, nil
}

func parseAssetBalance(
	accountAsset *futures.AccountAsset,
) (*scraper.AssetBalance, error) {
	balance, err := parseFloat(accountAsset.WalletBalance)
	if err != nil {
		return nil, fmt.Errorf(
			"could not parse wallet balance of asset [%v]: [%v]",
			accountAsset.Asset,
			err,
		)
	}

	unrealizedProfit, err := parseFloat(accountAsset.UnrealizedProfit)
	if err != nil {
		return nil, fmt.Errorf(
			"could not parse unrealized profit of asset [%v]: [%v]",
			accountAsset.Asset,
			err,
		)
	}

	return &scraper.AssetBalance{
		Asset:            accountAsset.Asset,
		Balance:          balance,
		UnrealizedProfit: unrealizedProfit,
	}, nil
}

func parsePosition(
	accountPosition *futures.AccountPosition,
) (*scraper.Position, error) {
	entryPrice, err := parseFloat(accountPosition.EntryPrice)
	if err != nil {
		return nil, fmt.Errorf(
			"could not parse entry price of position [%v]: [%v]",
			accountPosition.Symbol,
			err,
		)
	}

	size, err := parseFloat(accountPosition.PositionAmt)
	if err != nil {
		return nil, fmt.Errorf(
			"could not parse size of position [%v]: [%v]",
			accountPosition.Symbol,
			err,
		)
	}

	unrealizedProfit, err := parseFloat(accountPosition.UnrealizedProfit)
	if err != nil {
		return nil, fmt.Errorf(
			"could not parse unrealized profit of position [%v]: [%v]",
			accountPosition.Symbol,
			err,
		)
	}

	return &scraper.Position{
		Symbol:           accountPosition.Symbol,
		EntryPrice:       entryPrice,
		Size:             size,
		Side:             scraper.PositionSide(accountPosition.PositionSide),
		UnrealizedProfit: unrealizedProfit,
	}, nil
}
