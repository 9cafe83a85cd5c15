package binance

import (
	"strconv"
	"time"

	"github.com/adshao/go-binance/v2/futures"
	scraper "github.com/aumanusorn/exchanges-dashboard"
)

const requestTimeout = 1 * time.Minute

// ExchangeService talks to the Binance USD-M futures API: REST services
// for account state, open orders and income history, and the aggTrade
// websocket stream for live trade ticks.
type ExchangeService struct {
	logger scraper.Logger
	client *futures.Client
}

func NewExchangeService(
	logger scraper.Logger,
	apiKey, secretKey string,
	testnet bool,
) *ExchangeService {
	futures.UseTestnet = testnet

	return &ExchangeService{
		logger: logger,
		client: futures.NewClient(apiKey, secretKey),
	}
}

func (es *ExchangeService) Name() string {
	return "binance-futures"
}

func parseFloat(value string) (float64, error) {
	return strconv.ParseFloat(value, 64)
}
