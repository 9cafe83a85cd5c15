package binance

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/adshao/go-binance/v2/futures"
	scraper "github.com/aumanusorn/exchanges-dashboard"
)

const resubscribeBackoff = 5 * time.Second

// tradeStream keeps only the single most recent undelivered tick. Staleness
// is preferred over backlog growth: a tick not polled before the next one
// arrives is dropped.
type tradeStream struct {
	ctx context.Context

	latestMutex sync.Mutex
	latest      *scraper.Tick
}

func (es *ExchangeService) SubscribeTrades(
	ctx context.Context,
	symbol string,
) (scraper.TradeStream, error) {
	logger := es.logger.WithFields(map[string]interface{}{
		"exchange": es.Name(),
		"symbol":   symbol,
	})

	stream := &tradeStream{ctx: ctx}

	eventHandler := func(event *futures.WsAggTradeEvent) {
		tick, err := parseAggTradeEvent(event)
		if err != nil {
			logger.Errorf("could not parse trade event: [%v]", err)
			return
		}

		stream.push(tick)
	}

	errorHandler := func(err error) {
		logger.Errorf("trade stream error: [%v]", err)
	}

	doneChannel, stopChannel, err := futures.WsAggTradeServe(
		symbol,
		eventHandler,
		errorHandler,
	)
	if err != nil {
		return nil, err
	}

	go func() {
		logger.Infof("trade stream started")
		defer logger.Infof("trade stream terminated")

		for {
			select {
			case <-ctx.Done():
				close(stopChannel)
				return
			case <-doneChannel:
				logger.Warningf(
					"trade stream connection has been terminated; " +
						"resubscribing",
				)

				for {
					if ctx.Err() != nil {
						return
					}

					newDoneChannel, newStopChannel, serveErr :=
						futures.WsAggTradeServe(
							symbol,
							eventHandler,
							errorHandler,
						)
					if serveErr == nil {
						doneChannel = newDoneChannel
						stopChannel = newStopChannel
						break
					}

					logger.Errorf(
						"could not resubscribe trade stream: [%v]",
						serveErr,
					)

					time.Sleep(resubscribeBackoff)
				}
			}
		}
	}()

	return stream, nil
}

func (ts *tradeStream) push(tick *scraper.Tick) {
	ts.latestMutex.Lock()
	defer ts.latestMutex.Unlock()

	ts.latest = tick
}

func (ts *tradeStream) Latest() (*scraper.Tick, bool) {
	ts.latestMutex.Lock()
	defer ts.latestMutex.Unlock()

	if ts.latest == nil {
		return nil, false
	}

	tick := ts.latest
	ts.latest = nil

	return tick, true
}

func (ts *tradeStream) Stopping() bool {
	return ts.ctx.Err() != nil
}

func parseAggTradeEvent(
	event *futures.WsAggTradeEvent,
) (*scraper.Tick, error) {
	price, err := parseFloat(event.Price)
	if err != nil {
		return nil, fmt.Errorf(
			"could not parse price of trade [%v]: [%v]",
			event.AggregateTradeID,
			err,
		)
	}

	quantity, err := parseFloat(event.Quantity)
	if err != nil {
		return nil, fmt.Errorf(
			"could not parse quantity of trade [%v]: [%v]",
			event.AggregateTradeID,
			err,
		)
	}

	return &scraper.Tick{
		Symbol:   event.Symbol,
		Price:    price,
		Quantity: quantity,
		Time:     event.TradeTime,
	}, nil
}
