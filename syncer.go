package scraper

import (
	"context"
	"fmt"
	"time"
)

const (
	incomeSyncInterval  = 60 * time.Second
	accountSyncInterval = 20 * time.Second
	ordersSyncInterval  = 20 * time.Second
	tickPollInterval    = 5 * time.Second

	// incomePageSize is the maximum page size accepted by the exchange
	// for income history queries.
	incomePageSize = 1000

	// maxIncomeSyncRounds bounds the catch-up work done by a single
	// income sync invocation. Remaining backlog is picked up on the next
	// scheduled invocation.
	maxIncomeSyncRounds = 3
)

// incomeEpoch is the earliest possible income record time. Binance started
// in September 2017, so no record can predate it.
var incomeEpoch = time.Date(2017, 9, 1, 0, 0, 0, 0, time.UTC).UnixMilli()

// Syncer keeps the local store in sync with the authoritative state of the
// exchange account. Every sync task runs as an independent loop on its own
// cadence; tasks share nothing but the repositories they write to and a
// failed cycle is always retried on the next one.
type Syncer struct {
	logger   Logger
	exchange ExchangeService
	symbols  []string

	incomeRepository   IncomeRepository
	balanceRepository  BalanceRepository
	positionRepository PositionRepository
	orderRepository    OrderRepository
	tickRepository     TickRepository
}

func NewSyncer(
	logger Logger,
	exchange ExchangeService,
	incomeRepository IncomeRepository,
	balanceRepository BalanceRepository,
	positionRepository PositionRepository,
	orderRepository OrderRepository,
	tickRepository TickRepository,
	symbols []string,
) *Syncer {
	return &Syncer{
		logger:             logger.WithField("exchange", exchange.Name()),
		exchange:           exchange,
		symbols:            symbols,
		incomeRepository:   incomeRepository,
		balanceRepository:  balanceRepository,
		positionRepository: positionRepository,
		orderRepository:    orderRepository,
		tickRepository:     tickRepository,
	}
}

// Start launches all sync loops: one for the income ledger, one for the
// account snapshot, one for open orders and one trade stream poller per
// configured symbol. Loops run until the context is done.
func (s *Syncer) Start(ctx context.Context) {
	s.logger.Infof("starting syncer for symbols %v", s.symbols)

	go s.incomeLoop(ctx)
	go s.accountLoop(ctx)
	go s.ordersLoop(ctx)

	for _, symbol := range s.symbols {
		go s.tickLoop(ctx, symbol)
	}
}

func (s *Syncer) incomeLoop(ctx context.Context) {
	logger := s.logger.WithField("task", "income-sync")
	logger.Infof("starting income sync loop")

	for {
		if ctx.Err() != nil {
			return
		}

		if err := s.syncIncomes(ctx, logger); err != nil {
			logger.Errorf("could not sync incomes: [%v]", err)
		} else {
			logger.Infof("synced incomes")
		}

		sleepContext(ctx, incomeSyncInterval)
	}
}

// syncIncomes advances the local income ledger towards the newest exchange
// state. The next page always starts right above the newest stored record
// time, so a failed or interrupted invocation resumes from persisted state
// without gaps or duplicates.
func (s *Syncer) syncIncomes(ctx context.Context, logger Logger) error {
	for round := 0; round < maxIncomeSyncRounds; round++ {
		watermark, err := s.incomeWatermark()
		if err != nil {
			return err
		}

		incomes, err := s.exchange.IncomeHistory(
			ctx,
			watermark+1,
			incomePageSize,
		)
		if err != nil {
			return fmt.Errorf("could not fetch income history: [%v]", err)
		}

		logger.Debugf(
			"fetched [%v] income records newer than [%v]",
			len(incomes),
			watermark,
		)

		if err := s.incomeRepository.SaveIncomes(incomes); err != nil {
			return fmt.Errorf("could not save income records: [%v]", err)
		}

		if len(incomes) < incomePageSize {
			break
		}
	}

	return nil
}

func (s *Syncer) incomeWatermark() (int64, error) {
	newestTime, exists, err := s.incomeRepository.NewestIncomeTime()
	if err != nil {
		return 0, fmt.Errorf("could not read newest income time: [%v]", err)
	}

	if !exists {
		return incomeEpoch, nil
	}

	return newestTime, nil
}

func (s *Syncer) accountLoop(ctx context.Context) {
	logger := s.logger.WithField("task", "account-sync")
	logger.Infof("starting account sync loop")

	for {
		if ctx.Err() != nil {
			return
		}

		if err := s.syncAccount(ctx); err != nil {
			logger.Errorf("could not sync account: [%v]", err)
		} else {
			logger.Infof("synced account")
		}

		sleepContext(ctx, accountSyncInterval)
	}
}

func (s *Syncer) syncAccount(ctx context.Context) error {
	snapshot, err := s.exchange.AccountSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("could not fetch account snapshot: [%v]", err)
	}

	if err := s.balanceRepository.ReplaceBalance(snapshot.Balance); err != nil {
		return fmt.Errorf("could not replace balance: [%v]", err)
	}

	positions := make([]*Position, 0)
	for _, position := range snapshot.Positions {
		if position.Side == PositionSideBoth {
			continue
		}

		positions = append(positions, position)
	}

	if err := s.positionRepository.ReplacePositions(positions); err != nil {
		return fmt.Errorf("could not replace positions: [%v]", err)
	}

	return nil
}

func (s *Syncer) ordersLoop(ctx context.Context) {
	logger := s.logger.WithField("task", "orders-sync")
	logger.Infof("starting open orders sync loop")

	for {
		if ctx.Err() != nil {
			return
		}

		if err := s.syncOpenOrders(ctx); err != nil {
			logger.Errorf("could not sync open orders: [%v]", err)
		} else {
			logger.Infof("synced open orders")
		}

		sleepContext(ctx, ordersSyncInterval)
	}
}

// syncOpenOrders fetches open orders for every configured symbol and
// replaces the whole snapshot at once. A failure for any single symbol
// discards the entire cycle so the stored snapshot never mixes fresh and
// stale symbol sets.
func (s *Syncer) syncOpenOrders(ctx context.Context) error {
	orders := make(map[string][]*Order)

	for _, symbol := range s.symbols {
		symbolOrders, err := s.exchange.OpenOrders(ctx, symbol)
		if err != nil {
			return fmt.Errorf(
				"could not fetch open orders for symbol [%v]: [%v]",
				symbol,
				err,
			)
		}

		orders[symbol] = symbolOrders
	}

	if err := s.orderRepository.ReplaceOrders(orders); err != nil {
		return fmt.Errorf("could not replace open orders: [%v]", err)
	}

	return nil
}

func (s *Syncer) tickLoop(ctx context.Context, symbol string) {
	logger := s.logger.
		WithField("task", "trade-stream").
		WithField("symbol", symbol)

	logger.Infof("starting trade stream loop")

	var stream TradeStream

	for {
		if ctx.Err() != nil {
			return
		}

		if stream == nil {
			var err error
			stream, err = s.exchange.SubscribeTrades(ctx, symbol)
			if err != nil {
				logger.Errorf("could not subscribe trades: [%v]", err)
				sleepContext(ctx, tickPollInterval)
				continue
			}
		}

		if stream.Stopping() {
			logger.Warningf("stopping trade stream processing")
			return
		}

		if err := s.pollTick(stream); err != nil {
			logger.Errorf("could not process tick: [%v]", err)
		}

		sleepContext(ctx, tickPollInterval)
	}
}

func (s *Syncer) pollTick(stream TradeStream) error {
	tick, exists := stream.Latest()
	if !exists {
		return nil
	}

	if err := s.tickRepository.SaveTick(tick); err != nil {
		return fmt.Errorf(
			"could not save tick for symbol [%v]: [%v]",
			tick.Symbol,
			err,
		)
	}

	return nil
}

func sleepContext(ctx context.Context, duration time.Duration) {
	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
