package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	scraper "github.com/aumanusorn/exchanges-dashboard"
	"github.com/aumanusorn/exchanges-dashboard/binance"
	"github.com/aumanusorn/exchanges-dashboard/inmem"
	"github.com/aumanusorn/exchanges-dashboard/logrus"
	"github.com/aumanusorn/exchanges-dashboard/postgres"
)

func main() {
	ctx, cancelCtx := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer cancelCtx()

	config, err := readConfig()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "could not read config: [%v]", err)
		os.Exit(1)
	}

	logger := logrus.ConfigureStandardLogger(
		config.Logging.Format,
		config.Logging.Level,
	)

	logger.Infof("starting binance futures scraper")

	repositories, err := buildRepositories(ctx, logger, config)
	if err != nil {
		logger.Fatalf("could not build repositories: [%v]", err)
	}

	exchange := binance.NewExchangeService(
		logger,
		config.Binance.ApiKey,
		config.Binance.SecretKey,
		config.Binance.Testnet,
	)

	syncer := scraper.NewSyncer(
		logger,
		exchange,
		repositories.income,
		repositories.balance,
		repositories.position,
		repositories.order,
		repositories.tick,
		config.Binance.Symbols,
	)

	syncer.Start(ctx)

	<-ctx.Done()

	logger.Infof("stopping binance futures scraper")
}

type repositories struct {
	income   scraper.IncomeRepository
	balance  scraper.BalanceRepository
	position scraper.PositionRepository
	order    scraper.OrderRepository
	tick     scraper.TickRepository
}

func buildRepositories(
	ctx context.Context,
	logger scraper.Logger,
	config *Config,
) (*repositories, error) {
	if len(config.Database.Address) == 0 {
		logger.Warningf(
			"no database configured; using in-memory repositories",
		)

		return &repositories{
			income:   inmem.NewIncomeRepository(),
			balance:  inmem.NewBalanceRepository(),
			position: inmem.NewPositionRepository(),
			order:    inmem.NewOrderRepository(),
			tick:     inmem.NewTickRepository(),
		}, nil
	}

	postgresConfig := &postgres.Config{
		Address:      config.Database.Address,
		User:         config.Database.User,
		Password:     config.Database.Password,
		Name:         config.Database.Name,
		SSLMode:      config.Database.SSLMode,
		MigrationDir: config.Database.MigrationDir,
	}

	client, err := postgres.Bootstrap(ctx, logger, postgresConfig)
	if err != nil {
		return nil, fmt.Errorf(
			"could not bootstrap postgres: [%v]",
			err,
		)
	}

	return &repositories{
		income:   postgres.NewIncomeRepository(client),
		balance:  postgres.NewBalanceRepository(client),
		position: postgres.NewPositionRepository(client),
		order:    postgres.NewOrderRepository(client),
		tick:     postgres.NewTickRepository(client),
	}, nil
}
