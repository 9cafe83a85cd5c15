package postgres

import (
	"context"
	"fmt"
	"sync"
	"time"

	scraper "github.com/aumanusorn/exchanges-dashboard"
	"github.com/cenkalti/backoff/v4"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgtype"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Address      string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MigrationDir string
}

type Client struct {
	mutex    sync.RWMutex
	database *sqlx.DB
}

// Bootstrap runs the schema migration and connects the database, retrying
// the whole sequence with an exponential backoff so a scraper started
// before its database becomes ready does not crash-loop. The migration
// must be part of the retried operation because golang-migrate dials the
// database eagerly.
func Bootstrap(
	ctx context.Context,
	logger scraper.Logger,
	config *Config,
) (*Client, error) {
	var client *Client

	bootstrap := func() error {
		if err := RunMigration(logger, config); err != nil {
			logger.Errorf(
				"could not run postgres migration: [%v]",
				err,
			)
			return err
		}

		var err error
		client, err = NewClient(ctx, config)
		if err != nil {
			logger.Errorf(
				"could not create postgres client: [%v]",
				err,
			)
		}

		return err
	}

	if err := retryBootstrap(bootstrap); err != nil {
		return nil, err
	}

	return client, nil
}

func retryBootstrap(bootstrap func() error) error {
	return backoff.Retry(bootstrap, newConnectBackoff())
}

// NewClient connects the database and keeps watching the connection mode
// for the context lifetime.
func NewClient(ctx context.Context, config *Config) (*Client, error) {
	database, err := connectDatabase(config)
	if err != nil {
		return nil, err
	}

	client := &Client{database: database}

	go client.monitorDatabaseMode(ctx, config)

	return client, nil
}

func newConnectBackoff() *backoff.ExponentialBackOff {
	connectBackoff := backoff.NewExponentialBackOff()
	connectBackoff.InitialInterval = 1 * time.Second
	connectBackoff.MaxInterval = 30 * time.Second
	connectBackoff.MaxElapsedTime = 5 * time.Minute

	return connectBackoff
}

func connectDatabase(config *Config) (*sqlx.DB, error) {
	database, err := sqlx.Connect("pgx", databaseAddress(config))
	if err != nil {
		return nil, fmt.Errorf("could not connect database: [%v]", err)
	}

	return database, nil
}

func databaseAddress(config *Config) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		config.User,
		config.Password,
		config.Address,
		config.Name,
		config.SSLMode,
	)
}

func (c *Client) monitorDatabaseMode(ctx context.Context, config *Config) {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			var isReadonly bool
			err := c.database.Get(&isReadonly, "SELECT pg_is_in_recovery()")
			if err != nil {
				logrus.Errorf(
					"could not determine database mode: [%v]",
					err,
				)
				continue
			}

			if isReadonly {
				logrus.Infof(
					"database instance demoted to read-only mode; " +
						"reconnecting master database",
				)

				newDatabase, err := connectDatabase(config)
				if err != nil {
					logrus.Errorf(
						"could not reconnect master database: [%v]",
						err,
					)
					continue
				}

				c.mutex.Lock()
				_ = c.database.Close()
				c.database = newDatabase
				c.mutex.Unlock()

				logrus.Infof("reconnected master database")
			}
		case <-ctx.Done():
			_ = c.database.Close()
			return
		}
	}
}

func (c *Client) instance() *sqlx.DB {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.database
}

func RunMigration(logger scraper.Logger, config *Config) error {
	if len(config.MigrationDir) == 0 {
		logger.Infof("postgres migration disabled")
		return nil
	}

	logger.Infof("starting postgres migration")

	migration, err := migrate.New(
		"file://"+config.MigrationDir,
		databaseAddress(config),
	)
	if err != nil {
		return err
	}

	err = migration.Up()
	if err != nil {
		if err == migrate.ErrNoChange {
			logger.Infof("postgres migration skipped as there are no changes")
			return nil
		}

		return err
	}

	logger.Infof("postgres migration performed successfully")

	return nil
}

func toPgFloat(value float64) pgtype.Float8 {
	return pgtype.Float8{
		Float:  value,
		Status: pgtype.Present,
	}
}
