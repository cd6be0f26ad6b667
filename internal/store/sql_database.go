// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/migrations"
	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"
)

const (
	maxReadRetries   = 3
	readRetryBackoff = 50 * time.Millisecond
)

// DB is a *sql.DB bound to one dialect. It carries the statement builder
// with the dialect's placeholder format and the error classificator used by
// repositories.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	amountSum          amountSum
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database configured by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

func newDB(conn *sql.DB, dialect string, placeholder sq.PlaceholderFormat, classificator ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		amountSum:          amountSumFor(dialect),
		errorClassificator: classificator,
		logger:             log,
	}
}

// Migrate applies the embedded migrations of the DB dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

// withRetry runs a read operation again while the classificator reports
// the failure as transient.
func (db *DB) withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(maxReadRetries-1, retry.NewExponential(readRetryBackoff))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := op(ctx)
		if err != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Str("func", "*DB.withRetry").Msg("retrying transient database error")
			return retry.RetryableError(err)
		}
		return err
	})
}

// rollback is deferred by write transactions; it is a no-op after commit.
func rollback(ctx context.Context, tx *sql.Tx, funcName string) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error rolling back transaction")
	}
}
