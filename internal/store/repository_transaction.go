// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/models"
	"github.com/shopspring/decimal"
)

// transactionRepository is the SQL implementation of [TransactionRepository]
// for a single table, expenses or incomes.
type transactionRepository struct {
	table  transactionTable
	db     *DB
	logger *logger.Logger
}

// NewExpenseRepository constructs a [TransactionRepository] over the
// expenses table.
func NewExpenseRepository(db *DB, logger *logger.Logger) TransactionRepository {
	return newTransactionRepository(expensesTable, db, logger)
}

// NewIncomeRepository constructs a [TransactionRepository] over the incomes
// table.
func NewIncomeRepository(db *DB, logger *logger.Logger) TransactionRepository {
	return newTransactionRepository(incomesTable, db, logger)
}

func newTransactionRepository(table transactionTable, db *DB, logger *logger.Logger) *transactionRepository {
	logger.Debug().Str("table", table.name).Msg("creating transaction repository")
	return &transactionRepository{
		table:  table,
		db:     db,
		logger: logger,
	}
}

func (r *transactionRepository) Create(ctx context.Context, transaction models.Transaction) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	transaction.Type = r.table.kind
	transaction.Date = transaction.Date.UTC()
	transaction.Amount = transaction.Amount.Round(2)
	if transaction.CreatedAt.IsZero() {
		transaction.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	query, args, err := buildInsertTransactionQuery(r.db.builder, r.table, transaction)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.Create").Msg("error building insert query")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*transactionRepository.Create").Str("table", r.table.name).Msg("error inserting transaction")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return transaction, nil
}

func (r *transactionRepository) List(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTransactionsQuery(r.db.builder, r.table, filter)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.List").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var transactions []models.Transaction
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		transactions, err = r.queryTransactions(ctx, query, args)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.List").Str("table", r.table.name).Msg("error listing transactions")
		return nil, err
	}

	return transactions, nil
}

func (r *transactionRepository) queryTransactions(ctx context.Context, query string, args []any) ([]models.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0)
	for rows.Next() {
		transaction := models.Transaction{Type: r.table.kind}

		var label string
		if err = rows.Scan(
			&transaction.ID,
			&transaction.AccountID,
			&label,
			&transaction.Icon,
			&transaction.Amount,
			&transaction.Date,
			&transaction.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if r.table.kind == models.TransactionIncome {
			transaction.Source = label
		} else {
			transaction.Category = label
		}
		transaction.Amount = transaction.Amount.Round(2)

		transactions = append(transactions, transaction)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return transactions, nil
}

func (r *transactionRepository) Delete(ctx context.Context, accountID, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTransactionQuery(r.db.builder, r.table, accountID, id)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.Delete").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.Delete").Str("table", r.table.name).Msg("error deleting transaction")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTransactionNotFound
	}

	return nil
}

func (r *transactionRepository) Total(ctx context.Context, filter models.TransactionFilter) (decimal.Decimal, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildTotalQuery(r.db.builder, r.db.amountSum, r.table, filter)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.Total").Msg("error building total query")
		return decimal.Zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total decimal.Decimal
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&total)
	})
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.Total").Str("table", r.table.name).Msg("error summing transactions")
		return decimal.Zero, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return r.db.amountSum.value(total), nil
}

func (r *transactionRepository) TotalsByLabel(ctx context.Context, filter models.TransactionFilter) ([]models.LabelAmount, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildTotalsByLabelQuery(r.db.builder, r.db.amountSum, r.table, filter)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.TotalsByLabel").Msg("error building totals query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var totals []models.LabelAmount
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		totals, err = r.queryLabelAmounts(ctx, query, args)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.TotalsByLabel").Str("table", r.table.name).Msg("error grouping transactions")
		return nil, err
	}

	return totals, nil
}

func (r *transactionRepository) queryLabelAmounts(ctx context.Context, query string, args []any) ([]models.LabelAmount, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	totals := make([]models.LabelAmount, 0)
	for rows.Next() {
		var item models.LabelAmount
		if err = rows.Scan(&item.Name, &item.Amount); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		item.Amount = r.db.amountSum.value(item.Amount)
		totals = append(totals, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return totals, nil
}
