// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/store"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"github.com/MKhiriev/go-fin-tracker/internal/validators"
	"github.com/MKhiriev/go-fin-tracker/models"
)

// transactionService serves one transaction kind, incomes or expenses,
// on top of the repository for that kind.
type transactionService struct {
	kind       models.TransactionType
	repository store.TransactionRepository
	ids        *utils.UUIDGenerator

	logger *logger.Logger
}

// NewExpenseService constructs a TransactionService over expenses.
func NewExpenseService(repository store.TransactionRepository, logger *logger.Logger) TransactionService {
	return newTransactionService(models.TransactionExpense, repository, logger)
}

// NewIncomeService constructs a TransactionService over incomes.
func NewIncomeService(repository store.TransactionRepository, logger *logger.Logger) TransactionService {
	return newTransactionService(models.TransactionIncome, repository, logger)
}

func newTransactionService(kind models.TransactionType, repository store.TransactionRepository, logger *logger.Logger) *transactionService {
	return &transactionService{
		kind:       kind,
		repository: repository,
		ids:        utils.NewUUIDGenerator(),
		logger:     logger,
	}
}

// Add stores a new transaction for accountID. req must already be
// validated; amount and date are parsed here.
func (s *transactionService) Add(ctx context.Context, accountID string, req models.TransactionRequest) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	amount, err := validators.ParseAmount(string(req.Amount))
	if err != nil {
		return models.Transaction{}, err
	}

	date, err := validators.ParseDate(req.Date)
	if err != nil {
		return models.Transaction{}, err
	}

	transaction := models.Transaction{
		ID:        s.ids.Generate(),
		AccountID: accountID,
		Type:      s.kind,
		Icon:      req.Icon,
		Amount:    amount,
		Date:      date,
	}
	if s.kind == models.TransactionIncome {
		transaction.Source = req.Source
	} else {
		transaction.Category = req.Category
	}

	created, err := s.repository.Create(ctx, transaction)
	if err != nil {
		log.Err(err).Str("func", "*transactionService.Add").Str("type", string(s.kind)).Msg("error saving transaction")
		return models.Transaction{}, fmt.Errorf("error saving %s: %w", s.kind, err)
	}

	log.Debug().Str("func", "*transactionService.Add").Str("id", created.ID).Str("type", string(s.kind)).Msg("transaction added")
	return created, nil
}

func (s *transactionService) List(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	transactions, err := s.repository.List(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*transactionService.List").Str("type", string(s.kind)).Msg("error listing transactions")
		return nil, fmt.Errorf("error listing %s records: %w", s.kind, err)
	}

	return transactions, nil
}

// Delete removes a transaction owned by accountID. A transaction of another
// account is reported as store.ErrTransactionNotFound.
func (s *transactionService) Delete(ctx context.Context, accountID, id string) error {
	if err := s.repository.Delete(ctx, accountID, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*transactionService.Delete").Str("id", id).Msg("error deleting transaction")
		return fmt.Errorf("error deleting %s: %w", s.kind, err)
	}

	return nil
}

// Export writes a header row followed by one row per transaction, newest
// first.
func (s *transactionService) Export(ctx context.Context, w io.Writer, filter models.TransactionFilter) error {
	transactions, err := s.List(ctx, filter)
	if err != nil {
		return err
	}

	label := "Category"
	if s.kind == models.TransactionIncome {
		label = "Source"
	}

	writer := csv.NewWriter(w)
	if err = writer.Write([]string{label, "Icon", "Amount", "Date"}); err != nil {
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	for _, transaction := range transactions {
		record := []string{
			transaction.Label(),
			transaction.Icon,
			transaction.Amount.StringFixed(2),
			transaction.Date.UTC().Format(validators.DateLayout),
		}
		if err = writer.Write(record); err != nil {
			return fmt.Errorf("%w: %w", ErrExportFailed, err)
		}
	}

	writer.Flush()
	if err = writer.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	return nil
}
