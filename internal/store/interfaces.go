// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/go-fin-tracker/models"
	"github.com/shopspring/decimal"
)

// AccountRepository persists users and Chartered Accountants. Both kinds
// share the accounts registry, which owns the global email uniqueness.
type AccountRepository interface {
	// CreateUser stores a regular user and returns it with timestamps set.
	CreateUser(ctx context.Context, account models.Account) (models.Account, error)
	// CreateCA stores a Chartered Accountant and returns it with timestamps set.
	CreateCA(ctx context.Context, account models.Account) (models.Account, error)

	FindUserByEmail(ctx context.Context, email string) (models.Account, error)
	FindCAByEmail(ctx context.Context, email string) (models.Account, error)
	FindUserByID(ctx context.Context, id string) (models.Account, error)
	FindCAByID(ctx context.Context, id string) (models.Account, error)

	// EmailExists reports whether any account, user or CA, uses email.
	EmailExists(ctx context.Context, email string) (bool, error)
	// LicenseExists reports whether a CA with the license number exists.
	LicenseExists(ctx context.Context, licenseNumber string) (bool, error)
}

// TransactionRepository stores one kind of transaction (incomes or
// expenses). Every method is scoped to the owning account.
type TransactionRepository interface {
	Create(ctx context.Context, transaction models.Transaction) (models.Transaction, error)
	// List returns matching transactions ordered by date, newest first.
	List(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
	// Delete removes the transaction id of accountID and reports
	// ErrTransactionNotFound when nothing matched.
	Delete(ctx context.Context, accountID, id string) error
	// Total sums the amounts of matching transactions.
	Total(ctx context.Context, filter models.TransactionFilter) (decimal.Decimal, error)
	// TotalsByLabel sums amounts per category or source, largest first.
	TotalsByLabel(ctx context.Context, filter models.TransactionFilter) ([]models.LabelAmount, error)
}

// Pinger checks database reachability for health endpoints.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// ErrorClassificator decides how driver errors are handled by repositories.
type ErrorClassificator interface {
	// Classify tells whether a failed operation may succeed when retried.
	Classify(err error) ErrorClassification
	// UniqueViolation reports whether err is a unique constraint violation
	// and, if so, names the violated constraint or column.
	UniqueViolation(err error) (constraint string, ok bool)
}
