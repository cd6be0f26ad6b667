// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-fin-tracker/internal/logger"

// Storages groups the repositories the services are built from.
type Storages struct {
	AccountRepository AccountRepository
	ExpenseRepository TransactionRepository
	IncomeRepository  TransactionRepository
	Pinger            Pinger
}

// NewStorages wires every repository to db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		AccountRepository: NewAccountRepository(db, logger),
		ExpenseRepository: NewExpenseRepository(db, logger),
		IncomeRepository:  NewIncomeRepository(db, logger),
		Pinger:            db,
	}
}
