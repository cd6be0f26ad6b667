// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/store"
	"github.com/MKhiriev/go-fin-tracker/models"
)

type Services struct {
	AuthService      AuthService
	ExpenseService   TransactionService
	IncomeService    TransactionService
	DashboardService DashboardService
	AppInfoService   AppInfoService
}

// NewServices builds every service on top of storages. Auth and
// transaction services are wrapped with their validation layers.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, storages.Pinger, logger)
	if err != nil {
		return nil, err
	}

	authService := NewAuthValidationService().Wrap(
		NewAuthService(storages.AccountRepository, cfg, logger),
	)
	expenseService := NewTransactionValidationService(models.TransactionExpense).Wrap(
		NewExpenseService(storages.ExpenseRepository, logger),
	)
	incomeService := NewTransactionValidationService(models.TransactionIncome).Wrap(
		NewIncomeService(storages.IncomeRepository, logger),
	)

	return &Services{
		AuthService:      authService,
		ExpenseService:   expenseService,
		IncomeService:    incomeService,
		DashboardService: NewDashboardService(storages.ExpenseRepository, storages.IncomeRepository, logger),
		AppInfoService:   appInfoService,
	}, nil
}
