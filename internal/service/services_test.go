// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/mock"
	"github.com/MKhiriev/go-fin-tracker/internal/store"
	"github.com/MKhiriev/go-fin-tracker/internal/validators"
	"github.com/MKhiriev/go-fin-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestStorages(ctrl *gomock.Controller) *store.Storages {
	return &store.Storages{
		AccountRepository: mock.NewMockAccountRepository(ctrl),
		ExpenseRepository: mock.NewMockTransactionRepository(ctrl),
		IncomeRepository:  mock.NewMockTransactionRepository(ctrl),
		Pinger:            mock.NewMockPinger(ctrl),
	}
}

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)

	services, err := NewServices(newTestStorages(ctrl), config.App{Version: "1.0.0"}, logger.Nop())
	require.NoError(t, err)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.ExpenseService)
	assert.NotNil(t, services.IncomeService)
	assert.NotNil(t, services.DashboardService)
	assert.Equal(t, "1.0.0", services.AppInfoService.GetAppVersion(context.Background()))
}

func TestNewServices_NoVersion(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := NewServices(newTestStorages(ctrl), config.App{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestNewServices_TransactionServicesAreValidated(t *testing.T) {
	ctrl := gomock.NewController(t)

	services, err := NewServices(newTestStorages(ctrl), config.App{Version: "1.0.0"}, logger.Nop())
	require.NoError(t, err)

	// no repository expectations: validation must stop both calls
	_, err = services.ExpenseService.Add(context.Background(), "acc", models.TransactionRequest{Source: "Salary", Amount: "1", Date: "2026-01-01"})
	assert.ErrorIs(t, err, validators.ErrCategoryRequired)

	_, err = services.IncomeService.Add(context.Background(), "acc", models.TransactionRequest{Category: "Rent", Amount: "1", Date: "2026-01-01"})
	assert.ErrorIs(t, err, validators.ErrSourceRequired)
}
