// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-fin-tracker/models"
)

// AuthService registers and authenticates users and Chartered Accountants
// and manages their bearer tokens.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.Account, error)
	Login(ctx context.Context, req models.LoginRequest) (models.Account, error)
	// FindAccount looks the id up among users first, then among CAs.
	FindAccount(ctx context.Context, id string) (models.Account, error)
	CreateToken(ctx context.Context, account models.Account) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TransactionService manages the incomes or the expenses of an account.
type TransactionService interface {
	Add(ctx context.Context, accountID string, req models.TransactionRequest) (models.Transaction, error)
	List(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
	Delete(ctx context.Context, accountID, id string) error
	// Export writes the matching transactions to w as CSV.
	Export(ctx context.Context, w io.Writer, filter models.TransactionFilter) error
}

type DashboardService interface {
	GetDashboard(ctx context.Context, accountID string) (models.Dashboard, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// Ping reports whether the storage is reachable.
	Ping(ctx context.Context) error
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// TransactionServiceWrapper defines middleware composition for
// TransactionService.
type TransactionServiceWrapper interface {
	Wrap(TransactionService) TransactionService
}
