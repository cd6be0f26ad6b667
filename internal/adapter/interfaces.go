// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the fintrack REST API.
//
// The primary abstraction is [ServerAdapter], which decouples the terminal
// client from the underlying protocol. Error values defined in errors.go are
// mapped from HTTP status codes by mapHTTPError so that callers can use
// [errors.Is] for transport-agnostic error handling (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-fin-tracker/models"
)

// DateRange narrows list and export calls. Empty bounds are not sent.
type DateRange struct {
	From string
	To   string
}

// ServerAdapter defines communication with the fintrack server.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account. On success the returned token is stored
	// via SetToken.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates with email and password. On success the returned
	// token is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// GetUser returns the account the stored token belongs to.
	GetUser(ctx context.Context) (models.Account, error)

	AddTransaction(ctx context.Context, kind models.TransactionType, req models.TransactionRequest) (models.Transaction, error)
	ListTransactions(ctx context.Context, kind models.TransactionType, dates DateRange) ([]models.Transaction, error)
	DeleteTransaction(ctx context.Context, kind models.TransactionType, id string) error

	// ExportTransactions returns the CSV export of the caller's incomes or
	// expenses.
	ExportTransactions(ctx context.Context, kind models.TransactionType, dates DateRange) ([]byte, error)

	Dashboard(ctx context.Context) (models.Dashboard, error)

	// Version returns the server version. It needs no token.
	Version(ctx context.Context) (string, error)
}
