// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities used across the
// fintrack server and client: type-safe context keys, JSON response
// writing, HTTP client initialization, JWT generation and validation, and
// identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-fin-tracker/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AccountCtxKey is the key under which the auth middleware stores the
// authenticated *models.Account.
var AccountCtxKey = contextKey("account")

// WithAccount returns a copy of ctx carrying account.
func WithAccount(ctx context.Context, account *models.Account) context.Context {
	return context.WithValue(ctx, AccountCtxKey, account)
}

// GetAccountFromContext retrieves the authenticated account from the
// context.
//
// ok is false when no account is stored, when the stored value has an
// unexpected type, or when it is a nil pointer.
//
// Example usage:
//
//	account, ok := utils.GetAccountFromContext(r.Context())
//	if !ok {
//	    // handle missing account in context
//	}
func GetAccountFromContext(ctx context.Context) (*models.Account, bool) {
	account, ok := ctx.Value(AccountCtxKey).(*models.Account)
	if !ok || account == nil {
		return nil, false
	}

	return account, true
}
