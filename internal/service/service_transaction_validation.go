// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-fin-tracker/internal/store"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"github.com/MKhiriev/go-fin-tracker/internal/validators"
	"github.com/MKhiriev/go-fin-tracker/models"
)

// TransactionValidationService checks transaction input before it reaches
// the wrapped TransactionService.
type TransactionValidationService struct {
	inner     TransactionService
	validator validators.Validator
}

func NewTransactionValidationService(kind models.TransactionType) TransactionServiceWrapper {
	return &TransactionValidationService{
		validator: validators.NewTransactionValidator(kind),
	}
}

func (v *TransactionValidationService) Add(ctx context.Context, accountID string, req models.TransactionRequest) (models.Transaction, error) {
	req.Normalize()

	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Transaction{}, fmt.Errorf("transaction data is invalid: %w", err)
	}

	return v.inner.Add(ctx, accountID, req)
}

func (v *TransactionValidationService) List(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return nil, fmt.Errorf("transaction filter is invalid: %w", err)
	}

	return v.inner.List(ctx, filter)
}

// Delete rejects ids that are not UUIDs as not found, sparing the database
// a query that cannot match.
func (v *TransactionValidationService) Delete(ctx context.Context, accountID, id string) error {
	if !utils.IsValidID(id) {
		return store.ErrTransactionNotFound
	}

	return v.inner.Delete(ctx, accountID, id)
}

func (v *TransactionValidationService) Export(ctx context.Context, w io.Writer, filter models.TransactionFilter) error {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return fmt.Errorf("transaction filter is invalid: %w", err)
	}

	return v.inner.Export(ctx, w, filter)
}

func (v *TransactionValidationService) Wrap(wrapped TransactionService) TransactionService {
	v.inner = wrapped
	return v
}
