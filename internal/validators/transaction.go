// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-fin-tracker/models"
	"github.com/go-playground/validator/v10"
)

// TransactionValidator validates income or expense payloads. An expense
// needs a category, an income needs a source.
type TransactionValidator struct {
	kind     models.TransactionType
	validate *validator.Validate
}

// NewTransactionValidator constructs a validator for transactions of the
// given kind.
func NewTransactionValidator(kind models.TransactionType) Validator {
	return &TransactionValidator{kind: kind, validate: newStructValidator()}
}

// Validate accepts models.TransactionRequest and models.TransactionFilter
// (values or pointers).
func (v *TransactionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TransactionRequest:
		return v.validateRequest(ctx, value)
	case *models.TransactionRequest:
		return v.validateRequest(ctx, *value)

	case models.TransactionFilter:
		return v.validateFilter(value)
	case *models.TransactionFilter:
		return v.validateFilter(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *TransactionValidator) validateRequest(ctx context.Context, req models.TransactionRequest) error {
	switch v.kind {
	case models.TransactionExpense:
		if strings.TrimSpace(req.Category) == "" {
			return ErrCategoryRequired
		}
	case models.TransactionIncome:
		if strings.TrimSpace(req.Source) == "" {
			return ErrSourceRequired
		}
	default:
		return ErrUnsupportedType
	}

	err := v.validate.StructCtx(ctx, req)
	if err == nil {
		return nil
	}

	failures := fieldFailures(err)
	if failures == nil {
		return ErrUnknownField
	}

	if _, ok := failures["amount"]; ok {
		return ErrInvalidAmount
	}

	if fe, ok := failures["date"]; ok {
		if fe.Tag() == "required" {
			return ErrDateRequired
		}
		return ErrInvalidDate
	}

	return ErrUnknownField
}

func (v *TransactionValidator) validateFilter(filter models.TransactionFilter) error {
	if filter.AccountID == "" {
		return ErrUnknownField
	}

	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return ErrInvalidDateRange
	}

	return nil
}
