// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	tagPositiveAmount  = "positive_amount"
	tagTransactionDate = "transaction_date"

	// bounds checked on a parsed amount before it is rounded
	maxAmountIntegerDigits = 12
	maxAmountScale         = 32

	// DateLayout is the calendar date format accepted for transactions and
	// range filters.
	DateLayout = "2006-01-02"
)

// newStructValidator returns a validator.Validate that reports JSON field
// names and knows the custom money and date tags.
func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// registration only fails on duplicate tags, which would be a programming error
	_ = v.RegisterValidation(tagPositiveAmount, func(fl validator.FieldLevel) bool {
		_, err := ParseAmount(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation(tagTransactionDate, func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})

	return v
}

// MaxAmount is the largest amount a single transaction may carry. It matches
// the NUMERIC(14, 2) amount columns.
var MaxAmount = decimal.RequireFromString("999999999999.99")

// ParseAmount parses a positive decimal amount no greater than [MaxAmount].
// Amounts are kept with two fractional digits.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}

	// "1e50000000" parses instantly but rescaling it does not
	if amount.NumDigits()+int(amount.Exponent()) > maxAmountIntegerDigits || amount.Exponent() < -maxAmountScale {
		return decimal.Zero, ErrInvalidAmount
	}

	amount = amount.Round(2)
	if !amount.IsPositive() || amount.GreaterThan(MaxAmount) {
		return decimal.Zero, ErrInvalidAmount
	}

	return amount, nil
}

// ParseDate accepts a calendar date (YYYY-MM-DD) or an RFC 3339 timestamp
// and returns it in UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrDateRequired
	}

	if d, err := time.Parse(DateLayout, s); err == nil {
		return d.UTC(), nil
	}

	d, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	return d.UTC(), nil
}

// fieldFailures returns the failed field errors of err keyed by JSON field
// name, or nil when err is not a validation error.
func fieldFailures(err error) map[string]validator.FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	failures := make(map[string]validator.FieldError, len(validationErrors))
	for _, fe := range validationErrors {
		failures[fe.Field()] = fe
	}

	return failures
}
