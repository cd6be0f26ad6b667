// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// Registration and login. The texts are shown to API clients as is.
	ErrMissingRequiredFields = errors.New("All required fields must be provided")
	ErrInvalidRole           = errors.New("Role must be either user or ca")
	ErrInvalidEmail          = errors.New("Please provide a valid email address")
	ErrPasswordTooShort      = errors.New("Password must be at least 8 characters")
	ErrMissingCAFields       = errors.New("CA registration requires license number, year of registration, and practice area")
	ErrMissingCredentials    = errors.New("All fields are required")

	// Income and expense input.
	ErrCategoryRequired = errors.New("Category is required.")
	ErrSourceRequired   = errors.New("Source is required.")
	ErrInvalidAmount    = errors.New("Amount should be a valid number greater than 0.")
	ErrDateRequired     = errors.New("Date is required.")
	ErrInvalidDate      = errors.New("Date must be in YYYY-MM-DD format.")
	ErrInvalidDateRange = errors.New("Invalid date range.")
)
