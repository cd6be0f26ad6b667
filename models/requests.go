// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"strings"
)

// RegisterRequest is the sign-up payload. CA-specific fields are only
// required when Role is [RoleCA].
type RegisterRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     Role   `json:"role" validate:"required,oneof=user ca"`

	LicenseNumber      string `json:"licenseNumber,omitempty" validate:"required_if=Role ca"`
	YearOfRegistration string `json:"yearOfRegistration,omitempty" validate:"required_if=Role ca"`
	PracticeArea       string `json:"practiceArea,omitempty" validate:"required_if=Role ca"`
}

// Normalize trims surrounding whitespace from every text field and
// lower-cases the email so that uniqueness checks are case-insensitive.
// The password is left untouched.
func (r *RegisterRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Role = Role(strings.ToLower(strings.TrimSpace(string(r.Role))))
	r.LicenseNumber = strings.TrimSpace(r.LicenseNumber)
	r.YearOfRegistration = strings.TrimSpace(r.YearOfRegistration)
	r.PracticeArea = strings.TrimSpace(r.PracticeArea)
}

// LoginRequest carries the credentials of an existing account.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Normalize lower-cases and trims the email.
func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// TransactionRequest is the payload for adding an income or an expense.
// Category is used for expenses, Source for incomes.
type TransactionRequest struct {
	Category string      `json:"category,omitempty"`
	Source   string      `json:"source,omitempty"`
	Amount   AmountInput `json:"amount" validate:"required,positive_amount"`
	Date     string      `json:"date" validate:"required,transaction_date"`
	Icon     string      `json:"icon,omitempty"`
}

// Normalize trims surrounding whitespace from the text fields.
func (r *TransactionRequest) Normalize() {
	r.Category = strings.TrimSpace(r.Category)
	r.Source = strings.TrimSpace(r.Source)
	r.Date = strings.TrimSpace(r.Date)
	r.Icon = strings.TrimSpace(r.Icon)
}

// AmountInput is a monetary amount as received from a client. Web forms
// send numbers as strings, API clients as JSON numbers; both are accepted.
type AmountInput string

// UnmarshalJSON accepts a JSON number, a JSON string or null.
func (a *AmountInput) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*a = ""
		return nil
	}

	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}

	*a = AmountInput(strings.TrimSpace(s))
	return nil
}

// AuthResponse is returned by successful registration and login.
type AuthResponse struct {
	ID    string  `json:"id"`
	User  Account `json:"user"`
	Token string  `json:"token"`
}

// MessageResponse is the JSON body of error responses.
type MessageResponse struct {
	Message string `json:"message"`
}
