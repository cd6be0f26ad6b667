// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-fin-tracker/models"
	"github.com/go-playground/validator/v10"
)

// AccountValidator validates registration and login payloads.
type AccountValidator struct {
	validate *validator.Validate
}

// NewAccountValidator constructs an AccountValidator and returns it as the
// Validator interface.
func NewAccountValidator() Validator {
	return &AccountValidator{validate: newStructValidator()}
}

// Validate accepts models.RegisterRequest and models.LoginRequest (values
// or pointers). Field names, when given, restrict validation to those Go
// struct fields.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLogin(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateRegister(ctx context.Context, req models.RegisterRequest, fields ...string) error {
	err := v.structCtx(ctx, req, fields...)
	if err == nil {
		return nil
	}

	failures := fieldFailures(err)
	if failures == nil {
		return ErrUnknownField
	}

	// order matters: missing base fields are reported before anything else
	for _, name := range []string{"fullName", "email", "password", "role"} {
		if fe, ok := failures[name]; ok && fe.Tag() == "required" {
			return ErrMissingRequiredFields
		}
	}

	if _, ok := failures["role"]; ok {
		return ErrInvalidRole
	}

	if _, ok := failures["email"]; ok {
		return ErrInvalidEmail
	}

	if _, ok := failures["password"]; ok {
		return ErrPasswordTooShort
	}

	for _, name := range []string{"licenseNumber", "yearOfRegistration", "practiceArea"} {
		if _, ok := failures[name]; ok {
			return ErrMissingCAFields
		}
	}

	return ErrUnknownField
}

func (v *AccountValidator) validateLogin(ctx context.Context, req models.LoginRequest, fields ...string) error {
	err := v.structCtx(ctx, req, fields...)
	if err == nil {
		return nil
	}

	if fieldFailures(err) == nil {
		return ErrUnknownField
	}

	return ErrMissingCredentials
}

func (v *AccountValidator) structCtx(ctx context.Context, obj any, fields ...string) error {
	if len(fields) > 0 {
		return v.validate.StructPartialCtx(ctx, obj, fields...)
	}

	return v.validate.StructCtx(ctx, obj)
}
