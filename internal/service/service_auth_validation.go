// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fin-tracker/internal/validators"
	"github.com/MKhiriev/go-fin-tracker/models"
)

// AuthValidationService normalizes and validates credentials before they
// reach the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewAccountValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.Account, error) {
	req.Normalize()

	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Account{}, fmt.Errorf("registration data is invalid: %w", err)
	}

	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.Account, error) {
	req.Normalize()

	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Account{}, fmt.Errorf("login data is invalid: %w", err)
	}

	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) FindAccount(ctx context.Context, id string) (models.Account, error) {
	return v.inner.FindAccount(ctx, id)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	return v.inner.CreateToken(ctx, account)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
