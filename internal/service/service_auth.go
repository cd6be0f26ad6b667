// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/store"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"github.com/MKhiriev/go-fin-tracker/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It hashes passwords with bcrypt and signs HS256 JWTs whose subject is the
// account id.
type authService struct {
	// accounts is the data-access layer for both account stores.
	accounts store.AccountRepository

	// ids generates identifiers for new accounts.
	ids *utils.UUIDGenerator

	// passwordHashCost is the bcrypt cost used when hashing new passwords.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// AccountRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction. Input is expected to be validated by the wrapper
// returned from NewAuthValidationService.
func NewAuthService(accounts store.AccountRepository, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.PasswordHashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &authService{
		accounts:         accounts,
		ids:              utils.NewUUIDGenerator(),
		passwordHashCost: cost,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		logger:           logger,
	}
}

// Register creates a user or a CA account depending on req.Role.
//
// Returns the persisted account or:
//   - store.ErrEmailAlreadyInUse if any account already uses the email.
//   - store.ErrLicenseAlreadyRegistered if a CA already holds the license.
//   - a wrapped storage or hashing error otherwise.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	exists, err := a.accounts.EmailExists(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("email lookup failed")
		return models.Account{}, fmt.Errorf("email lookup failed: %w", err)
	}
	if exists {
		return models.Account{}, store.ErrEmailAlreadyInUse
	}

	if req.Role == models.RoleCA {
		exists, err = a.accounts.LicenseExists(ctx, req.LicenseNumber)
		if err != nil {
			log.Err(err).Str("func", "*authService.Register").Msg("license lookup failed")
			return models.Account{}, fmt.Errorf("license lookup failed: %w", err)
		}
		if exists {
			return models.Account{}, store.ErrLicenseAlreadyRegistered
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.passwordHashCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.Account{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	account := models.Account{
		ID:           a.ids.Generate(),
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
	}

	var registered models.Account
	if req.Role == models.RoleCA {
		account.CAProfile = &models.CAProfile{
			LicenseNumber:      req.LicenseNumber,
			YearOfRegistration: req.YearOfRegistration,
			PracticeArea:       req.PracticeArea,
		}
		registered, err = a.accounts.CreateCA(ctx, account)
	} else {
		registered, err = a.accounts.CreateUser(ctx, account)
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("role", string(req.Role)).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	log.Info().Str("func", "*authService.Register").Str("account_id", registered.ID).Str("role", string(registered.Role)).Msg("account registered")
	return registered, nil
}

// Login authenticates an existing account. Users are looked up before CAs.
//
// Returns the authenticated account or ErrInvalidCredentials when the email
// is unknown or the password does not match.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	account, err := a.findByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrAccountNotFound) {
		log.Debug().Str("func", "*authService.Login").Msg("no account with this email")
		return models.Account{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("account search by email failed")
		return models.Account{}, fmt.Errorf("account search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		log.Debug().Str("func", "*authService.Login").Str("account_id", account.ID).Msg("wrong password")
		return models.Account{}, ErrInvalidCredentials
	}

	return account, nil
}

func (a *authService) findByEmail(ctx context.Context, email string) (models.Account, error) {
	account, err := a.accounts.FindUserByEmail(ctx, email)
	if !errors.Is(err, store.ErrAccountNotFound) {
		return account, err
	}

	return a.accounts.FindCAByEmail(ctx, email)
}

// FindAccount returns the account with the given id, or
// store.ErrAccountNotFound when neither store has it.
func (a *authService) FindAccount(ctx context.Context, id string) (models.Account, error) {
	account, err := a.accounts.FindUserByID(ctx, id)
	if !errors.Is(err, store.ErrAccountNotFound) {
		return account, err
	}

	return a.accounts.FindCAByID(ctx, id)
}

// CreateToken issues a signed JWT for the given account.
func (a *authService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, account.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed, bad signature)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need
// to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
