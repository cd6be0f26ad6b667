// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/mock"
	"github.com/MKhiriev/go-fin-tracker/internal/store"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"github.com/MKhiriev/go-fin-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testAuthConfig = config.App{
	TokenSignKey:     "test-sign-key",
	TokenIssuer:      "fintrack-test",
	TokenDuration:    time.Hour,
	PasswordHashCost: bcrypt.MinCost,
}

func newTestAuthService(t *testing.T) (AuthService, *mock.MockAccountRepository) {
	ctrl := gomock.NewController(t)
	accounts := mock.NewMockAccountRepository(ctrl)
	return NewAuthService(accounts, testAuthConfig, logger.Nop()), accounts
}

func returnAccount(_ context.Context, account models.Account) (models.Account, error) {
	return account, nil
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestRegister_User(t *testing.T) {
	svc, accounts := newTestAuthService(t)

	req := models.RegisterRequest{FullName: "John", Email: "john@example.com", Password: "secret123", Role: models.RoleUser}

	accounts.EXPECT().EmailExists(gomock.Any(), "john@example.com").Return(false, nil)
	accounts.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(returnAccount)

	account, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, utils.IsValidID(account.ID))
	assert.Equal(t, "John", account.FullName)
	assert.Equal(t, models.RoleUser, account.Role)
	assert.Nil(t, account.CAProfile)
	assert.NotEqual(t, req.Password, account.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)))
}

func TestRegister_CA(t *testing.T) {
	svc, accounts := newTestAuthService(t)

	req := models.RegisterRequest{
		FullName: "Jane", Email: "jane@example.com", Password: "secret123", Role: models.RoleCA,
		LicenseNumber: "LIC-1", YearOfRegistration: "2015", PracticeArea: "Tax",
	}

	accounts.EXPECT().EmailExists(gomock.Any(), "jane@example.com").Return(false, nil)
	accounts.EXPECT().LicenseExists(gomock.Any(), "LIC-1").Return(false, nil)
	accounts.EXPECT().CreateCA(gomock.Any(), gomock.Any()).DoAndReturn(returnAccount)

	account, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, account.CAProfile)
	assert.Equal(t, "LIC-1", account.LicenseNumber)
	assert.Equal(t, "2015", account.YearOfRegistration)
	assert.Equal(t, "Tax", account.PracticeArea)
	assert.False(t, account.IsVerified)
}

func TestRegister_EmailInUse(t *testing.T) {
	svc, accounts := newTestAuthService(t)

	accounts.EXPECT().EmailExists(gomock.Any(), "john@example.com").Return(true, nil)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Email: "john@example.com", Role: models.RoleCA})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyInUse)
}

func TestRegister_LicenseInUse(t *testing.T) {
	svc, accounts := newTestAuthService(t)

	accounts.EXPECT().EmailExists(gomock.Any(), gomock.Any()).Return(false, nil)
	accounts.EXPECT().LicenseExists(gomock.Any(), "LIC-1").Return(true, nil)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Email: "a@b.c", Role: models.RoleCA, LicenseNumber: "LIC-1"})
	assert.ErrorIs(t, err, store.ErrLicenseAlreadyRegistered)
}

func TestRegister_ConcurrentDuplicateFromStore(t *testing.T) {
	svc, accounts := newTestAuthService(t)

	accounts.EXPECT().EmailExists(gomock.Any(), gomock.Any()).Return(false, nil)
	accounts.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrEmailAlreadyInUse)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Email: "a@b.c", Password: "secret123", Role: models.RoleUser})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyInUse)
}

func TestRegister_LookupError(t *testing.T) {
	svc, accounts := newTestAuthService(t)

	accounts.EXPECT().EmailExists(gomock.Any(), gomock.Any()).Return(false, store.ErrExecutingQuery)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Email: "a@b.c", Role: models.RoleUser})
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin_User(t *testing.T) {
	svc, accounts := newTestAuthService(t)

	stored := models.Account{ID: "u1", Email: "john@example.com", PasswordHash: hashed(t, "secret123"), Role: models.RoleUser}
	accounts.EXPECT().FindUserByEmail(gomock.Any(), "john@example.com").Return(stored, nil)

	account, err := svc.Login(context.Background(), models.LoginRequest{Email: "john@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "u1", account.ID)
}

func TestLogin_FallsBackToCA(t *testing.T) {
	svc, accounts := newTestAuthService(t)

	stored := models.Account{ID: "c1", PasswordHash: hashed(t, "secret123"), Role: models.RoleCA, CAProfile: &models.CAProfile{}}
	gomock.InOrder(
		accounts.EXPECT().FindUserByEmail(gomock.Any(), "jane@example.com").Return(models.Account{}, store.ErrAccountNotFound),
		accounts.EXPECT().FindCAByEmail(gomock.Any(), "jane@example.com").Return(stored, nil),
	)

	account, err := svc.Login(context.Background(), models.LoginRequest{Email: "jane@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleCA, account.Role)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, accounts := newTestAuthService(t)

	accounts.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrAccountNotFound)
	accounts.EXPECT().FindCAByEmail(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrAccountNotFound)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, accounts := newTestAuthService(t)

	stored := models.Account{ID: "u1", PasswordHash: hashed(t, "secret123")}
	accounts.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(stored, nil)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "john@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_StoreError(t *testing.T) {
	svc, accounts := newTestAuthService(t)

	accounts.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrExecutingQuery)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "john@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ─────────────────────────────────────────────
// FindAccount
// ─────────────────────────────────────────────

func TestFindAccount_UserThenCA(t *testing.T) {
	svc, accounts := newTestAuthService(t)

	accounts.EXPECT().FindUserByID(gomock.Any(), "c1").Return(models.Account{}, store.ErrAccountNotFound)
	accounts.EXPECT().FindCAByID(gomock.Any(), "c1").Return(models.Account{ID: "c1", Role: models.RoleCA}, nil)

	account, err := svc.FindAccount(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", account.ID)
}

func TestFindAccount_Missing(t *testing.T) {
	svc, accounts := newTestAuthService(t)

	accounts.EXPECT().FindUserByID(gomock.Any(), "x").Return(models.Account{}, store.ErrAccountNotFound)
	accounts.EXPECT().FindCAByID(gomock.Any(), "x").Return(models.Account{}, store.ErrAccountNotFound)

	_, err := svc.FindAccount(context.Background(), "x")
	assert.ErrorIs(t, err, store.ErrAccountNotFound)
}

// ─────────────────────────────────────────────
// Tokens
// ─────────────────────────────────────────────

func TestCreateAndParseToken(t *testing.T) {
	svc, _ := newTestAuthService(t)

	token, err := svc.CreateToken(context.Background(), models.Account{ID: "0190b3c0-0000-7000-8000-000000000001"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "0190b3c0-0000-7000-8000-000000000001", parsed.AccountID)
	assert.Equal(t, "fintrack-test", parsed.Issuer)
}

func TestParseToken_Invalid(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.ParseToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_WrongIssuer(t *testing.T) {
	svc, _ := newTestAuthService(t)

	token, err := utils.GenerateJWTToken("someone-else", "acc", time.Hour, testAuthConfig.TokenSignKey)
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_Expired(t *testing.T) {
	svc, _ := newTestAuthService(t)

	token, err := utils.GenerateJWTToken(testAuthConfig.TokenIssuer, "acc", -time.Minute, testAuthConfig.TokenSignKey)
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.True(t, errors.Is(err, ErrTokenIsExpiredOrInvalid))
}
