// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/service"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"github.com/MKhiriev/go-fin-tracker/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

// fakeAuthService implements service.AuthService. Each method field can be
// overridden per test case.
type fakeAuthService struct {
	registerFn    func(ctx context.Context, req models.RegisterRequest) (models.Account, error)
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.Account, error)
	findAccountFn func(ctx context.Context, id string) (models.Account, error)
	createTokenFn func(ctx context.Context, account models.Account) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (f *fakeAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.Account, error) {
	return f.registerFn(ctx, req)
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Account, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeAuthService) FindAccount(ctx context.Context, id string) (models.Account, error) {
	return f.findAccountFn(ctx, id)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	return f.createTokenFn(ctx, account)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return f.parseTokenFn(ctx, tokenString)
}

// fakeTransactionService implements service.TransactionService.
type fakeTransactionService struct {
	addFn    func(ctx context.Context, accountID string, req models.TransactionRequest) (models.Transaction, error)
	listFn   func(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
	deleteFn func(ctx context.Context, accountID, id string) error
	exportFn func(ctx context.Context, w io.Writer, filter models.TransactionFilter) error
}

func (f *fakeTransactionService) Add(ctx context.Context, accountID string, req models.TransactionRequest) (models.Transaction, error) {
	return f.addFn(ctx, accountID, req)
}

func (f *fakeTransactionService) List(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	return f.listFn(ctx, filter)
}

func (f *fakeTransactionService) Delete(ctx context.Context, accountID, id string) error {
	return f.deleteFn(ctx, accountID, id)
}

func (f *fakeTransactionService) Export(ctx context.Context, w io.Writer, filter models.TransactionFilter) error {
	return f.exportFn(ctx, w, filter)
}

// fakeDashboardService implements service.DashboardService.
type fakeDashboardService struct {
	dashboard models.Dashboard
	err       error
	gotID     string
}

func (f *fakeDashboardService) GetDashboard(_ context.Context, accountID string) (models.Dashboard, error) {
	f.gotID = accountID
	return f.dashboard, f.err
}

// fakeAppInfoService implements service.AppInfoService.
type fakeAppInfoService struct {
	version string
	pingErr error
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string {
	return f.version
}

func (f *fakeAppInfoService) Ping(_ context.Context) error {
	return f.pingErr
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// testAccount is the account the auth middleware resolves in route tests.
var testAccount = models.Account{
	ID:       "0195f3c2-0000-7000-8000-000000000001",
	FullName: "Alice Doe",
	Email:    "alice@example.com",
	Role:     models.RoleUser,
}

// newTestHandler builds a Handler over svcs with a permissive server config.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs == nil {
		svcs = &service.Services{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &fakeAppInfoService{version: "test"}
	}
	return NewHandler(svcs, config.Server{AllowedOrigins: []string{"*"}}, logger.Nop())
}

// authenticated returns r carrying testAccount, as the auth middleware
// would leave it.
func authenticated(r *http.Request) *http.Request {
	account := testAccount
	return r.WithContext(utils.WithAccount(r.Context(), &account))
}

// jsonBody marshals v into a request body.
func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return strings.NewReader(string(b))
}

// decodeMessage reads the {"message": ...} body of rec.
func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var msg models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	return msg.Message
}

// okAuth returns an AuthService fake that accepts token "good" for
// testAccount.
func okAuth() *fakeAuthService {
	return &fakeAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != "good" {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{AccountID: testAccount.ID}, nil
		},
		findAccountFn: func(_ context.Context, id string) (models.Account, error) {
			return testAccount, nil
		},
	}
}
