// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-fin-tracker/internal/adapter"
	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/models"
)

type fakeServer struct {
	token string

	auth models.AuthResponse
	err  error

	gotRegister models.RegisterRequest
	gotLogin    models.LoginRequest
	gotKind     models.TransactionType
	gotRequest  models.TransactionRequest
	gotRange    adapter.DateRange
	gotID       string

	account      models.Account
	created      models.Transaction
	transactions []models.Transaction
	export       []byte
	dashboard    models.Dashboard
	version      string
}

func (f *fakeServer) SetToken(token string) { f.token = token }
func (f *fakeServer) Token() string         { return f.token }

func (f *fakeServer) Register(_ context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	f.gotRegister = req
	if f.err != nil {
		return models.AuthResponse{}, f.err
	}
	f.token = f.auth.Token
	return f.auth, nil
}

func (f *fakeServer) Login(_ context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	f.gotLogin = req
	if f.err != nil {
		return models.AuthResponse{}, f.err
	}
	f.token = f.auth.Token
	return f.auth, nil
}

func (f *fakeServer) authed() error {
	if f.token == "" {
		return adapter.ErrNoToken
	}
	return f.err
}

func (f *fakeServer) GetUser(context.Context) (models.Account, error) {
	return f.account, f.authed()
}

func (f *fakeServer) AddTransaction(_ context.Context, kind models.TransactionType, req models.TransactionRequest) (models.Transaction, error) {
	f.gotKind, f.gotRequest = kind, req
	return f.created, f.authed()
}

func (f *fakeServer) ListTransactions(_ context.Context, kind models.TransactionType, dates adapter.DateRange) ([]models.Transaction, error) {
	f.gotKind, f.gotRange = kind, dates
	return f.transactions, f.authed()
}

func (f *fakeServer) DeleteTransaction(_ context.Context, kind models.TransactionType, id string) error {
	f.gotKind, f.gotID = kind, id
	return f.authed()
}

func (f *fakeServer) ExportTransactions(_ context.Context, kind models.TransactionType, dates adapter.DateRange) ([]byte, error) {
	f.gotKind, f.gotRange = kind, dates
	return f.export, f.authed()
}

func (f *fakeServer) Dashboard(context.Context) (models.Dashboard, error) {
	return f.dashboard, f.authed()
}

func (f *fakeServer) Version(context.Context) (string, error) {
	return f.version, f.err
}

// testClient runs commands against a fakeServer with the token and log
// files in a temporary directory.
type testClient struct {
	t      *testing.T
	dir    string
	server *fakeServer
}

func newTestClient(t *testing.T, server *fakeServer) *testClient {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("CLIENT_TOKEN_PATH", filepath.Join(dir, "token"))
	t.Setenv("CLIENT_LOG_PATH", filepath.Join(dir, "client.log"))

	return &testClient{t: t, dir: dir, server: server}
}

func (c *testClient) tokenPath() string {
	return filepath.Join(c.dir, "token")
}

func (c *testClient) run(args ...string) (string, error) {
	c.t.Helper()

	factory := func(config.Adapter, *logger.Logger) (adapter.ServerAdapter, error) {
		return c.server, nil
	}

	root := NewRootCommand(factory, models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"))
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}
