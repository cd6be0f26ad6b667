// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.Adapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://fin.example/ ", want: "https://fin.example"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── auth ────────────────────────────────────────────────────────────────────

func TestRegister_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/register", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.RoleUser, req.Role)

		writeJSON(t, w, http.StatusCreated, models.AuthResponse{
			ID:    "acc-1",
			User:  models.Account{ID: "acc-1", Email: req.Email, Role: req.Role},
			Token: "jwt-1",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.RegisterRequest{
		FullName: "Alice", Email: "alice@example.com", Password: "supersecret", Role: models.RoleUser,
	})

	require.NoError(t, err)
	assert.Equal(t, "acc-1", got.ID)
	assert.Equal(t, "alice@example.com", got.User.Email)
	assert.Equal(t, "jwt-1", a.Token())
}

func TestLogin_TokenFromHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Authorization", "Bearer header-token")
		writeJSON(t, w, http.StatusOK, map[string]any{"id": "acc-1"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "x"})

	require.NoError(t, err)
	assert.Equal(t, "header-token", got.Token)
	assert.Equal(t, "header-token", a.Token())
}

func TestLogin_ErrorMapping(t *testing.T) {
	tests := []struct {
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{http.StatusBadRequest, `{"message":"All fields are required"}`, ErrBadRequest, "All fields are required"},
		{http.StatusUnauthorized, `{"message":"Invalid credentials"}`, ErrUnauthorized, "Invalid credentials"},
		{http.StatusConflict, `{"message":"Email already in use"}`, ErrConflict, "Email already in use"},
		{http.StatusTooManyRequests, `{"message":"slow down"}`, ErrTooManyRequests, "slow down"},
		{http.StatusInternalServerError, "plain failure", ErrInternalServerError, "plain failure"},
		{http.StatusServiceUnavailable, "", ErrServerUnavailable, "Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "x"})

			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Empty(t, a.Token())
		})
	}
}

// ── authenticated calls ─────────────────────────────────────────────────────

func TestAuthenticatedCalls_RequireToken(t *testing.T) {
	a := newTestAdapter(t, "http://127.0.0.1:1")
	ctx := context.Background()

	_, err := a.GetUser(ctx)
	assert.ErrorIs(t, err, ErrNoToken)
	_, err = a.Dashboard(ctx)
	assert.ErrorIs(t, err, ErrNoToken)
	_, err = a.ListTransactions(ctx, models.TransactionExpense, DateRange{})
	assert.ErrorIs(t, err, ErrNoToken)
	assert.ErrorIs(t, a.DeleteTransaction(ctx, models.TransactionIncome, "x"), ErrNoToken)
}

func TestAddTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/income/add", r.URL.Path)
		assert.Equal(t, "Bearer jwt", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Salary", req["source"])
		assert.Equal(t, "5000", req["amount"])

		writeJSON(t, w, http.StatusCreated, models.Transaction{
			ID:     "tx-9",
			Type:   models.TransactionIncome,
			Source: "Salary",
			Amount: decimal.RequireFromString("5000"),
			Date:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("jwt")

	got, err := a.AddTransaction(context.Background(), models.TransactionIncome, models.TransactionRequest{
		Source: "Salary", Amount: "5000", Date: "2026-03-01",
	})

	require.NoError(t, err)
	assert.Equal(t, "tx-9", got.ID)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(5000)))
}

func TestListTransactions_SendsRange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/expense/get", r.URL.Path)
		assert.Equal(t, "2026-03-01", r.URL.Query().Get("from"))
		assert.False(t, r.URL.Query().Has("to"))
		writeJSON(t, w, http.StatusOK, []models.Transaction{{ID: "a"}, {ID: "b"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("jwt")

	got, err := a.ListTransactions(context.Background(), models.TransactionExpense, DateRange{From: "2026-03-01"})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[1].ID)
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/expense/tx-404", r.URL.Path)
		writeJSON(t, w, http.StatusNotFound, models.MessageResponse{Message: "Transaction not found"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("jwt")

	err := a.DeleteTransaction(context.Background(), models.TransactionExpense, "tx-404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExportTransactions(t *testing.T) {
	const csvBody = "Category,Icon,Amount,Date\nRent,,1200.50,2026-03-01\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/expense/download", r.URL.Path)
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(csvBody))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("jwt")

	got, err := a.ExportTransactions(context.Background(), models.TransactionExpense, DateRange{})
	require.NoError(t, err)
	assert.Equal(t, csvBody, string(got))
}

func TestDashboard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/dashboard", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totalBalance":3799.5,"totalIncome":5000,"totalExpenses":1200.5,
			"last30DaysExpenses":{"total":1200.5,"transactions":[]},
			"last60DaysIncome":{"total":5000,"transactions":[]},
			"recentTransactions":[],"expenseByCategory":[{"name":"Rent","amount":1200.5}],"incomeBySource":[]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("jwt")

	got, err := a.Dashboard(context.Background())
	require.NoError(t, err)
	assert.True(t, got.TotalBalance.Equal(decimal.RequireFromString("3799.5")))
	require.Len(t, got.ExpenseByCategory, 1)
	assert.Equal(t, "Rent", got.ExpenseByCategory[0].Name)
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte("1.4.0\n"))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", got)
}
