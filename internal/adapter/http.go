// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"github.com/MKhiriev/go-fin-tracker/models"
	"github.com/go-resty/resty/v2"
)

const apiPrefix = "/api/v1"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed).
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs to /api/v1/auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/auth/register", req)
}

// Login implements [ServerAdapter]. It POSTs to /api/v1/auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/auth/login", req)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&auth).
		Post(apiPrefix + path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	token := auth.Token
	if token == "" {
		// the token may come only in the Authorization header
		if token, err = utils.ParseBearerToken(resp.Header().Get("Authorization")); err != nil {
			return models.AuthResponse{}, fmt.Errorf("%s parse bearer token: %w", path, err)
		}
		auth.Token = token
	}

	h.SetToken(token)
	h.logger.Debug().Str("func", "*httpServerAdapter.authenticate").Str("id", auth.ID).Msg("authenticated")

	return auth, nil
}

// GetUser implements [ServerAdapter].
func (h *httpServerAdapter) GetUser(ctx context.Context) (models.Account, error) {
	var account models.Account
	if err := h.getJSON(ctx, apiPrefix+"/auth/getUser", nil, &account); err != nil {
		return models.Account{}, err
	}
	return account, nil
}

// AddTransaction implements [ServerAdapter]. It POSTs to
// /api/v1/{expense|income}/add.
func (h *httpServerAdapter) AddTransaction(ctx context.Context, kind models.TransactionType, req models.TransactionRequest) (models.Transaction, error) {
	request, err := h.authedRequest(ctx)
	if err != nil {
		return models.Transaction{}, err
	}

	var created models.Transaction
	resp, err := request.
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&created).
		Post(transactionPath(kind, "add"))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("add %s request: %w", kind, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Transaction{}, err
	}

	return created, nil
}

// ListTransactions implements [ServerAdapter].
func (h *httpServerAdapter) ListTransactions(ctx context.Context, kind models.TransactionType, dates DateRange) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0)
	if err := h.getJSON(ctx, transactionPath(kind, "get"), dates.query(), &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// DeleteTransaction implements [ServerAdapter].
func (h *httpServerAdapter) DeleteTransaction(ctx context.Context, kind models.TransactionType, id string) error {
	request, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := request.
		SetPathParam("id", id).
		Delete(transactionPath(kind, "{id}"))
	if err != nil {
		return fmt.Errorf("delete %s request: %w", kind, err)
	}

	return mapHTTPError(resp)
}

// ExportTransactions implements [ServerAdapter].
func (h *httpServerAdapter) ExportTransactions(ctx context.Context, kind models.TransactionType, dates DateRange) ([]byte, error) {
	request, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := request.
		SetHeader("Accept", "text/csv").
		SetQueryParams(dates.query()).
		Get(transactionPath(kind, "download"))
	if err != nil {
		return nil, fmt.Errorf("export %s request: %w", kind, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// Dashboard implements [ServerAdapter].
func (h *httpServerAdapter) Dashboard(ctx context.Context) (models.Dashboard, error) {
	var dashboard models.Dashboard
	if err := h.getJSON(ctx, apiPrefix+"/dashboard", nil, &dashboard); err != nil {
		return models.Dashboard{}, err
	}
	return dashboard, nil
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// getJSON performs an authenticated GET and decodes the JSON body into
// result.
func (h *httpServerAdapter) getJSON(ctx context.Context, path string, query map[string]string, result any) error {
	request, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := request.
		SetQueryParams(query).
		SetResult(result).
		Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}

	return mapHTTPError(resp)
}

// authedRequest returns a request carrying the stored bearer token, or
// ErrNoToken when there is none.
func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}

func transactionPath(kind models.TransactionType, action string) string {
	return apiPrefix + "/" + string(kind) + "/" + action
}

func (d DateRange) query() map[string]string {
	query := make(map[string]string, 2)
	if d.From != "" {
		query["from"] = d.From
	}
	if d.To != "" {
		query["to"] = d.To
	}
	return query
}
