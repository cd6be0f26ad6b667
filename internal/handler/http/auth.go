// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-fin-tracker/internal/app"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/metrics"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"github.com/MKhiriev/go-fin-tracker/models"
)

const (
	operationRegister = "register"
	operationLogin    = "login"

	resultSuccess = "success"
	resultFailure = "failure"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidRequestBody, http.StatusBadRequest)
		return
	}

	account, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues(operationRegister, resultFailure).Inc()
		writeError(w, r, err, "registration failed")
		return
	}

	metrics.AuthAttemptsTotal.WithLabelValues(operationRegister, resultSuccess).Inc()
	log.Info().Str("id", account.ID).Str("role", string(account.Role)).Msg("account registered")

	h.writeAuthResponse(w, r, account, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidRequestBody, http.StatusBadRequest)
		return
	}

	account, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues(operationLogin, resultFailure).Inc()
		writeError(w, r, err, "login failed")
		return
	}

	metrics.AuthAttemptsTotal.WithLabelValues(operationLogin, resultSuccess).Inc()
	log.Debug().Str("id", account.ID).Msg("account successfully logged in")

	h.writeAuthResponse(w, r, account, http.StatusOK)
}

// getUser returns the account the token belongs to, re-read from storage.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	current, ok := utils.GetAccountFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoAccountInContext, "getUser reached without authentication")
		return
	}

	account, err := h.services.AuthService.FindAccount(r.Context(), current.ID)
	if err != nil {
		writeError(w, r, err, "error reading account")
		return
	}

	_, _ = utils.WriteJSON(w, account, http.StatusOK)
}

// writeAuthResponse issues a token for account and writes {id, user, token}.
// The token is also sent in the Authorization header.
func (h *Handler) writeAuthResponse(w http.ResponseWriter, r *http.Request, account models.Account, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), account)
	if err != nil {
		writeError(w, r, err, "creation of token failed")
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	_, _ = utils.WriteJSON(w, models.AuthResponse{
		ID:    account.ID,
		User:  account,
		Token: token.SignedString,
	}, status)
}
