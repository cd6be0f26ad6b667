// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/MKhiriev/go-fin-tracker/internal/app"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/metrics"
	"github.com/MKhiriev/go-fin-tracker/internal/service"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"github.com/MKhiriev/go-fin-tracker/internal/validators"
	"github.com/MKhiriev/go-fin-tracker/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) addExpense(w http.ResponseWriter, r *http.Request) {
	h.addTransaction(w, r, h.services.ExpenseService, models.TransactionExpense)
}

func (h *Handler) getExpenses(w http.ResponseWriter, r *http.Request) {
	h.listTransactions(w, r, h.services.ExpenseService)
}

func (h *Handler) deleteExpense(w http.ResponseWriter, r *http.Request) {
	h.deleteTransaction(w, r, h.services.ExpenseService, "Expense deleted successfully")
}

func (h *Handler) downloadExpenses(w http.ResponseWriter, r *http.Request) {
	h.downloadTransactions(w, r, h.services.ExpenseService, "expense_details.csv")
}

func (h *Handler) addIncome(w http.ResponseWriter, r *http.Request) {
	h.addTransaction(w, r, h.services.IncomeService, models.TransactionIncome)
}

func (h *Handler) getIncomes(w http.ResponseWriter, r *http.Request) {
	h.listTransactions(w, r, h.services.IncomeService)
}

func (h *Handler) deleteIncome(w http.ResponseWriter, r *http.Request) {
	h.deleteTransaction(w, r, h.services.IncomeService, "Income deleted successfully")
}

func (h *Handler) downloadIncomes(w http.ResponseWriter, r *http.Request) {
	h.downloadTransactions(w, r, h.services.IncomeService, "income_details.csv")
}

func (h *Handler) addTransaction(w http.ResponseWriter, r *http.Request, svc service.TransactionService, kind models.TransactionType) {
	log := logger.FromRequest(r)

	account, ok := utils.GetAccountFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoAccountInContext, "add reached without authentication")
		return
	}

	var req models.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidRequestBody, http.StatusBadRequest)
		return
	}

	transaction, err := svc.Add(r.Context(), account.ID, req)
	if err != nil {
		writeError(w, r, err, "error adding transaction")
		return
	}

	metrics.TransactionsCreatedTotal.WithLabelValues(string(kind)).Inc()
	_, _ = utils.WriteJSON(w, transaction, http.StatusCreated)
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request, svc service.TransactionService) {
	filter, ok := transactionFilter(w, r)
	if !ok {
		return
	}

	transactions, err := svc.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err, "error listing transactions")
		return
	}

	_, _ = utils.WriteJSON(w, transactions, http.StatusOK)
}

func (h *Handler) deleteTransaction(w http.ResponseWriter, r *http.Request, svc service.TransactionService, okMessage string) {
	account, ok := utils.GetAccountFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoAccountInContext, "delete reached without authentication")
		return
	}

	if err := svc.Delete(r.Context(), account.ID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "error deleting transaction")
		return
	}

	utils.WriteMessage(w, okMessage, http.StatusOK)
}

// downloadTransactions sends the CSV export as an attachment. The file is
// rendered into memory first so a failed export still gets a JSON error.
func (h *Handler) downloadTransactions(w http.ResponseWriter, r *http.Request, svc service.TransactionService, filename string) {
	filter, ok := transactionFilter(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := svc.Export(r.Context(), &buf, filter); err != nil {
		writeError(w, r, err, "error exporting transactions")
		return
	}

	if _, err := utils.WriteAttachment(w, filename, "text/csv", buf.Bytes()); err != nil {
		logger.FromRequest(r).Warn().Err(err).Str("file", filename).Msg("export was cut short")
	}
}

// transactionFilter builds the filter for the caller from the optional
// from/to query parameters. It writes the error response itself and
// returns false when the request cannot be served.
func transactionFilter(w http.ResponseWriter, r *http.Request) (models.TransactionFilter, bool) {
	account, ok := utils.GetAccountFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoAccountInContext, "list reached without authentication")
		return models.TransactionFilter{}, false
	}

	filter := models.TransactionFilter{AccountID: account.ID}
	query := r.URL.Query()

	if raw := query.Get("from"); raw != "" {
		from, err := validators.ParseDate(raw)
		if err != nil {
			writeError(w, r, err, "invalid from parameter")
			return models.TransactionFilter{}, false
		}
		filter.From = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := validators.ParseDate(raw)
		if err != nil {
			writeError(w, r, err, "invalid to parameter")
			return models.TransactionFilter{}, false
		}
		// a calendar date includes the whole day
		if _, err = time.Parse(validators.DateLayout, raw); err == nil {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
		filter.To = &to
	}

	return filter, true
}
