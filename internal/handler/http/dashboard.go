// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-fin-tracker/internal/utils"
)

func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	account, ok := utils.GetAccountFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoAccountInContext, "dashboard reached without authentication")
		return
	}

	dashboard, err := h.services.DashboardService.GetDashboard(r.Context(), account.ID)
	if err != nil {
		writeError(w, r, err, "error building dashboard")
		return
	}

	_, _ = utils.WriteJSON(w, dashboard, http.StatusOK)
}
