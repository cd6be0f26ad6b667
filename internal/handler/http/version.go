// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-fin-tracker/internal/app"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(serverVersion))
}

// healthz answers 200 "ok" while the database is reachable and 503 otherwise.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.Ping(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("health check failed")
		utils.WriteMessage(w, app.MsgServiceUnavailable, http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("ok"))
}
