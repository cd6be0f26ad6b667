// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-fin-tracker/internal/logger"
)

// withLogging writes one access log entry per request. Server errors are
// logged at warn level so they stand out from regular traffic.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		status := rw.statusOrOK()
		event := logger.FromRequest(r).Info()
		if status >= http.StatusInternalServerError {
			event = logger.FromRequest(r).Warn()
		}

		event.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", rw.size).
			Str("remote_addr", r.RemoteAddr).
			Send()
	})
}
