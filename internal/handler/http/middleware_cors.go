// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-fin-tracker/internal/logger"
)

const (
	corsAllowMethods  = "GET, POST, DELETE, OPTIONS"
	corsAllowHeaders  = "Content-Type, Authorization, Accept, X-Trace-ID"
	corsExposeHeaders = "Authorization, X-Trace-ID, Retry-After, Content-Disposition"
	corsMaxAge        = "86400"
	allowAnyOrigin    = "*"
)

// withCORS lets the browser frontend call the API from the origins listed in
// the server config. "*" accepts every origin. Preflight requests are
// answered with 204 before routing.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}

		if isOriginAllowed(origin, h.cfg.AllowedOrigins) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", corsAllowMethods)
			w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)
			w.Header().Set("Access-Control-Expose-Headers", corsExposeHeaders)
			w.Header().Set("Access-Control-Max-Age", corsMaxAge)
		} else {
			logger.FromRequest(r).Warn().
				Str("origin", origin).
				Str("path", r.URL.Path).
				Str("method", r.Method).
				Msg("CORS request rejected: origin not allowed")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// isOriginAllowed performs a case-insensitive exact match of origin against
// allowedOrigins.
func isOriginAllowed(origin string, allowedOrigins []string) bool {
	origin = strings.ToLower(strings.TrimSpace(origin))
	for _, allowed := range allowedOrigins {
		allowed = strings.ToLower(strings.TrimSpace(allowed))
		if allowed == allowAnyOrigin || allowed == origin {
			return true
		}
	}
	return false
}
