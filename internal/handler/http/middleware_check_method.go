// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is installed as the router's MethodNotAllowed handler.
// A known path requested with a method it does not serve answers 404,
// exactly like an unknown path, so callers cannot probe which routes exist.
//
//	router.NotFound(routeNotFound)
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		routeNotFound(w, r)
	}
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("no route")
	utils.WriteMessage(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
