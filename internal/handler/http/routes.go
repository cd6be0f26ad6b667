// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-fin-tracker/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, metrics.HTTPMiddleware, h.withCORS, withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// service routes
	router.Get("/healthz", h.healthz)
	router.Get("/api/version", h.getServerVersion)
	router.Handle("/metrics", metrics.Handler())

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(newRateLimiter(h.cfg.AuthRatePerMinute).limit)

		r.Post("/api/v1/auth/register", h.register)
		r.Post("/api/v1/auth/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/v1/auth/getUser", h.getUser)

		r.Post("/api/v1/expense/add", h.addExpense)
		r.Get("/api/v1/expense/get", h.getExpenses)
		r.Delete("/api/v1/expense/{id}", h.deleteExpense)
		r.Get("/api/v1/expense/download", h.downloadExpenses)

		r.Post("/api/v1/income/add", h.addIncome)
		r.Get("/api/v1/income/get", h.getIncomes)
		r.Delete("/api/v1/income/{id}", h.deleteIncome)
		r.Get("/api/v1/income/download", h.downloadIncomes)

		r.Get("/api/v1/dashboard", h.getDashboard)
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
