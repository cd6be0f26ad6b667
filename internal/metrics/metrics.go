// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the server and the
// handler that exposes them.
package metrics

import (
	"database/sql"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fintrack"

// Registry is the registry every fintrack collector is registered with.
var Registry = prometheus.NewRegistry()

// AppInfo exposes the running version as a label; the value is always 1.
var AppInfo = promauto.With(Registry).NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "app_info",
		Help:      "Application version information (always set to 1, version info in labels)",
	},
	[]string{"version"},
)

// AuthAttemptsTotal counts registrations and logins by outcome.
var AuthAttemptsTotal = promauto.With(Registry).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of registration and login attempts",
	},
	[]string{"operation", "result"}, // operation: register|login, result: success|rejected|error
)

// TransactionsCreatedTotal counts stored incomes and expenses.
var TransactionsCreatedTotal = promauto.With(Registry).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transactions_created_total",
		Help:      "Total number of incomes and expenses recorded",
	},
	[]string{"type"},
)

var initOnce sync.Once

// Init registers the runtime collectors and sets the version information.
// Only the first call has an effect.
func Init(version string) {
	initOnce.Do(func() {
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		AppInfo.WithLabelValues(version).Set(1)
	})
}

// RegisterDB exposes the connection pool statistics of db.
func RegisterDB(db *sql.DB, name string) error {
	return Registry.Register(collectors.NewDBStatsCollector(db, name))
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}
