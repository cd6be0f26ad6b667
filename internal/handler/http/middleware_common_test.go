// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// withTraceID
// ─────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{"reuses the caller's trace id", "trace-from-frontend"},
		{"generates a UUID", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			traceID := rec.Header().Get(traceIDHeader)
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, traceID)
			} else {
				_, err := uuid.Parse(traceID)
				assert.NoError(t, err)
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, traceID, entry["trace_id"])
		})
	}
}

func TestWithTraceID_RejectsOversizedID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	req.Header.Set(traceIDHeader, strings.Repeat("x", maxTraceIDLength+1))
	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)

	_, err := uuid.Parse(rec.Header().Get(traceIDHeader))
	assert.NoError(t, err)
}

// ─────────────────────────────────────────────
// withLogging
// ─────────────────────────────────────────────

func TestWithLogging_WritesAccessLog(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"tx-1"}`))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/expense/add?x=1", nil)
	rec := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(rec, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "/api/v1/expense/add?x=1", entry["uri"])
	assert.Equal(t, http.MethodPost, entry["method"])
	assert.Equal(t, float64(http.StatusCreated), entry["status"])
	assert.Equal(t, float64(len(`{"id":"tx-1"}`)), entry["size"])
	assert.Contains(t, entry, "duration")
	assert.Contains(t, entry, "trace_id")
}

// ─────────────────────────────────────────────
// responseWriter
// ─────────────────────────────────────────────

func TestResponseWriter(t *testing.T) {
	t.Run("implicit 200 on first write", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rw := &responseWriter{ResponseWriter: rec}

		_, err := rw.Write([]byte("abc"))
		require.NoError(t, err)
		_, err = rw.Write([]byte("de"))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, rw.status)
		assert.Equal(t, 5, rw.size)
	})

	t.Run("nothing written reports 200", func(t *testing.T) {
		rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}
		assert.Equal(t, http.StatusOK, rw.statusOrOK())
	})

	t.Run("unwrap", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rw := &responseWriter{ResponseWriter: rec}
		assert.Same(t, rec, rw.Unwrap())
	})

	t.Run("second WriteHeader is ignored", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rw := &responseWriter{ResponseWriter: rec}

		rw.WriteHeader(http.StatusNotFound)
		rw.WriteHeader(http.StatusOK)

		assert.Equal(t, http.StatusNotFound, rw.status)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

// ─────────────────────────────────────────────
// CheckHTTPMethod
// ─────────────────────────────────────────────

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/v1/expense/get", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Delete("/api/v1/expense/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"registered method", http.MethodGet, "/api/v1/expense/get", http.StatusOK},
		{"unregistered method answers 404", http.MethodPost, "/api/v1/expense/get", http.StatusNotFound},
		{"unregistered method on parameterised path", http.MethodGet, "/api/v1/expense/tx-1", http.StatusNotFound},
		{"unknown path", http.MethodGet, "/api/v1/unknown", http.StatusNotFound},
		{"registered method on parameterised path", http.MethodDelete, "/api/v1/expense/tx-1", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusNotFound {
				assert.JSONEq(t, `{"message":"Not Found"}`, rec.Body.String())
			}
		})
	}
}
