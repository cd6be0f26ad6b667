// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-fin-tracker/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServerVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"semantic version", "1.2.3"},
		{"empty version", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &service.Services{AppInfoService: &fakeAppInfoService{version: tt.version}})

			rec := httptest.NewRecorder()
			h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.version, rec.Body.String())
		})
	}
}

func TestHealthz(t *testing.T) {
	t.Run("database reachable", func(t *testing.T) {
		h := newTestHandler(t, &service.Services{AppInfoService: &fakeAppInfoService{}})

		rec := httptest.NewRecorder()
		h.healthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
	})

	t.Run("database down", func(t *testing.T) {
		h := newTestHandler(t, &service.Services{
			AppInfoService: &fakeAppInfoService{pingErr: service.ErrStorageUnavailable},
		})

		rec := httptest.NewRecorder()
		h.healthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "Service unavailable", decodeMessage(t, rec))
	})
}
