// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gunzip(t *testing.T, r io.Reader) string {
	t.Helper()
	zr, err := gzip.NewReader(r)
	require.NoError(t, err)
	defer zr.Close()

	b, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(b)
}

func TestWithGZip_Response(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		explicitHeader bool
		wantGzip       bool
	}{
		{"gzip accepted, explicit WriteHeader", "gzip", true, true},
		{"gzip accepted, implicit 200", "deflate, gzip;q=1.0", false, true},
		{"gzip not accepted", "", true, false},
	}

	const payload = `{"totalBalance":3799.5}`

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seenAcceptEncoding string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenAcceptEncoding = r.Header.Get("Accept-Encoding")
				if tt.explicitHeader {
					w.WriteHeader(http.StatusOK)
				}
				_, _ = w.Write([]byte(payload))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			if tt.wantGzip {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Empty(t, seenAcceptEncoding, "inner handlers must not compress again")
				assert.Equal(t, payload, gunzip(t, rec.Body))
				return
			}
			assert.Empty(t, rec.Header().Get("Content-Encoding"))
			assert.Equal(t, payload, rec.Body.String())
		})
	}
}

func TestWithGZip_RequestBody(t *testing.T) {
	const body = `{"category":"Rent","amount":"1200.50","date":"2026-03-01"}`

	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	_, err := zw.Write([]byte(body))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		got = string(b)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/expense/add", &compressed)
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, body, got)
}

func TestWithGZip_InvalidRequestBody(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not be called")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/expense/add", strings.NewReader("plain text"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWithGZip_PoolReuse(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("Groceries,", 200)))
	})
	handler := withGZip(next)

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/expense/download", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Less(t, rec.Body.Len(), 2000, "request %d", i)
		assert.Equal(t, strings.Repeat("Groceries,", 200), gunzip(t, rec.Body), "request %d", i)
	}
}

func TestWithGZip_SkipsUncompressibleResponses(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"no content", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}},
		{"already compressed type", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write([]byte("\x89PNG"))
		}},
		{"already encoded", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Encoding", "br")
			_, _ = w.Write([]byte("brotli"))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rec := httptest.NewRecorder()
			withGZip(tt.handler).ServeHTTP(rec, req)

			assert.NotEqual(t, "gzip", rec.Header().Get("Content-Encoding"))
		})
	}
}
