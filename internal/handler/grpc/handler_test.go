// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

type fakeAppInfo struct {
	pingErr error
}

func (f *fakeAppInfo) GetAppVersion(_ context.Context) string { return "test" }
func (f *fakeAppInfo) Ping(_ context.Context) error           { return f.pingErr }

func newTestHandler(pingErr error) *Handler {
	return NewHandler(&service.Services{AppInfoService: &fakeAppInfo{pingErr: pingErr}}, logger.Nop())
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name       string
		service    string
		pingErr    error
		wantStatus healthpb.HealthCheckResponse_ServingStatus
		wantCode   codes.Code
	}{
		{"whole server serving", "", nil, healthpb.HealthCheckResponse_SERVING, codes.OK},
		{"api serving", ServiceName, nil, healthpb.HealthCheckResponse_SERVING, codes.OK},
		{"database down", "", service.ErrStorageUnavailable, healthpb.HealthCheckResponse_NOT_SERVING, codes.OK},
		{"unknown service", "other.Service", nil, healthpb.HealthCheckResponse_UNKNOWN, codes.NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := newTestHandler(tt.pingErr).Check(context.Background(), &healthpb.HealthCheckRequest{Service: tt.service})

			assert.Equal(t, tt.wantCode, status.Code(err))
			if tt.wantCode != codes.OK {
				return
			}
			require.NotNil(t, resp)
			assert.Equal(t, tt.wantStatus, resp.GetStatus())
		})
	}
}

func TestUnaryLogging_PassesThrough(t *testing.T) {
	h := newTestHandler(nil)
	wantErr := status.Error(codes.Unavailable, "down")

	resp, err := h.UnaryLogging(context.Background(), "req", &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"},
		func(_ context.Context, req any) (any, error) {
			return req.(string) + "-handled", wantErr
		})

	assert.Equal(t, "req-handled", resp)
	assert.True(t, errors.Is(err, wantErr))
}
