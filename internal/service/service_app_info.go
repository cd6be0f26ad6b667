// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/store"
)

type appInfoService struct {
	appVersion string
	pinger     store.Pinger

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, pinger store.Pinger, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		pinger:     pinger,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Ping(ctx context.Context) error {
	if s.pinger == nil {
		return ErrStorageUnavailable
	}

	if err := s.pinger.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*appInfoService.Ping").Msg("storage ping failed")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return nil
}
