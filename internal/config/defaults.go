// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	defaultTokenIssuer       = "fintrack"
	defaultTokenDuration     = time.Hour
	defaultPasswordHashCost  = 10
	defaultVersion           = "dev"
	defaultLogLevel          = "info"
	defaultDriver            = DriverPostgres
	defaultHTTPAddress       = "localhost:8080"
	defaultRequestTimeout    = 30 * time.Second
	defaultAuthRatePerMinute = 20

	defaultAdapterAddress = "http://localhost:8080"
	defaultAdapterTimeout = 10 * time.Second
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = defaultPasswordHashCost
	}
	if cfg.App.Version == "" {
		cfg.App.Version = defaultVersion
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = defaultDriver
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"*"}
	}
	if cfg.Server.AuthRatePerMinute == 0 {
		cfg.Server.AuthRatePerMinute = defaultAuthRatePerMinute
	}
}

func (cfg *StructuredConfig) applyClientDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = defaultAdapterAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultAdapterTimeout
	}
	if cfg.Client.TokenPath == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.Client.TokenPath = filepath.Join(dir, "fintrack", "token")
		}
	}
	if cfg.Client.LogPath == "" {
		if exe, err := os.Executable(); err == nil {
			cfg.Client.LogPath = filepath.Join(filepath.Dir(exe), "fintrack.log")
		}
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}
}
