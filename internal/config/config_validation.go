// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

const (
	minPasswordHashCost = 4
	maxPasswordHashCost = 31
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.App.PasswordHashCost < minPasswordHashCost || cfg.App.PasswordHashCost > maxPasswordHashCost {
		return fmt.Errorf("%w: password hash cost must be within [%d, %d]",
			ErrInvalidAppConfigs, minPasswordHashCost, maxPasswordHashCost)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database URI is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.AuthRatePerMinute < 0 {
		return fmt.Errorf("%w: negative timeout or rate", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.Adapter.HTTPAddress)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: server address must be an absolute URL", ErrInvalidAdapterConfigs)
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.TokenPath == "" {
		return fmt.Errorf("%w: token path is required", ErrInvalidClientConfigs)
	}

	return nil
}
