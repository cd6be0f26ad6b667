// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientConfig is the terminal client's view of the configuration.
type ClientConfig struct {
	// Adapter contains the server base URL and request timeout.
	Adapter Adapter
	// TokenPath is the file holding the bearer token between runs.
	TokenPath string
	// LogPath is the client log file.
	LogPath string
	// LogLevel is a zerolog level name.
	LogLevel string
}

// ClientOverrides carries values given on the client command line. They win
// over environment variables and the JSON file.
type ClientOverrides struct {
	ServerAddress  string
	RequestTimeout time.Duration
	ConfigPath     string
}

// GetClientConfig builds and validates the client configuration from the
// environment, the optional JSON file and the command line overrides.
func GetClientConfig(overrides ClientOverrides) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withConfig(&StructuredConfig{JSONFilePath: overrides.ConfigPath}).
		withJSON().
		withConfig(&StructuredConfig{
			Adapter: Adapter{
				HTTPAddress:    overrides.ServerAddress,
				RequestTimeout: overrides.RequestTimeout,
			},
		}).
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	cfg.applyClientDefaults()

	clientCfg := &ClientConfig{
		Adapter:   cfg.Adapter,
		TokenPath: cfg.Client.TokenPath,
		LogPath:   cfg.Client.LogPath,
		LogLevel:  cfg.App.LogLevel,
	}

	if err = clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}
