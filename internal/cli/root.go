// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fin-tracker/internal/adapter"
	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/models"
	"github.com/spf13/cobra"
)

// AdapterFactory builds the server adapter from the resolved adapter
// settings.
type AdapterFactory func(cfg config.Adapter, logger *logger.Logger) (adapter.ServerAdapter, error)

type app struct {
	newAdapter AdapterFactory
	buildInfo  models.AppBuildInfo
	overrides  config.ClientOverrides

	cfg    *config.ClientConfig
	server adapter.ServerAdapter
	tokens *tokenStore
	logger *logger.Logger
}

// NewRootCommand returns the fintrack command tree.
func NewRootCommand(newAdapter AdapterFactory, buildInfo models.AppBuildInfo) *cobra.Command {
	a := &app{newAdapter: newAdapter, buildInfo: buildInfo}

	root := &cobra.Command{
		Use:   "fintrack",
		Short: "fintrack - personal finance tracker client",
		Long: `fintrack talks to a fintrack server: register or log in, record incomes
and expenses, export them as CSV and watch the dashboard.

The bearer token of the last login is kept in a file and reused by later
commands until it expires or "fintrack logout" removes it.`,
		Version:           buildInfo.String(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.overrides.ServerAddress, "server", "", "server base URL (default http://localhost:8080)")
	root.PersistentFlags().DurationVar(&a.overrides.RequestTimeout, "timeout", 0, "request timeout (default 10s)")
	root.PersistentFlags().StringVar(&a.overrides.ConfigPath, "config", "", "JSON config file path")

	root.AddCommand(
		a.registerCommand(),
		a.loginCommand(),
		a.logoutCommand(),
		a.whoamiCommand(),
		a.transactionCommand(models.TransactionExpense),
		a.transactionCommand(models.TransactionIncome),
		a.dashboardCommand(),
		a.versionCommand(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.GetClientConfig(a.overrides)
	if err != nil {
		return fmt.Errorf("load client config: %w", err)
	}

	a.cfg = cfg
	a.logger = logger.NewFileLogger("fintrack-client", cfg.LogPath)
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		return err
	}
	a.tokens = newTokenStore(cfg.TokenPath)

	a.server, err = a.newAdapter(cfg.Adapter, a.logger)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	token, err := a.tokens.Load()
	switch {
	case errors.Is(err, errNoSavedToken):
	case err != nil:
		a.logger.Warn().Err(err).Str("path", cfg.TokenPath).Msg("cannot read saved token")
	default:
		a.server.SetToken(token)
	}

	a.logger.Debug().Str("command", cmd.CommandPath()).Str("server", cfg.Adapter.HTTPAddress).Msg("command started")
	return nil
}

// explain adds a hint to errors the user can fix by logging in again.
func explain(err error) error {
	if errors.Is(err, adapter.ErrNoToken) || errors.Is(err, adapter.ErrUnauthorized) {
		return fmt.Errorf("%w (run \"fintrack login\")", err)
	}
	return err
}
