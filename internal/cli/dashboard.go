// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-fin-tracker/internal/adapter"
	"github.com/MKhiriev/go-fin-tracker/internal/tui"
	"github.com/spf13/cobra"
)

// runDashboard is replaced in tests.
var runDashboard = tui.RunDashboard

func (a *app) dashboardCommand() *cobra.Command {
	var watch bool
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show balances, recent transactions and breakdowns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.server.Token() == "" {
				return explain(adapter.ErrNoToken)
			}

			if watch {
				if interval <= 0 {
					return fmt.Errorf("interval must be positive, got %s", interval)
				}
				return runDashboard(cmd.Context(), a.server.Dashboard, interval)
			}

			d, err := a.server.Dashboard(cmd.Context())
			if err != nil {
				return explain(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderDashboard(d))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep the dashboard open and refresh it")
	cmd.Flags().DurationVar(&interval, "interval", 30*time.Second, "refresh interval for --watch")

	return cmd
}
