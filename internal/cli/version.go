// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/MKhiriev/go-fin-tracker/internal/tui"
	"github.com/spf13/cobra"
)

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			serverVersion, err := a.server.Version(cmd.Context())
			if err != nil {
				a.logger.Warn().Err(err).Msg("cannot get server version")
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderBuildInfo(a.buildInfo, serverVersion))
			return nil
		},
	}
}
