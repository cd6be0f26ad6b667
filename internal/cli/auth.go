// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/MKhiriev/go-fin-tracker/internal/tui"
	"github.com/MKhiriev/go-fin-tracker/models"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

func (a *app) registerCommand() *cobra.Command {
	var req models.RegisterRequest
	var role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a user or Chartered Accountant account",
		Example: `  fintrack register --name "Alice" --email alice@example.com --password secret123
  fintrack register --role ca --name "Bob" --email bob@example.com --password secret123 \
      --license CA-42 --year 2010 --practice-area Tax`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.Role = models.Role(role)

			auth, err := a.server.Register(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("register: %w", err)
			}
			if err = a.tokens.Save(auth.Token); err != nil {
				return err
			}

			a.logger.Info().Str("id", auth.ID).Str("role", string(auth.User.Role)).Msg("registered")
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s as %s\n", auth.User.Email, auth.User.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Password, "password", "", "password (at least 8 characters)")
	cmd.Flags().StringVar(&role, "role", string(models.RoleUser), "account role: user or ca")
	cmd.Flags().StringVar(&req.LicenseNumber, "license", "", "CA license number")
	cmd.Flags().StringVar(&req.YearOfRegistration, "year", "", "CA year of registration")
	cmd.Flags().StringVar(&req.PracticeArea, "practice-area", "", "CA practice area")

	return cmd
}

func (a *app) loginCommand() *cobra.Command {
	var req models.LoginRequest
	var copyToken bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and keep the token for later commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			auth, err := a.server.Login(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}
			if err = a.tokens.Save(auth.Token); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Logged in as %s (%s)\n", auth.User.FullName, auth.User.Role)

			if copyToken {
				if err = copyToClipboard(auth.Token); err != nil {
					a.logger.Warn().Err(err).Msg("copy token to clipboard")
					fmt.Fprintln(cmd.ErrOrStderr(), "Could not copy the token to the clipboard")
				} else {
					fmt.Fprintln(out, "Token copied to the clipboard")
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Password, "password", "", "password")
	cmd.Flags().BoolVar(&copyToken, "copy-token", false, "copy the bearer token to the clipboard")

	return cmd
}

func (a *app) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.tokens.Clear(); err != nil {
				return err
			}
			a.server.SetToken("")
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func (a *app) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			account, err := a.server.GetUser(cmd.Context())
			if err != nil {
				return explain(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderAccount(account))
			return nil
		},
	}
}
