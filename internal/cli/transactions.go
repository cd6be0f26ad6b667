// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-fin-tracker/internal/adapter"
	"github.com/MKhiriev/go-fin-tracker/internal/tui"
	"github.com/MKhiriev/go-fin-tracker/models"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

// transactionCommand builds "expense" or "income" with its add, list,
// delete and export subcommands.
func (a *app) transactionCommand(kind models.TransactionType) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(kind),
		Short: "Manage " + string(kind) + " records",
	}

	cmd.AddCommand(
		a.addTransactionCommand(kind),
		a.listTransactionsCommand(kind),
		a.deleteTransactionCommand(kind),
		a.exportTransactionsCommand(kind),
	)

	return cmd
}

func (a *app) addTransactionCommand(kind models.TransactionType) *cobra.Command {
	var req models.TransactionRequest
	var amount string

	label, labelTarget := "category", &req.Category
	if kind == models.TransactionIncome {
		label, labelTarget = "source", &req.Source
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new " + string(kind),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.Amount = models.AmountInput(amount)
			if req.Date == "" {
				req.Date = time.Now().Format(dateLayout)
			}

			created, err := a.server.AddTransaction(cmd.Context(), kind, req)
			if err != nil {
				return explain(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s: %s %s on %s\n",
				kind, created.ID, created.Label(), created.Amount.StringFixed(2), created.Date.UTC().Format(dateLayout))
			return nil
		},
	}

	cmd.Flags().StringVar(labelTarget, label, "", string(kind)+" "+label)
	cmd.Flags().StringVar(&amount, "amount", "", "positive amount, e.g. 1200.50")
	cmd.Flags().StringVar(&req.Date, "date", "", "date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&req.Icon, "icon", "", "optional icon")

	return cmd
}

func (a *app) listTransactionsCommand(kind models.TransactionType) *cobra.Command {
	var dates adapter.DateRange

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + string(kind) + " records, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			transactions, err := a.server.ListTransactions(cmd.Context(), kind, dates)
			if err != nil {
				return explain(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderTransactions(kind, transactions))
			return nil
		},
	}
	addDateRangeFlags(cmd, &dates)

	return cmd
}

func (a *app) deleteTransactionCommand(kind models.TransactionType) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a " + string(kind) + " record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.server.DeleteTransaction(cmd.Context(), kind, args[0]); err != nil {
				return explain(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s\n", kind, args[0])
			return nil
		},
	}
}

func (a *app) exportTransactionsCommand(kind models.TransactionType) *cobra.Command {
	var dates adapter.DateRange
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download " + string(kind) + " records as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := a.server.ExportTransactions(cmd.Context(), kind, dates)
			if err != nil {
				return explain(err)
			}

			if output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			if err = os.WriteFile(output, data, 0o600); err != nil {
				return fmt.Errorf("write export: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d bytes to %s\n", len(data), output)
			return nil
		},
	}
	addDateRangeFlags(cmd, &dates)
	cmd.Flags().StringVarP(&output, "output", "o", string(kind)+"_details.csv", `output file, "-" for stdout`)

	return cmd
}

func addDateRangeFlags(cmd *cobra.Command, dates *adapter.DateRange) {
	cmd.Flags().StringVar(&dates.From, "from", "", "first date, YYYY-MM-DD or RFC 3339")
	cmd.Flags().StringVar(&dates.To, "to", "", "last date, YYYY-MM-DD or RFC 3339")
}
