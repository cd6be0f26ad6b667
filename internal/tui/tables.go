// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-fin-tracker/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
)

// RenderTransactions renders a list of incomes or expenses of one kind as a
// table followed by the total.
func RenderTransactions(kind models.TransactionType, transactions []models.Transaction) string {
	if len(transactions) == 0 {
		return "No " + string(kind) + " records found"
	}

	label := "Category"
	if kind == models.TransactionIncome {
		label = "Source"
	}

	total := decimal.Zero
	rows := make([][]string, 0, len(transactions))
	for _, t := range transactions {
		total = total.Add(t.Amount)
		rows = append(rows, []string{
			t.ID,
			t.Date.UTC().Format(dateLayout),
			fitText(t.Label(), 24),
			t.Icon,
			formatMoney(t.Amount),
		})
	}

	return renderTable([]string{"ID", "Date", label, "Icon", "Amount"}, rows) +
		"\nTotal: " + formatMoney(total)
}

// RenderAccount describes the account returned by the server.
func RenderAccount(account models.Account) string {
	var b strings.Builder

	b.WriteString("ID:       " + account.ID)
	b.WriteString("\nName:     " + account.FullName)
	b.WriteString("\nEmail:    " + account.Email)
	b.WriteString("\nRole:     " + string(account.Role))

	if account.CAProfile != nil {
		verified := "no"
		if account.IsVerified {
			verified = "yes"
		}
		b.WriteString("\nLicense:  " + valueOrNA(account.LicenseNumber))
		b.WriteString("\nSince:    " + valueOrNA(account.YearOfRegistration))
		b.WriteString("\nPractice: " + valueOrNA(account.PracticeArea))
		b.WriteString("\nVerified: " + verified)
	}

	return renderPage("Account", b.String(), "")
}

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}
