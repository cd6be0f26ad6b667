// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fin-tracker/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

const breakdownBarWidth = 24

// RenderDashboard lays out the summary cards, period totals, recent
// transactions and the per-category and per-source breakdowns.
func RenderDashboard(d models.Dashboard) string {
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		renderCard("Total Balance", formatMoney(d.TotalBalance)),
		renderCard("Total Income", incomeStyle.Render(formatMoney(d.TotalIncome))),
		renderCard("Total Expenses", expenseStyle.Render(formatMoney(d.TotalExpenses))),
	)

	var b strings.Builder
	b.WriteString(cards)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Last 30 days expenses: %s (%d)\n",
		formatMoney(d.Last30DaysExpenses.Total), len(d.Last30DaysExpenses.Transactions))
	fmt.Fprintf(&b, "Last 60 days income:   %s (%d)\n",
		formatMoney(d.Last60DaysIncome.Total), len(d.Last60DaysIncome.Transactions))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Recent Transactions"))
	b.WriteString("\n")
	b.WriteString(renderRecent(d.RecentTransactions))

	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Expenses by Category"))
	b.WriteString("\n")
	b.WriteString(renderBreakdown(d.ExpenseByCategory, expenseStyle))

	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Income by Source"))
	b.WriteString("\n")
	b.WriteString(renderBreakdown(d.IncomeBySource, incomeStyle))

	return b.String()
}

func renderCard(label, value string) string {
	return cardStyle.Render(cardLabel.Render(label) + "\n" + value)
}

func renderRecent(transactions []models.Transaction) string {
	if len(transactions) == 0 {
		return helpStyle.Render("No transactions yet")
	}

	rows := make([][]string, 0, len(transactions))
	for _, t := range transactions {
		amount := "-" + formatMoney(t.Amount)
		if t.Type == models.TransactionIncome {
			amount = "+" + formatMoney(t.Amount)
		}
		rows = append(rows, []string{
			t.Date.UTC().Format(dateLayout),
			string(t.Type),
			fitText(t.Label(), 24),
			amount,
		})
	}

	return renderTable([]string{"Date", "Type", "Name", "Amount"}, rows)
}

func renderBreakdown(items []models.LabelAmount, style lipgloss.Style) string {
	if len(items) == 0 {
		return helpStyle.Render("Nothing to show")
	}

	maxAmount := decimal.Zero
	nameWidth := 0
	for _, item := range items {
		if item.Amount.GreaterThan(maxAmount) {
			maxAmount = item.Amount
		}
		nameWidth = max(nameWidth, len([]rune(fitText(item.Name, 20))))
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		width := 0
		if maxAmount.IsPositive() {
			width = int(item.Amount.Mul(decimal.NewFromInt(breakdownBarWidth)).Div(maxAmount).IntPart())
		}
		if width == 0 && item.Amount.IsPositive() {
			width = 1
		}

		name := fitText(item.Name, 20)
		lines = append(lines, fmt.Sprintf("%-*s %s %s",
			nameWidth, name, style.Render(strings.Repeat("█", width)), formatMoney(item.Amount)))
	}

	return strings.Join(lines, "\n")
}
