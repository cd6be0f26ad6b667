// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/shopspring/decimal"

// PeriodSummary is the total of the transactions within a time window
// together with the transactions themselves, newest first.
type PeriodSummary struct {
	Total        decimal.Decimal `json:"total"`
	Transactions []Transaction   `json:"transactions"`
}

// Dashboard is the aggregated financial overview of a single account.
type Dashboard struct {
	TotalBalance  decimal.Decimal `json:"totalBalance"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`

	Last30DaysExpenses PeriodSummary `json:"last30DaysExpenses"`
	Last60DaysIncome   PeriodSummary `json:"last60DaysIncome"`

	// RecentTransactions merges the latest incomes and expenses, newest first.
	RecentTransactions []Transaction `json:"recentTransactions"`

	ExpenseByCategory []LabelAmount `json:"expenseByCategory"`
	IncomeBySource    []LabelAmount `json:"incomeBySource"`
}
