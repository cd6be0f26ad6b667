// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// amounts are rendered as JSON numbers, the way the dashboard expects them
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionType tells incomes and expenses apart.
type TransactionType string

const (
	TransactionExpense TransactionType = "expense"
	TransactionIncome  TransactionType = "income"
)

// Transaction is a single income or expense record owned by an account.
//
// Expenses are labelled with a Category, incomes with a Source; the other
// label is always empty and omitted from JSON.
type Transaction struct {
	ID        string          `json:"id"`
	AccountID string          `json:"accountId"`
	Type      TransactionType `json:"type"`
	Category  string          `json:"category,omitempty"`
	Source    string          `json:"source,omitempty"`
	Icon      string          `json:"icon"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Label returns the category of an expense or the source of an income.
func (t Transaction) Label() string {
	if t.Type == TransactionIncome {
		return t.Source
	}
	return t.Category
}

// TransactionFilter narrows transaction queries. Zero values disable the
// corresponding condition.
type TransactionFilter struct {
	AccountID string

	// From and To bound the transaction date, both inclusive.
	From *time.Time
	To   *time.Time

	// Limit caps the number of returned rows. 0 means no limit.
	Limit uint64
}

// LabelAmount is an amount aggregated by category (expenses) or source
// (incomes). It is the data shape consumed by pie charts.
type LabelAmount struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}
