// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/store"
	"github.com/MKhiriev/go-fin-tracker/models"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	expensesWindow = 30 * 24 * time.Hour
	incomeWindow   = 60 * 24 * time.Hour

	// recentPerKind is how many of the latest incomes and of the latest
	// expenses make it into the recent transactions list.
	recentPerKind = 5
)

type dashboardService struct {
	expenses store.TransactionRepository
	incomes  store.TransactionRepository

	// now is the reference point of the time windows.
	now func() time.Time

	logger *logger.Logger
}

func NewDashboardService(expenses, incomes store.TransactionRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{
		expenses: expenses,
		incomes:  incomes,
		now:      time.Now,
		logger:   logger,
	}
}

// GetDashboard runs the independent aggregate queries concurrently and
// assembles them. The first failing query cancels the others.
func (s *dashboardService) GetDashboard(ctx context.Context, accountID string) (models.Dashboard, error) {
	now := s.now().UTC()
	expensesFrom := now.Add(-expensesWindow)
	incomeFrom := now.Add(-incomeWindow)

	all := models.TransactionFilter{AccountID: accountID}
	recent := models.TransactionFilter{AccountID: accountID, Limit: recentPerKind}

	var (
		dashboard                      models.Dashboard
		recentIncomes, recentExpenses  []models.Transaction
		last30DaysExpenses, last60Days []models.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		dashboard.TotalIncome, err = s.incomes.Total(gctx, all)
		return wrapDashboardErr("total income", err)
	})
	g.Go(func() (err error) {
		dashboard.TotalExpenses, err = s.expenses.Total(gctx, all)
		return wrapDashboardErr("total expenses", err)
	})
	g.Go(func() (err error) {
		last30DaysExpenses, err = s.expenses.List(gctx, models.TransactionFilter{AccountID: accountID, From: &expensesFrom})
		return wrapDashboardErr("last 30 days expenses", err)
	})
	g.Go(func() (err error) {
		last60Days, err = s.incomes.List(gctx, models.TransactionFilter{AccountID: accountID, From: &incomeFrom})
		return wrapDashboardErr("last 60 days income", err)
	})
	g.Go(func() (err error) {
		recentIncomes, err = s.incomes.List(gctx, recent)
		return wrapDashboardErr("recent incomes", err)
	})
	g.Go(func() (err error) {
		recentExpenses, err = s.expenses.List(gctx, recent)
		return wrapDashboardErr("recent expenses", err)
	})
	g.Go(func() (err error) {
		dashboard.ExpenseByCategory, err = s.expenses.TotalsByLabel(gctx, all)
		return wrapDashboardErr("expenses by category", err)
	})
	g.Go(func() (err error) {
		dashboard.IncomeBySource, err = s.incomes.TotalsByLabel(gctx, all)
		return wrapDashboardErr("income by source", err)
	})

	if err := g.Wait(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*dashboardService.GetDashboard").Str("account_id", accountID).Msg("error building dashboard")
		return models.Dashboard{}, err
	}

	dashboard.TotalBalance = dashboard.TotalIncome.Sub(dashboard.TotalExpenses)
	dashboard.Last30DaysExpenses = summarize(last30DaysExpenses)
	dashboard.Last60DaysIncome = summarize(last60Days)
	dashboard.RecentTransactions = mergeRecent(recentIncomes, recentExpenses)

	if dashboard.ExpenseByCategory == nil {
		dashboard.ExpenseByCategory = []models.LabelAmount{}
	}
	if dashboard.IncomeBySource == nil {
		dashboard.IncomeBySource = []models.LabelAmount{}
	}

	return dashboard, nil
}

func wrapDashboardErr(part string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("error computing %s: %w", part, err)
}

func summarize(transactions []models.Transaction) models.PeriodSummary {
	summary := models.PeriodSummary{Total: decimal.Zero, Transactions: transactions}
	if summary.Transactions == nil {
		summary.Transactions = []models.Transaction{}
	}

	for _, transaction := range transactions {
		summary.Total = summary.Total.Add(transaction.Amount)
	}

	return summary
}

// mergeRecent returns incomes and expenses in one list, newest first.
func mergeRecent(incomes, expenses []models.Transaction) []models.Transaction {
	merged := make([]models.Transaction, 0, len(incomes)+len(expenses))
	merged = append(merged, incomes...)
	merged = append(merged, expenses...)

	sort.SliceStable(merged, func(i, j int) bool {
		if !merged[i].Date.Equal(merged[j].Date) {
			return merged[i].Date.After(merged[j].Date)
		}
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	return merged
}
