// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/go-fin-tracker/migrations"
	"github.com/MKhiriev/go-fin-tracker/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
)

const (
	tableAccounts             = "accounts"
	tableUsers                = "users"
	tableCharteredAccountants = "chartered_accountants"
	tableExpenses             = "expenses"
	tableIncomes              = "incomes"
)

var (
	userColumns = []string{"id", "full_name", "email", "password_hash", "created_at", "updated_at"}
	caColumns   = []string{
		"id", "full_name", "email", "password_hash", "created_at", "updated_at",
		"license_number", "year_of_registration", "practice_area", "is_verified",
	}
)

// transactionTable describes where one transaction kind lives.
type transactionTable struct {
	kind        models.TransactionType
	name        string
	labelColumn string
}

var (
	expensesTable = transactionTable{kind: models.TransactionExpense, name: tableExpenses, labelColumn: "category"}
	incomesTable  = transactionTable{kind: models.TransactionIncome, name: tableIncomes, labelColumn: "source"}
)

func (t transactionTable) columns() []string {
	return []string{"id", "account_id", t.labelColumn, "icon", "amount", "date", "created_at"}
}

// amountSum is the aggregate over the amount column together with the
// exponent that turns its result back into currency units.
type amountSum struct {
	expr string
	exp  int32
}

// SQLite keeps NUMERIC values as REAL, so it sums integer cents instead.
var (
	sumAmount      = amountSum{expr: "SUM(amount)"}
	sumAmountCents = amountSum{expr: "SUM(CAST(ROUND(amount * 100) AS INTEGER))", exp: -2}
)

func amountSumFor(dialect string) amountSum {
	if dialect == migrations.DialectSQLite {
		return sumAmountCents
	}
	return sumAmount
}

func (s amountSum) value(d decimal.Decimal) decimal.Decimal {
	return d.Shift(s.exp).Round(2)
}

// ─── accounts ────────────────────────────────────────────────────────────────

func buildInsertAccountQuery(b sq.StatementBuilderType, account models.Account) (string, []any, error) {
	return b.Insert(tableAccounts).
		Columns("id", "email", "role", "created_at").
		Values(account.ID, account.Email, string(account.Role), account.CreatedAt).
		ToSql()
}

func buildInsertUserQuery(b sq.StatementBuilderType, account models.Account) (string, []any, error) {
	return b.Insert(tableUsers).
		Columns(userColumns...).
		Values(account.ID, account.FullName, account.Email, account.PasswordHash, account.CreatedAt, account.UpdatedAt).
		ToSql()
}

func buildInsertCAQuery(b sq.StatementBuilderType, account models.Account) (string, []any, error) {
	if account.CAProfile == nil {
		return "", nil, fmt.Errorf("%w: CA profile is missing", ErrBuildingSQLQuery)
	}

	return b.Insert(tableCharteredAccountants).
		Columns(caColumns...).
		Values(
			account.ID, account.FullName, account.Email, account.PasswordHash, account.CreatedAt, account.UpdatedAt,
			account.LicenseNumber, account.YearOfRegistration, account.PracticeArea, account.IsVerified,
		).
		ToSql()
}

func buildSelectAccountQuery(b sq.StatementBuilderType, role models.Role, where sq.Eq) (string, []any, error) {
	table, columns := tableUsers, userColumns
	if role == models.RoleCA {
		table, columns = tableCharteredAccountants, caColumns
	}

	return b.Select(columns...).From(table).Where(where).Limit(1).ToSql()
}

func buildExistsQuery(b sq.StatementBuilderType, table string, where sq.Eq) (string, []any, error) {
	return b.Select("1").From(table).Where(where).Limit(1).ToSql()
}

// ─── transactions ────────────────────────────────────────────────────────────

func buildInsertTransactionQuery(b sq.StatementBuilderType, t transactionTable, tr models.Transaction) (string, []any, error) {
	return b.Insert(t.name).
		Columns(t.columns()...).
		Values(tr.ID, tr.AccountID, tr.Label(), tr.Icon, tr.Amount, tr.Date, tr.CreatedAt).
		ToSql()
}

func filterConditions(filter models.TransactionFilter) sq.And {
	conds := sq.And{sq.Eq{"account_id": filter.AccountID}}
	if filter.From != nil {
		conds = append(conds, sq.GtOrEq{"date": filter.From.UTC()})
	}
	if filter.To != nil {
		conds = append(conds, sq.LtOrEq{"date": filter.To.UTC()})
	}

	return conds
}

func buildSelectTransactionsQuery(b sq.StatementBuilderType, t transactionTable, filter models.TransactionFilter) (string, []any, error) {
	query := b.Select(t.columns()...).
		From(t.name).
		Where(filterConditions(filter)).
		OrderBy("date DESC", "created_at DESC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return query.ToSql()
}

func buildDeleteTransactionQuery(b sq.StatementBuilderType, t transactionTable, accountID, id string) (string, []any, error) {
	return b.Delete(t.name).
		Where(sq.Eq{"id": id, "account_id": accountID}).
		ToSql()
}

func buildTotalQuery(b sq.StatementBuilderType, sum amountSum, t transactionTable, filter models.TransactionFilter) (string, []any, error) {
	return b.Select("COALESCE(" + sum.expr + ", 0)").
		From(t.name).
		Where(filterConditions(filter)).
		ToSql()
}

func buildTotalsByLabelQuery(b sq.StatementBuilderType, sum amountSum, t transactionTable, filter models.TransactionFilter) (string, []any, error) {
	return b.Select(t.labelColumn, sum.expr+" AS total").
		From(t.name).
		Where(filterConditions(filter)).
		GroupBy(t.labelColumn).
		OrderBy("total DESC", t.labelColumn).
		ToSql()
}
