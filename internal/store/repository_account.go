// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/models"
	sq "github.com/Masterminds/squirrel"
)

// accountRepository is the SQL implementation of [AccountRepository].
// Users and CAs live in separate tables; the accounts table registers
// every id and email exactly once.
type accountRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] backed by db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

func (r *accountRepository) CreateUser(ctx context.Context, account models.Account) (models.Account, error) {
	account.Role = models.RoleUser
	account.CAProfile = nil
	return r.create(ctx, account, buildInsertUserQuery, "*accountRepository.CreateUser")
}

func (r *accountRepository) CreateCA(ctx context.Context, account models.Account) (models.Account, error) {
	account.Role = models.RoleCA

	var profile models.CAProfile
	if account.CAProfile != nil {
		profile = *account.CAProfile
	}
	profile.IsVerified = false
	account.CAProfile = &profile

	return r.create(ctx, account, buildInsertCAQuery, "*accountRepository.CreateCA")
}

type insertQueryBuilder func(sq.StatementBuilderType, models.Account) (string, []any, error)

// create registers the account and inserts its role row in one transaction.
func (r *accountRepository) create(ctx context.Context, account models.Account, buildRoleInsert insertQueryBuilder, funcName string) (models.Account, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC().Truncate(time.Microsecond)
	account.CreatedAt, account.UpdatedAt = now, now

	registryQuery, registryArgs, err := buildInsertAccountQuery(r.db.builder, account)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building accounts insert")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	roleQuery, roleArgs, err := buildRoleInsert(r.db.builder, account)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building role insert")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error beginning transaction")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer rollback(ctx, tx, funcName)

	if _, err = tx.ExecContext(ctx, registryQuery, registryArgs...); err != nil {
		log.Err(err).Str("func", funcName).Msg("error inserting into accounts")
		return models.Account{}, r.mapWriteError(err)
	}

	if _, err = tx.ExecContext(ctx, roleQuery, roleArgs...); err != nil {
		log.Err(err).Str("func", funcName).Msg("error inserting role row")
		return models.Account{}, r.mapWriteError(err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error committing transaction")
		return models.Account{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().Str("func", funcName).Str("account_id", account.ID).Msg("account created")
	return account, nil
}

// mapWriteError turns unique violations into domain errors.
func (r *accountRepository) mapWriteError(err error) error {
	constraint, ok := r.db.errorClassificator.UniqueViolation(err)
	if !ok {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	switch {
	case strings.Contains(constraint, "license"):
		return ErrLicenseAlreadyRegistered
	case strings.Contains(constraint, "email"):
		return ErrEmailAlreadyInUse
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

func (r *accountRepository) FindUserByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.find(ctx, models.RoleUser, sq.Eq{"email": email}, "*accountRepository.FindUserByEmail")
}

func (r *accountRepository) FindCAByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.find(ctx, models.RoleCA, sq.Eq{"email": email}, "*accountRepository.FindCAByEmail")
}

func (r *accountRepository) FindUserByID(ctx context.Context, id string) (models.Account, error) {
	return r.find(ctx, models.RoleUser, sq.Eq{"id": id}, "*accountRepository.FindUserByID")
}

func (r *accountRepository) FindCAByID(ctx context.Context, id string) (models.Account, error) {
	return r.find(ctx, models.RoleCA, sq.Eq{"id": id}, "*accountRepository.FindCAByID")
}

func (r *accountRepository) find(ctx context.Context, role models.Role, where sq.Eq, funcName string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAccountQuery(r.db.builder, role, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building select query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var account models.Account
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		account, err = scanAccount(r.db.QueryRowContext(ctx, query, args...), role)
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return account, nil
}

func scanAccount(row *sql.Row, role models.Role) (models.Account, error) {
	account := models.Account{Role: role}
	dest := []any{&account.ID, &account.FullName, &account.Email, &account.PasswordHash, &account.CreatedAt, &account.UpdatedAt}

	if role == models.RoleCA {
		account.CAProfile = &models.CAProfile{}
		dest = append(dest, &account.LicenseNumber, &account.YearOfRegistration, &account.PracticeArea, &account.IsVerified)
	}

	if err := row.Scan(dest...); err != nil {
		return models.Account{}, err
	}

	return account, nil
}

func (r *accountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, tableAccounts, sq.Eq{"email": email}, "*accountRepository.EmailExists")
}

func (r *accountRepository) LicenseExists(ctx context.Context, licenseNumber string) (bool, error) {
	return r.exists(ctx, tableCharteredAccountants, sq.Eq{"license_number": licenseNumber}, "*accountRepository.LicenseExists")
}

func (r *accountRepository) exists(ctx context.Context, table string, where sq.Eq, funcName string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildExistsQuery(r.db.builder, table, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building exists query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing exists query")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}
