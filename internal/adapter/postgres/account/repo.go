// Package account implements the Credential Store: the only writer of
// account rows. Fixed queries are raw SQL; the profile update is built
// with squirrel from an allow-list of columns.
package account

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/entomoguide-backend/internal/adapter/postgres"
	"github.com/heartmarshall/entomoguide-backend/internal/domain"
)

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new account repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

const accountColumns = `id, name, email, login, password_hash, role, status, profile_photo, created_at`

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO accounts (name, email, login, password_hash, role, status)
VALUES ($1, $2, $3, $4, $5, 'pending')
RETURNING ` + accountColumns

const getByIDSQL = `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

const findByEmailOrLoginSQL = `
SELECT ` + accountColumns + `
FROM accounts
WHERE email = lower($1) OR login = $1
ORDER BY (email = lower($1)) DESC
LIMIT 1`

const setStatusSQL = `UPDATE accounts SET status = $1 WHERE id = $2`

const deleteSQL = `DELETE FROM accounts WHERE id = $1`

const listByStatusSQL = `
SELECT ` + accountColumns + `
FROM accounts
WHERE status = $1
ORDER BY created_at, id`

const countByStatusSQL = `
SELECT status, COUNT(*)
FROM accounts
GROUP BY status
ORDER BY status`

const countPerDaySQL = `
SELECT created_at::date AS day, COUNT(*)
FROM accounts
WHERE created_at::date BETWEEN $1::date AND $2::date
GROUP BY day
ORDER BY day`

const promoteSQL = `
UPDATE accounts SET role = 'admin', status = 'active'
WHERE email = lower($1) AND (role <> 'admin' OR status <> 'active')`

const profilePhotosSQL = `SELECT profile_photo FROM accounts WHERE profile_photo IS NOT NULL`

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a new account. The status is always pending regardless of
// acc.Status. acc.PasswordHash must already be hashed.
// Returns domain.ErrAlreadyExists when the email or login is taken.
func (r *Repo) Create(ctx context.Context, acc domain.Account) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	role := acc.Role
	if role == "" {
		role = domain.RoleUser
	}

	row := q.QueryRow(ctx, createSQL, acc.Name, acc.Email, acc.Login, acc.PasswordHash, string(role))
	created, err := scanAccount(row)
	if err != nil {
		return nil, postgres.MapError(err, "account", 0)
	}

	return created, nil
}

// SetStatus moves an account to status and returns the number of rows affected.
func (r *Repo) SetStatus(ctx context.Context, id int64, status domain.AccountStatus) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, setStatusSQL, string(status), id)
	if err != nil {
		return 0, postgres.MapError(err, "account", id)
	}

	return tag.RowsAffected(), nil
}

// UpdateProfile writes the non-nil allow-listed fields and returns the number
// of rows affected. An empty field set touches nothing and reports 0.
func (r *Repo) UpdateProfile(ctx context.Context, id int64, fields domain.ProfileFields) (int64, error) {
	if fields.IsEmpty() {
		return 0, nil
	}

	set := map[string]any{}
	if fields.Name != nil {
		set["name"] = *fields.Name
	}
	if fields.Email != nil {
		set["email"] = *fields.Email
	}
	if fields.PasswordHash != nil {
		set["password_hash"] = *fields.PasswordHash
	}
	if fields.ProfilePhoto != nil {
		set["profile_photo"] = *fields.ProfilePhoto
	}

	sql, args, err := postgres.Builder().
		Update("accounts").
		SetMap(set).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build profile update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "account", id)
	}

	return tag.RowsAffected(), nil
}

// Delete removes an account and returns the number of rows affected.
func (r *Repo) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return 0, postgres.MapError(err, "account", id)
	}
	return tag.RowsAffected(), nil
}

// PromoteToAdmin grants the admin role and activates the account with email.
// Returns 0 when no such account exists or it is already an active admin.
func (r *Repo) PromoteToAdmin(ctx context.Context, email string) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, promoteSQL, email)
	if err != nil {
		return 0, fmt.Errorf("promote account: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns the account with id or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id)
	acc, err := scanAccount(row)
	if err != nil {
		return nil, postgres.MapError(err, "account", id)
	}
	return acc, nil
}

// FindByEmailOrLogin looks an account up by email (case-insensitive) or by
// login handle. An email match wins over a login match.
func (r *Repo) FindByEmailOrLogin(ctx context.Context, key string) (*domain.Account, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, findByEmailOrLoginSQL, key)
	acc, err := scanAccount(row)
	if err != nil {
		return nil, postgres.MapError(err, "account", 0)
	}
	return acc, nil
}

// ListByStatus returns all accounts in status, oldest first.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) ListByStatus(ctx context.Context, status domain.AccountStatus) ([]domain.Account, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listByStatusSQL, string(status))
	if err != nil {
		return nil, fmt.Errorf("list accounts by status: %w", err)
	}
	defer rows.Close()

	result := []domain.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("list accounts by status: %w", err)
		}
		result = append(result, *acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list accounts by status: %w", err)
	}

	return result, nil
}

// CountByStatus returns how many accounts are in each lifecycle state.
func (r *Repo) CountByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, countByStatusSQL)
	if err != nil {
		return nil, fmt.Errorf("count accounts by status: %w", err)
	}
	defer rows.Close()

	result := []domain.StatusCount{}
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("count accounts by status: %w", err)
		}
		result = append(result, domain.StatusCount{Status: domain.AccountStatus(status), Count: count})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count accounts by status: %w", err)
	}

	return result, nil
}

// CountRegistrationsPerDay returns registrations grouped by calendar day,
// inclusive of both bounds. Days without registrations are omitted.
func (r *Repo) CountRegistrationsPerDay(ctx context.Context, from, to time.Time) ([]domain.DailyCount, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, countPerDaySQL, from, to)
	if err != nil {
		return nil, fmt.Errorf("count registrations per day: %w", err)
	}
	defer rows.Close()

	result := []domain.DailyCount{}
	for rows.Next() {
		var dc domain.DailyCount
		if err := rows.Scan(&dc.Day, &dc.Count); err != nil {
			return nil, fmt.Errorf("count registrations per day: %w", err)
		}
		result = append(result, dc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count registrations per day: %w", err)
	}

	return result, nil
}

// ProfilePhotos returns every stored profile photo locator.
func (r *Repo) ProfilePhotos(ctx context.Context) ([]string, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, profilePhotosSQL)
	if err != nil {
		return nil, fmt.Errorf("list profile photos: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		acc    domain.Account
		role   string
		status string
	)
	err := row.Scan(
		&acc.ID, &acc.Name, &acc.Email, &acc.Login, &acc.PasswordHash,
		&role, &status, &acc.ProfilePhoto, &acc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	acc.Role = domain.AccountRole(role)
	acc.Status = domain.AccountStatus(status)
	return &acc, nil
}
