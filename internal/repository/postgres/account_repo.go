// internal/repository/postgres/account_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"evently-service/internal/domain/account"
	xerrors "evently-service/internal/pkg/errors"
)

type AccountRepository struct {
	db *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create inserts a new account. Email and username are unique; a conflict on
// either yields xerrors.ErrDuplicateEntry.
func (r *AccountRepository) Create(ctx context.Context, a *account.Account) error {
	query := `
		INSERT INTO accounts (id, email, username, first_name, last_name, role, password_hash, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	err := r.db.QueryRow(ctx, query,
		a.ID, a.Email, a.Username, a.FirstName, a.LastName, a.Role, a.PasswordHash, a.IsActive,
	).Scan(&a.CreatedAt, &a.UpdatedAt)

	if isUniqueViolation(err) {
		return xerrors.ErrDuplicateEntry
	}
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// FindByID loads the current account state for token verification. The
// password hash is deliberately excluded from the projection.
func (r *AccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	query := `
		SELECT id, email, username, first_name, last_name, role, is_active, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`

	var a account.Account
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Email, &a.Username, &a.FirstName, &a.LastName, &a.Role, &a.IsActive,
		&a.CreatedAt, &a.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	return &a, nil
}

// FindByEmail retrieves an account with credentials for login.
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*account.Account, error) {
	return r.findWithCredentials(ctx, `LOWER(email) = LOWER($1)`, email)
}

// FindByUsername retrieves an account with credentials for login.
func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*account.Account, error) {
	return r.findWithCredentials(ctx, `username = $1`, username)
}

func (r *AccountRepository) findWithCredentials(ctx context.Context, where string, arg any) (*account.Account, error) {
	query := `
		SELECT id, email, username, first_name, last_name, role, password_hash, is_active, created_at, updated_at
		FROM accounts
		WHERE ` + where

	var a account.Account
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&a.ID, &a.Email, &a.Username, &a.FirstName, &a.LastName, &a.Role, &a.PasswordHash,
		&a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	return &a, nil
}

// List returns accounts ordered by creation time, with the total count for
// pagination. Hashes are excluded.
func (r *AccountRepository) List(ctx context.Context, limit, offset int) ([]*account.Account, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count accounts: %w", err)
	}

	query := `
		SELECT id, email, username, first_name, last_name, role, is_active, created_at, updated_at
		FROM accounts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*account.Account
	for rows.Next() {
		var a account.Account
		if err := rows.Scan(
			&a.ID, &a.Email, &a.Username, &a.FirstName, &a.LastName, &a.Role, &a.IsActive,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return accounts, total, nil
}

// UpdateRole replaces an account's role.
func (r *AccountRepository) UpdateRole(ctx context.Context, id uuid.UUID, role account.Role) error {
	tag, err := r.db.Exec(ctx, `UPDATE accounts SET role = $1, updated_at = NOW() WHERE id = $2`, role, id)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// SetActive toggles the active flag. Last writer wins; a verification racing
// this write observes either state, settled by the next check.
func (r *AccountRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE accounts SET is_active = $1, updated_at = NOW() WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("failed to set active flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// Delete removes an account. Dependent registrations must be removed first.
func (r *AccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}
