// internal/repository/postgres/registration_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"evently-service/internal/domain/event"
	"evently-service/internal/domain/registration"
	xerrors "evently-service/internal/pkg/errors"
)

type RegistrationRepository struct {
	db *pgxpool.Pool
}

func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Create links an account to an event. The (account_id, event_id) pair is
// unique; a second assignment yields xerrors.ErrDuplicateEntry.
func (r *RegistrationRepository) Create(ctx context.Context, reg *registration.Registration) error {
	query := `
		INSERT INTO registrations (id, account_id, event_id, status, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	if reg.ID == uuid.Nil {
		reg.ID = uuid.New()
	}
	if reg.Status == "" {
		reg.Status = registration.StatusPending
	}

	err := r.db.QueryRow(ctx, query,
		reg.ID, reg.AccountID, reg.EventID, reg.Status, reg.Note,
	).Scan(&reg.CreatedAt, &reg.UpdatedAt)

	if isUniqueViolation(err) {
		return xerrors.ErrDuplicateEntry
	}
	if err != nil {
		return fmt.Errorf("failed to create registration: %w", err)
	}
	return nil
}

func (r *RegistrationRepository) FindByID(ctx context.Context, id uuid.UUID) (*registration.Registration, error) {
	query := `
		SELECT id, account_id, event_id, status, note, created_at, updated_at
		FROM registrations
		WHERE id = $1
	`

	var reg registration.Registration
	err := r.db.QueryRow(ctx, query, id).Scan(
		&reg.ID, &reg.AccountID, &reg.EventID, &reg.Status, &reg.Note,
		&reg.CreatedAt, &reg.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find registration: %w", err)
	}
	return &reg, nil
}

// ListByAccount returns an account's registrations with the event joined in,
// so clients can render the schedule without extra round trips.
func (r *RegistrationRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*registration.Registration, error) {
	query := `
		SELECT reg.id, reg.account_id, reg.event_id, reg.status, reg.note, reg.created_at, reg.updated_at,
		       ev.id, ev.title, ev.description, ev.location, ev.image_url,
		       ev.start_time, ev.end_time, ev.price, ev.is_free, ev.url, ev.slots,
		       ev.category_id, ev.organizer_id, ev.created_at
		FROM registrations reg
		JOIN events ev ON ev.id = reg.event_id
		WHERE reg.account_id = $1
		ORDER BY ev.start_time
	`

	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	defer rows.Close()

	return scanRegistrationsWithEvent(rows)
}

// ListByEvent returns every registration for an event.
func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*registration.Registration, error) {
	query := `
		SELECT id, account_id, event_id, status, note, created_at, updated_at
		FROM registrations
		WHERE event_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	defer rows.Close()

	var regs []*registration.Registration
	for rows.Next() {
		var reg registration.Registration
		if err := rows.Scan(
			&reg.ID, &reg.AccountID, &reg.EventID, &reg.Status, &reg.Note,
			&reg.CreatedAt, &reg.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan registration: %w", err)
		}
		regs = append(regs, &reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate registrations: %w", err)
	}
	return regs, nil
}

func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status registration.Status, note string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE registrations SET status = $1, note = $2, updated_at = NOW() WHERE id = $3`,
		status, note, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update registration status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *RegistrationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM registrations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete registration: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// DeleteByAccount removes all registrations referencing an account, used
// before the account itself is removed.
func (r *RegistrationRepository) DeleteByAccount(ctx context.Context, accountID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM registrations WHERE account_id = $1`, accountID); err != nil {
		return fmt.Errorf("failed to delete registrations by account: %w", err)
	}
	return nil
}

// DeleteByEvent removes all registrations referencing an event.
func (r *RegistrationRepository) DeleteByEvent(ctx context.Context, eventID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM registrations WHERE event_id = $1`, eventID); err != nil {
		return fmt.Errorf("failed to delete registrations by event: %w", err)
	}
	return nil
}

func scanRegistrationsWithEvent(rows pgx.Rows) ([]*registration.Registration, error) {
	var regs []*registration.Registration
	for rows.Next() {
		var reg registration.Registration
		var ev event.Event
		if err := rows.Scan(
			&reg.ID, &reg.AccountID, &reg.EventID, &reg.Status, &reg.Note,
			&reg.CreatedAt, &reg.UpdatedAt,
			&ev.ID, &ev.Title, &ev.Description, &ev.Location, &ev.ImageURL,
			&ev.StartTime, &ev.EndTime, &ev.Price, &ev.IsFree, &ev.URL, &ev.Slots,
			&ev.CategoryID, &ev.OrganizerID, &ev.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan registration: %w", err)
		}
		reg.Event = &ev
		regs = append(regs, &reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate registrations: %w", err)
	}
	return regs, nil
}
