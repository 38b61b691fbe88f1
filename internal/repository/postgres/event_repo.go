// internal/repository/postgres/event_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"evently-service/internal/domain/event"
	xerrors "evently-service/internal/pkg/errors"
)

type EventRepository struct {
	db *pgxpool.Pool
}

func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, e *event.Event) error {
	query := `
		INSERT INTO events (
			id, title, description, location, image_url,
			start_time, end_time, price, is_free, url, slots,
			category_id, organizer_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at
	`

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	err := r.db.QueryRow(ctx, query,
		e.ID, e.Title, e.Description, e.Location, e.ImageURL,
		e.StartTime, e.EndTime, e.Price, e.IsFree, e.URL, e.Slots,
		e.CategoryID, e.OrganizerID,
	).Scan(&e.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	query := `
		SELECT id, title, description, location, image_url,
		       start_time, end_time, price, is_free, url, slots,
		       category_id, organizer_id, created_at
		FROM events
		WHERE id = $1
	`

	var e event.Event
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Title, &e.Description, &e.Location, &e.ImageURL,
		&e.StartTime, &e.EndTime, &e.Price, &e.IsFree, &e.URL, &e.Slots,
		&e.CategoryID, &e.OrganizerID, &e.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find event: %w", err)
	}
	return &e, nil
}

// List returns events matching the filter plus the total match count.
func (r *EventRepository) List(ctx context.Context, filter event.ListFilter) ([]*event.Event, int64, error) {
	where := ``
	args := []any{}
	if filter.CategoryID != "" {
		where = `WHERE category_id = $1`
		args = append(args, filter.CategoryID)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM events `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	query := fmt.Sprintf(`
		SELECT id, title, description, location, image_url,
		       start_time, end_time, price, is_free, url, slots,
		       category_id, organizer_id, created_at
		FROM events
		%s
		ORDER BY start_time
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []*event.Event
	for rows.Next() {
		var e event.Event
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.Location, &e.ImageURL,
			&e.StartTime, &e.EndTime, &e.Price, &e.IsFree, &e.URL, &e.Slots,
			&e.CategoryID, &e.OrganizerID, &e.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate events: %w", err)
	}

	return events, total, nil
}

func (r *EventRepository) Update(ctx context.Context, e *event.Event) error {
	query := `
		UPDATE events SET
			title = $1, description = $2, location = $3, image_url = $4,
			start_time = $5, end_time = $6, price = $7, is_free = $8,
			url = $9, slots = $10, category_id = $11
		WHERE id = $12
	`

	tag, err := r.db.Exec(ctx, query,
		e.Title, e.Description, e.Location, e.ImageURL,
		e.StartTime, e.EndTime, e.Price, e.IsFree,
		e.URL, e.Slots, e.CategoryID, e.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}
