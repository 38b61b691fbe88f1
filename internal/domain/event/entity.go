// internal/domain/event/entity.go
package event

import (
	"time"

	"github.com/google/uuid"
)

// Event is a scheduled happening that accounts can be registered to.
type Event struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description,omitempty" db:"description"`
	Location    string    `json:"location,omitempty" db:"location"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	StartTime   time.Time `json:"start_time" db:"start_time"`
	EndTime     time.Time `json:"end_time" db:"end_time"`
	Price       string    `json:"price" db:"price"`
	IsFree      bool      `json:"is_free" db:"is_free"`
	URL         string    `json:"url,omitempty" db:"url"`
	Slots       int       `json:"slots" db:"slots"`
	CategoryID  uuid.UUID `json:"category_id" db:"category_id"`
	OrganizerID uuid.UUID `json:"organizer_id" db:"organizer_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
