// internal/domain/registration/entity.go
package registration

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"evently-service/internal/domain/event"
)

// Status tracks an account's participation in an event.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
	StatusOverdue   Status = "Overdue"
)

// ParseStatus validates a status value received at the API boundary.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusCompleted, StatusOverdue:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown registration status %q", s)
	}
}

// Registration links an account to an event with a participation status.
// The (account, event) pair is unique.
type Registration struct {
	ID        uuid.UUID `json:"id" db:"id"`
	AccountID uuid.UUID `json:"account_id" db:"account_id"`
	EventID   uuid.UUID `json:"event_id" db:"event_id"`
	Status    Status    `json:"status" db:"status"`
	Note      string    `json:"note,omitempty" db:"note"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	// Event is populated by listings that join the event record.
	Event *event.Event `json:"event,omitempty" db:"-"`
}
