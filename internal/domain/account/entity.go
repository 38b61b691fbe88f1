// internal/domain/account/entity.go
package account

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a registered identity with credentials, role and active
// flag. The password hash never leaves the persistence boundary: it is
// populated only by lookups that explicitly ask for credentials.
type Account struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Username     string    `json:"username" db:"username"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Role         Role      `json:"role" db:"role"`
	PasswordHash string    `json:"-" db:"password_hash"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Roles returns the account's role claim normalized to a set.
func (a *Account) Roles() Roles {
	if a.Role == "" {
		return Roles{RoleUser}
	}
	return Roles{a.Role}
}

// Sanitized returns a copy of the account with the credential hash removed,
// safe to embed in responses and tokens.
func (a *Account) Sanitized() *Account {
	cp := *a
	cp.PasswordHash = ""
	return &cp
}

// FullName is the display name used in notifications.
func (a *Account) FullName() string {
	return a.FirstName + " " + a.LastName
}
