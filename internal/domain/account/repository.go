// internal/domain/account/repository.go
package account

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence contract for accounts.
//
// FindByID is the projection the token gate depends on: it excludes the
// password hash and always reflects the current role and active flag.
// FindByEmail/FindByUsername include the hash and exist for login only.
type Repository interface {
	Create(ctx context.Context, a *Account) error
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByUsername(ctx context.Context, username string) (*Account, error)
	List(ctx context.Context, limit, offset int) ([]*Account, int64, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role Role) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}
