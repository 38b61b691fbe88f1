// internal/domain/registration/repository.go
package registration

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, r *Registration) error
	FindByID(ctx context.Context, id uuid.UUID) (*Registration, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*Registration, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*Registration, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status, note string) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByAccount(ctx context.Context, accountID uuid.UUID) error
	DeleteByEvent(ctx context.Context, eventID uuid.UUID) error
}
