// internal/domain/category/entity.go
package category

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Category labels events; names are globally unique.
type Category struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateRequest for category creation.
type CreateRequest struct {
	Name string `json:"name" binding:"required"`
}

type Repository interface {
	Create(ctx context.Context, c *Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
