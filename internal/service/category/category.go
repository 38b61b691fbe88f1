// internal/service/category/category.go
package category

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"evently-service/internal/domain/category"
)

type CategoryService struct {
	categories category.Repository
	logger     *zap.Logger
}

func NewCategoryService(categories category.Repository, logger *zap.Logger) *CategoryService {
	return &CategoryService{categories: categories, logger: logger}
}

func (s *CategoryService) Create(ctx context.Context, req *category.CreateRequest) (*category.Category, error) {
	c := &category.Category{Name: req.Name}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("category created", zap.String("category_id", c.ID.String()), zap.String("name", c.Name))
	return c, nil
}

func (s *CategoryService) List(ctx context.Context) ([]*category.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("category deleted", zap.String("category_id", id.String()))
	return nil
}
