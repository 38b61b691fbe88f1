// internal/handlers/category/category_handler.go
package category

import (
	"net/http"

	"evently-service/internal/domain/category"
	"evently-service/internal/pkg/response"
	categoryUsecase "evently-service/internal/service/category"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categoryService *categoryUsecase.CategoryService
	logger          *zap.Logger
}

func NewCategoryHandler(categoryService *categoryUsecase.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// List returns all categories.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		response.FromError(c, "failed to list categories", err)
		return
	}

	response.Success(c, http.StatusOK, "categories retrieved", categories)
}

// Create adds a category (admin only).
func (h *CategoryHandler) Create(c *gin.Context) {
	var req category.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	cat, err := h.categoryService.Create(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("category creation failed",
			zap.String("name", req.Name),
			zap.Error(err),
		)
		response.FromError(c, "failed to create category", err)
		return
	}

	response.Success(c, http.StatusCreated, "category created", cat)
}

// Delete removes a category (admin only).
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid category ID", err)
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, "failed to delete category", err)
		return
	}

	response.Success(c, http.StatusOK, "category deleted", nil)
}
