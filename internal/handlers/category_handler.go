package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bruxa61/financas/internal/dto"
	apierrors "github.com/bruxa61/financas/internal/errors"
	"github.com/bruxa61/financas/internal/services"
)

// CategoryHandler serves the category catalog
type CategoryHandler struct {
	seeder services.CategorySeederInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(seeder services.CategorySeederInterface) *CategoryHandler {
	return &CategoryHandler{
		seeder: seeder,
	}
}

// ListCategories returns the configured categories
// @Summary List categories
// @Description Retrieve the category catalog, grouped by type
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.CategoryListResponse "Category catalog"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	categories, err := h.seeder.ListCategories()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CategoryListResponse{Categories: categories})
}
