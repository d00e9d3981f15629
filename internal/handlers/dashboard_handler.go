package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apierrors "github.com/bruxa61/financas/internal/errors"
	"github.com/bruxa61/financas/internal/services"
)

// DashboardHandler serves the current-month dashboard view
type DashboardHandler struct {
	summaryService services.SummaryServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(summaryService services.SummaryServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		summaryService: summaryService,
	}
}

// GetDashboard returns the current month's financial overview
// @Summary Dashboard summary
// @Description Current month income and expense totals, balance, recent transactions and expense breakdown
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.DashboardSummary "Dashboard summary"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	summary, err := h.summaryService.DashboardSummary(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}
