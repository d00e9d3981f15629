package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apierrors "github.com/bruxa61/financas/internal/errors"
	"github.com/bruxa61/financas/internal/services"
)

// ReportHandler serves the yearly report view
type ReportHandler struct {
	reportService services.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService services.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// GetYearlyReport returns the trailing twelve month report
// @Summary Yearly report
// @Description Twelve monthly income/expense/balance entries plus the current year's category breakdowns
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.YearlyReport "Yearly report"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /reports [get]
func (h *ReportHandler) GetYearlyReport(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	report, err := h.reportService.YearlyReport(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, report)
}
