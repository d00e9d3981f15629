package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apierrors "github.com/bruxa61/financas/internal/errors"
	"github.com/bruxa61/financas/internal/repositories"
	"github.com/bruxa61/financas/internal/services"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	generator       services.TransactionGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(transactionRepo repositories.TransactionRepositoryInterface) *DevHandler {
	return &DevHandler{
		transactionRepo: transactionRepo,
		generator:       services.NewTransactionGenerator(uint64(time.Now().UnixNano())),
	}
}

// GenerateSampleData populates the authenticated user's ledger with
// realistic sample history.
//
// Method: POST /api/v1/dev/generate-sample-data
// Authentication: Required
// Environment: Development only
//
// Query parameters:
//   - months: Months of history to generate (default: 6, max: 24)
//   - per_month: Transactions per month (default: 15, max: 100)
func (h *DevHandler) GenerateSampleData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	months := getIntParam(c, "months", 6)
	if months < 1 {
		months = 1
	}
	if months > 24 {
		months = 24
	}

	perMonth := getIntParam(c, "per_month", 15)
	if perMonth < 1 {
		perMonth = 1
	}
	if perMonth > 100 {
		perMonth = 100
	}

	transactions := h.generator.GenerateHistory(userID, months, perMonth)

	if err := h.transactionRepo.CreateBatch(transactions); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":              "Sample data generated successfully",
		"transactions_created": len(transactions),
	})
}
