package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/bruxa61/financas/internal/dto"
	apierrors "github.com/bruxa61/financas/internal/errors"
	"github.com/bruxa61/financas/internal/models"
	"github.com/bruxa61/financas/internal/repositories"
	"github.com/bruxa61/financas/internal/services"
	"github.com/bruxa61/financas/internal/validation"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// ListTransactions retrieves one page of transaction history
// @Summary List transactions
// @Description Retrieve a fixed-size page of the user's transaction history, newest first, optionally narrowed by category and type
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param category query string false "Filter by category"
// @Param type query string false "Filter by transaction type" Enums(income, expense)
// @Success 200 {object} dto.TransactionPage "Transaction page with pagination"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var params dto.ListTransactionsRequest
	if err := c.Bind(&params); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid query parameters"))
	}

	filters := models.TransactionFilters{
		Category:        params.Category,
		TransactionType: params.Type,
	}

	result, err := h.transactionService.ListTransactions(userID, params.Page, filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// CreateTransaction records a new transaction
// @Summary Create transaction
// @Description Validate and record a new income or expense transaction for the authenticated user
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param transaction body validation.TransactionInput true "Transaction fields"
// @Success 201 {object} models.Transaction "Created transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_002 - Missing field, TRANSACTION_002 - Invalid amount, VALIDATION_004 - Invalid date"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var input validation.TransactionInput
	if err := c.Bind(&input); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	transaction, err := h.transactionService.CreateTransaction(userID, input)
	if err != nil {
		return h.sendTransactionError(c, err)
	}

	return c.JSON(http.StatusCreated, transaction)
}

// GetTransaction retrieves a single transaction
// @Summary Get transaction
// @Description Retrieve one of the user's transactions by ID
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} models.Transaction "Transaction"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid transaction ID"))
	}

	transaction, err := h.transactionService.GetTransaction(userID, transactionID)
	if err != nil {
		return h.sendTransactionError(c, err)
	}

	return c.JSON(http.StatusOK, transaction)
}

// UpdateTransaction replaces an existing transaction's fields
// @Summary Update transaction
// @Description Replace every user-editable field of one of the user's transactions
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Param transaction body validation.TransactionInput true "Transaction fields"
// @Success 200 {object} models.Transaction "Updated transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_002 - Missing field, TRANSACTION_002 - Invalid amount, VALIDATION_004 - Invalid date"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid transaction ID"))
	}

	var input validation.TransactionInput
	if err := c.Bind(&input); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	transaction, err := h.transactionService.UpdateTransaction(userID, transactionID, input)
	if err != nil {
		return h.sendTransactionError(c, err)
	}

	return c.JSON(http.StatusOK, transaction)
}

// DeleteTransaction removes a transaction
// @Summary Delete transaction
// @Description Delete one of the user's transactions
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Deletion confirmation"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid transaction ID"))
	}

	if err := h.transactionService.DeleteTransaction(userID, transactionID); err != nil {
		return h.sendTransactionError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Transaction deleted successfully",
	})
}

// sendTransactionError maps service and validation failures onto the
// error taxonomy. Unknown errors are reported as system errors without
// leaking internal detail.
func (h *TransactionHandler) sendTransactionError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, validation.ErrMissingField):
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails(err.Error()))
	case errors.Is(err, validation.ErrInvalidAmount):
		return SendError(c, apierrors.TransactionInvalidAmount, apierrors.WithDetails(err.Error()))
	case errors.Is(err, validation.ErrInvalidDate):
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	case errors.Is(err, models.ErrInvalidTransactionType):
		return SendError(c, apierrors.TransactionInvalidType, apierrors.WithDetails(err.Error()))
	case errors.Is(err, repositories.ErrTransactionNotFound):
		return SendError(c, apierrors.TransactionNotFound)
	default:
		return SendSystemError(c, err)
	}
}
